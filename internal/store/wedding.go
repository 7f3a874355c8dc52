package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// WeddingStore persists the single questionnaire row per user.
type WeddingStore struct {
	db *database.PostgresClient
}

func NewWeddingStore(db *database.PostgresClient) *WeddingStore {
	return &WeddingStore{db: db}
}

const weddingColumns = `id, user_id, partner_one_name, partner_two_name, wedding_location,
	wedding_date, guest_count, budget, currency, cultural_traditions, religious_traditions,
	planned_events, wedding_style, venue_type, special_requirements, created_at, updated_at`

func scanWedding(row interface{ Scan(...interface{}) error }) (*models.WeddingDetails, error) {
	var w models.WeddingDetails
	var weddingDate sql.NullTime
	var budget sql.NullFloat64
	err := row.Scan(
		&w.ID, &w.UserID, &w.PartnerOneName, &w.PartnerTwoName, &w.WeddingLocation,
		&weddingDate, &w.GuestCount, &budget, &w.Currency,
		pq.Array(&w.CulturalTraditions), pq.Array(&w.ReligiousTraditions),
		pq.Array(&w.PlannedEvents),
		&w.WeddingStyle, &w.VenueType, &w.SpecialRequirements,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if weddingDate.Valid {
		t := weddingDate.Time
		w.WeddingDate = &t
	}
	if budget.Valid {
		b := budget.Float64
		w.Budget = &b
	}
	return &w, nil
}

// Get returns the questionnaire answers for a user, nil when never filled.
func (s *WeddingStore) Get(ctx context.Context, userID string) (*models.WeddingDetails, error) {
	row := s.db.QueryRow(ctx, `SELECT `+weddingColumns+` FROM wedding_details WHERE user_id = $1`, userID)
	w, err := scanWedding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("get wedding details", err)
	}
	return w, nil
}

// Upsert stores the questionnaire answers, replacing the previous row.
func (s *WeddingStore) Upsert(ctx context.Context, details *models.WeddingDetails) (*models.WeddingDetails, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO wedding_details (
			id, user_id, partner_one_name, partner_two_name, wedding_location,
			wedding_date, guest_count, budget, currency,
			cultural_traditions, religious_traditions, planned_events,
			wedding_style, venue_type, special_requirements
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id) DO UPDATE SET
			partner_one_name = EXCLUDED.partner_one_name,
			partner_two_name = EXCLUDED.partner_two_name,
			wedding_location = EXCLUDED.wedding_location,
			wedding_date = EXCLUDED.wedding_date,
			guest_count = EXCLUDED.guest_count,
			budget = EXCLUDED.budget,
			currency = EXCLUDED.currency,
			cultural_traditions = EXCLUDED.cultural_traditions,
			religious_traditions = EXCLUDED.religious_traditions,
			planned_events = EXCLUDED.planned_events,
			wedding_style = EXCLUDED.wedding_style,
			venue_type = EXCLUDED.venue_type,
			special_requirements = EXCLUDED.special_requirements,
			updated_at = now()
		RETURNING `+weddingColumns,
		uuid.NewString(), details.UserID,
		details.PartnerOneName, details.PartnerTwoName, details.WeddingLocation,
		details.WeddingDate, details.GuestCount, details.Budget, details.Currency,
		pq.Array(details.CulturalTraditions), pq.Array(details.ReligiousTraditions),
		pq.Array(details.PlannedEvents),
		details.WeddingStyle, details.VenueType, details.SpecialRequirements)
	w, err := scanWedding(row)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("upsert wedding details", err)
	}
	return w, nil
}
