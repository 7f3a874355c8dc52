package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// UserStore persists accounts and password-reset tokens.
type UserStore struct {
	db *database.PostgresClient
}

func NewUserStore(db *database.PostgresClient) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, email, password_hash, name, partner_one_name, partner_two_name,
	reset_token, reset_token_expiry, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	var resetToken sql.NullString
	var resetExpiry sql.NullTime
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name,
		&u.PartnerOneName, &u.PartnerTwoName,
		&resetToken, &resetExpiry,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if resetToken.Valid {
		u.ResetToken = resetToken.String
	}
	if resetExpiry.Valid {
		t := resetExpiry.Time
		u.ResetTokenExpiry = &t
	}
	return &u, nil
}

// Create inserts a new account. Returns an email-taken error when the
// address already exists.
func (s *UserStore) Create(ctx context.Context, email, passwordHash, partnerOneName, partnerTwoName string) (*models.User, error) {
	id := uuid.NewString()
	name := fmt.Sprintf("%s & %s", partnerOneName, partnerTwoName)

	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("check existing user", err)
	}
	if exists {
		return nil, apperrors.NewEmailTakenError(email)
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, name, partner_one_name, partner_two_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		id, email, passwordHash, name, partnerOneName, partnerTwoName)
	u, err := scanUser(row)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("create user", err)
	}
	return u, nil
}

// FindByEmail returns the account for an email, or nil when absent.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("find user by email", err)
	}
	return u, nil
}

// FindByID returns the account for an id.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewResourceNotFoundError("user", id)
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("find user by id", err)
	}
	return u, nil
}

// UpdatePartnerNames refreshes the partner names and recomputes the
// display name, mirroring the questionnaire submission.
func (s *UserStore) UpdatePartnerNames(ctx context.Context, userID, partnerOneName, partnerTwoName string) error {
	name := fmt.Sprintf("%s & %s", partnerOneName, partnerTwoName)
	_, err := s.db.Exec(ctx, `
		UPDATE users
		SET partner_one_name = $2, partner_two_name = $3, name = $4, updated_at = now()
		WHERE id = $1`,
		userID, partnerOneName, partnerTwoName, name)
	if err != nil {
		return apperrors.NewQueryExecutionFailedError("update partner names", err)
	}
	return nil
}

// SaveResetToken stores the password-reset token with its expiry.
func (s *UserStore) SaveResetToken(ctx context.Context, userID, token string, expiry time.Time) error {
	_, err := s.db.Exec(ctx, `
		UPDATE users SET reset_token = $2, reset_token_expiry = $3, updated_at = now()
		WHERE id = $1`,
		userID, token, expiry)
	if err != nil {
		return apperrors.NewQueryExecutionFailedError("save reset token", err)
	}
	return nil
}

// FindByResetToken returns the account holding an unexpired reset token,
// or nil when the token is unknown or expired.
func (s *UserStore) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE reset_token = $1 AND reset_token_expiry > now()`, token)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("find user by reset token", err)
	}
	return u, nil
}

// UpdatePassword replaces the password hash and clears any reset token.
func (s *UserStore) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_expiry = NULL, updated_at = now()
		WHERE id = $1`,
		userID, passwordHash)
	if err != nil {
		return apperrors.NewQueryExecutionFailedError("update password", err)
	}
	return nil
}
