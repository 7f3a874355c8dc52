package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
)

// SearchLog is one recorded vendor search.
type SearchLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	BudgetRange  string    `json:"budgetRange,omitempty"`
	ResultsCount int       `json:"resultsCount"`
	CacheUsed    bool      `json:"cacheUsed"`
	SearchedAt   time.Time `json:"searchedAt"`
}

// SearchLogStore records vendor searches for the history endpoint. Logging
// failures never fail the search itself; callers log and continue.
type SearchLogStore struct {
	db *database.PostgresClient
}

func NewSearchLogStore(db *database.PostgresClient) *SearchLogStore {
	return &SearchLogStore{db: db}
}

func (s *SearchLogStore) Record(ctx context.Context, log SearchLog) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO search_logs (id, user_id, category, location, budget_range, results_count, cache_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.NewString(), log.UserID, log.Category, log.Location,
		log.BudgetRange, log.ResultsCount, log.CacheUsed)
	if err != nil {
		return apperrors.NewQueryExecutionFailedError("record search", err)
	}
	return nil
}

// Recent returns the user's latest searches, newest first.
func (s *SearchLogStore) Recent(ctx context.Context, userID string, limit int) ([]SearchLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, category, location, budget_range, results_count, cache_used, searched_at
		FROM search_logs WHERE user_id = $1
		ORDER BY searched_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list search history", err)
	}
	defer rows.Close()

	var logs []SearchLog
	for rows.Next() {
		var l SearchLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Category, &l.Location,
			&l.BudgetRange, &l.ResultsCount, &l.CacheUsed, &l.SearchedAt,
		); err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan search log", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("iterate search logs", err)
	}
	return logs, nil
}
