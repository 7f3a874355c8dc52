package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// BudgetStore persists the single budget per user with its items.
// Saves replace the item set wholesale.
type BudgetStore struct {
	db *database.PostgresClient
}

func NewBudgetStore(db *database.PostgresClient) *BudgetStore {
	return &BudgetStore{db: db}
}

// Get returns the budget with items, nil when the user has none.
func (s *BudgetStore) Get(ctx context.Context, userID string) (*models.Budget, error) {
	var b models.Budget
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, total_budget, currency, created_at, updated_at
		FROM budgets WHERE user_id = $1`, userID).Scan(
		&b.ID, &b.UserID, &b.Name, &b.TotalBudget, &b.Currency, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("get budget", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, budget_id, category, item, estimated_cost, actual_cost, is_paid, priority, notes
		FROM budget_items WHERE budget_id = $1 ORDER BY category, item`, b.ID)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("get budget items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.BudgetItem
		var actual sql.NullFloat64
		if err := rows.Scan(
			&item.ID, &item.BudgetID, &item.Category, &item.Item,
			&item.EstimatedCost, &actual, &item.IsPaid, &item.Priority, &item.Notes,
		); err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan budget item", err)
		}
		if actual.Valid {
			a := actual.Float64
			item.ActualCost = &a
		}
		b.Items = append(b.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("iterate budget items", err)
	}
	return &b, nil
}

// Save upserts the budget header and replaces every item in one
// transaction. Defaults: priority "medium".
func (s *BudgetStore) Save(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	tx, err := s.db.GetDB().BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("begin budget save", err)
	}
	defer tx.Rollback()

	var budgetID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO budgets (id, user_id, name, total_budget, currency)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			total_budget = EXCLUDED.total_budget,
			currency = EXCLUDED.currency,
			updated_at = now()
		RETURNING id`,
		uuid.NewString(), budget.UserID, budget.Name, budget.TotalBudget, budget.Currency).Scan(&budgetID)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("upsert budget", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM budget_items WHERE budget_id = $1`, budgetID); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("clear budget items", err)
	}

	for _, item := range budget.Items {
		priority := item.Priority
		if priority == "" {
			priority = models.PriorityMedium
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO budget_items (id, budget_id, category, item, estimated_cost, actual_cost, is_paid, priority, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), budgetID, item.Category, item.Item,
			item.EstimatedCost, item.ActualCost, item.IsPaid, priority, item.Notes)
		if err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("insert budget item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("commit budget save", err)
	}
	return s.Get(ctx, budget.UserID)
}
