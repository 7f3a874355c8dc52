package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// ChecklistStore persists checklists. A save replaces every checklist the
// user has; reads return checklists ordered by category.
type ChecklistStore struct {
	db *database.PostgresClient
}

func NewChecklistStore(db *database.PostgresClient) *ChecklistStore {
	return &ChecklistStore{db: db}
}

// List returns all checklists for a user with their items, ordered by
// category.
func (s *ChecklistStore) List(ctx context.Context, userID string) ([]models.Checklist, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, category, created_at
		FROM checklists WHERE user_id = $1 ORDER BY category ASC`, userID)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list checklists", err)
	}
	defer rows.Close()

	var checklists []models.Checklist
	for rows.Next() {
		var c models.Checklist
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Category, &c.CreatedAt); err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan checklist", err)
		}
		checklists = append(checklists, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("iterate checklists", err)
	}

	for i := range checklists {
		items, err := s.listItems(ctx, checklists[i].ID)
		if err != nil {
			return nil, err
		}
		checklists[i].Items = items
	}
	return checklists, nil
}

func (s *ChecklistStore) listItems(ctx context.Context, checklistID string) ([]models.ChecklistItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, checklist_id, title, description, is_completed, category, importance, created_at
		FROM checklist_items WHERE checklist_id = $1 ORDER BY created_at ASC`, checklistID)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list checklist items", err)
	}
	defer rows.Close()

	var items []models.ChecklistItem
	for rows.Next() {
		var item models.ChecklistItem
		if err := rows.Scan(
			&item.ID, &item.ChecklistID, &item.Title, &item.Description,
			&item.IsCompleted, &item.Category, &item.Importance, &item.CreatedAt,
		); err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan checklist item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("iterate checklist items", err)
	}
	return items, nil
}

// ReplaceAll deletes every checklist the user has and recreates the given
// set in one transaction. Defaults: item importance "medium".
func (s *ChecklistStore) ReplaceAll(ctx context.Context, userID string, checklists []models.Checklist) ([]models.Checklist, error) {
	tx, err := s.db.GetDB().BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("begin checklist save", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM checklists WHERE user_id = $1`, userID); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("clear checklists", err)
	}

	for _, c := range checklists {
		checklistID := uuid.NewString()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO checklists (id, user_id, name, category)
			VALUES ($1, $2, $3, $4)`,
			checklistID, userID, c.Name, c.Category)
		if err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("insert checklist", err)
		}

		for _, item := range c.Items {
			importance := item.Importance
			if importance == "" {
				importance = models.PriorityMedium
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO checklist_items (id, checklist_id, title, description, is_completed, category, importance)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.NewString(), checklistID, item.Title, item.Description,
				item.IsCompleted, item.Category, importance)
			if err != nil {
				return nil, apperrors.NewQueryExecutionFailedError("insert checklist item", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("commit checklist save", err)
	}
	return s.List(ctx, userID)
}
