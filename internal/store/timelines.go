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

// TimelineStore persists the single timeline per user. Saves replace the
// task set wholesale; reads return tasks ordered by due date.
type TimelineStore struct {
	db *database.PostgresClient
}

func NewTimelineStore(db *database.PostgresClient) *TimelineStore {
	return &TimelineStore{db: db}
}

// Get returns the timeline with its tasks, nil when the user has none.
func (s *TimelineStore) Get(ctx context.Context, userID string) (*models.Timeline, error) {
	var t models.Timeline
	var weddingDate sql.NullTime
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, wedding_date, created_at, updated_at
		FROM timelines WHERE user_id = $1`, userID).Scan(
		&t.ID, &t.UserID, &t.Name, &weddingDate, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("get timeline", err)
	}
	if weddingDate.Valid {
		t.WeddingDate = weddingDate.Time
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, timeline_id, title, description, due_date, is_completed, category, priority
		FROM timeline_tasks WHERE timeline_id = $1 ORDER BY due_date ASC`, t.ID)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("get timeline tasks", err)
	}
	defer rows.Close()

	for rows.Next() {
		var task models.TimelineTask
		var due sql.NullTime
		if err := rows.Scan(
			&task.ID, &task.TimelineID, &task.Title, &task.Description,
			&due, &task.IsCompleted, &task.Category, &task.Priority,
		); err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan timeline task", err)
		}
		if due.Valid {
			task.DueDate = due.Time
		}
		t.Tasks = append(t.Tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("iterate timeline tasks", err)
	}
	return &t, nil
}

// Save upserts the timeline header and replaces the task set in one
// transaction. Defaults: name "My Wedding Timeline", task category
// "Custom", priority "medium".
func (s *TimelineStore) Save(ctx context.Context, timeline *models.Timeline) (*models.Timeline, error) {
	name := timeline.Name
	if name == "" {
		name = "My Wedding Timeline"
	}

	tx, err := s.db.GetDB().BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("begin timeline save", err)
	}
	defer tx.Rollback()

	var timelineID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO timelines (id, user_id, name, wedding_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			wedding_date = EXCLUDED.wedding_date,
			updated_at = now()
		RETURNING id`,
		uuid.NewString(), timeline.UserID, name, timeline.WeddingDate).Scan(&timelineID)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("upsert timeline", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM timeline_tasks WHERE timeline_id = $1`, timelineID); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("clear timeline tasks", err)
	}

	for _, task := range timeline.Tasks {
		category := task.Category
		if category == "" {
			category = "Custom"
		}
		priority := task.Priority
		if priority == "" {
			priority = models.PriorityMedium
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO timeline_tasks (id, timeline_id, title, description, due_date, is_completed, category, priority)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.NewString(), timelineID, task.Title, task.Description,
			task.DueDate, task.IsCompleted, category, priority)
		if err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("insert timeline task", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("commit timeline save", err)
	}
	return s.Get(ctx, timeline.UserID)
}
