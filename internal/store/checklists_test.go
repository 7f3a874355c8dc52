package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

func TestChecklistStoreReplaceAllDeletesThenInserts(t *testing.T) {
	client, mock := newMockStore(t)
	s := NewChecklistStore(client)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM checklists").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO checklists").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO checklist_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("(?s)SELECT (.+) FROM checklists").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "category", "created_at"}).
			AddRow("c1", "u1", "Wedding Essentials", "Planning", now))
	mock.ExpectQuery("(?s)SELECT (.+) FROM checklist_items").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "checklist_id", "title", "description", "is_completed", "category", "importance", "created_at",
		}).AddRow("i1", "c1", "Book venue", "", false, "Venue", "high", now))

	out, err := s.ReplaceAll(context.Background(), "u1", []models.Checklist{
		{
			Name: "Wedding Essentials", Category: "Planning",
			Items: []models.ChecklistItem{{Title: "Book venue", Category: "Venue", Importance: "high"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, "Book venue", out[0].Items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistStoreListEmpty(t *testing.T) {
	client, mock := newMockStore(t)
	s := NewChecklistStore(client)

	mock.ExpectQuery("(?s)SELECT (.+) FROM checklists").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "category", "created_at"}))

	out, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTemplateStoreList(t *testing.T) {
	s := NewTemplateStore()

	all, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	checklists, err := s.List(context.Background(), "checklist")
	require.NoError(t, err)
	require.NotEmpty(t, checklists)
	for _, tpl := range checklists {
		assert.Equal(t, "checklist", tpl.Kind)
		assert.NotEmpty(t, tpl.Items)
	}

	none, err := s.List(context.Background(), "seating-chart")
	require.NoError(t, err)
	assert.Empty(t, none)
}
