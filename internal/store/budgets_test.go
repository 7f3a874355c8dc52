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

func budgetHeaderRows(id string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "name", "total_budget", "currency", "created_at", "updated_at",
	}).AddRow(id, "u1", "My Wedding Budget", 20000.0, "GBP", now, now)
}

func budgetItemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "budget_id", "category", "item", "estimated_cost", "actual_cost", "is_paid", "priority", "notes",
	})
}

func TestBudgetStoreSaveReplacesItems(t *testing.T) {
	client, mock := newMockStore(t)
	s := NewBudgetStore(client)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO budgets").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b1"))
	mock.ExpectExec("DELETE FROM budget_items").
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO budget_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO budget_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Reload after commit.
	mock.ExpectQuery("(?s)SELECT (.+) FROM budgets").
		WithArgs("u1").
		WillReturnRows(budgetHeaderRows("b1"))
	mock.ExpectQuery("(?s)SELECT (.+) FROM budget_items").
		WithArgs("b1").
		WillReturnRows(budgetItemRows().
			AddRow("i1", "b1", "Venue", "Deposit", 5000.0, nil, false, "high", "").
			AddRow("i2", "b1", "Catering", "Per head", 8000.0, nil, false, "medium", ""))

	saved, err := s.Save(context.Background(), &models.Budget{
		UserID:      "u1",
		Name:        "My Wedding Budget",
		TotalBudget: 20000,
		Currency:    "GBP",
		Items: []models.BudgetItem{
			{Category: "Venue", Item: "Deposit", EstimatedCost: 5000, Priority: "high"},
			{Category: "Catering", Item: "Per head", EstimatedCost: 8000},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved.Items, 2)
	assert.Equal(t, "b1", saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetStoreSaveRollsBackOnItemFailure(t *testing.T) {
	client, mock := newMockStore(t)
	s := NewBudgetStore(client)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO budgets").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b1"))
	mock.ExpectExec("DELETE FROM budget_items").
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO budget_items").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := s.Save(context.Background(), &models.Budget{
		UserID: "u1",
		Items:  []models.BudgetItem{{Category: "Venue", Item: "Deposit", EstimatedCost: 5000}},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetStoreGetMissing(t *testing.T) {
	client, mock := newMockStore(t)
	s := NewBudgetStore(client)

	mock.ExpectQuery("(?s)SELECT (.+) FROM budgets").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "total_budget", "currency", "created_at", "updated_at",
		}))

	b, err := s.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, b)
}
