package models

import "time"

// Budget is a user's wedding budget. Saving replaces the item list.
type Budget struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Name        string       `json:"name"`
	TotalBudget float64      `json:"totalBudget"`
	Currency    string       `json:"currency"`
	Items       []BudgetItem `json:"items"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type BudgetItem struct {
	ID            string   `json:"id"`
	BudgetID      string   `json:"budgetId"`
	Category      string   `json:"category"`
	Item          string   `json:"item"`
	EstimatedCost float64  `json:"estimatedCost"`
	ActualCost    *float64 `json:"actualCost"`
	IsPaid        bool     `json:"isPaid"`
	Priority      string   `json:"priority"`
	Notes         string   `json:"notes,omitempty"`
}
