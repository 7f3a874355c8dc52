package models

import "time"

// Checklist groups checklist items by category. Saving replaces all of a
// user's checklists at once.
type Checklist struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Items     []ChecklistItem `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
}

type ChecklistItem struct {
	ID          string    `json:"id"`
	ChecklistID string    `json:"checklistId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	Category    string    `json:"category"`
	Importance  string    `json:"importance"`
	CreatedAt   time.Time `json:"createdAt"`
}
