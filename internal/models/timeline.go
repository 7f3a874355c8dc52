package models

import "time"

// Timeline is a user's wedding planning schedule. Saving replaces the tasks.
type Timeline struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Name        string         `json:"name"`
	WeddingDate time.Time      `json:"weddingDate"`
	Tasks       []TimelineTask `json:"tasks"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type TimelineTask struct {
	ID          string    `json:"id"`
	TimelineID  string    `json:"timelineId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
}
