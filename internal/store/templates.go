package store

import (
	"context"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// TemplateStore serves the built-in checklist and timeline templates.
// Templates are fixed reference data, so they live in memory rather than a
// table.
type TemplateStore struct {
	templates []models.Template
}

func NewTemplateStore() *TemplateStore {
	return &TemplateStore{templates: builtinTemplates}
}

// List returns every template, optionally filtered by kind.
func (s *TemplateStore) List(_ context.Context, kind string) ([]models.Template, error) {
	if kind == "" {
		return s.templates, nil
	}
	var out []models.Template
	for _, t := range s.templates {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out, nil
}

var builtinTemplates = []models.Template{
	{
		ID:          "checklist-essentials",
		Kind:        "checklist",
		Name:        "Wedding Essentials",
		Description: "The core tasks every wedding needs covered.",
		Items: []models.TemplateItem{
			{Title: "Set your budget", Category: "Planning", Importance: "high", MonthsBefore: 12},
			{Title: "Draft your guest list", Category: "Planning", Importance: "high", MonthsBefore: 12},
			{Title: "Book your venue", Category: "Venue", Importance: "high", MonthsBefore: 12},
			{Title: "Book your photographer", Category: "Photography", Importance: "high", MonthsBefore: 10},
			{Title: "Choose your caterer", Category: "Catering", Importance: "high", MonthsBefore: 9},
			{Title: "Send save-the-dates", Category: "Stationery", Importance: "medium", MonthsBefore: 8},
			{Title: "Order wedding attire", Category: "Attire", Importance: "high", MonthsBefore: 8},
			{Title: "Book florist", Category: "Flowers", Importance: "medium", MonthsBefore: 6},
			{Title: "Book entertainment", Category: "Music", Importance: "medium", MonthsBefore: 6},
			{Title: "Send invitations", Category: "Stationery", Importance: "high", MonthsBefore: 3},
			{Title: "Confirm final numbers with vendors", Category: "Planning", Importance: "high", MonthsBefore: 1},
		},
	},
	{
		ID:          "checklist-cultural",
		Kind:        "checklist",
		Name:        "Cultural Celebrations",
		Description: "Additional tasks for multi-event and tradition-rich weddings.",
		Items: []models.TemplateItem{
			{Title: "Book venues for pre-wedding events", Category: "Venue", Importance: "high", MonthsBefore: 10},
			{Title: "Find vendors experienced with your traditions", Category: "Planning", Importance: "high", MonthsBefore: 10},
			{Title: "Arrange traditional attire", Category: "Attire", Importance: "high", MonthsBefore: 7},
			{Title: "Plan ceremony rituals with your officiant", Category: "Ceremony", Importance: "high", MonthsBefore: 6},
			{Title: "Organize traditional music or performers", Category: "Music", Importance: "medium", MonthsBefore: 5},
			{Title: "Plan menus for each event", Category: "Catering", Importance: "medium", MonthsBefore: 4},
		},
	},
	{
		ID:          "timeline-twelve-month",
		Kind:        "timeline",
		Name:        "Twelve Month Countdown",
		Description: "A month-by-month plan starting a year out.",
		Items: []models.TemplateItem{
			{Title: "Tour and book venue", Category: "Venue", Importance: "high", MonthsBefore: 12},
			{Title: "Book photographer and videographer", Category: "Photography", Importance: "high", MonthsBefore: 10},
			{Title: "Taste and book catering", Category: "Catering", Importance: "high", MonthsBefore: 9},
			{Title: "Book band or DJ", Category: "Music", Importance: "medium", MonthsBefore: 8},
			{Title: "Order invitations", Category: "Stationery", Importance: "medium", MonthsBefore: 5},
			{Title: "Final dress fitting", Category: "Attire", Importance: "high", MonthsBefore: 1},
			{Title: "Confirm day-of schedule with all vendors", Category: "Planning", Importance: "high", MonthsBefore: 1},
		},
	},
}
