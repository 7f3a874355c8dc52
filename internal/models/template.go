package models

// Template is a predefined checklist or timeline starter set users can
// copy into their own plan.
type Template struct {
	ID          string         `json:"id"`
	Kind        string         `json:"kind"` // "checklist" or "timeline"
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Items       []TemplateItem `json:"items"`
}

type TemplateItem struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	Importance   string `json:"importance,omitempty"`
	MonthsBefore int    `json:"monthsBefore,omitempty"`
}
