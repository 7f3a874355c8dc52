package models

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a planning suggestion produced per request, never
// persisted. EstimatedCost is a display string like "£8,000 - £10,000".
type Recommendation struct {
	Priority        string   `json:"priority"`
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Reasoning       string   `json:"reasoning"`
	ActionableSteps []string `json:"actionable_steps"`
	EstimatedCost   string   `json:"estimated_cost,omitempty"`
	Timeframe       string   `json:"timeframe,omitempty"`
}

// CostEstimate is a numeric cost band used by the category planner.
type CostEstimate struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// PlannerRecommendation is a per-category suggestion with a numeric cost
// band, produced by the budget-tier planner.
type PlannerRecommendation struct {
	ID               string       `json:"id"`
	Type             string       `json:"type"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	EstimatedCost    CostEstimate `json:"estimatedCost"`
	Priority         string       `json:"priority"`
	Reasons          []string     `json:"reasons"`
	SuggestedVendors []string     `json:"suggestedVendors,omitempty"`
}

// Moodboard is a style suggestion derived from wedding style and traditions.
type Moodboard struct {
	Style    string   `json:"style"`
	Colors   []string `json:"colors"`
	Themes   []string `json:"themes"`
	Elements []string `json:"elements"`
}

// WeddingPreferences is the normalized questionnaire subset the planner
// and moodboard generators consume.
type WeddingPreferences struct {
	Budget              float64  `json:"budget"`
	Currency            string   `json:"currency"`
	GuestCount          string   `json:"guestCount"`
	WeddingLocation     string   `json:"weddingLocation"`
	WeddingStyle        string   `json:"weddingStyle"`
	CulturalTraditions  []string `json:"culturalTraditions"`
	ReligiousTraditions []string `json:"religiousTraditions"`
	PlannedEvents       []string `json:"plannedEvents"`
}
