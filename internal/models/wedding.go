package models

import "time"

// WeddingDetails holds the questionnaire answers for a user. One row per
// user, replaced wholesale on each questionnaire submission.
type WeddingDetails struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"userId"`
	PartnerOneName      string     `json:"partnerOneName"`
	PartnerTwoName      string     `json:"partnerTwoName"`
	WeddingLocation     string     `json:"weddingLocation"`
	WeddingDate         *time.Time `json:"weddingDate"`
	GuestCount          string     `json:"guestCount"`
	Budget              *float64   `json:"budget"`
	Currency            string     `json:"currency"`
	CulturalTraditions  []string   `json:"culturalTraditions"`
	ReligiousTraditions []string   `json:"religiousTraditions"`
	PlannedEvents       []string   `json:"plannedEvents"`
	WeddingStyle        string     `json:"weddingStyle"`
	VenueType           string     `json:"venueType"`
	SpecialRequirements string     `json:"specialRequirements"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// BudgetAmount returns the budget or zero when unset.
func (w *WeddingDetails) BudgetAmount() float64 {
	if w.Budget == nil {
		return 0
	}
	return *w.Budget
}
