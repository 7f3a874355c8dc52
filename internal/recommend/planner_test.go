package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

func prefs(budget float64, guestCount string) models.WeddingPreferences {
	return models.WeddingPreferences{
		Budget:          budget,
		Currency:        "GBP",
		GuestCount:      guestCount,
		WeddingLocation: "London",
	}
}

func TestParseGuestCount(t *testing.T) {
	tests := []struct {
		bucket   string
		expected int
	}{
		{"1-50", 25},
		{"50-100", 75},
		{"100-150", 125},
		{"150-200", 175},
		{"200+", 250},
		{"", 100},
		{"unknown", 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseGuestCount(tt.bucket))
	}
}

func byID(recs []models.PlannerRecommendation) map[string]models.PlannerRecommendation {
	out := make(map[string]models.PlannerRecommendation, len(recs))
	for _, r := range recs {
		out[r.ID] = r
	}
	return out
}

func TestPlannerCoversEveryCategory(t *testing.T) {
	recs := NewPlanner().Generate(prefs(30000, "50-100"))

	require.Len(t, recs, 6)
	seen := make(map[string]bool)
	for _, r := range recs {
		seen[r.Type] = true
	}
	for _, cat := range models.VendorCategories {
		assert.True(t, seen[cat], "missing category %s", cat)
	}
}

func TestPlannerBudgetTiers(t *testing.T) {
	tests := []struct {
		name    string
		budget  float64
		venueID string
		photoID string
		musicID string
	}{
		{"luxury", 60000, "venue-luxury", "photography-premium", "music-live-band"},
		{"mid", 30000, "venue-mid-range", "photography-standard", "music-dj"},
		{"budget", 15000, "venue-budget", "photography-budget", "music-dj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := byID(NewPlanner().Generate(prefs(tt.budget, "50-100")))
			assert.Contains(t, recs, tt.venueID)
			assert.Contains(t, recs, tt.photoID)
			assert.Contains(t, recs, tt.musicID)
		})
	}
}

func TestPlannerCateringUsesCostPerGuest(t *testing.T) {
	// 30000 across 75 guests is 400 per head, premium tier.
	premium := byID(NewPlanner().Generate(prefs(30000, "50-100")))
	assert.Contains(t, premium, "catering-premium")

	// Same budget across 250 guests is 120 per head, standard tier.
	standard := byID(NewPlanner().Generate(prefs(30000, "200+")))
	assert.Contains(t, standard, "catering-standard")

	// 15000 across 175 guests is under 100 per head, budget tier.
	budget := byID(NewPlanner().Generate(prefs(15000, "150-200")))
	assert.Contains(t, budget, "catering-budget")
}

func TestPlannerCostBands(t *testing.T) {
	recs := byID(NewPlanner().Generate(prefs(60000, "100-150")))

	venue := recs["venue-luxury"]
	assert.Equal(t, models.CostEstimate{Min: 24000, Max: 36000, Currency: "GBP"}, venue.EstimatedCost)
}

func TestPlannerSortsHighPriorityFirst(t *testing.T) {
	recs := NewPlanner().Generate(prefs(60000, "50-100"))

	rank := map[string]int{
		models.PriorityHigh:   3,
		models.PriorityMedium: 2,
		models.PriorityLow:    1,
	}
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, rank[recs[i-1].Priority], rank[recs[i].Priority])
	}
	assert.Equal(t, models.PriorityHigh, recs[0].Priority)
}
