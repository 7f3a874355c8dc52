package vendorsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

func vendor(name, category, location, priceRange string) models.Vendor {
	return models.Vendor{
		ID: name, Name: name, Category: category,
		Location: location, PriceRange: priceRange,
		Rating: 4.5, ReviewCount: 100,
	}
}

func TestFilterExcludesDisjointBudget(t *testing.T) {
	candidates := []models.Vendor{
		vendor("cheap", models.CategoryPhotographer, "London", "£500-£1,000"),
		vendor("match", models.CategoryPhotographer, "London", "£1,000-£2,500"),
		vendor("expensive", models.CategoryPhotographer, "London", "£10,000+"),
	}
	params := Params{Category: models.CategoryPhotographer, Location: "London", BudgetRange: "£1,000-£2,500"}.Normalize()

	out := Filter(candidates, params)

	names := make([]string, 0, len(out))
	for _, v := range out {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"cheap", "match"}, names, "touching boundary overlaps, disjoint range does not")
}

func TestFilterUnparsablePricePassesThrough(t *testing.T) {
	candidates := []models.Vendor{
		vendor("quote-only", models.CategoryCatering, "London", "Contact for pricing"),
	}
	params := Params{Category: models.CategoryCatering, Location: "London", BudgetRange: "£1,000-£2,500"}.Normalize()

	out := Filter(candidates, params)
	assert.Len(t, out, 1)
}

func TestFilterNoBudgetKeepsAll(t *testing.T) {
	candidates := []models.Vendor{
		vendor("a", models.CategoryFlorist, "London", "£500-£1,000"),
		vendor("b", models.CategoryFlorist, "London", "£10,000+"),
	}
	params := Params{Category: models.CategoryFlorist, Location: "London", BudgetRange: "any-budget"}.Normalize()

	assert.Len(t, Filter(candidates, params), 2)
}

func TestFilterLocation(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		requested string
		kept      bool
	}{
		{"exact", "London", "London", true},
		{"substring", "Central London", "London", true},
		{"nearby region", "Mayfair, London", "london", true},
		{"nearby without city token", "Salford", "Manchester", true},
		{"unrelated", "Edinburgh", "London", false},
		{"empty request matches all", "Anywhere", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kept, locationMatches(tt.candidate, tt.requested))
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	candidates := []models.Vendor{
		vendor("z-last-name", models.CategoryMusic, "London", "£1,000-£2,500"),
		vendor("a-first-name", models.CategoryMusic, "London", "£1,000-£2,500"),
	}
	params := Params{Category: models.CategoryMusic, Location: "London"}.Normalize()

	out := Filter(candidates, params)
	assert.Equal(t, "z-last-name", out[0].Name)
	assert.Equal(t, "a-first-name", out[1].Name)
}

func TestVenueSuitsGuests(t *testing.T) {
	ballroom := vendor("Grand Ballroom", models.CategoryVenue, "London", "£10,000+")
	ballroom.Features = []string{"Ballroom", "Dance floor"}

	intimate := vendor("Tiny Rooms", models.CategoryVenue, "London", "£500-£1,000")
	intimate.Features = []string{"Intimate ceremony space"}
	intimate.PriceIndicator = "$"

	plain := vendor("Garden View Hall", models.CategoryVenue, "London", "£2,500-£5,000")
	plain.PriceIndicator = "$$"

	tests := []struct {
		name   string
		v      models.Vendor
		guests int
		kept   bool
	}{
		{"unknown guest count passes", intimate, 0, true},
		{"small party passes anywhere", intimate, 30, true},
		{"large party needs capacity markers", plain, 250, false},
		{"large party accepts ballroom", ballroom, 250, true},
		{"mid party rejects intimate-only", intimate, 120, false},
		{"mid party accepts plain venue", plain, 120, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kept, venueSuitsGuests(tt.v, tt.guests))
		})
	}
}
