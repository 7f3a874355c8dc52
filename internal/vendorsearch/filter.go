package vendorsearch

import (
	"strings"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// nearbyRegions maps a lowercase city token to areas considered local to
// it. Used when neither location string contains the other.
var nearbyRegions = map[string][]string{
	"london": {
		"central london", "west london", "east london", "south london",
		"north london", "mayfair", "strand", "park lane", "surrey",
	},
	"manchester": {
		"greater manchester", "manchester city centre", "salford", "stockport",
	},
	"birmingham": {
		"birmingham city centre", "west midlands", "solihull",
	},
}

// Filter narrows candidates by location proximity, budget-interval overlap,
// and (for venues) guest-count suitability. Order is preserved. An empty
// result is a valid outcome, not an error.
func Filter(candidates []models.Vendor, params Params) []models.Vendor {
	reqMin, reqMax, hasBudget := 0.0, 0.0, false
	if params.HasBudget() {
		reqMin, reqMax, hasBudget = ParseMoneyInterval(params.BudgetRange)
	}

	out := make([]models.Vendor, 0, len(candidates))
	for _, v := range candidates {
		if !locationMatches(v.Location, params.Location) {
			continue
		}
		if hasBudget && !budgetMatches(v.PriceRange, reqMin, reqMax) {
			continue
		}
		if v.Category == models.CategoryVenue && !venueSuitsGuests(v, params.GuestCount) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func locationMatches(candidateLoc, requestedLoc string) bool {
	if requestedLoc == "" {
		return true
	}
	cand := strings.ToLower(strings.TrimSpace(candidateLoc))
	req := strings.ToLower(strings.TrimSpace(requestedLoc))
	if cand == "" {
		return false
	}

	if strings.Contains(cand, req) || strings.Contains(req, cand) {
		return true
	}

	for city, regions := range nearbyRegions {
		if !strings.Contains(req, city) && req != city {
			continue
		}
		for _, region := range regions {
			if strings.Contains(cand, region) {
				return true
			}
		}
	}
	return false
}

// budgetMatches keeps a candidate when its own price interval intersects
// the requested budget interval. Unparsable candidate prices pass through
// rather than being silently excluded.
func budgetMatches(priceRange string, reqMin, reqMax float64) bool {
	candMin, candMax, ok := ParseMoneyInterval(priceRange)
	if !ok {
		return true
	}
	return intervalsOverlap(candMin, candMax, reqMin, reqMax)
}

// Capacity-indicating feature keywords for venues.
var (
	largeVenueMarkers = []string{"ballroom", "banquet", "grand", "estate", "great hall", "marquee"}
	smallVenueMarkers = []string{"intimate", "private dining", "boutique", "micro"}
)

// venueSuitsGuests applies a coarse guest-count heuristic: very large
// parties need large-capacity markers or a top price tier, mid-size parties
// exclude venues flagged as intimate-only, and small or unknown parties
// accept anything.
func venueSuitsGuests(v models.Vendor, guestCount int) bool {
	if guestCount < 50 {
		return true
	}

	if guestCount > 200 {
		return hasAnyMarker(v, largeVenueMarkers) || v.PriceIndicator == "$$$$"
	}

	// 50-200 guests: anything not explicitly intimate-only works.
	if hasAnyMarker(v, smallVenueMarkers) && !hasAnyMarker(v, largeVenueMarkers) && v.PriceIndicator == "$" {
		return false
	}
	return true
}

func hasAnyMarker(v models.Vendor, markers []string) bool {
	for _, f := range v.Features {
		lf := strings.ToLower(f)
		for _, m := range markers {
			if strings.Contains(lf, m) {
				return true
			}
		}
	}
	for _, s := range v.Specialties {
		ls := strings.ToLower(s)
		for _, m := range markers {
			if strings.Contains(ls, m) {
				return true
			}
		}
	}
	return false
}
