package vendorsearch

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Params are the normalized inputs to a vendor search.
type Params struct {
	Category    string
	Location    string
	BudgetRange string
	GuestCount  int
	Date        string
	Radius      int
	Preferences []string
}

const defaultRadius = 50

// Normalize fills defaults and canonicalizes free-form fields.
func (p Params) Normalize() Params {
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	p.Location = strings.TrimSpace(p.Location)
	p.BudgetRange = strings.TrimSpace(p.BudgetRange)
	if p.Radius <= 0 {
		p.Radius = defaultRadius
	}
	return p
}

// budgetKey collapses "no budget constraint" values to a stable cache token.
func (p Params) budgetKey() string {
	if p.BudgetRange == "" || strings.EqualFold(p.BudgetRange, "any-budget") {
		return "any"
	}
	return p.BudgetRange
}

// HasBudget reports whether the request constrains the price range.
func (p Params) HasBudget() bool {
	return p.budgetKey() != "any"
}

var moneyPattern = regexp.MustCompile(`[0-9][0-9,.]*`)

// ParseMoneyInterval extracts a numeric [min, max] interval from a price or
// budget string such as "£1,000 - £2,500", "Under £1,000", "Over £10,000",
// "£10,000+", or "£85 - £180 per person". Open-ended upper bounds come back
// as +Inf. ok is false when the string carries no number.
func ParseMoneyInterval(s string) (min, max float64, ok bool) {
	matches := moneyPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0, 0, false
	}

	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return 0, 0, false
	}

	lower := strings.ToLower(s)
	openEnded := strings.Contains(lower, "over") || strings.Contains(lower, "+")
	under := strings.Contains(lower, "under") || strings.Contains(lower, "up to")

	switch {
	case openEnded:
		return nums[0], math.Inf(1), true
	case under:
		return 0, nums[0], true
	case len(nums) == 1:
		return nums[0], nums[0], true
	default:
		lo, hi := nums[0], nums[1]
		if hi < lo {
			lo, hi = hi, lo
		}
		return lo, hi, true
	}
}

// intervalsOverlap reports whether [aMin,aMax] and [bMin,bMax] intersect.
// Either interval may have an infinite upper bound.
func intervalsOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMin <= bMax && bMin <= aMax
}

// ParseGuestCountLower parses the lower bound of a guest-count bucket
// string like "100-150" or "200+". Zero means unknown.
func ParseGuestCountLower(bucket string) int {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return 0
	}
	head := bucket
	if idx := strings.IndexAny(bucket, "-+"); idx >= 0 {
		head = bucket[:idx]
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0
	}
	return n
}
