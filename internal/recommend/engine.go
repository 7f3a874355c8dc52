// Package recommend produces personalized planning suggestions from the
// questionnaire answers: an AI path with a deterministic rule fallback, a
// budget-tier category planner, and a moodboard generator.
package recommend

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

const maxRecommendations = 5

// RuleEngine derives recommendations from fixed planning rules. It is the
// fallback when the AI path is unavailable and must stay deterministic.
type RuleEngine struct {
	now func() time.Time
}

func NewRuleEngine() *RuleEngine {
	return &RuleEngine{now: time.Now}
}

// NewRuleEngineAt pins the clock, for deterministic tests.
func NewRuleEngineAt(now func() time.Time) *RuleEngine {
	return &RuleEngine{now: now}
}

// MonthsUntil counts 30-day months from now until the wedding, rounded up
// and floored at zero. An unset date defaults to 12.
func (e *RuleEngine) MonthsUntil(weddingDate *time.Time) int {
	if weddingDate == nil {
		return 12
	}
	days := weddingDate.Sub(e.now()).Hours() / 24
	months := int(math.Ceil(days / 30))
	if months < 0 {
		return 0
	}
	return months
}

// Generate builds the fallback recommendation set: venue and photography
// always, then budget, urgency and tradition rules, capped at five in
// generation order.
func (e *RuleEngine) Generate(details *models.WeddingDetails) []models.Recommendation {
	budget := details.BudgetAmount()
	months := e.MonthsUntil(details.WeddingDate)

	recs := []models.Recommendation{
		e.venueRecommendation(details, budget, months),
		e.photographyRecommendation(budget, months),
	}

	if budget > 0 && budget < 10000 {
		recs = append(recs, models.Recommendation{
			Priority: models.PriorityMedium,
			Category: "planning",
			Title:    "Maximize Your Budget with Smart Choices",
			Description: fmt.Sprintf(
				"With your budget of £%s, focus on the elements that matter most to you and find creative ways to save on others.",
				FormatAmount(budget)),
			Reasoning: "Strategic planning can help you achieve your dream wedding within your budget constraints.",
			ActionableSteps: []string{
				"Prioritize your top 3 most important wedding elements",
				"Consider weekday or off-season dates for better pricing",
				"Look into DIY options for decorations and favors",
				"Research local vendors who offer package deals",
			},
			EstimatedCost: "Stay within existing budget",
			Timeframe:     "Start planning immediately",
		})
	}

	if months < 6 {
		recs = append(recs, models.Recommendation{
			Priority: models.PriorityHigh,
			Category: "planning",
			Title:    "Accelerate Your Wedding Planning",
			Description: fmt.Sprintf(
				"With only %d months until your wedding, you need to move quickly on key decisions and bookings.", months),
			Reasoning: "Many vendors require 6+ months lead time, so you'll need to be flexible and act fast.",
			ActionableSteps: []string{
				"Book venue and photographer immediately",
				"Be flexible with vendor choices and dates",
				"Consider simplified menu options",
				"Focus on essential elements first",
			},
			Timeframe: "All actions are urgent",
		})
	}

	if len(details.CulturalTraditions) > 0 || len(details.ReligiousTraditions) > 0 {
		recs = append(recs, models.Recommendation{
			Priority:    models.PriorityMedium,
			Category:    "planning",
			Title:       "Honor Your Cultural and Religious Traditions",
			Description: "Incorporate your cultural and religious traditions meaningfully into your wedding celebration.",
			Reasoning:   "These elements add personal significance and ensure your wedding reflects your values and heritage.",
			ActionableSteps: []string{
				"Research vendors experienced with your traditions",
				"Plan ceremony elements that honor your beliefs",
				"Consider traditional music, food, or customs",
				"Communicate requirements clearly to all vendors",
			},
			Timeframe: "Include in all vendor discussions",
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func (e *RuleEngine) venueRecommendation(details *models.WeddingDetails, budget float64, months int) models.Recommendation {
	guests := details.GuestCount
	if guests == "" {
		guests = "your estimated"
	}

	cost := "£3,000 - £15,000"
	if budget > 0 {
		cost = FormatCostBand(budget, 0.4, 0.5)
	}

	timeframe := "Book immediately"
	if months > 12 {
		timeframe = "12-18 months before wedding"
	}

	return models.Recommendation{
		Priority: models.PriorityHigh,
		Category: "venue",
		Title:    "Secure Your Wedding Venue",
		Description: fmt.Sprintf(
			"Find and book your wedding venue in %s. With %s guests, you'll need a space that can comfortably accommodate everyone.",
			details.WeddingLocation, guests),
		Reasoning: "Venue is typically the largest expense and sets the tone for your entire wedding. Popular venues book up quickly, especially in desirable locations.",
		ActionableSteps: []string{
			"Research venues in your area that fit your budget and guest count",
			"Schedule site visits for your top 3-5 choices",
			"Ask about availability for your wedding date",
			"Compare pricing packages and what's included",
		},
		EstimatedCost: cost,
		Timeframe:     timeframe,
	}
}

func (e *RuleEngine) photographyRecommendation(budget float64, months int) models.Recommendation {
	cost := "£1,000 - £3,000"
	if budget > 0 {
		cost = FormatCostBand(budget, 0.1, 0.15)
	}

	timeframe := "Book as soon as possible"
	if months > 9 {
		timeframe = "9-12 months before wedding"
	}

	return models.Recommendation{
		Priority:    models.PriorityHigh,
		Category:    "photography",
		Title:       "Book Your Wedding Photographer",
		Description: "Secure a professional photographer to capture your special moments. Quality wedding photography is an investment in memories that will last forever.",
		Reasoning:   "The best photographers in your area book up quickly, and photography is one element you cannot recreate after the wedding.",
		ActionableSteps: []string{
			"Research photographers whose style matches your vision",
			"Review full wedding galleries, not just highlight reels",
			"Meet with photographers to ensure personality fit",
			"Compare packages and understand what's included",
		},
		EstimatedCost: cost,
		Timeframe:     timeframe,
	}
}

// FormatAmount renders a whole amount with thousands separators, e.g.
// 8000 -> "8,000".
func FormatAmount(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatCostBand renders a budget share as "£X - £Y", e.g. a 20000 budget
// at 0.4-0.5 gives "£8,000 - £10,000".
func FormatCostBand(budget, minShare, maxShare float64) string {
	return fmt.Sprintf("£%s - £%s", FormatAmount(budget*minShare), FormatAmount(budget*maxShare))
}
