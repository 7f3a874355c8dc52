package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// Planner maps the questionnaire onto per-category suggestions with
// numeric cost bands, driven by budget tiers.
type Planner struct{}

func NewPlanner() *Planner { return &Planner{} }

// ParseGuestCount maps a guest-count bucket to its planning midpoint.
func ParseGuestCount(bucket string) int {
	switch {
	case strings.Contains(bucket, "1-50"):
		return 25
	case strings.Contains(bucket, "50-100"):
		return 75
	case strings.Contains(bucket, "100-150"):
		return 125
	case strings.Contains(bucket, "150-200"):
		return 175
	case strings.Contains(bucket, "200+"):
		return 250
	default:
		return 100
	}
}

func costBand(budget, minShare, maxShare float64, currency string) models.CostEstimate {
	return models.CostEstimate{
		Min:      int(math.Round(budget * minShare)),
		Max:      int(math.Round(budget * maxShare)),
		Currency: currency,
	}
}

// Generate builds one suggestion per category and orders them by priority,
// high first. Ordering within a priority follows category generation order.
func (p *Planner) Generate(prefs models.WeddingPreferences) []models.PlannerRecommendation {
	budget := prefs.Budget
	guests := ParseGuestCount(prefs.GuestCount)

	recs := []models.PlannerRecommendation{
		p.venue(budget, prefs.Currency),
		p.photography(budget, prefs.Currency),
		p.catering(budget, guests, prefs.Currency),
		p.florist(budget, prefs.Currency),
		p.music(budget, prefs.Currency),
		p.decoration(budget, prefs.Currency),
	}

	rank := map[string]int{
		models.PriorityHigh:   3,
		models.PriorityMedium: 2,
		models.PriorityLow:    1,
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return rank[recs[i].Priority] > rank[recs[j].Priority]
	})
	return recs
}

func (p *Planner) venue(budget float64, currency string) models.PlannerRecommendation {
	switch {
	case budget > 50000:
		return models.PlannerRecommendation{
			ID: "venue-luxury", Type: models.CategoryVenue,
			Title:            "Luxury Hotel or Historic Venue",
			Description:      "Premium venues with full-service coordination and elegant settings",
			EstimatedCost:    costBand(budget, 0.4, 0.6, currency),
			Priority:         models.PriorityHigh,
			Reasons:          []string{"High budget allows for premium venues", "Full-service coordination included"},
			SuggestedVendors: []string{"Five-star hotels", "Historic castles", "Luxury estates"},
		}
	case budget > 25000:
		return models.PlannerRecommendation{
			ID: "venue-mid-range", Type: models.CategoryVenue,
			Title:            "Boutique Hotels or Event Halls",
			Description:      "Beautiful mid-range venues with good amenities and flexibility",
			EstimatedCost:    costBand(budget, 0.35, 0.5, currency),
			Priority:         models.PriorityHigh,
			Reasons:          []string{"Good balance of quality and cost", "Flexible packages available"},
			SuggestedVendors: []string{"Boutique hotels", "Event centers", "Garden venues"},
		}
	default:
		return models.PlannerRecommendation{
			ID: "venue-budget", Type: models.CategoryVenue,
			Title:            "Community Halls or Outdoor Venues",
			Description:      "Budget-friendly venues that can be beautifully decorated",
			EstimatedCost:    costBand(budget, 0.2, 0.35, currency),
			Priority:         models.PriorityHigh,
			Reasons:          []string{"Cost-effective option", "More budget for decorations and other elements"},
			SuggestedVendors: []string{"Community centers", "Public gardens", "Beach locations"},
		}
	}
}

func (p *Planner) photography(budget float64, currency string) models.PlannerRecommendation {
	switch {
	case budget > 40000:
		return models.PlannerRecommendation{
			ID: "photography-premium", Type: models.CategoryPhotographer,
			Title:            "Premium Wedding Photography Package",
			Description:      "Award-winning photographers with full-day coverage and engagement shoot",
			EstimatedCost:    costBand(budget, 0.08, 0.15, currency),
			Priority:         models.PriorityHigh,
			Reasons:          []string{"Budget allows for top-tier photographers", "Memories are priceless"},
			SuggestedVendors: []string{"Award-winning photographers", "Studio packages", "Destination specialists"},
		}
	case budget > 20000:
		return models.PlannerRecommendation{
			ID: "photography-standard", Type: models.CategoryPhotographer,
			Title:            "Professional Wedding Photography",
			Description:      "Experienced photographers with 6-8 hour coverage",
			EstimatedCost:    costBand(budget, 0.1, 0.18, currency),
			Priority:         models.PriorityHigh,
			Reasons:          []string{"Professional quality within budget", "Good coverage duration"},
			SuggestedVendors: []string{"Local wedding photographers", "Photography studios", "Freelance professionals"},
		}
	default:
		return models.PlannerRecommendation{
			ID: "photography-budget", Type: models.CategoryPhotographer,
			Title:            "Emerging Photographer or Mini Package",
			Description:      "Talented newer photographers or shorter coverage packages",
			EstimatedCost:    costBand(budget, 0.12, 0.2, currency),
			Priority:         models.PriorityMedium,
			Reasons:          []string{"Cost-effective photography solution", "Opportunity to work with emerging talent"},
			SuggestedVendors: []string{"Photography students", "New professionals", "Mini packages"},
		}
	}
}

func (p *Planner) catering(budget float64, guests int, currency string) models.PlannerRecommendation {
	costPerGuest := 0.0
	if guests > 0 {
		costPerGuest = budget / float64(guests)
	}

	switch {
	case costPerGuest > 200:
		return models.PlannerRecommendation{
			ID: "catering-premium", Type: models.CategoryCatering,
			Title:            "Premium Catering with Multiple Courses",
			Description:      "Gourmet dining experience with cocktail hour and premium service",
			EstimatedCost:    costBand(budget, 0.3, 0.4, currency),
			Priority:         models.PriorityHigh,
			Reasons:          []string{"Budget allows for premium dining experience", "Multiple course options available"},
			SuggestedVendors: []string{"High-end catering companies", "Hotel catering services", "Michelin-starred chefs"},
		}
	case costPerGuest > 100:
		return models.PlannerRecommendation{
			ID: "catering-standard", Type: models.CategoryCatering,
			Title:            "Full-Service Catering",
			Description:      "Professional catering with buffet or plated service",
			EstimatedCost:    costBand(budget, 0.25, 0.35, currency),
			Priority:         models.PriorityHigh,
			Reasons:          []string{"Good balance of quality and quantity", "Professional service included"},
			SuggestedVendors: []string{"Local catering companies", "Restaurant catering", "Event caterers"},
		}
	default:
		return models.PlannerRecommendation{
			ID: "catering-budget", Type: models.CategoryCatering,
			Title:            "Casual Catering or Family Style",
			Description:      "Buffet-style or family-style serving with good quality food",
			EstimatedCost:    costBand(budget, 0.2, 0.3, currency),
			Priority:         models.PriorityMedium,
			Reasons:          []string{"Cost-effective feeding solution", "More relaxed dining atmosphere"},
			SuggestedVendors: []string{"Casual catering services", "Food trucks", "Family restaurants"},
		}
	}
}

func (p *Planner) florist(budget float64, currency string) models.PlannerRecommendation {
	return models.PlannerRecommendation{
		ID: "florist-recommendation", Type: models.CategoryFlorist,
		Title:            "Wedding Florals and Decorations",
		Description:      "Bridal bouquet, ceremony and reception florals",
		EstimatedCost:    costBand(budget, 0.06, 0.1, currency),
		Priority:         models.PriorityMedium,
		Reasons:          []string{"Essential for wedding atmosphere", "Customizable to your style"},
		SuggestedVendors: []string{"Local florists", "Wedding floral specialists", "Online flower services"},
	}
}

func (p *Planner) music(budget float64, currency string) models.PlannerRecommendation {
	if budget > 30000 {
		return models.PlannerRecommendation{
			ID: "music-live-band", Type: models.CategoryMusic,
			Title:            "Live Wedding Band",
			Description:      "Professional live music for ceremony and reception",
			EstimatedCost:    costBand(budget, 0.08, 0.12, currency),
			Priority:         models.PriorityMedium,
			Reasons:          []string{"Budget supports live entertainment", "Creates memorable atmosphere"},
			SuggestedVendors: []string{"Wedding bands", "Solo acoustic artists", "String quartets"},
		}
	}
	return models.PlannerRecommendation{
		ID: "music-dj", Type: models.CategoryMusic,
		Title:            "Professional DJ Services",
		Description:      "DJ with sound system and music for all wedding events",
		EstimatedCost:    costBand(budget, 0.05, 0.08, currency),
		Priority:         models.PriorityMedium,
		Reasons:          []string{"Cost-effective entertainment solution", "Wide variety of music options"},
		SuggestedVendors: []string{"Wedding DJs", "Event entertainment companies", "Mobile DJs"},
	}
}

func (p *Planner) decoration(budget float64, currency string) models.PlannerRecommendation {
	return models.PlannerRecommendation{
		ID: "decoration-package", Type: models.CategoryDecoration,
		Title:            "Wedding Decorations and Styling",
		Description:      "Centerpieces, lighting, linens, and ambient decorations",
		EstimatedCost:    costBand(budget, 0.05, 0.1, currency),
		Priority:         models.PriorityMedium,
		Reasons:          []string{"Essential for creating the right atmosphere", "Customizable to your theme"},
		SuggestedVendors: []string{"Event decorators", "Party rental companies", "Wedding stylists"},
	}
}
