package vendorsearch

import (
	"context"
	"strings"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// CatalogSource serves a curated directory of established UK wedding
// suppliers. Unlike the generated sources it is deterministic and always
// available.
type CatalogSource struct{}

func NewCatalogSource() *CatalogSource { return &CatalogSource{} }

func (s *CatalogSource) Name() string { return "curated_catalog" }

func (s *CatalogSource) Fetch(_ context.Context, params Params) ([]models.Vendor, error) {
	category := strings.ToLower(params.Category)
	var out []models.Vendor
	for _, v := range curatedVendors {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out, nil
}

var curatedVendors = []models.Vendor{
	{
		ID: "catalog-venue-1", Name: "Claridge's Hotel London", Category: models.CategoryVenue,
		Location: "Mayfair, London", Rating: 4.8, ReviewCount: 2847,
		PriceRange: "£15,000 - £50,000", PriceIndicator: "$$",
		Description: "Legendary Mayfair hotel with art deco ballrooms and five-star service.",
		Features:    []string{"Ballroom", "In-house catering", "Luxury suites", "Valet parking"},
		Specialties: []string{"Luxury weddings", "Black tie receptions"},
		Verified:    true, ResponseTime: "Within 1 hour",
	},
	{
		ID: "catalog-venue-2", Name: "The Savoy", Category: models.CategoryVenue,
		Location: "Strand, London", Rating: 4.7, ReviewCount: 3421,
		PriceRange: "£20,000 - £80,000", PriceIndicator: "$$",
		Description: "Iconic Thames-side hotel with grand event spaces and river views.",
		Features:    []string{"River views", "Grand ballroom", "In-house florist", "Bridal suite"},
		Specialties: []string{"Grand celebrations", "Destination guests"},
		Verified:    true, ResponseTime: "Within 2 hours",
	},
	{
		ID: "catalog-venue-3", Name: "The Dorchester", Category: models.CategoryVenue,
		Location: "Park Lane, London", Rating: 4.6, ReviewCount: 1987,
		PriceRange: "£18,000 - £60,000", PriceIndicator: "$$",
		Description: "Park Lane landmark offering elegant ballrooms overlooking Hyde Park.",
		Features:    []string{"Ballroom", "Park views", "Michelin dining", "Event planning team"},
		Specialties: []string{"Classic weddings", "Multi-day celebrations"},
		Verified:    true, ResponseTime: "Within 2 hours",
	},
	{
		ID: "catalog-photographer-1", Name: "Jonathan Ong Photography", Category: models.CategoryPhotographer,
		Location: "London", Rating: 4.9, ReviewCount: 847,
		PriceRange: "£3,500 - £8,000", PriceIndicator: "$$",
		Description: "Fine art wedding photography with a documentary approach.",
		Features:    []string{"Full day coverage", "Second shooter", "Online gallery"},
		Specialties: []string{"Fine art", "Editorial style"},
		Verified:    true, ResponseTime: "Within 4 hours",
	},
	{
		ID: "catalog-photographer-2", Name: "Sarah Ann Wright Photography", Category: models.CategoryPhotographer,
		Location: "Surrey", Rating: 4.8, ReviewCount: 623,
		PriceRange: "£2,800 - £6,500", PriceIndicator: "$$",
		Description: "Romantic, light-filled imagery across the South East.",
		Features:    []string{"Engagement shoot", "Album design", "Travel included"},
		Specialties: []string{"Natural light", "Countryside weddings"},
		Verified:    true, ResponseTime: "Within 4 hours",
	},
	{
		ID: "catalog-photographer-3", Name: "David Jenkins Photography", Category: models.CategoryPhotographer,
		Location: "Manchester", Rating: 4.7, ReviewCount: 512,
		PriceRange: "£2,200 - £5,500", PriceIndicator: "$",
		Description: "Relaxed reportage coverage for northern weddings.",
		Features:    []string{"Full day coverage", "USB delivery", "Print rights"},
		Specialties: []string{"Reportage", "City weddings"},
		Verified:    true, ResponseTime: "Within 6 hours",
	},
	{
		ID: "catalog-catering-1", Name: "Rhubarb Food Design", Category: models.CategoryCatering,
		Location: "London", Rating: 4.6, ReviewCount: 1234,
		PriceRange: "£85 - £180 per person", PriceIndicator: "$$",
		Description: "Event caterers behind some of London's most ambitious receptions.",
		Features:    []string{"Bespoke menus", "Tasting sessions", "Front of house staff"},
		Specialties: []string{"Fine dining", "Large scale events"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-catering-2", Name: "Create Food", Category: models.CategoryCatering,
		Location: "London", Rating: 4.5, ReviewCount: 892,
		PriceRange: "£65 - £140 per person", PriceIndicator: "$$",
		Description: "Seasonal British menus with a modern twist.",
		Features:    []string{"Seasonal menus", "Dietary options", "Bar service"},
		Specialties: []string{"Modern British", "Sharing feasts"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-catering-3", Name: "Moveable Feast", Category: models.CategoryCatering,
		Location: "London", Rating: 4.4, ReviewCount: 756,
		PriceRange: "£55 - £120 per person", PriceIndicator: "$",
		Description: "Flexible catering from canapés to full wedding breakfasts.",
		Features:    []string{"Canapés", "Buffet options", "Equipment hire"},
		Specialties: []string{"Relaxed dining", "Marquee weddings"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-florist-1", Name: "McQueens Flowers", Category: models.CategoryFlorist,
		Location: "London", Rating: 4.8, ReviewCount: 1456,
		PriceRange: "£2,500 - £25,000", PriceIndicator: "$$",
		Description: "World-renowned floral design studio for luxury events.",
		Features:    []string{"Installation design", "Bridal bouquets", "Venue styling"},
		Specialties: []string{"Large installations", "Luxury events"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-florist-2", Name: "Wild at Heart by Nikki Tibbles", Category: models.CategoryFlorist,
		Location: "London", Rating: 4.7, ReviewCount: 987,
		PriceRange: "£1,800 - £15,000", PriceIndicator: "$$",
		Description: "Romantic, garden-inspired arrangements from a Notting Hill studio.",
		Features:    []string{"Bouquets", "Table arrangements", "Archway florals"},
		Specialties: []string{"Garden style", "English blooms"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-florist-3", Name: "Paul Thomas Flowers", Category: models.CategoryFlorist,
		Location: "London", Rating: 4.6, ReviewCount: 634,
		PriceRange: "£1,200 - £8,500", PriceIndicator: "$",
		Description: "Classic floristry trusted by London's grand hotels.",
		Features:    []string{"Bouquets", "Buttonholes", "Ceremony flowers"},
		Specialties: []string{"Classic arrangements", "Hotel weddings"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-music-1", Name: "London Symphony Orchestra Wedding Ensemble", Category: models.CategoryMusic,
		Location: "London", Rating: 4.9, ReviewCount: 543,
		PriceRange: "£2,500 - £15,000", PriceIndicator: "$$",
		Description: "Chamber ensembles drawn from world-class orchestral players.",
		Features:    []string{"String quartet", "Ceremony music", "Bespoke arrangements"},
		Specialties: []string{"Classical", "Ceremony performances"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-music-2", Name: "The Funky Wedding Band", Category: models.CategoryMusic,
		Location: "London", Rating: 4.7, ReviewCount: 789,
		PriceRange: "£1,800 - £4,500", PriceIndicator: "$",
		Description: "High-energy live band keeping dance floors full all night.",
		Features:    []string{"Live band", "DJ sets between", "First dance learning"},
		Specialties: []string{"Funk and soul", "Party sets"},
		Verified:    true, ResponseTime: "Within 6 hours",
	},
	{
		ID: "catalog-music-3", Name: "Elite DJ Services London", Category: models.CategoryMusic,
		Location: "London", Rating: 4.5, ReviewCount: 1245,
		PriceRange: "£800 - £2,500", PriceIndicator: "$",
		Description: "Professional wedding DJs with full production equipment.",
		Features:    []string{"DJ and MC", "Lighting rig", "Request system"},
		Specialties: []string{"Open format", "Multicultural playlists"},
		Verified:    true, ResponseTime: "Within 6 hours",
	},
	{
		ID: "catalog-decoration-1", Name: "Andy Winfield Design", Category: models.CategoryDecoration,
		Location: "London", Rating: 4.8, ReviewCount: 445,
		PriceRange: "£8,000 - £50,000", PriceIndicator: "$$",
		Description: "Event design studio transforming venues with bespoke builds.",
		Features:    []string{"Concept design", "Bespoke builds", "Full styling"},
		Specialties: []string{"Venue transformation", "Luxury styling"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-decoration-2", Name: "Mood Event Styling", Category: models.CategoryDecoration,
		Location: "London", Rating: 4.6, ReviewCount: 578,
		PriceRange: "£3,500 - £18,000", PriceIndicator: "$$",
		Description: "Contemporary styling with a focus on lighting and texture.",
		Features:    []string{"Lighting design", "Table styling", "Backdrops"},
		Specialties: []string{"Contemporary", "Lighting led design"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
	{
		ID: "catalog-decoration-3", Name: "Table Talk Events", Category: models.CategoryDecoration,
		Location: "Surrey", Rating: 4.4, ReviewCount: 326,
		PriceRange: "£1,500 - £8,000", PriceIndicator: "$",
		Description: "Tableware, linen and styling hire for weddings across the South East.",
		Features:    []string{"Tableware hire", "Linen", "On the day styling"},
		Specialties: []string{"Tablescapes", "Marquee styling"},
		Verified:    true, ResponseTime: "Within 1 day",
	},
}
