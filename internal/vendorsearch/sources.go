package vendorsearch

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// Source produces vendor candidates for one provider. A failing source
// returns an error and contributes nothing; the other sources still count.
type Source interface {
	Name() string
	Fetch(ctx context.Context, params Params) ([]models.Vendor, error)
}

var vendorNamePool = map[string][]string{
	models.CategoryVenue:        {"Grand Ballroom", "Rose Manor Estate", "Crystal Palace Hotel", "Garden View Hall", "Riverside Manor", "Golden Oak Country Club", "The Victorian", "Lakeside Lodge", "Sunset Terrace", "Ivy House"},
	models.CategoryPhotographer: {"Emma Stone Photography", "Golden Hour Studios", "Candid Moments", "Perfect Day Photos", "Artistic Vision Photography", "Love Story Pictures", "Timeless Memories", "Modern Romance Photo", "Classic Portraits", "Dream Wedding Photos"},
	models.CategoryCatering:     {"Gourmet Wedding Catering", "Elegant Eats", "Fine Dining Catering", "Culinary Delights", "Artisan Kitchen", "Premium Catering Co", "Royal Feast Catering", "Garden Fresh Catering", "Signature Cuisine", "Divine Dining"},
	models.CategoryFlorist:      {"Bloom & Blossom", "Petal Perfect Florist", "Garden Dreams Floral", "Rose & Lily Designs", "Enchanted Flowers", "Wildflower Wedding Co", "Elegant Blooms", "Floral Fantasy", "Natural Beauty Flowers", "Wedding Petals"},
	models.CategoryMusic:        {"Harmony Wedding Band", "Elite DJ Services", "Music & Memories", "Wedding Rhythms", "Sound Perfection", "Love Songs Entertainment", "Premier Music Co", "Melody Makers", "Wedding Beats", "Celebration Sounds"},
	models.CategoryDecoration:   {"Dream Wedding Decor", "Elegant Events Design", "Magical Moments Decor", "Artistic Celebrations", "Wedding Wonders", "Perfect Setting Design", "Romance & Style Decor", "Enchanted Events", "Luxe Wedding Design", "Timeless Decorations"},
}

var vendorDescriptions = map[string]string{
	models.CategoryVenue:        "Stunning wedding venue with elegant architecture and beautiful surroundings. Perfect for intimate ceremonies and grand celebrations.",
	models.CategoryPhotographer: "Professional wedding photographer specializing in capturing your most precious moments with artistic flair and attention to detail.",
	models.CategoryCatering:     "Premium catering service offering exquisite cuisine and exceptional service for your special day.",
	models.CategoryFlorist:      "Creative floral designer creating beautiful arrangements that perfectly complement your wedding theme and style.",
	models.CategoryMusic:        "Professional wedding entertainment providing the perfect soundtrack for your celebration.",
	models.CategoryDecoration:   "Expert wedding decorators transforming venues into magical spaces that reflect your unique style.",
}

var vendorFeaturePool = map[string][]string{
	models.CategoryVenue:        {"On-site catering", "Bridal suite", "Parking available", "Garden ceremony space", "Indoor backup option", "Dance floor", "Full bar service"},
	models.CategoryPhotographer: {"8-hour coverage", "Engagement shoot included", "Online gallery", "Same-day sneak peeks", "Wedding album", "USB with high-res images"},
	models.CategoryCatering:     {"Custom menu planning", "Dietary accommodations", "Professional service staff", "Equipment rental", "Tastings available", "Late-night snacks"},
	models.CategoryFlorist:      {"Bridal bouquet", "Ceremony arrangements", "Reception centerpieces", "Boutonniere included", "Setup service", "Fresh seasonal flowers"},
	models.CategoryMusic:        {"Professional sound system", "Wireless microphones", "LED lighting", "Music requests", "Ceremony music", "Reception entertainment"},
	models.CategoryDecoration:   {"Theme consultation", "Setup & breakdown", "Centerpieces", "Ceremony arch", "Lighting design", "Linens & tableware"},
}

var vendorSpecialtyPool = map[string][]string{
	models.CategoryVenue:        {"Outdoor ceremonies", "Historic venues", "Garden weddings", "Luxury events"},
	models.CategoryPhotographer: {"Natural light", "Candid photography", "Fine art", "Documentary style"},
	models.CategoryCatering:     {"Italian cuisine", "Vegan options", "Buffet style", "Plated dinners"},
	models.CategoryFlorist:      {"Rustic arrangements", "Modern designs", "Tropical flowers", "Seasonal bouquets"},
	models.CategoryMusic:        {"Jazz band", "Classical music", "Modern pop", "Cultural music"},
	models.CategoryDecoration:   {"Vintage style", "Modern elegance", "Bohemian", "Classic romantic"},
}

var priceRangePool = []string{"£500-£1,000", "£1,000-£2,500", "£2,500-£5,000", "£5,000-£10,000", "£10,000+"}

var priceIndicatorPool = []string{"$", "$$", "$$$", "$$$$"}

var responseTimePool = []string{"Within 1 hour", "Within 2 hours", "Within 4 hours", "Within 24 hours", "Within 2 days"}

var streetNamePool = []string{"High Street", "Church Lane", "Mill Road", "Victoria Street", "King's Road", "Queen's Avenue", "Park Lane", "Oak Street"}

var websiteAdjectives = []string{"elegant", "perfect", "divine", "royal", "premium", "luxury"}

// locationVariations expands a search location into the plausible nearby
// areas a directory listing would report.
func locationVariations(location string) []string {
	out := []string{location}
	lower := strings.ToLower(location)
	switch {
	case strings.Contains(lower, "london"):
		out = append(out, "Central London", "West London", "East London", "South London", "North London")
	case strings.Contains(lower, "manchester"):
		out = append(out, "Greater Manchester", "Manchester City Centre", "Salford", "Stockport")
	case strings.Contains(lower, "birmingham"):
		out = append(out, "Birmingham City Centre", "West Midlands", "Solihull")
	default:
		out = append(out,
			fmt.Sprintf("%s City Centre", location),
			fmt.Sprintf("Greater %s", location),
			fmt.Sprintf("%s Suburbs", location),
		)
	}
	return out
}

// generator holds the shared randomness for the simulated providers. The
// seed is injectable so tests stay deterministic.
type generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func newGenerator(seed int64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

func (g *generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func (g *generator) float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *generator) pick(pool []string) string {
	return pool[g.intn(len(pool))]
}

func (g *generator) vendor(category string, locations []string, index int) models.Vendor {
	names, ok := vendorNamePool[category]
	if !ok {
		names = []string{"Professional Wedding Services"}
	}
	site := fmt.Sprintf("%s%s%d", g.pick(websiteAdjectives), category, g.intn(100))

	specialties := vendorSpecialtyPool[category]
	if len(specialties) > 2 {
		specialties = specialties[:2]
	}

	languages := []string{"English"}
	if g.float64() > 0.7 {
		languages = append(languages, "Spanish", "French")
	}

	location := locations[g.intn(len(locations))]
	desc, ok := vendorDescriptions[category]
	if !ok {
		desc = "Professional wedding service provider"
	}
	features, ok := vendorFeaturePool[category]
	if !ok {
		features = []string{"Professional service"}
	}

	return models.Vendor{
		ID:             fmt.Sprintf("%s-%d-%d", category, g.now().UnixMilli(), index),
		Name:           g.pick(names),
		Category:       category,
		Description:    desc,
		Location:       location,
		Address:        fmt.Sprintf("%d %s, %s", g.intn(999)+1, g.pick(streetNamePool), location),
		Phone:          fmt.Sprintf("+44 %d %d", g.intn(9000)+1000, g.intn(900000)+100000),
		Website:        fmt.Sprintf("https://%s.com", site),
		Email:          fmt.Sprintf("info@%s.com", site),
		Rating:         roundRating(4.0 + g.float64()),
		ReviewCount:    g.intn(200) + 20,
		PriceRange:     g.pick(priceRangePool),
		PriceIndicator: g.pick(priceIndicatorPool),
		Images:         placeholderImages(category, 3),
		Features:       features,
		BusinessHours:  standardBusinessHours(),
		SocialMedia: map[string]string{
			"facebook":  fmt.Sprintf("https://facebook.com/%s", site),
			"instagram": fmt.Sprintf("https://instagram.com/%s", site),
		},
		Verified:     g.float64() > 0.3,
		Specialties:  specialties,
		Availability: g.float64() > 0.2,
		ResponseTime: g.pick(responseTimePool),
		Languages:    languages,
	}
}

func roundRating(r float64) float64 {
	return float64(int(r*10+0.5)) / 10
}

func placeholderImages(category string, count int) []string {
	images := make([]string, count)
	for i := range images {
		images[i] = fmt.Sprintf("/api/placeholder/400/300?category=%s&index=%d", category, i)
	}
	return images
}

func standardBusinessHours() map[string]string {
	return map[string]string{
		"Monday":    "9:00 AM - 5:00 PM",
		"Tuesday":   "9:00 AM - 5:00 PM",
		"Wednesday": "9:00 AM - 5:00 PM",
		"Thursday":  "9:00 AM - 5:00 PM",
		"Friday":    "9:00 AM - 5:00 PM",
		"Saturday":  "10:00 AM - 4:00 PM",
		"Sunday":    "By appointment only",
	}
}

// DirectorySource simulates a places-directory lookup. Listings spread
// across location variations with mixed verification and ratings.
type DirectorySource struct {
	gen *generator
}

func NewDirectorySource(seed int64) *DirectorySource {
	return &DirectorySource{gen: newGenerator(seed)}
}

func (s *DirectorySource) Name() string { return "google_places" }

func (s *DirectorySource) Fetch(ctx context.Context, params Params) ([]models.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	locations := locationVariations(params.Location)
	count := s.gen.intn(10) + 5
	vendors := make([]models.Vendor, 0, count)
	for i := 0; i < count; i++ {
		vendors = append(vendors, s.gen.vendor(params.Category, locations, i))
	}
	return vendors, nil
}

// PlatformSource simulates listings from wedding marketplaces. Those
// profiles are maintained by the vendors themselves, so everything is
// verified, highly rated and quick to respond.
type PlatformSource struct {
	gen *generator
}

func NewPlatformSource(seed int64) *PlatformSource {
	return &PlatformSource{gen: newGenerator(seed)}
}

func (s *PlatformSource) Name() string { return "wedding_platforms" }

func (s *PlatformSource) Fetch(ctx context.Context, params Params) ([]models.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	count := s.gen.intn(5) + 3
	vendors := make([]models.Vendor, 0, count)
	for i := 0; i < count; i++ {
		v := s.gen.vendor(params.Category, []string{params.Location}, i)
		v.Verified = true
		v.Rating = roundRating(4.5 + s.gen.float64()*0.5)
		v.ReviewCount = s.gen.intn(100) + 50
		v.ResponseTime = "Within 1 hour"
		vendors = append(vendors, v)
	}
	return vendors, nil
}

// SocialSource simulates vendors found through social profiles. They come
// with full social links and a larger image set.
type SocialSource struct {
	gen *generator
}

func NewSocialSource(seed int64) *SocialSource {
	return &SocialSource{gen: newGenerator(seed)}
}

func (s *SocialSource) Name() string { return "social_media" }

func (s *SocialSource) Fetch(ctx context.Context, params Params) ([]models.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	count := s.gen.intn(4) + 2
	vendors := make([]models.Vendor, 0, count)
	for i := 0; i < count; i++ {
		v := s.gen.vendor(params.Category, []string{params.Location}, i)
		handle := strings.ToLower(strings.ReplaceAll(v.Name, " ", ""))
		v.SocialMedia = map[string]string{
			"facebook":  fmt.Sprintf("https://facebook.com/%s", handle),
			"instagram": fmt.Sprintf("https://instagram.com/%s", handle),
			"twitter":   fmt.Sprintf("https://twitter.com/%s", handle),
		}
		v.Images = placeholderImages(params.Category, 5)
		vendors = append(vendors, v)
	}
	return vendors, nil
}
