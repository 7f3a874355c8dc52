package models

// Vendor categories accepted by the search pipeline.
const (
	CategoryVenue        = "venue"
	CategoryPhotographer = "photographer"
	CategoryCatering     = "catering"
	CategoryFlorist      = "florist"
	CategoryMusic        = "music"
	CategoryDecoration   = "decoration"
)

// VendorCategories lists every supported category.
var VendorCategories = []string{
	CategoryVenue,
	CategoryPhotographer,
	CategoryCatering,
	CategoryFlorist,
	CategoryMusic,
	CategoryDecoration,
}

// Vendor is a search candidate. PriceRange is free text with embedded
// numeric bounds (for example "£15,000 - £50,000" or "£10,000+").
type Vendor struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Location       string            `json:"location"`
	Address        string            `json:"address,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Website        string            `json:"website,omitempty"`
	Email          string            `json:"email,omitempty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	PriceRange     string            `json:"priceRange"`
	PriceIndicator string            `json:"priceIndicator"`
	Images         []string          `json:"images"`
	Features       []string          `json:"features"`
	BusinessHours  map[string]string `json:"businessHours,omitempty"`
	SocialMedia    map[string]string `json:"socialMedia,omitempty"`
	Verified       bool              `json:"verified"`
	Specialties    []string          `json:"specialties,omitempty"`
	Availability   bool              `json:"availability"`
	ResponseTime   string            `json:"responseTime,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
}
