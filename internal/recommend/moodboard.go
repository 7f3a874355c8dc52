package recommend

import (
	"strings"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

type moodboardBase struct {
	colors   []string
	themes   []string
	elements []string
}

var moodboardStyles = []struct {
	keyword string
	base    moodboardBase
}{
	{"rustic", moodboardBase{
		colors:   []string{"Warm Brown", "Sage Green", "Cream", "Dusty Rose"},
		themes:   []string{"Natural", "Countryside", "Vintage"},
		elements: []string{"Wood accents", "Mason jars", "Wildflowers", "Burlap details"},
	}},
	{"modern", moodboardBase{
		colors:   []string{"White", "Black", "Gold", "Silver"},
		themes:   []string{"Minimalist", "Contemporary", "Elegant"},
		elements: []string{"Clean lines", "Geometric shapes", "Metallic accents", "Orchids"},
	}},
	{"vintage", moodboardBase{
		colors:   []string{"Blush Pink", "Ivory", "Gold", "Burgundy"},
		themes:   []string{"Classic", "Romantic", "Timeless"},
		elements: []string{"Lace details", "Antique furniture", "Pearl accents", "Roses"},
	}},
	{"garden", moodboardBase{
		colors:   []string{"Soft Pink", "Lavender", "White", "Green"},
		themes:   []string{"Natural", "Fresh", "Botanical"},
		elements: []string{"Fresh flowers", "Greenery", "Natural lighting", "Outdoor elements"},
	}},
}

var defaultMoodboard = moodboardBase{
	colors:   []string{"White", "Ivory", "Gold", "Blush Pink"},
	themes:   []string{"Elegant", "Classic", "Romantic"},
	elements: []string{"Fresh flowers", "Candles", "Elegant linens", "Crystal accents"},
}

var culturalAccents = map[string]moodboardBase{
	"South Asian": {
		colors:   []string{"Rich Red", "Gold", "Orange"},
		themes:   []string{"Vibrant", "Festive"},
		elements: []string{"Marigolds", "Rangoli patterns", "Rich fabrics"},
	},
	"African": {
		colors:   []string{"Earth tones", "Vibrant Orange", "Deep Red"},
		themes:   []string{"Cultural heritage", "Earthy elegance"},
		elements: []string{"African prints", "Natural textures", "Traditional patterns"},
	},
	"Middle Eastern": {
		colors:   []string{"Deep Purple", "Gold", "Royal Blue"},
		themes:   []string{"Luxurious", "Opulent"},
		elements: []string{"Rich textiles", "Intricate patterns", "Golden details"},
	},
}

// GenerateMoodboard derives a style palette from the wedding style keyword
// plus accents for any recognized cultural traditions. Duplicates are
// removed with first occurrence kept.
func GenerateMoodboard(prefs models.WeddingPreferences) models.Moodboard {
	base := defaultMoodboard
	styleLower := strings.ToLower(prefs.WeddingStyle)
	for _, s := range moodboardStyles {
		if strings.Contains(styleLower, s.keyword) {
			base = s.base
			break
		}
	}

	colors := append([]string{}, base.colors...)
	themes := append([]string{}, base.themes...)
	elements := append([]string{}, base.elements...)

	for _, tradition := range prefs.CulturalTraditions {
		accent, ok := culturalAccents[tradition]
		if !ok {
			continue
		}
		colors = append(colors, accent.colors...)
		themes = append(themes, accent.themes...)
		elements = append(elements, accent.elements...)
	}

	style := prefs.WeddingStyle
	if style == "" {
		style = "Elegant Classic"
	}

	return models.Moodboard{
		Style:    style,
		Colors:   dedupeStrings(colors),
		Themes:   dedupeStrings(themes),
		Elements: dedupeStrings(elements),
	}
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
