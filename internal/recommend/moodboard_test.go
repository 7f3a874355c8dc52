package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

func TestMoodboardStyles(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedColor string
		expectedTheme string
	}{
		{"rustic", "Rustic Barn", "Warm Brown", "Countryside"},
		{"modern", "modern minimalist", "Black", "Contemporary"},
		{"vintage", "Vintage Glam", "Burgundy", "Timeless"},
		{"garden", "English garden party", "Lavender", "Botanical"},
		{"default", "something else", "Ivory", "Elegant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb := GenerateMoodboard(models.WeddingPreferences{WeddingStyle: tt.style})
			assert.Contains(t, mb.Colors, tt.expectedColor)
			assert.Contains(t, mb.Themes, tt.expectedTheme)
			assert.Equal(t, tt.style, mb.Style)
		})
	}
}

func TestMoodboardEmptyStyleDefaults(t *testing.T) {
	mb := GenerateMoodboard(models.WeddingPreferences{})
	assert.Equal(t, "Elegant Classic", mb.Style)
	assert.Contains(t, mb.Colors, "White")
}

func TestMoodboardCulturalAccents(t *testing.T) {
	mb := GenerateMoodboard(models.WeddingPreferences{
		WeddingStyle:       "modern",
		CulturalTraditions: []string{"South Asian", "Middle Eastern"},
	})

	assert.Contains(t, mb.Colors, "Rich Red")
	assert.Contains(t, mb.Colors, "Royal Blue")
	assert.Contains(t, mb.Elements, "Marigolds")
	assert.Contains(t, mb.Themes, "Luxurious")
}

func TestMoodboardDeduplicates(t *testing.T) {
	// Both the vintage base and the South Asian accent contribute Gold.
	mb := GenerateMoodboard(models.WeddingPreferences{
		WeddingStyle:       "vintage",
		CulturalTraditions: []string{"South Asian"},
	})

	count := 0
	for _, c := range mb.Colors {
		if c == "Gold" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMoodboardIgnoresUnknownTraditions(t *testing.T) {
	base := GenerateMoodboard(models.WeddingPreferences{WeddingStyle: "modern"})
	withUnknown := GenerateMoodboard(models.WeddingPreferences{
		WeddingStyle:       "modern",
		CulturalTraditions: []string{"Martian"},
	})

	assert.Equal(t, base.Colors, withUnknown.Colors)
}
