package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/recommend"
)

// GetRecommendations produces prioritized planning recommendations from
// the saved questionnaire, AI-ranked when a model is configured.
func (h *APIHandler) GetRecommendations(c *gin.Context) {
	session := currentSession(c)
	details, err := h.deps.Weddings.Get(c.Request.Context(), session.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	if details == nil || details.WeddingLocation == "" {
		c.JSON(http.StatusOK, gin.H{
			"success":             false,
			"error":               "Please complete your wedding questionnaire first",
			"needs_questionnaire": true,
		})
		return
	}

	recommendations, origin := h.deps.Recommender.Generate(c.Request.Context(), details)

	var dateStr string
	if details.WeddingDate != nil {
		dateStr = details.WeddingDate.Format("2006-01-02")
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": recommendations,
		"generated_by":    origin,
		"user_preferences": gin.H{
			"location":    details.WeddingLocation,
			"guest_count": guestCountLowerBound(details.GuestCount),
			"budget":      details.BudgetAmount(),
			"date":        dateStr,
			"style":       details.WeddingStyle,
			"priorities":  []string{},
		},
	})
}

// GetPlannerRecommendations returns the budget-tier category planner
// output with numeric cost bands.
func (h *APIHandler) GetPlannerRecommendations(c *gin.Context) {
	session := currentSession(c)
	details, err := h.deps.Weddings.Get(c.Request.Context(), session.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	if details == nil || details.WeddingLocation == "" {
		c.JSON(http.StatusOK, gin.H{
			"success":             false,
			"error":               "Please complete your wedding questionnaire first",
			"needs_questionnaire": true,
		})
		return
	}

	recommendations := h.deps.Planner.Generate(preferencesFrom(details))
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": recommendations,
	})
}

// GetMoodboard derives a style moodboard from the questionnaire.
func (h *APIHandler) GetMoodboard(c *gin.Context) {
	session := currentSession(c)
	details, err := h.deps.Weddings.Get(c.Request.Context(), session.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	if details == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":             false,
			"error":               "Please complete your wedding questionnaire first",
			"needs_questionnaire": true,
		})
		return
	}

	moodboard := recommend.GenerateMoodboard(preferencesFrom(details))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"moodboard": moodboard,
	})
}

func preferencesFrom(details *models.WeddingDetails) models.WeddingPreferences {
	return models.WeddingPreferences{
		Budget:              details.BudgetAmount(),
		Currency:            details.Currency,
		GuestCount:          details.GuestCount,
		WeddingLocation:     details.WeddingLocation,
		WeddingStyle:        details.WeddingStyle,
		CulturalTraditions:  details.CulturalTraditions,
		ReligiousTraditions: details.ReligiousTraditions,
		PlannedEvents:       details.PlannedEvents,
	}
}

// guestCountLowerBound reads the leading number out of a bucket such as
// "51-100" or "200+". Unparseable buckets fall back to 50.
func guestCountLowerBound(bucket string) int {
	trimmed := strings.TrimSpace(bucket)
	digits := trimmed
	for i, r := range trimmed {
		if r < '0' || r > '9' {
			digits = trimmed[:i]
			break
		}
	}
	if n, err := strconv.Atoi(digits); err == nil && n > 0 {
		return n
	}
	return 50
}
