package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/store"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/vendorsearch"
)

type vendorSearchRequest struct {
	Category     string   `json:"category"`
	Location     string   `json:"location"`
	BudgetRange  string   `json:"budget_range"`
	GuestCount   int      `json:"guest_count"`
	WeddingDate  string   `json:"wedding_date"`
	SearchRadius int      `json:"search_radius"`
	Preferences  []string `json:"preferences"`
}

// SearchVendors runs the full source fan-out, filter, dedupe and rank
// pipeline and logs the search for the history endpoint.
func (h *APIHandler) SearchVendors(c *gin.Context) {
	session := currentSession(c)
	var req vendorSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Category == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: category, location"})
		return
	}

	ctx := c.Request.Context()
	result, err := h.deps.Vendors.Search(ctx, vendorsearch.Params{
		Category:    req.Category,
		Location:    req.Location,
		BudgetRange: req.BudgetRange,
		GuestCount:  req.GuestCount,
		Date:        req.WeddingDate,
		Radius:      req.SearchRadius,
		Preferences: req.Preferences,
	})
	if err != nil {
		var stdErr *apperrors.StandardError
		if errors.As(err, &stdErr) && stdErr.Code == apperrors.ErrCodeMissingParameter {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: category, location"})
			return
		}
		h.errors.Respond(c, err)
		return
	}

	if logErr := h.deps.Searches.Record(ctx, store.SearchLog{
		UserID:       session.UserID,
		Category:     req.Category,
		Location:     req.Location,
		BudgetRange:  req.BudgetRange,
		ResultsCount: len(result.Vendors),
		CacheUsed:    result.CacheHit,
	}); logErr != nil {
		h.deps.Logger.WithError(logErr).Warn("failed to record vendor search", map[string]interface{}{
			"userId": session.UserID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Vendor search completed successfully",
		"search_id": fmt.Sprintf("search_%d", time.Now().UnixMilli()),
		"vendors":   result.Vendors,
		"search_metadata": gin.H{
			"total_results":      len(result.Vendors),
			"search_time":        time.Now().Format(time.RFC3339),
			"cache_used":         result.CacheHit,
			"ai_ranking_applied": true,
			"sources":            result.Sources,
		},
	})
}

// VendorSearchInfo serves the read side of the vendor search endpoint:
// search history, the category catalog, or a capability summary.
func (h *APIHandler) VendorSearchInfo(c *gin.Context) {
	switch c.Query("action") {
	case "history":
		session := currentSession(c)
		history, err := h.deps.Searches.Recent(c.Request.Context(), session.UserID, 0)
		if err != nil {
			h.errors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"search_history": history,
		})
	case "categories":
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"categories": vendorCategories,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Vendor search API is ready",
			"features": []string{
				"Multi-source vendor search",
				"AI-powered ranking",
				"Location-based filtering",
				"Budget-aware recommendations",
				"Real-time availability checking",
			},
		})
	}
}

type vendorCategory struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var vendorCategories = []vendorCategory{
	{ID: "venue", Label: "Venues", Description: "Wedding venues, halls, and event spaces"},
	{ID: "photographer", Label: "Photography", Description: "Wedding photographers and videographers"},
	{ID: "catering", Label: "Catering", Description: "Catering services and food providers"},
	{ID: "florist", Label: "Florals", Description: "Florists and floral designers"},
	{ID: "music", Label: "Music & Entertainment", Description: "DJs, bands, and entertainment"},
	{ID: "decoration", Label: "Decorations", Description: "Event decorators and styling services"},
}
