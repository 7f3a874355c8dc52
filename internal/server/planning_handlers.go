package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

type questionnaireRequest struct {
	PartnerOneName      string   `json:"partnerOneName"`
	PartnerTwoName      string   `json:"partnerTwoName"`
	WeddingLocation     string   `json:"weddingLocation"`
	WeddingDate         string   `json:"weddingDate"`
	GuestCount          string   `json:"guestCount"`
	Budget              *float64 `json:"budget"`
	Currency            string   `json:"currency"`
	CulturalTraditions  []string `json:"culturalTraditions"`
	ReligiousTraditions []string `json:"religiousTraditions"`
	PlannedEvents       []string `json:"plannedEvents"`
	WeddingStyle        string   `json:"weddingStyle"`
	VenueType           string   `json:"venueType"`
	SpecialRequirements string   `json:"specialRequirements"`
}

// parseDate accepts both RFC3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// GetQuestionnaire returns the saved wedding details, if any.
func (h *APIHandler) GetQuestionnaire(c *gin.Context) {
	session := currentSession(c)
	details, err := h.deps.Weddings.Get(c.Request.Context(), session.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weddingDetails": details})
}

// SaveQuestionnaire upserts the wedding details and refreshes the
// account's partner names.
func (h *APIHandler) SaveQuestionnaire(c *gin.Context) {
	session := currentSession(c)
	var req questionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var weddingDate *time.Time
	if req.WeddingDate != "" {
		parsed, err := parseDate(req.WeddingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wedding date"})
			return
		}
		weddingDate = &parsed
	}

	currency := req.Currency
	if currency == "" {
		currency = "GBP"
	}

	ctx := c.Request.Context()
	details, err := h.deps.Weddings.Upsert(ctx, &models.WeddingDetails{
		UserID:              session.UserID,
		PartnerOneName:      req.PartnerOneName,
		PartnerTwoName:      req.PartnerTwoName,
		WeddingLocation:     req.WeddingLocation,
		WeddingDate:         weddingDate,
		GuestCount:          req.GuestCount,
		Budget:              req.Budget,
		Currency:            currency,
		CulturalTraditions:  req.CulturalTraditions,
		ReligiousTraditions: req.ReligiousTraditions,
		PlannedEvents:       req.PlannedEvents,
		WeddingStyle:        req.WeddingStyle,
		VenueType:           req.VenueType,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	if req.PartnerOneName != "" && req.PartnerTwoName != "" {
		if err := h.deps.Users.UpdatePartnerNames(ctx, session.UserID, req.PartnerOneName, req.PartnerTwoName); err != nil {
			h.errors.Respond(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Questionnaire saved successfully",
		"weddingDetails": details,
	})
}

// GetBudget returns the user's budget with items.
func (h *APIHandler) GetBudget(c *gin.Context) {
	session := currentSession(c)
	budget, err := h.deps.Budgets.Get(c.Request.Context(), session.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

type budgetRequest struct {
	Name        string              `json:"name"`
	TotalBudget float64             `json:"totalBudget"`
	Currency    string              `json:"currency"`
	Items       []models.BudgetItem `json:"items"`
}

// SaveBudget upserts the budget and replaces its items.
func (h *APIHandler) SaveBudget(c *gin.Context) {
	session := currentSession(c)
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	name := req.Name
	if name == "" {
		name = "My Wedding Budget"
	}
	currency := req.Currency
	if currency == "" {
		currency = "GBP"
	}

	budget, err := h.deps.Budgets.Save(c.Request.Context(), &models.Budget{
		UserID:      session.UserID,
		Name:        name,
		TotalBudget: req.TotalBudget,
		Currency:    currency,
		Items:       req.Items,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Budget saved successfully",
		"budget":  budget,
	})
}

// GetTimeline returns the timeline with tasks ordered by due date.
func (h *APIHandler) GetTimeline(c *gin.Context) {
	session := currentSession(c)
	timeline, err := h.deps.Timelines.Get(c.Request.Context(), session.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": timeline})
}

type timelineRequest struct {
	Name        string                `json:"name"`
	WeddingDate string                `json:"weddingDate"`
	Tasks       []models.TimelineTask `json:"tasks"`
}

// SaveTimeline upserts the timeline and replaces its tasks.
func (h *APIHandler) SaveTimeline(c *gin.Context) {
	session := currentSession(c)
	var req timelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var weddingDate time.Time
	if req.WeddingDate != "" {
		parsed, err := parseDate(req.WeddingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wedding date"})
			return
		}
		weddingDate = parsed
	}

	timeline, err := h.deps.Timelines.Save(c.Request.Context(), &models.Timeline{
		UserID:      session.UserID,
		Name:        req.Name,
		WeddingDate: weddingDate,
		Tasks:       req.Tasks,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Timeline saved successfully",
		"timeline": timeline,
	})
}

// GetChecklists returns every checklist ordered by category.
func (h *APIHandler) GetChecklists(c *gin.Context) {
	session := currentSession(c)
	checklists, err := h.deps.Checklists.List(c.Request.Context(), session.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklists": checklists})
}

type checklistRequest struct {
	Checklists []models.Checklist `json:"checklists"`
}

// SaveChecklists replaces the user's checklists wholesale.
func (h *APIHandler) SaveChecklists(c *gin.Context) {
	session := currentSession(c)
	var req checklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	checklists, err := h.deps.Checklists.ReplaceAll(c.Request.Context(), session.UserID, req.Checklists)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Checklists saved successfully",
		"checklists": checklists,
	})
}

// GetTemplates lists the built-in templates, optionally filtered by kind.
func (h *APIHandler) GetTemplates(c *gin.Context) {
	templates, err := h.deps.Templates.List(c.Request.Context(), c.Query("kind"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}
