// Package server is the HTTP API: gin routes over the stores, the vendor
// search pipeline, the recommendation engines, and the chat assistant.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/auth"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/config"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/mailer"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/observability"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/llm"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/recommend"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/store"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/vendorsearch"
)

// Deps collects everything the API needs. Wire it once in main.
type Deps struct {
	Config      *config.Config
	Logger      logger.Logger
	Users       *store.UserStore
	Weddings    *store.WeddingStore
	Budgets     *store.BudgetStore
	Timelines   *store.TimelineStore
	Checklists  *store.ChecklistStore
	Templates   *store.TemplateStore
	Searches    *store.SearchLogStore
	Sessions    *auth.SessionStore
	Hasher      *auth.Hasher
	Vendors     *vendorsearch.Service
	Recommender *recommend.AIRecommender
	Planner     *recommend.Planner
	Chat        llm.Client
	Mailer      mailer.Mailer
	Obs         *observability.Observability
}

// APIHandler handles all API requests.
type APIHandler struct {
	deps   Deps
	errors *apperrors.ErrorHandler
}

func NewAPIHandler(deps Deps) *APIHandler {
	return &APIHandler{
		deps:   deps,
		errors: apperrors.NewErrorHandler(deps.Logger),
	}
}

// SetupRoutes configures all API routes.
func (h *APIHandler) SetupRoutes(router *gin.Engine) {
	router.Use(h.corsMiddleware())
	router.Use(h.metricsMiddleware())

	router.GET("/healthz", h.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/signup", h.Signup)
		api.POST("/signin", h.Signin)
		api.POST("/auth/forgot-password", h.ForgotPassword)
		api.POST("/auth/reset-password", h.ResetPassword)

		authed := api.Group("", h.requireAuth())
		{
			authed.POST("/signout", h.Signout)

			authed.GET("/questionnaire", h.GetQuestionnaire)
			authed.POST("/questionnaire", h.SaveQuestionnaire)

			authed.GET("/budget", h.GetBudget)
			authed.POST("/budget", h.SaveBudget)

			authed.GET("/timeline", h.GetTimeline)
			authed.POST("/timeline", h.SaveTimeline)

			authed.GET("/checklist", h.GetChecklists)
			authed.POST("/checklist", h.SaveChecklists)

			authed.GET("/templates", h.GetTemplates)

			authed.GET("/recommendations", h.GetRecommendations)
			authed.GET("/recommendations/planner", h.GetPlannerRecommendations)
			authed.GET("/recommendations/moodboard", h.GetMoodboard)

			authed.POST("/vendor-search", h.SearchVendors)
			authed.GET("/vendor-search", h.VendorSearchInfo)

			authed.POST("/ai-assistant", h.AIAssistant)
		}
	}
}

// Healthz reports liveness.
func (h *APIHandler) Healthz(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": h.deps.Config.App.Name,
		"version": h.deps.Config.App.Version,
	})
}
