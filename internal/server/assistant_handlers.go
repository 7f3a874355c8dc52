package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/llm"
)

const assistantSystemPrompt = `You are an expert AI wedding planning assistant. You help couples plan their perfect wedding by providing personalized advice, recommendations, and guidance. You have extensive knowledge about:

- Wedding budgeting and cost management
- Wedding timelines and planning schedules
- Global wedding venues and vendors
- Wedding traditions from various cultures and religions
- Wedding attire and fashion advice
- Catering and menu planning
- Photography and videography
- Flowers and decorations
- Music and entertainment
- Legal requirements for marriages worldwide
- Wedding etiquette and protocols

Always provide helpful, accurate, and practical advice. Be warm, encouraging, and supportive. If you don't know something specific, acknowledge it and suggest ways the couple can find the information they need.

Provide global wedding advice and adapt recommendations based on the couple's location when mentioned.`

// assistantTurnWindow caps how much prior conversation is replayed to the
// model on each request.
const assistantTurnWindow = 5

type assistantTurn struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type assistantRequest struct {
	Message      string          `json:"message"`
	Conversation []assistantTurn `json:"conversation"`
}

// AIAssistant streams a chat completion back to the client as
// server-sent events.
func (h *APIHandler) AIAssistant(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	if h.deps.Chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI assistant is not configured"})
		return
	}

	history := req.Conversation
	if len(history) > assistantTurnWindow {
		history = history[len(history)-assistantTurnWindow:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: assistantSystemPrompt})
	for _, turn := range history {
		role := "assistant"
		if turn.Type == "user" {
			role = "user"
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flush := func() {
		if flusher, ok := c.Writer.(http.Flusher); ok {
			flusher.Flush()
		}
	}
	err := h.deps.Chat.ChatStream(c.Request.Context(), messages, llm.ChatOptions{
		MaxTokens:   3000,
		Temperature: 0.7,
	}, c.Writer, flush)
	if err != nil {
		h.deps.Logger.WithError(err).Error("assistant stream failed", nil)
		if !c.Writer.Written() {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to get AI response"})
		}
	}
}
