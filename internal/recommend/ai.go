package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/metrics"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/validation"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/llm"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// recommendationSchema constrains the model output before it is trusted.
const recommendationSchema = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["priority", "category", "title", "description", "reasoning", "actionable_steps"],
        "properties": {
          "priority": {"type": "string", "enum": ["high", "medium", "low"]},
          "category": {"type": "string"},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "reasoning": {"type": "string"},
          "actionable_steps": {"type": "array", "items": {"type": "string"}},
          "estimated_cost": {"type": "string"},
          "timeframe": {"type": "string"}
        }
      }
    }
  }
}`

// AIRecommender asks the chat model for tailored recommendations and falls
// back to the rule engine when the model is unavailable or returns output
// that fails schema validation. Origin reports which path produced the set.
type AIRecommender struct {
	client  llm.Client
	rules   *RuleEngine
	timeout time.Duration
	logger  logger.Logger
}

func NewAIRecommender(client llm.Client, rules *RuleEngine, timeout time.Duration, log logger.Logger) *AIRecommender {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AIRecommender{client: client, rules: rules, timeout: timeout, logger: log}
}

func (r *AIRecommender) Generate(ctx context.Context, details *models.WeddingDetails) ([]models.Recommendation, string) {
	if r.client == nil {
		return r.rules.Generate(details), "rules"
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	reply, err := r.client.Chat(ctx, []llm.Message{
		{Role: "user", Content: buildRecommendationPrompt(details)},
	}, llm.ChatOptions{MaxTokens: 2000, JSONMode: true})
	metrics.LLMRequestDuration.WithLabelValues("recommendations").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues("recommendations", "error").Inc()
		r.logger.WithError(err).Warn("AI recommendations failed, using rule engine", nil)
		return r.rules.Generate(details), "rules"
	}

	recs, err := parseRecommendations(reply)
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues("recommendations", "invalid").Inc()
		r.logger.WithError(err).Warn("AI recommendations unparsable, using rule engine", nil)
		return r.rules.Generate(details), "rules"
	}
	metrics.LLMRequestsTotal.WithLabelValues("recommendations", "ok").Inc()

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, "ai"
}

func parseRecommendations(reply string) ([]models.Recommendation, error) {
	if err := validation.ValidateJSON(recommendationSchema, reply); err != nil {
		return nil, err
	}

	var envelope struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(reply), &envelope); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	if len(envelope.Recommendations) == 0 {
		return nil, fmt.Errorf("model returned no recommendations")
	}
	return envelope.Recommendations, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func joinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

func buildRecommendationPrompt(d *models.WeddingDetails) string {
	date := "Not specified"
	if d.WeddingDate != nil {
		date = d.WeddingDate.Format("02/01/2006")
	}
	budget := "Not specified"
	if d.Budget != nil {
		budget = FormatAmount(*d.Budget)
	}

	var b strings.Builder
	b.WriteString("You are an expert wedding planner creating personalized recommendations for a couple. Based on their preferences, provide 4-6 specific, actionable recommendations.\n\n")
	b.WriteString("Wedding Details:\n")
	fmt.Fprintf(&b, "- Location: %s\n", d.WeddingLocation)
	fmt.Fprintf(&b, "- Date: %s\n", date)
	fmt.Fprintf(&b, "- Guest Count: %s\n", orDefault(d.GuestCount, "Not specified"))
	fmt.Fprintf(&b, "- Budget: £%s\n", budget)
	fmt.Fprintf(&b, "- Cultural Traditions: %s\n", joinOrDefault(d.CulturalTraditions, "None specified"))
	fmt.Fprintf(&b, "- Religious Traditions: %s\n", joinOrDefault(d.ReligiousTraditions, "None specified"))
	fmt.Fprintf(&b, "- Planned Events: %s\n", joinOrDefault(d.PlannedEvents, "Not specified"))
	fmt.Fprintf(&b, "- Wedding Style: %s\n", orDefault(d.WeddingStyle, "Not specified"))
	fmt.Fprintf(&b, "- Special Requirements: %s\n\n", orDefault(d.SpecialRequirements, "None specified"))
	b.WriteString(`Please provide recommendations in the following JSON format:
{
  "recommendations": [
    {
      "priority": "high|medium|low",
      "category": "venue|catering|photography|music|flowers|decoration|planning",
      "title": "Clear, actionable recommendation title",
      "description": "Detailed description of what they should do",
      "reasoning": "Why this recommendation makes sense for their specific situation",
      "actionable_steps": ["Specific step 1", "Specific step 2", "Specific step 3"],
      "estimated_cost": "Cost range if applicable",
      "timeframe": "When they should act on this"
    }
  ]
}

Focus on:
1. Their budget constraints
2. Guest count considerations
3. Location-specific advice
4. Timeline urgency (wedding date)
5. Their stated priorities
6. Cultural/religious requirements

Provide practical, specific advice they can act on immediately. Each recommendation should be tailored to their unique situation.

Respond with raw JSON only. Do not include code blocks, markdown, or any other formatting.`)
	return b.String()
}
