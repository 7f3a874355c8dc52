package recommend

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/llm"
)

type scriptedLLM struct {
	reply string
	err   error
}

func (s *scriptedLLM) Chat(context.Context, []llm.Message, llm.ChatOptions) (string, error) {
	return s.reply, s.err
}

func (s *scriptedLLM) ChatStream(context.Context, []llm.Message, llm.ChatOptions, io.Writer, func()) error {
	return s.err
}

const validAIReply = `{
  "recommendations": [
    {
      "priority": "high",
      "category": "venue",
      "title": "Tour Riverside Venues Early",
      "description": "Visit venues along the Thames before summer slots fill.",
      "reasoning": "River venues in London book out a year ahead.",
      "actionable_steps": ["Shortlist three venues", "Book tours"],
      "estimated_cost": "£9,000 - £12,000",
      "timeframe": "This month"
    }
  ]
}`

func testRecommender(client llm.Client) *AIRecommender {
	rules := NewRuleEngineAt(func() time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	return NewAIRecommender(client, rules, time.Second, logger.NewNoOpLogger())
}

func TestAIRecommenderUsesModelOutput(t *testing.T) {
	r := testRecommender(&scriptedLLM{reply: validAIReply})

	recs, origin := r.Generate(context.Background(), details(20000, nil))

	assert.Equal(t, "ai", origin)
	require.Len(t, recs, 1)
	assert.Equal(t, "Tour Riverside Venues Early", recs[0].Title)
}

func TestAIRecommenderFallsBackOnError(t *testing.T) {
	r := testRecommender(&scriptedLLM{err: errors.New("upstream down")})

	recs, origin := r.Generate(context.Background(), details(20000, nil))

	assert.Equal(t, "rules", origin)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Secure Your Wedding Venue", recs[0].Title)
}

func TestAIRecommenderFallsBackOnInvalidJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "here are some ideas..."},
		{"wrong shape", `{"ideas": []}`},
		{"empty list", `{"recommendations": []}`},
		{"bad priority", `{"recommendations": [{"priority": "urgent", "category": "venue", "title": "t", "description": "d", "reasoning": "r", "actionable_steps": []}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRecommender(&scriptedLLM{reply: tt.reply})
			recs, origin := r.Generate(context.Background(), details(20000, nil))
			assert.Equal(t, "rules", origin)
			assert.NotEmpty(t, recs)
		})
	}
}

func TestAIRecommenderNilClientUsesRules(t *testing.T) {
	r := testRecommender(nil)
	recs, origin := r.Generate(context.Background(), details(20000, nil))
	assert.Equal(t, "rules", origin)
	assert.NotEmpty(t, recs)
}

func TestAIRecommenderTruncatesToFive(t *testing.T) {
	reply := `{"recommendations": [` +
		`{"priority": "high", "category": "venue", "title": "1", "description": "d", "reasoning": "r", "actionable_steps": []},` +
		`{"priority": "high", "category": "venue", "title": "2", "description": "d", "reasoning": "r", "actionable_steps": []},` +
		`{"priority": "high", "category": "venue", "title": "3", "description": "d", "reasoning": "r", "actionable_steps": []},` +
		`{"priority": "high", "category": "venue", "title": "4", "description": "d", "reasoning": "r", "actionable_steps": []},` +
		`{"priority": "high", "category": "venue", "title": "5", "description": "d", "reasoning": "r", "actionable_steps": []},` +
		`{"priority": "low", "category": "venue", "title": "6", "description": "d", "reasoning": "r", "actionable_steps": []}]}`
	r := testRecommender(&scriptedLLM{reply: reply})

	recs, origin := r.Generate(context.Background(), details(20000, nil))

	assert.Equal(t, "ai", origin)
	require.Len(t, recs, 5)
	assert.Equal(t, "1", recs[0].Title)
	assert.Equal(t, "5", recs[4].Title)
}

func TestBuildRecommendationPromptMentionsDetails(t *testing.T) {
	date := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	d := details(20000, &date)
	d.CulturalTraditions = []string{"South Asian"}

	prompt := buildRecommendationPrompt(d)

	assert.Contains(t, prompt, "London")
	assert.Contains(t, prompt, "£20,000")
	assert.Contains(t, prompt, "South Asian")
	assert.Contains(t, prompt, "20/06/2026")
	assert.Contains(t, prompt, "raw JSON only")
}
