package vendorsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/metrics"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/llm"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// Ranker orders deduplicated candidates. Implementations must not drop or
// duplicate vendors.
type Ranker interface {
	Rank(ctx context.Context, vendors []models.Vendor, params Params) []models.Vendor
}

// Score is the deterministic ordering weight: rating weighted by the log of
// review volume. Non-decreasing in rating for fixed reviewCount and in
// reviewCount for fixed rating.
func Score(v models.Vendor) float64 {
	return v.Rating * math.Log(float64(v.ReviewCount)+1)
}

// ScoreRanker sorts by descending Score.
type ScoreRanker struct{}

func (ScoreRanker) Rank(_ context.Context, vendors []models.Vendor, _ Params) []models.Vendor {
	out := make([]models.Vendor, len(vendors))
	copy(out, vendors)
	sort.SliceStable(out, func(i, j int) bool {
		return Score(out[i]) > Score(out[j])
	})
	return out
}

// LLMRanker asks the chat model for an ID ordering and falls back silently
// to the deterministic score when the call fails or returns nothing usable.
type LLMRanker struct {
	client   llm.Client
	fallback ScoreRanker
	logger   logger.Logger
}

func NewLLMRanker(client llm.Client, log logger.Logger) *LLMRanker {
	return &LLMRanker{client: client, logger: log}
}

type vendorSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	PriceRange  string   `json:"priceRange"`
	Features    []string `json:"features"`
	Specialties []string `json:"specialties,omitempty"`
}

func (r *LLMRanker) Rank(ctx context.Context, vendors []models.Vendor, params Params) []models.Vendor {
	if len(vendors) < 2 {
		return vendors
	}
	if r.client == nil {
		return r.fallback.Rank(ctx, vendors, params)
	}

	summaries := make([]vendorSummary, len(vendors))
	for i, v := range vendors {
		features := v.Features
		if len(features) > 3 {
			features = features[:3]
		}
		summaries[i] = vendorSummary{
			ID:          v.ID,
			Name:        v.Name,
			Rating:      v.Rating,
			PriceRange:  v.PriceRange,
			Features:    features,
			Specialties: v.Specialties,
		}
	}

	summaryJSON, err := json.Marshal(summaries)
	if err != nil {
		return r.fallback.Rank(ctx, vendors, params)
	}

	budget := "Not specified"
	if params.HasBudget() {
		budget = params.BudgetRange
	}
	guests := "Not specified"
	if params.GuestCount > 0 {
		guests = fmt.Sprintf("%d", params.GuestCount)
	}

	prompt := fmt.Sprintf(
		"Rank these wedding %s vendors for a couple getting married in %s.\n"+
			"Budget range: %s\nGuest count: %s\n\nVendors: %s\n\n"+
			"Please respond with just the vendor IDs in order of best fit, separated by commas.",
		params.Category, params.Location, budget, guests, summaryJSON,
	)

	reply, err := r.client.Chat(ctx, []llm.Message{
		{Role: "user", Content: prompt},
	}, llm.ChatOptions{MaxTokens: 200})
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues("vendor_ranking", "error").Inc()
		r.logger.WithError(err).Warn("AI ranking failed, using score ordering", map[string]interface{}{
			"category": params.Category,
		})
		return r.fallback.Rank(ctx, vendors, params)
	}
	metrics.LLMRequestsTotal.WithLabelValues("vendor_ranking", "ok").Inc()

	ranked := reorderByIDs(vendors, strings.Split(reply, ","))
	if ranked == nil {
		return r.fallback.Rank(ctx, vendors, params)
	}
	return ranked
}

// reorderByIDs applies the model's ID ordering. Vendors the model did not
// mention keep their original relative order at the end. Returns nil when
// no returned ID matches any vendor.
func reorderByIDs(vendors []models.Vendor, ids []string) []models.Vendor {
	byID := make(map[string]int, len(vendors))
	for i, v := range vendors {
		byID[v.ID] = i
	}

	used := make(map[int]bool, len(vendors))
	out := make([]models.Vendor, 0, len(vendors))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		idx, ok := byID[id]
		if !ok || used[idx] {
			continue
		}
		out = append(out, vendors[idx])
		used[idx] = true
	}
	if len(out) == 0 {
		return nil
	}

	for i, v := range vendors {
		if !used[i] {
			out = append(out, v)
		}
	}
	return out
}
