package vendorsearch

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/metrics"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// Result is a finished search with the context the API layer reports back.
type Result struct {
	Vendors  []models.Vendor
	CacheHit bool
	Sources  []string
	Elapsed  time.Duration
}

// Service runs the vendor search pipeline: sources in parallel, then
// filter, dedupe, rank, cache.
type Service struct {
	sources       []Source
	cache         Cache
	ranker        Ranker
	sourceTimeout time.Duration
	logger        logger.Logger
}

func NewService(sources []Source, cache Cache, ranker Ranker, sourceTimeout time.Duration, log logger.Logger) *Service {
	if cache == nil {
		cache = NoOpCache{}
	}
	if ranker == nil {
		ranker = ScoreRanker{}
	}
	if sourceTimeout <= 0 {
		sourceTimeout = 10 * time.Second
	}
	return &Service{
		sources:       sources,
		cache:         cache,
		ranker:        ranker,
		sourceTimeout: sourceTimeout,
		logger:        log,
	}
}

// SourceNames lists the configured providers in registration order.
func (s *Service) SourceNames() []string {
	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.Name()
	}
	return names
}

// Search returns the ranked vendors for the given parameters. Identical
// parameters within the cache TTL return the cached set without touching
// the sources.
func (s *Service) Search(ctx context.Context, params Params) (Result, error) {
	params = params.Normalize()
	if params.Category == "" {
		return Result{}, apperrors.NewMissingParameterError("category")
	}
	if params.Location == "" {
		return Result{}, apperrors.NewMissingParameterError("location")
	}

	start := time.Now()
	metrics.VendorSearchesTotal.WithLabelValues(params.Category).Inc()

	if cached, hit, err := s.cache.Get(ctx, params); err != nil {
		s.logger.WithError(err).Warn("vendor cache unavailable, searching sources", map[string]interface{}{
			"category": params.Category,
		})
	} else if hit {
		metrics.VendorSearchCacheHits.WithLabelValues("hit").Inc()
		return Result{Vendors: cached, CacheHit: true, Sources: s.SourceNames(), Elapsed: time.Since(start)}, nil
	}
	metrics.VendorSearchCacheHits.WithLabelValues("miss").Inc()

	candidates := s.collect(ctx, params)
	filtered := Filter(candidates, params)
	deduped := Dedupe(filtered)
	ranked := s.ranker.Rank(ctx, deduped, params)

	if err := s.cache.Set(ctx, params, ranked); err != nil {
		s.logger.WithError(err).Warn("failed to cache vendor results", map[string]interface{}{
			"category": params.Category,
			"location": params.Location,
		})
	}

	return Result{Vendors: ranked, CacheHit: false, Sources: s.SourceNames(), Elapsed: time.Since(start)}, nil
}

// collect fans out to every source with a shared deadline. A failed source
// is logged and skipped; the merge preserves source registration order.
func (s *Service) collect(ctx context.Context, params Params) []models.Vendor {
	ctx, cancel := context.WithTimeout(ctx, s.sourceTimeout)
	defer cancel()

	results := make([][]models.Vendor, len(s.sources))
	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			vendors, err := src.Fetch(ctx, params)
			if err != nil {
				s.logger.WithError(err).Warn("vendor source failed", map[string]interface{}{
					"source":   src.Name(),
					"category": params.Category,
				})
				return
			}
			metrics.VendorSourceResults.WithLabelValues(src.Name()).Observe(float64(len(vendors)))
			results[i] = vendors
		}(i, src)
	}
	wg.Wait()

	var merged []models.Vendor
	for _, batch := range results {
		merged = append(merged, batch...)
	}
	return merged
}
