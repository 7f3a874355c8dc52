package vendorsearch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

type stubSource struct {
	name    string
	vendors []models.Vendor
	err     error
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(context.Context, Params) ([]models.Vendor, error) {
	s.calls++
	return s.vendors, s.err
}

func londonVendor(id, name string, rating float64) models.Vendor {
	return models.Vendor{
		ID: id, Name: name, Category: models.CategoryVenue,
		Location: "London", Rating: rating, ReviewCount: 100,
	}
}

func TestServiceSearchPipeline(t *testing.T) {
	a := &stubSource{name: "alpha", vendors: []models.Vendor{
		londonVendor("a1", "Grand Ballroom", 4.2),
		{ID: "a2", Name: "Far Away Hall", Category: models.CategoryVenue, Location: "Edinburgh", Rating: 4.9, ReviewCount: 500},
	}}
	b := &stubSource{name: "beta", vendors: []models.Vendor{
		londonVendor("b1", "Grand Ballroom", 4.7),
		londonVendor("b2", "Ivy House", 4.5),
	}}
	svc := NewService([]Source{a, b}, NoOpCache{}, ScoreRanker{}, time.Second, logger.NewNoOpLogger())

	res, err := svc.Search(context.Background(), Params{Category: "Venue", Location: "London"})
	require.NoError(t, err)

	assert.False(t, res.CacheHit)
	assert.Equal(t, []string{"alpha", "beta"}, res.Sources)
	require.Len(t, res.Vendors, 2, "off-location dropped, duplicate merged")
	assert.Equal(t, 4.7, res.Vendors[0].Rating, "higher-rated duplicate survives and ranks first")
}

func TestServiceFailedSourceContributesNothing(t *testing.T) {
	broken := &stubSource{name: "broken", err: errors.New("provider down")}
	working := &stubSource{name: "working", vendors: []models.Vendor{londonVendor("w1", "Ivy House", 4.6)}}
	svc := NewService([]Source{broken, working}, NoOpCache{}, ScoreRanker{}, time.Second, logger.NewNoOpLogger())

	res, err := svc.Search(context.Background(), Params{Category: "venue", Location: "London"})
	require.NoError(t, err)
	require.Len(t, res.Vendors, 1)
	assert.Equal(t, "w1", res.Vendors[0].ID)
}

func TestServiceCacheHitSkipsSources(t *testing.T) {
	src := &stubSource{name: "only", vendors: []models.Vendor{londonVendor("v1", "Ivy House", 4.6)}}
	cache, _ := newTestCache(t, 30*time.Minute)
	svc := NewService([]Source{src}, cache, ScoreRanker{}, time.Second, logger.NewNoOpLogger())
	params := Params{Category: "venue", Location: "London"}

	first, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	assert.Equal(t, 1, src.calls)

	second, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, 1, src.calls, "cached search does not touch sources")
	assert.Equal(t, first.Vendors, second.Vendors)
}

func TestServiceMissingParams(t *testing.T) {
	svc := NewService(nil, NoOpCache{}, ScoreRanker{}, time.Second, logger.NewNoOpLogger())

	_, err := svc.Search(context.Background(), Params{Location: "London"})
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeMissingParameter, stdErr.Code)

	_, err = svc.Search(context.Background(), Params{Category: "venue"})
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeMissingParameter, stdErr.Code)
}

func TestGeneratedSourcesRespectContracts(t *testing.T) {
	ctx := context.Background()
	params := Params{Category: "venue", Location: "London"}.Normalize()

	dir := NewDirectorySource(1)
	dirVendors, err := dir.Fetch(ctx, params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(dirVendors), 5)
	assert.LessOrEqual(t, len(dirVendors), 15)
	for _, v := range dirVendors {
		assert.GreaterOrEqual(t, v.Rating, 4.0)
		assert.LessOrEqual(t, v.Rating, 5.0)
		assert.GreaterOrEqual(t, v.ReviewCount, 20)
	}

	plat := NewPlatformSource(2)
	platVendors, err := plat.Fetch(ctx, params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(platVendors), 3)
	assert.LessOrEqual(t, len(platVendors), 8)
	for _, v := range platVendors {
		assert.True(t, v.Verified)
		assert.GreaterOrEqual(t, v.Rating, 4.5)
		assert.Equal(t, "Within 1 hour", v.ResponseTime)
	}

	soc := NewSocialSource(3)
	socVendors, err := soc.Fetch(ctx, params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(socVendors), 2)
	assert.LessOrEqual(t, len(socVendors), 6)
	for _, v := range socVendors {
		assert.Contains(t, v.SocialMedia, "twitter")
		assert.Len(t, v.Images, 5)
	}
}

func TestCatalogSourceFiltersByCategory(t *testing.T) {
	src := NewCatalogSource()

	venues, err := src.Fetch(context.Background(), Params{Category: "venue", Location: "London"}.Normalize())
	require.NoError(t, err)
	require.NotEmpty(t, venues)
	for _, v := range venues {
		assert.Equal(t, models.CategoryVenue, v.Category)
		assert.True(t, v.Verified)
	}

	none, err := src.Fetch(context.Background(), Params{Category: "skywriting", Location: "London"}.Normalize())
	require.NoError(t, err)
	assert.Empty(t, none)
}
