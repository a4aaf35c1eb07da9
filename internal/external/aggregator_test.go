package external

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

type stubSource struct {
	name  string
	jobs  []models.SourceJob
	err   error
	calls int64
	delay time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchJobs(ctx context.Context) ([]models.SourceJob, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.jobs, s.err
}

func (s *stubSource) callCount() int64 { return atomic.LoadInt64(&s.calls) }

func TestFetchExternalJobsNormalizesAndFilters(t *testing.T) {
	src := &stubSource{name: "stub", jobs: []models.SourceJob{
		{
			ID: "stub-1", Title: "Software Engineering Intern", Company: "Acme",
			Location: "Bangalore, India", Type: models.JobTypeInternship,
			Description: "Build things", ApplyURL: "https://internshala.com/internship/detail/1",
			SourceName: "stub", PublishedDate: "2026-08-01T00:00:00Z",
		},
		{
			ID: "stub-2", Title: "Backend Engineer", Company: "Globex",
			Location: "Berlin, Germany", Type: models.JobTypeJob,
			Description: "Kafka", ApplyURL: "https://globex.example/jobs/2",
			SourceName: "stub", PublishedDate: "2026-08-01T00:00:00Z",
		},
	}}

	agg := NewAggregator(src)
	got, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 1)

	j := got[0]
	assert.Equal(t, "stub-1", j.ID)
	assert.Equal(t, models.JobTypeInternship, j.Type)
	assert.Equal(t, "Bangalore", j.City)
	require.NotNil(t, j.ApplyPlatform)
	assert.Equal(t, PlatformInternshala, *j.ApplyPlatform)
	assert.True(t, j.IsVerified)
	assert.Equal(t, models.SourceExternal, j.Source)
}

func TestFetchExternalJobsCacheHit(t *testing.T) {
	src := &stubSource{name: "stub", jobs: []models.SourceJob{
		{ID: "stub-1", Title: "Dev", Company: "Acme", Location: "Pune", Type: models.JobTypeJob},
	}}

	agg := NewAggregator(src)
	first, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)

	second, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, src.callCount(), "cached fetch must not hit sources again")
}

func TestFetchExternalJobsCacheExpiry(t *testing.T) {
	src := &stubSource{name: "stub", jobs: []models.SourceJob{
		{ID: "stub-1", Title: "Dev", Company: "Acme", Location: "Pune", Type: models.JobTypeJob},
	}}

	agg := NewAggregator(src)
	base := time.Now()
	agg.now = func() time.Time { return base }

	_, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	require.EqualValues(t, 1, src.callCount())

	// still fresh one minute before expiry
	agg.now = func() time.Time { return base.Add(DefaultCacheTTL - time.Minute) }
	_, err = agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, src.callCount())

	// expired: next cached call refetches
	agg.now = func() time.Time { return base.Add(DefaultCacheTTL + time.Minute) }
	_, err = agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.callCount())
}

func TestFetchExternalJobsBypassCache(t *testing.T) {
	src := &stubSource{name: "stub", jobs: []models.SourceJob{
		{ID: "stub-1", Title: "Dev", Company: "Acme", Location: "Pune", Type: models.JobTypeJob},
	}}

	agg := NewAggregator(src)
	_, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)

	_, err = agg.FetchExternalJobs(context.Background(), false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.callCount())
}

func TestClearCacheForcesRefetch(t *testing.T) {
	src := &stubSource{name: "stub", jobs: []models.SourceJob{
		{ID: "stub-1", Title: "Dev", Company: "Acme", Location: "Pune", Type: models.JobTypeJob},
	}}

	agg := NewAggregator(src)
	_, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)

	agg.ClearCache()
	_, _, _, warm := agg.CacheInfo()
	assert.False(t, warm)

	_, err = agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.callCount())
}

func TestFetchExternalJobsToleratesPartialFailure(t *testing.T) {
	good := &stubSource{name: "good", jobs: []models.SourceJob{
		{ID: "good-1", Title: "Dev", Company: "Acme", Location: "Chennai", Type: models.JobTypeJob},
	}}
	bad := &stubSource{name: "bad", err: errors.New("boom")}

	agg := NewAggregator(good, bad)
	got, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good-1", got[0].ID)
}

func TestFetchExternalJobsServesStaleOnTotalFailure(t *testing.T) {
	src := &stubSource{name: "flaky", jobs: []models.SourceJob{
		{ID: "flaky-1", Title: "Dev", Company: "Acme", Location: "Delhi", Type: models.JobTypeJob},
	}}

	agg := NewAggregator(src)
	base := time.Now()
	agg.now = func() time.Time { return base }

	fresh, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	// the source goes down and the cache expires
	src.err = errors.New("upstream down")
	agg.now = func() time.Time { return base.Add(DefaultCacheTTL + time.Minute) }

	stale, err := agg.FetchExternalJobs(context.Background(), true)
	assert.NoError(t, err, "stale data is still a usable answer")
	assert.Equal(t, fresh, stale)

	count, _, _, warm := agg.CacheInfo()
	assert.True(t, warm, "a failed refresh must not clear the cache")
	assert.Equal(t, 1, count)
}

func TestFetchExternalJobsEmptyWhenNoCacheAndAllFail(t *testing.T) {
	bad := &stubSource{name: "bad", err: errors.New("boom")}

	agg := NewAggregator(bad)
	got, err := agg.FetchExternalJobs(context.Background(), true)
	assert.Error(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetchExternalJobsSingleflight(t *testing.T) {
	src := &stubSource{name: "slow", delay: 50 * time.Millisecond, jobs: []models.SourceJob{
		{ID: "slow-1", Title: "Dev", Company: "Acme", Location: "Mumbai", Type: models.JobTypeJob},
	}}

	agg := NewAggregator(src)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := agg.FetchExternalJobs(context.Background(), true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, src.callCount(), "concurrent misses must share one refresh")
}

func TestOnRefreshCallback(t *testing.T) {
	src := &stubSource{name: "stub", jobs: []models.SourceJob{
		{ID: "stub-1", Title: "Dev", Company: "Acme", Location: "Pune", Type: models.JobTypeJob},
		{ID: "stub-2", Title: "QA", Company: "Acme", Location: "Pune", Type: models.JobTypeJob},
	}}

	var got atomic.Int64
	agg := NewAggregator(src)
	agg.OnRefresh = func(count int) { got.Store(int64(count)) }

	_, err := agg.FetchExternalJobs(context.Background(), true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Load())
}

func TestNormalizeAppliesPlaceholders(t *testing.T) {
	got := Normalize([]models.SourceJob{
		{ID: "x-1", Location: "Jaipur", Type: models.JobTypeJob, SourceName: "x"},
	})
	require.Len(t, got, 1)

	j := got[0]
	assert.Equal(t, "Untitled Position", j.Title)
	assert.Equal(t, "Company Not Specified", j.Company)
	assert.Equal(t, "No description available", j.Description)
	assert.Equal(t, "#", j.ApplyURL)
	assert.Nil(t, j.ApplyPlatform)
	assert.False(t, j.IsVerified)
}
