package external

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

// DefaultCacheTTL bounds upstream call frequency regardless of request
// volume.
const DefaultCacheTTL = 20 * time.Minute

// cacheEntry is the single process-wide slot. It is replaced wholesale on
// every successful refresh and never partially mutated; readers treat the
// data slice as read-only.
type cacheEntry struct {
	data      []models.ExternalJob
	fetchedAt time.Time
	expiresAt time.Time
}

// Aggregator coordinates all external sources and owns the jobs cache.
// Construct one per process (or per test) — the cache is instance state,
// not a package global.
type Aggregator struct {
	Sources []Source
	TTL     time.Duration

	// OnRefresh, if set, is called after every successful refresh with
	// the number of jobs now cached.
	OnRefresh func(count int)

	mu    sync.RWMutex
	cache *cacheEntry
	group singleflight.Group

	now func() time.Time // overridable in tests
}

func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{
		Sources: sources,
		TTL:     DefaultCacheTTL,
		now:     time.Now,
	}
}

// FetchExternalJobs returns the current normalized India-only job list.
// With useCache it returns the cached slice immediately while the entry
// is fresh; otherwise it fans out to every source, tolerating individual
// failures, and replaces the cache. The returned list is always usable:
// on a failed refresh the stale entry is served if one exists, else an
// empty list. The error is informational only (non-nil exactly when the
// result had to degrade to empty) — callers may ignore it.
func (a *Aggregator) FetchExternalJobs(ctx context.Context, useCache bool) ([]models.ExternalJob, error) {
	if useCache {
		a.mu.RLock()
		entry := a.cache
		a.mu.RUnlock()
		if entry != nil && a.now().Before(entry.expiresAt) {
			return entry.data, nil
		}
	}

	// singleflight: concurrent misses trigger one upstream fan-out
	v, err, _ := a.group.Do("refresh", func() (any, error) {
		return a.refresh(ctx)
	})
	if err != nil {
		log.Printf("[external] refresh failed: %v", err)
		a.mu.RLock()
		entry := a.cache
		a.mu.RUnlock()
		if entry != nil {
			log.Printf("[external] serving stale cache (%d jobs)", len(entry.data))
			return entry.data, nil
		}
		return []models.ExternalJob{}, err
	}
	return v.([]models.ExternalJob), nil
}

// refresh runs the full pipeline: concurrent fan-out, merge, India
// filter, city normalization, platform tagging, cache replacement.
func (a *Aggregator) refresh(ctx context.Context) ([]models.ExternalJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := a.fanOut(ctx)

	var merged []models.SourceJob
	failures := 0
	for _, res := range results {
		if res.Err != nil {
			// one broken source must not kill the whole refresh
			log.Printf("[external] source %s error: %v", res.Source, res.Err)
			failures++
			continue
		}
		merged = append(merged, res.Jobs...)
	}

	// a total outage must not replace a good cache with an empty list
	if len(results) > 0 && failures == len(results) {
		return nil, fmt.Errorf("all %d sources failed", failures)
	}

	jobs := Normalize(merged)

	now := a.now()
	entry := &cacheEntry{
		data:      jobs,
		fetchedAt: now,
		expiresAt: now.Add(a.ttl()),
	}
	a.mu.Lock()
	a.cache = entry
	a.mu.Unlock()

	log.Printf("[external] cached %d India jobs from %d sources", len(jobs), len(results))
	if a.OnRefresh != nil {
		a.OnRefresh(len(jobs))
	}
	return jobs, nil
}

// fanOut queries every source concurrently and waits for all of them to
// settle, collecting successes and failures separately.
func (a *Aggregator) fanOut(ctx context.Context) []FetchResult {
	results := make([]FetchResult, len(a.Sources))

	var wg sync.WaitGroup
	for i, src := range a.Sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			jobs, err := src.FetchJobs(ctx)
			results[i] = FetchResult{Source: src.Name(), Jobs: jobs, Err: err}
		}(i, src)
	}
	wg.Wait()

	return results
}

// Normalize applies the locale filter and platform tagging to merged
// source output, producing canonical records. Records whose location does
// not pass the India filter are dropped.
func Normalize(jobs []models.SourceJob) []models.ExternalJob {
	out := make([]models.ExternalJob, 0, len(jobs))
	for _, j := range jobs {
		if !IsIndiaLocation(j.Location) {
			continue
		}

		var applyPlatform *string
		if platform, ok := DetectPlatform(j.ApplyURL); ok {
			applyPlatform = &platform
		}

		out = append(out, models.ExternalJob{
			ID:            j.ID,
			Title:         orDefault(j.Title, untitledPosition),
			Company:       orDefault(j.Company, companyNotSpecified),
			City:          NormalizeCity(j.Location),
			Type:          j.Type,
			Description:   orDefault(j.Description, noDescription),
			ApplyURL:      orDefault(j.ApplyURL, applyURLSentinel),
			ApplyPlatform: applyPlatform,
			IsVerified:    applyPlatform != nil,
			Source:        models.SourceExternal,
			SourceName:    j.SourceName,
			PublishedDate: j.PublishedDate,
		})
	}
	return out
}

// ClearCache unconditionally empties the slot; the next cached fetch
// behaves as a miss. Used for manual refresh and tests.
func (a *Aggregator) ClearCache() {
	a.mu.Lock()
	a.cache = nil
	a.mu.Unlock()
	log.Printf("[external] jobs cache cleared")
}

// CacheInfo reports the current slot state for health/debug endpoints.
func (a *Aggregator) CacheInfo() (count int, fetchedAt, expiresAt time.Time, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.cache == nil {
		return 0, time.Time{}, time.Time{}, false
	}
	return len(a.cache.data), a.cache.fetchedAt, a.cache.expiresAt, true
}

func (a *Aggregator) ttl() time.Duration {
	if a.TTL > 0 {
		return a.TTL
	}
	return DefaultCacheTTL
}
