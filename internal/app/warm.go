package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"biduk_site/internal/domain"
)

// WarmService preloads the content cache with the list pages and details
// the site serves most, under the same keys ContentService reads.
type WarmService struct {
	api      domain.ContentAPI
	cache    domain.Cache
	misses   domain.WarmLog
	cacheTTL time.Duration
	workers  int64
	now      func() time.Time
}

func NewWarmService(api domain.ContentAPI, c domain.Cache, wl domain.WarmLog, ttl time.Duration, workers int) *WarmService {
	if c == nil {
		c = NopCache{}
	}
	if workers < 1 {
		workers = 1
	}
	return &WarmService{api: api, cache: c, misses: wl, cacheTTL: ttl, workers: int64(workers), now: time.Now}
}

type warmJob struct {
	resource string
	id       int64
	fetch    func(context.Context, int64) (any, error)
}

type warmCounters struct {
	lists, details, misses, failures atomic.Int64
}

// Run warms the first pages of every listing and then each listed detail.
// Only a failure to record the run is returned; fetch errors are counted.
func (s *WarmService) Run(ctx context.Context, pages int) (domain.WarmRun, error) {
	if pages < 1 {
		pages = 1
	}
	run := domain.WarmRun{StartedAt: s.now()}
	var c warmCounters

	var jobs []warmJob
	for _, n := range listSizes(ResDestinations) {
		jobs = append(jobs, warmList(ctx, s, &c, ResDestinations, domain.ListQuery{PageSize: n, Active: true}, pages,
			s.api.ListDestinations, detail(s.api.GetDestination))...)
	}
	for _, n := range listSizes(ResHotels) {
		jobs = append(jobs, warmList(ctx, s, &c, ResHotels, domain.ListQuery{PageSize: n, Active: true}, pages,
			s.api.ListHotels, detail(s.api.GetHotel))...)
	}
	for _, n := range listSizes(ResPackages) {
		jobs = append(jobs, warmList(ctx, s, &c, ResPackages, domain.ListQuery{PageSize: n, Active: true}, pages,
			s.api.ListPackages, detail(s.api.GetPackage))...)
	}
	for _, n := range listSizes(ResArticles) {
		jobs = append(jobs, warmList(ctx, s, &c, ResArticles, domain.ListQuery{PageSize: n}, pages,
			s.api.ListArticles, detail(s.api.GetArticle))...)
	}
	jobs = uniqueJobs(jobs)

	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup
	for _, j := range jobs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(j warmJob) {
			defer wg.Done()
			defer sem.Release(1)
			s.warmDetail(ctx, &c, j)
		}(j)
	}
	wg.Wait()

	run.FinishedAt = s.now()
	run.Lists = int(c.lists.Load())
	run.Details = int(c.details.Load())
	run.Misses = int(c.misses.Load())
	run.Failures = int(c.failures.Load())
	if s.misses != nil {
		if err := s.misses.RecordRun(ctx, run); err != nil {
			return run, err
		}
	}
	return run, nil
}

func (s *WarmService) warmDetail(ctx context.Context, c *warmCounters, j warmJob) {
	v, err := j.fetch(ctx, j.id)
	if err == nil {
		_ = s.cache.Set(ctx, DetailKey(j.resource, j.id), v, int(s.cacheTTL.Seconds()))
		c.details.Add(1)
		return
	}
	if status := domain.MissStatus(err); status != 0 {
		c.misses.Add(1)
		// drop any stale snapshot so the site stops serving it
		_ = s.cache.Del(ctx, DetailKey(j.resource, j.id))
		if s.misses != nil {
			if lerr := s.misses.LogMiss(ctx, j.resource, j.id, status, err.Error()); lerr != nil {
				log.Warn().Err(lerr).Str("resource", j.resource).Int64("id", j.id).Msg("log miss failed")
			}
		}
		return
	}
	c.failures.Add(1)
	log.Warn().Err(err).Str("resource", j.resource).Int64("id", j.id).Msg("warm detail failed")
}

func warmList[T domain.Identifiable](ctx context.Context, s *WarmService, c *warmCounters, resource string,
	base domain.ListQuery, pages int,
	list func(context.Context, domain.ListQuery) (domain.Page[T], error),
	fetch func(context.Context, int64) (any, error)) []warmJob {
	var jobs []warmJob
	for p := 1; p <= pages; p++ {
		q := base
		q.Page = p
		page, err := list(ctx, q)
		if err != nil {
			c.failures.Add(1)
			log.Warn().Err(err).Str("resource", resource).Int("page", p).Msg("warm list failed")
			return jobs
		}
		_ = s.cache.Set(ctx, ListKey(resource, q), page, int(s.cacheTTL.Seconds()))
		c.lists.Add(1)
		for _, it := range page.Items {
			if id := it.Key(); id > 0 {
				jobs = append(jobs, warmJob{resource: resource, id: id, fetch: fetch})
			}
		}
		if page.Pagination.TotalPages <= p {
			return jobs
		}
	}
	return jobs
}

func detail[T any](get func(context.Context, int64) (T, error)) func(context.Context, int64) (any, error) {
	return func(ctx context.Context, id int64) (any, error) {
		v, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// listSizes returns the distinct page sizes the site reads resource at.
func listSizes(resource string) []int {
	var out []int
	seen := map[int]bool{}
	for _, n := range SiteListSizes[resource] {
		if n > 0 && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// uniqueJobs drops repeated details; the same item shows up on every
// listing size that contains it.
func uniqueJobs(jobs []warmJob) []warmJob {
	type key struct {
		resource string
		id       int64
	}
	seen := make(map[key]bool, len(jobs))
	out := jobs[:0]
	for _, j := range jobs {
		k := key{j.resource, j.id}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, j)
	}
	return out
}
