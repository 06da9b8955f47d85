package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"biduk_site/internal/app"
	"biduk_site/internal/domain"
)

type miss struct {
	resource string
	id       int64
	status   int
}

type fakeWarmLog struct {
	mu     sync.Mutex
	misses []miss
	runs   []domain.WarmRun
}

func (f *fakeWarmLog) LogMiss(ctx context.Context, resource string, id int64, status int, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.misses = append(f.misses, miss{resource, id, status})
	return nil
}

func (f *fakeWarmLog) RecordRun(ctx context.Context, r domain.WarmRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, r)
	return nil
}

func TestWarm_Run(t *testing.T) {
	api := &fakeAPI{
		hotels: hotelsPage("A", "B", "C"),
		hotel: map[int64]domain.Hotel{
			1: {HotelID: 1, Name: "A"},
		},
		detErr: map[int64]error{
			2: domain.ErrForbidden,
			3: errors.New("status 502"),
		},
		dests:    domain.Page[domain.Destination]{Success: true, Items: []domain.Destination{{ID: 5}}, Pagination: domain.Pagination{TotalPages: 1}},
		packages: domain.Page[domain.Package]{Success: true, Items: []domain.Package{{PackageID: 9}}, Pagination: domain.Pagination{TotalPages: 1}},
		articles: map[string]domain.Page[domain.Article]{"": {Success: true, Items: []domain.Article{}}},
	}
	cache := &fakeCache{}
	// stale snapshot that must be evicted
	_ = cache.Set(context.Background(), app.DetailKey(app.ResHotels, 2), domain.Hotel{HotelID: 2}, 60)
	wl := &fakeWarmLog{}

	svc := app.NewWarmService(api, cache, wl, time.Minute, 2)
	run, err := svc.Run(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// every listing reports a single page, so each distinct page size is
	// fetched once: destinations 1, hotels 2, packages 2, articles 3
	if run.Lists != 8 {
		t.Fatalf("lists = %d", run.Lists)
	}
	// hotels appear under two page sizes but each detail is fetched once
	if n := api.count("hotel"); n != 3 {
		t.Fatalf("hotel detail fetches = %d", n)
	}
	// hotel 1, package 9 ok; destination 5 is a 404; hotel 2 403; hotel 3 fails
	if run.Details != 2 || run.Misses != 2 || run.Failures != 1 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if len(wl.runs) != 1 || len(wl.misses) != 2 {
		t.Fatalf("warm log: %+v", wl)
	}
	got := map[miss]bool{}
	for _, m := range wl.misses {
		got[m] = true
	}
	if !got[miss{app.ResHotels, 2, 403}] || !got[miss{app.ResDestinations, 5, 404}] {
		t.Fatalf("unexpected misses: %+v", wl.misses)
	}
	if cache.has(app.DetailKey(app.ResHotels, 2)) {
		t.Fatalf("stale entry for a missed hotel must be evicted")
	}
	if !cache.has(app.DetailKey(app.ResHotels, 1)) || !cache.has(app.DetailKey(app.ResPackages, 9)) {
		t.Fatalf("warmed details missing from cache")
	}

	// the site reads what the warmer wrote
	site := app.NewContentService(api, cache, time.Minute)
	before := api.count("hotel")
	if h := site.Hotels().GetByID(context.Background(), 1); h == nil || h.Name != "A" {
		t.Fatalf("warmed hotel not served: %+v", h)
	}
	if api.count("hotel") != before {
		t.Fatalf("warmed detail should be a cache hit")
	}
}

func TestWarm_PagesReadWarmedLists(t *testing.T) {
	api := &fakeAPI{
		hotels:   hotelsPage("A"),
		hotel:    map[int64]domain.Hotel{1: {HotelID: 1, Name: "A"}},
		dests:    domain.Page[domain.Destination]{Success: true, Items: []domain.Destination{}, Pagination: domain.Pagination{TotalPages: 1}},
		packages: domain.Page[domain.Package]{Success: true, Items: []domain.Package{{PackageID: 9}}, Pagination: domain.Pagination{TotalPages: 1}},
		articles: map[string]domain.Page[domain.Article]{"": {Success: true, Items: []domain.Article{{ID: 4}}, Pagination: domain.Pagination{TotalPages: 1}}},
	}
	cache := &fakeCache{}
	if _, err := app.NewWarmService(api, cache, nil, time.Minute, 2).Run(context.Background(), 1); err != nil {
		t.Fatalf("warm: %v", err)
	}

	before := map[string]int{}
	for _, k := range []string{"destinations", "hotels", "packages", "articles:", "articles:all"} {
		before[k] = api.count(k)
	}

	// the reads the home, list and places pages make
	ctx := context.Background()
	site := app.NewContentService(api, cache, time.Minute)
	site.Hotels().GetActive(ctx, 1, app.HomeHotelsSize)
	site.Hotels().GetActive(ctx, 1, app.ListPageSize)
	site.Packages().GetActive(ctx, 1, app.HomePackagesSize)
	site.Packages().GetActive(ctx, 1, app.ListPageSize)
	site.Articles().GetAll(ctx, 1, app.HomeArticlesSize)
	site.Articles().GetAll(ctx, 1, app.ListPageSize)
	site.Destinations().GetActive(ctx, 1, app.PlacesPageSize)
	// and the JSON API defaults
	site.Hotels().GetActive(ctx, 1, 0)
	site.Articles().GetAll(ctx, 1, 0)

	for k, n := range before {
		if got := api.count(k); got != n {
			t.Errorf("%s: %d upstream calls after warming, want %d", k, got, n)
		}
	}
}
