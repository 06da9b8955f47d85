package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"biduk_site/internal/app"
	"biduk_site/internal/domain"
)

// ---- fakes ----

type fakeAPI struct {
	mu      sync.Mutex
	calls   map[string]int
	queries []domain.ListQuery

	hotels   domain.Page[domain.Hotel]
	hotelErr error
	hotel    map[int64]domain.Hotel
	detErr   map[int64]error

	dests    domain.Page[domain.Destination]
	packages domain.Page[domain.Package]
	articles map[string]domain.Page[domain.Article] // by status

	gallery    []domain.GalleryImage
	featErr    error
	galleryErr error
}

func (f *fakeAPI) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) ListDestinations(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Destination], error) {
	f.hit("destinations")
	return f.dests, nil
}
func (f *fakeAPI) GetDestination(ctx context.Context, id int64) (domain.Destination, error) {
	f.hit("destination")
	return domain.Destination{}, domain.ErrNotFound
}
func (f *fakeAPI) ListHotels(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Hotel], error) {
	f.hit("hotels")
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	return f.hotels, f.hotelErr
}
func (f *fakeAPI) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	f.hit("hotel")
	if err := f.detErr[id]; err != nil {
		return domain.Hotel{}, err
	}
	h, ok := f.hotel[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}
func (f *fakeAPI) ListPackages(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Package], error) {
	f.hit("packages")
	return f.packages, nil
}
func (f *fakeAPI) GetPackage(ctx context.Context, id int64) (domain.Package, error) {
	f.hit("package")
	return domain.Package{PackageID: id, Name: "Trip"}, nil
}
func (f *fakeAPI) ListArticles(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Article], error) {
	f.hit("articles:" + q.Status)
	return f.articles[q.Status], nil
}
func (f *fakeAPI) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	f.hit("article")
	return domain.Article{}, errors.New("boom")
}
func (f *fakeAPI) ListGallery(ctx context.Context, q domain.GalleryQuery) ([]domain.GalleryImage, error) {
	if q.Featured {
		f.hit("gallery:featured")
		return f.gallery, f.featErr
	}
	f.hit("gallery")
	return f.gallery, f.galleryErr
}

// fakeCache stores JSON like the Redis adapter so generic pages round-trip.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if ttlSec <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	c.store[key] = b
	return err
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}
func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.store[key]
	return ok
}

func hotelsPage(names ...string) domain.Page[domain.Hotel] {
	p := domain.Page[domain.Hotel]{Success: true, Items: []domain.Hotel{}}
	for i, n := range names {
		p.Items = append(p.Items, domain.Hotel{HotelID: int64(i + 1), Name: n})
	}
	p.Pagination = domain.Pagination{Count: len(names), PageSize: 8, CurrentPage: 1, TotalPages: 1}
	return p
}

// ---- tests ----

func TestHotels_GetActive_FailureYieldsSentinel(t *testing.T) {
	api := &fakeAPI{hotelErr: errors.New("status 500")}
	cache := &fakeCache{}
	svc := app.NewContentService(api, cache, time.Minute)

	got := svc.Hotels().GetActive(context.Background(), 1, 8)
	if got.Success || len(got.Items) != 0 || got.Items == nil {
		t.Fatalf("expected empty sentinel, got %+v", got)
	}
	pg := got.Pagination
	if pg.Count != 0 || pg.TotalPages != 0 || pg.PageSize != 8 || pg.CurrentPage != 1 {
		t.Fatalf("unexpected sentinel pagination: %+v", pg)
	}
	if len(cache.store) != 0 {
		t.Fatalf("failures must not be cached")
	}

	// next call goes to the API again
	svc.Hotels().GetActive(context.Background(), 1, 8)
	if api.count("hotels") != 2 {
		t.Fatalf("expected 2 API calls, got %d", api.count("hotels"))
	}
}

func TestHotels_GetActive_CacheMissThenHit(t *testing.T) {
	api := &fakeAPI{hotels: hotelsPage("Maratua Inn", "Teluk Sulaiman Lodge")}
	svc := app.NewContentService(api, &fakeCache{}, time.Minute)

	got := svc.Hotels().GetActive(context.Background(), 1, 8)
	if !got.Success || len(got.Items) != 2 {
		t.Fatalf("unexpected page: %+v", got)
	}
	if q := api.queries[0]; !q.Active || q.Page != 1 || q.PageSize != 8 {
		t.Fatalf("unexpected query: %+v", q)
	}

	// mutate upstream; second read must come from cache
	api.hotels = hotelsPage("SHOULD NOT SEE THIS")
	got = svc.Hotels().GetActive(context.Background(), 1, 8)
	if len(got.Items) != 2 || got.Items[0].Name != "Maratua Inn" {
		t.Fatalf("expected cached page, got %+v", got.Items)
	}
	if api.count("hotels") != 1 {
		t.Fatalf("expected 1 API call, got %d", api.count("hotels"))
	}
}

func TestGetByID_FailureIsNil(t *testing.T) {
	api := &fakeAPI{hotel: map[int64]domain.Hotel{7: {HotelID: 7, Name: "Biduk Homestay"}}}
	svc := app.NewContentService(api, nil, time.Minute)
	ctx := context.Background()

	if h := svc.Hotels().GetByID(ctx, 7); h == nil || h.Name != "Biduk Homestay" {
		t.Fatalf("unexpected hotel: %+v", h)
	}
	if h := svc.Hotels().GetByID(ctx, 8); h != nil {
		t.Fatalf("missing hotel should be nil, got %+v", h)
	}
	if a := svc.Articles().GetByID(ctx, 1); a != nil {
		t.Fatalf("failed article should be nil")
	}
	if d := svc.Destinations().GetByID(ctx, 0); d != nil || api.count("destination") != 0 {
		t.Fatalf("non-positive id must not reach the API")
	}
}

func TestArticles_GetAll_FallsBackToStatusAll(t *testing.T) {
	api := &fakeAPI{articles: map[string]domain.Page[domain.Article]{
		"":    {Success: true, Items: []domain.Article{}},
		"all": {Success: true, Items: []domain.Article{{ID: 3, Title: "Draft", Status: "draft"}}},
	}}
	svc := app.NewContentService(api, nil, time.Minute)

	got := svc.Articles().GetAll(context.Background(), 1, 10)
	if len(got.Items) != 1 || got.Items[0].Title != "Draft" {
		t.Fatalf("expected fallback page, got %+v", got)
	}
	if api.count("articles:") != 1 || api.count("articles:all") != 1 {
		t.Fatalf("unexpected calls: %v", api.calls)
	}

	svc.Articles().GetPublished(context.Background(), 0, 0)
	if api.count("articles:published") != 1 {
		t.Fatalf("published not requested")
	}
}

func TestGallery_DestinationsFallsBackToAll(t *testing.T) {
	api := &fakeAPI{
		gallery: []domain.GalleryImage{{ID: "1", FileURL: "a.jpg"}},
		featErr: errors.New("featured unsupported"),
	}
	svc := app.NewContentService(api, nil, time.Minute)

	got := svc.Gallery().GetDestinations(context.Background())
	if len(got) != 1 || api.count("gallery") != 1 {
		t.Fatalf("expected fallback to all images, got %+v (%v)", got, api.calls)
	}

	api.galleryErr = errors.New("down")
	if got := svc.Gallery().GetDestinations(context.Background()); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

func TestFeaturedImages(t *testing.T) {
	in := []domain.GalleryImage{
		{ID: "1", Title: "Labuan Cermin", File: "one.jpg"},
		{ID: "2", Title: "skip me"},
		{ID: "3", FileURL: "three.jpg", File: "ignored.jpg", Description: "Kaniungan"},
		{ID: "4", FileURL: "four.jpg"},
	}
	out := app.FeaturedImages(in)
	if len(out) != 3 {
		t.Fatalf("want 3 images, got %d", len(out))
	}
	want := []struct{ id, url, alt string }{
		{"4", "four.jpg", "Destination image"},
		{"3", "three.jpg", "Kaniungan"},
		{"1", "one.jpg", "Labuan Cermin"},
	}
	for i, w := range want {
		if string(out[i].ID) != w.id || out[i].ImageURL != w.url || out[i].AltText != w.alt {
			t.Fatalf("image %d = %+v, want %+v", i, out[i], w)
		}
	}
}

func TestListKey_DistinguishesQueries(t *testing.T) {
	cat := int64(2)
	a := app.ListKey(app.ResHotels, domain.ListQuery{Page: 1, PageSize: 8, Active: true})
	b := app.ListKey(app.ResHotels, domain.ListQuery{Page: 1, PageSize: 8})
	c := app.ListKey(app.ResHotels, domain.ListQuery{Page: 1, PageSize: 8, Category: &cat})
	if a == b || b == c || a == c {
		t.Fatalf("keys collide: %s %s %s", a, b, c)
	}
}
