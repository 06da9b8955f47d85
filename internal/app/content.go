package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"biduk_site/internal/adapters/observability"
	"biduk_site/internal/domain"
)

const (
	DefaultPageSize        = 12
	DefaultArticlePageSize = 10
)

// Page sizes the HTML pages request.
const (
	HomeHotelsSize   = 12
	HomePackagesSize = 8
	HomeArticlesSize = 3
	ListPageSize     = 8
	PlacesPageSize   = 12
)

// SiteListSizes is every page size a listing is read at, by the HTML pages
// and by the JSON API defaults. The warmer fills each one.
var SiteListSizes = map[string][]int{
	ResDestinations: {DefaultPageSize, PlacesPageSize},
	ResHotels:       {DefaultPageSize, HomeHotelsSize, ListPageSize},
	ResPackages:     {DefaultPageSize, HomePackagesSize, ListPageSize},
	ResArticles:     {DefaultArticlePageSize, HomeArticlesSize, ListPageSize},
}

// ContentService is the read side of the site. Lists degrade to an empty
// sentinel page and details to nil; callers never see transport errors.
type ContentService struct {
	api      domain.ContentAPI
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewContentService(api domain.ContentAPI, c domain.Cache, ttl time.Duration) *ContentService {
	if c == nil {
		c = NopCache{}
	}
	return &ContentService{api: api, cache: c, cacheTTL: ttl}
}

func (s *ContentService) Destinations() Destinations { return Destinations{s} }
func (s *ContentService) Hotels() Hotels             { return Hotels{s} }
func (s *ContentService) Packages() Packages         { return Packages{s} }
func (s *ContentService) Articles() Articles         { return Articles{s} }
func (s *ContentService) Gallery() Gallery           { return Gallery{s} }

func (s *ContentService) ttlSec() int { return int(s.cacheTTL.Seconds()) }

func normalize(page, pageSize, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = def
	}
	return page, pageSize
}

func cachedList[T any](ctx context.Context, s *ContentService, resource string, q domain.ListQuery,
	fetch func(context.Context, domain.ListQuery) (domain.Page[T], error)) (domain.Page[T], bool) {
	key := ListKey(resource, q)
	var out domain.Page[T]
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, true
	}
	p, err := fetch(ctx, q)
	if err != nil {
		log.Error().Err(err).
			Str("resource", resource).
			Int("page", q.Page).
			Int("page_size", q.PageSize).
			Msg("list fetch failed")
		observability.ObserveFallback(resource, "list")
		msg := "Failed to fetch " + resource
		return domain.EmptyPage[T](q.Page, q.PageSize, msg), false
	}
	_ = s.cache.Set(ctx, key, p, s.ttlSec())
	return p, true
}

func cachedOne[T any](ctx context.Context, s *ContentService, resource string, id int64,
	fetch func(context.Context, int64) (T, error)) *T {
	if id <= 0 {
		return nil
	}
	key := DetailKey(resource, id)
	var out T
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return &out
	}
	v, err := fetch(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("resource", resource).Int64("id", id).Msg("detail fetch failed")
		observability.ObserveFallback(resource, "detail")
		return nil
	}
	_ = s.cache.Set(ctx, key, v, s.ttlSec())
	return &v
}

type Destinations struct{ s *ContentService }

func (d Destinations) GetAll(ctx context.Context, page, pageSize int) domain.Page[domain.Destination] {
	page, pageSize = normalize(page, pageSize, DefaultPageSize)
	p, _ := cachedList(ctx, d.s, ResDestinations, domain.ListQuery{Page: page, PageSize: pageSize}, d.s.api.ListDestinations)
	return p
}

func (d Destinations) GetActive(ctx context.Context, page, pageSize int) domain.Page[domain.Destination] {
	page, pageSize = normalize(page, pageSize, DefaultPageSize)
	p, _ := cachedList(ctx, d.s, ResDestinations, domain.ListQuery{Page: page, PageSize: pageSize, Active: true}, d.s.api.ListDestinations)
	return p
}

func (d Destinations) GetByCategory(ctx context.Context, category int64, page, pageSize int) domain.Page[domain.Destination] {
	page, pageSize = normalize(page, pageSize, DefaultPageSize)
	q := domain.ListQuery{Page: page, PageSize: pageSize, Category: &category}
	p, _ := cachedList(ctx, d.s, ResDestinations, q, d.s.api.ListDestinations)
	return p
}

func (d Destinations) GetByID(ctx context.Context, id int64) *domain.Destination {
	return cachedOne(ctx, d.s, ResDestinations, id, d.s.api.GetDestination)
}

type Hotels struct{ s *ContentService }

func (h Hotels) GetAll(ctx context.Context, page, pageSize int) domain.Page[domain.Hotel] {
	page, pageSize = normalize(page, pageSize, DefaultPageSize)
	p, _ := cachedList(ctx, h.s, ResHotels, domain.ListQuery{Page: page, PageSize: pageSize}, h.s.api.ListHotels)
	return p
}

func (h Hotels) GetActive(ctx context.Context, page, pageSize int) domain.Page[domain.Hotel] {
	page, pageSize = normalize(page, pageSize, DefaultPageSize)
	p, _ := cachedList(ctx, h.s, ResHotels, domain.ListQuery{Page: page, PageSize: pageSize, Active: true}, h.s.api.ListHotels)
	return p
}

func (h Hotels) GetByID(ctx context.Context, id int64) *domain.Hotel {
	return cachedOne(ctx, h.s, ResHotels, id, h.s.api.GetHotel)
}

type Packages struct{ s *ContentService }

func (p Packages) GetAll(ctx context.Context, page, pageSize int) domain.Page[domain.Package] {
	page, pageSize = normalize(page, pageSize, DefaultPageSize)
	out, _ := cachedList(ctx, p.s, ResPackages, domain.ListQuery{Page: page, PageSize: pageSize}, p.s.api.ListPackages)
	return out
}

func (p Packages) GetActive(ctx context.Context, page, pageSize int) domain.Page[domain.Package] {
	page, pageSize = normalize(page, pageSize, DefaultPageSize)
	out, _ := cachedList(ctx, p.s, ResPackages, domain.ListQuery{Page: page, PageSize: pageSize, Active: true}, p.s.api.ListPackages)
	return out
}

func (p Packages) GetByID(ctx context.Context, id int64) *domain.Package {
	return cachedOne(ctx, p.s, ResPackages, id, p.s.api.GetPackage)
}

type Articles struct{ s *ContentService }

// GetAll asks without a status filter first; an empty answer is retried
// once with status=all so drafts still show up.
func (a Articles) GetAll(ctx context.Context, page, pageSize int) domain.Page[domain.Article] {
	page, pageSize = normalize(page, pageSize, DefaultArticlePageSize)
	q := domain.ListQuery{Page: page, PageSize: pageSize}
	out, ok := cachedList(ctx, a.s, ResArticles, q, a.s.api.ListArticles)
	if !ok || !out.Empty() {
		return out
	}
	q.Status = "all"
	out, _ = cachedList(ctx, a.s, ResArticles, q, a.s.api.ListArticles)
	return out
}

func (a Articles) GetPublished(ctx context.Context, page, pageSize int) domain.Page[domain.Article] {
	page, pageSize = normalize(page, pageSize, DefaultArticlePageSize)
	q := domain.ListQuery{Page: page, PageSize: pageSize, Status: "published"}
	out, _ := cachedList(ctx, a.s, ResArticles, q, a.s.api.ListArticles)
	return out
}

func (a Articles) GetByCategory(ctx context.Context, category int64, page, pageSize int) domain.Page[domain.Article] {
	page, pageSize = normalize(page, pageSize, DefaultArticlePageSize)
	q := domain.ListQuery{Page: page, PageSize: pageSize, Category: &category}
	out, _ := cachedList(ctx, a.s, ResArticles, q, a.s.api.ListArticles)
	return out
}

func (a Articles) GetByID(ctx context.Context, id int64) *domain.Article {
	return cachedOne(ctx, a.s, ResArticles, id, a.s.api.GetArticle)
}

type Gallery struct{ s *ContentService }

func (g Gallery) list(ctx context.Context, q domain.GalleryQuery) ([]domain.GalleryImage, bool) {
	key := GalleryKey(q)
	var out []domain.GalleryImage
	if ok, _ := g.s.cache.Get(ctx, key, &out); ok {
		return out, true
	}
	imgs, err := g.s.api.ListGallery(ctx, q)
	if err != nil {
		log.Error().Err(err).Bool("featured", q.Featured).Str("category", q.Category).Msg("gallery fetch failed")
		observability.ObserveFallback(ResGallery, "list")
		return []domain.GalleryImage{}, false
	}
	_ = g.s.cache.Set(ctx, key, imgs, g.s.ttlSec())
	return imgs, true
}

func (g Gallery) GetAll(ctx context.Context) []domain.GalleryImage {
	out, _ := g.list(ctx, domain.GalleryQuery{})
	return out
}

// GetDestinations returns the featured images, or every image when the
// featured listing fails.
func (g Gallery) GetDestinations(ctx context.Context) []domain.GalleryImage {
	if out, ok := g.list(ctx, domain.GalleryQuery{Featured: true}); ok {
		return out
	}
	return g.GetAll(ctx)
}

func (g Gallery) GetByCategory(ctx context.Context, category string) []domain.GalleryImage {
	out, _ := g.list(ctx, domain.GalleryQuery{Category: category})
	return out
}

// FeaturedImages is the destination strip on the home page: only images with
// a file, image_url pointing at it, an alt text always set, newest last.
func (g Gallery) FeaturedImages(ctx context.Context) []domain.GalleryImage {
	return FeaturedImages(g.GetDestinations(ctx))
}

func FeaturedImages(in []domain.GalleryImage) []domain.GalleryImage {
	out := make([]domain.GalleryImage, 0, len(in))
	for _, img := range in {
		src := img.FileURL
		if src == "" {
			src = img.File
		}
		if src == "" {
			continue
		}
		img.ImageURL = src
		img.AltText = firstNonEmpty(img.AltText, img.Description, img.Title, "Destination image")
		out = append(out, img)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
