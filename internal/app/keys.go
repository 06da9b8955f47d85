package app

import (
	"context"
	"fmt"
	"strconv"

	"biduk_site/internal/domain"
)

// Resource names shared by cache keys, metrics labels and the warm log.
const (
	ResDestinations = "destinations"
	ResHotels       = "hotels"
	ResPackages     = "packages"
	ResArticles     = "articles"
	ResGallery      = "gallery"
)

func ListKey(resource string, q domain.ListQuery) string {
	cat := "-"
	if q.Category != nil {
		cat = strconv.FormatInt(*q.Category, 10)
	}
	return fmt.Sprintf("list:%s:a=%t:c=%s:s=%s:p=%d:n=%d", resource, q.Active, cat, q.Status, q.Page, q.PageSize)
}

func DetailKey(resource string, id int64) string {
	return fmt.Sprintf("detail:%s:%d", resource, id)
}

func GalleryKey(q domain.GalleryQuery) string {
	return fmt.Sprintf("gallery:f=%t:c=%s", q.Featured, q.Category)
}

// NopCache is used when no Redis is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Set(context.Context, string, any, int) error    { return nil }
func (NopCache) Del(context.Context, string) error              { return nil }
