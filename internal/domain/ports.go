package domain

import "context"

// ContentAPI is the remote content backend. Implementations return errors;
// degrading them into empty results is the caller's job.
type ContentAPI interface {
	ListDestinations(ctx context.Context, q ListQuery) (Page[Destination], error)
	GetDestination(ctx context.Context, id int64) (Destination, error)
	ListHotels(ctx context.Context, q ListQuery) (Page[Hotel], error)
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	ListPackages(ctx context.Context, q ListQuery) (Page[Package], error)
	GetPackage(ctx context.Context, id int64) (Package, error)
	ListArticles(ctx context.Context, q ListQuery) (Page[Article], error)
	GetArticle(ctx context.Context, id int64) (Article, error)
	ListGallery(ctx context.Context, q GalleryQuery) ([]GalleryImage, error)
}

// Chatbot answers one user message. An empty reply with a nil error means
// the backend answered without any usable text.
type Chatbot interface {
	Reply(ctx context.Context, req ChatRequest) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set with ttlSec <= 0 stores nothing.
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type WarmLog interface {
	LogMiss(ctx context.Context, resource string, id int64, status int, reason string) error
	RecordRun(ctx context.Context, r WarmRun) error
}
