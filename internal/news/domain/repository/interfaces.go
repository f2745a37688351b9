package repository

import (
	"context"

	"clubsite/internal/news/domain/model"
)

// CacheStore persists fetched news batches between requests. Get returns
// (nil, nil) on a miss; freshness is the caller's concern.
type CacheStore interface {
	Get(ctx context.Context) (*model.Batch, error)
	Set(ctx context.Context, batch *model.Batch) error
	Delete(ctx context.Context) error
}

// FetchParams are the upstream query knobs. Zero values fall back to the
// configured defaults.
type FetchParams struct {
	Kind       string
	Filter     string
	Currencies string
	Regions    string
}

// NewsFetcher retrieves and normalizes news posts from the upstream provider.
type NewsFetcher interface {
	Fetch(ctx context.Context, params FetchParams) ([]model.NewsItem, error)
}

// RawFetcher exposes the upstream posts response unmodified, for pass-through
// proxying with the server-side credential injected.
type RawFetcher interface {
	RawPosts(ctx context.Context, params FetchParams) (status int, body []byte, err error)
}
