package repository

import (
	"context"

	"clubsite/internal/content/domain/model"
)

// ListOptions narrows a collection read: a single ascending ordering key and
// optional equality filters. This mirrors the select→order→filter surface the
// row store exposes; nothing here paginates because collections are club-scale.
type ListOptions struct {
	OrderBy string
	Filter  map[string]interface{}
}

// RowRepository defines the interface for row store operations. The store is
// the sole owner of persisted row state; callers hold only transient read
// replicas refreshed after every successful mutation.
type RowRepository interface {
	List(ctx context.Context, collection string, opts ListOptions) ([]model.Row, error)
	Insert(ctx context.Context, collection string, row model.Row) error
	Update(ctx context.Context, collection, id string, row model.Row) error
	Delete(ctx context.Context, collection, id string) error
}
