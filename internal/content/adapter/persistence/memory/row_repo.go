package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"clubsite/internal/content/domain/model"
	"clubsite/internal/content/domain/repository"
	apperrors "clubsite/internal/shared/errors"
)

// MemoryRowRepository implements the RowRepository interface in memory. It
// serves tests and local development where no MongoDB instance is available,
// and mirrors the store's semantics including declared unique constraints.
type MemoryRowRepository struct {
	mu      sync.RWMutex
	rows    map[string][]model.Row
	uniques map[string][][]string
}

// NewMemoryRowRepository creates an empty in-memory row repository with the
// same unique constraints the MongoDB repository declares.
func NewMemoryRowRepository() *MemoryRowRepository {
	repo := &MemoryRowRepository{
		rows:    make(map[string][]model.Row),
		uniques: make(map[string][][]string),
	}
	repo.Unique("event_rsvps", "event_id", "email")
	repo.Unique("newsletter_subscribers", "email")
	return repo
}

// Unique declares a composite unique constraint for a collection.
func (r *MemoryRowRepository) Unique(collection string, keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uniques[collection] = append(r.uniques[collection], keys)
}

// Seed loads rows into a collection without constraint checks.
func (r *MemoryRowRepository) Seed(collection string, rows ...model.Row) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.rows[collection] = append(r.rows[collection], row.Clone())
	}
}

// List returns filtered rows sorted ascending by the ordering key.
func (r *MemoryRowRepository) List(ctx context.Context, collection string, opts repository.ListOptions) ([]model.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Row
	for _, row := range r.rows[collection] {
		if matches(row, opts.Filter) {
			out = append(out, row.Clone())
		}
	}

	if opts.OrderBy != "" {
		key := opts.OrderBy
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i][key], out[j][key])
		})
	}
	return out, nil
}

// Insert stores one row, enforcing declared unique constraints.
func (r *MemoryRowRepository) Insert(ctx context.Context, collection string, row model.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, keys := range r.uniques[collection] {
		for _, existing := range r.rows[collection] {
			if sameKeys(existing, row, keys) {
				return apperrors.NewConflictError("duplicate row")
			}
		}
	}

	r.rows[collection] = append(r.rows[collection], row.Clone())
	return nil
}

// Update replaces the given columns of the row identified by id.
func (r *MemoryRowRepository) Update(ctx context.Context, collection, id string, row model.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.rows[collection] {
		if existing.ID() == id {
			updated := existing.Clone()
			for k, v := range row {
				updated[k] = v
			}
			r.rows[collection][i] = updated
			return nil
		}
	}
	return apperrors.NewNotFoundError("row")
}

// Delete removes the row identified by id.
func (r *MemoryRowRepository) Delete(ctx context.Context, collection, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.rows[collection] {
		if existing.ID() == id {
			r.rows[collection] = append(r.rows[collection][:i], r.rows[collection][i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("row")
}

func matches(row model.Row, filter map[string]interface{}) bool {
	for k, want := range filter {
		if fmt.Sprint(row[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func sameKeys(a, b model.Row, keys []string) bool {
	for _, k := range keys {
		if a.String(k) != b.String(k) {
			return false
		}
	}
	return len(keys) > 0
}

// less compares two column values, numerically when both sides are numbers
// and lexically otherwise.
func less(a, b interface{}) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b)) < 0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
