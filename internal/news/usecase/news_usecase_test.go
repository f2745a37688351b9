package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubsite/internal/news/adapter/persistence"
	"clubsite/internal/news/domain/model"
	"clubsite/internal/news/domain/repository"
	"clubsite/internal/news/usecase"
	"clubsite/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	items []model.NewsItem
	err   error
	calls int
}

func (f *countingFetcher) Fetch(ctx context.Context, params repository.FetchParams) ([]model.NewsItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type failingStore struct {
	getErr error
	setErr error
	sets   int
}

func (s *failingStore) Get(ctx context.Context) (*model.Batch, error) { return nil, s.getErr }
func (s *failingStore) Set(ctx context.Context, batch *model.Batch) error {
	s.sets++
	return s.setErr
}
func (s *failingStore) Delete(ctx context.Context) error { return nil }

func sampleItems() []model.NewsItem {
	return []model.NewsItem{
		{ID: "1", Title: "BTC breaks range", Source: "CoinDesk", Sentiment: model.SentimentBullish},
		{ID: "2", Title: "ETH fees drop", Source: "The Block", Sentiment: model.SentimentNeutral},
	}
}

func TestGetNews_FreshCacheSkipsFetch(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryCacheStore()
	require.NoError(t, store.Set(ctx, &model.Batch{
		Items:     sampleItems(),
		FetchedAt: time.Now().Add(-1 * time.Hour),
	}))

	fetcher := &countingFetcher{items: nil}
	uc := usecase.NewNewsUsecase(store, fetcher, 12*time.Hour, logger.NewLogger())

	items, err := uc.GetNews(ctx, repository.FetchParams{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "BTC breaks range", items[0].Title)
	assert.Equal(t, 0, fetcher.calls)
}

func TestGetNews_ExpiredCacheRefetches(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryCacheStore()
	require.NoError(t, store.Set(ctx, &model.Batch{
		Items:     []model.NewsItem{{ID: "old", Title: "stale headline"}},
		FetchedAt: time.Now().Add(-13 * time.Hour),
	}))

	fetcher := &countingFetcher{items: sampleItems()}
	uc := usecase.NewNewsUsecase(store, fetcher, 12*time.Hour, logger.NewLogger())

	items, err := uc.GetNews(ctx, repository.FetchParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)

	cached, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Len(t, cached.Items, 2)
	assert.True(t, cached.Fresh(12*time.Hour, time.Now()))
}

func TestGetNews_EmptyCacheFetchesAndStores(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryCacheStore()
	fetcher := &countingFetcher{items: sampleItems()}
	uc := usecase.NewNewsUsecase(store, fetcher, 12*time.Hour, logger.NewLogger())

	items, err := uc.GetNews(ctx, repository.FetchParams{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, fetcher.calls)

	cached, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Len(t, cached.Items, 2)
}

func TestGetNews_FetchFailureNeverServesExpiredData(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryCacheStore()
	require.NoError(t, store.Set(ctx, &model.Batch{
		Items:     []model.NewsItem{{ID: "old", Title: "stale headline"}},
		FetchedAt: time.Now().Add(-13 * time.Hour),
	}))

	fetcher := &countingFetcher{err: errors.New("upstream unreachable")}
	uc := usecase.NewNewsUsecase(store, fetcher, 12*time.Hour, logger.NewLogger())

	items, err := uc.GetNews(ctx, repository.FetchParams{})
	assert.Error(t, err)
	assert.Nil(t, items)

	// Expired entry was evicted, not kept around for a later stale serve.
	cached, getErr := store.Get(ctx)
	require.NoError(t, getErr)
	assert.Nil(t, cached)
}

func TestGetNews_CacheReadFailureDegradesToFetch(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{getErr: errors.New("redis down")}
	fetcher := &countingFetcher{items: sampleItems()}
	uc := usecase.NewNewsUsecase(store, fetcher, 12*time.Hour, logger.NewLogger())

	items, err := uc.GetNews(ctx, repository.FetchParams{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, fetcher.calls)
}

func TestGetNews_CacheWriteFailureStillServesItems(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{setErr: errors.New("redis down")}
	fetcher := &countingFetcher{items: sampleItems()}
	uc := usecase.NewNewsUsecase(store, fetcher, 12*time.Hour, logger.NewLogger())

	items, err := uc.GetNews(ctx, repository.FetchParams{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, store.sets)
}
