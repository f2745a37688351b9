package usecase

import (
	"context"
	"time"

	"clubsite/internal/news/domain/model"
	"clubsite/internal/news/domain/repository"
	"clubsite/internal/shared/logger"

	"go.uber.org/zap"
)

// NewsUsecaseInterface defines the news feed operations.
type NewsUsecaseInterface interface {
	GetNews(ctx context.Context, params repository.FetchParams) ([]model.NewsItem, error)
}

// NewsUsecase serves the crypto news feed through the batch cache: a fresh
// cached batch answers without network traffic, an expired one is deleted and
// replaced by a new fetch. A failed fetch never falls back to expired data.
type NewsUsecase struct {
	store   repository.CacheStore
	fetcher repository.NewsFetcher
	ttl     time.Duration
	now     func() time.Time
	logger  logger.Logger
}

// NewNewsUsecase creates a new NewsUsecase.
func NewNewsUsecase(store repository.CacheStore, fetcher repository.NewsFetcher, ttl time.Duration, log logger.Logger) *NewsUsecase {
	return &NewsUsecase{
		store:   store,
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
		logger:  log.WithComponent("news_usecase"),
	}
}

// GetNews returns the current news batch, fetching upstream only when the
// cache has no fresh entry. Cache read failures degrade to a direct fetch;
// cache write failures degrade to serving the fetched items uncached.
func (uc *NewsUsecase) GetNews(ctx context.Context, params repository.FetchParams) ([]model.NewsItem, error) {
	batch, err := uc.store.Get(ctx)
	if err != nil {
		uc.logger.Warn("News cache read failed, fetching upstream", zap.Error(err))
	}
	if batch != nil {
		if batch.Fresh(uc.ttl, uc.now()) {
			uc.logger.Debug("Serving news from cache",
				zap.Int("items", len(batch.Items)),
				zap.Time("fetchedAt", batch.FetchedAt))
			return batch.Items, nil
		}
		if delErr := uc.store.Delete(ctx); delErr != nil {
			uc.logger.Warn("Failed to delete expired news cache entry", zap.Error(delErr))
		}
	}

	items, err := uc.fetcher.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	fresh := &model.Batch{Items: items, FetchedAt: uc.now()}
	if err := uc.store.Set(ctx, fresh); err != nil {
		uc.logger.Warn("Failed to cache fetched news batch", zap.Error(err))
	}
	return items, nil
}
