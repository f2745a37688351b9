package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clubsite/internal/news/domain/model"
	"clubsite/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCacheStore persists news batches in Redis as JSON under a single key.
// The key carries a TTL as a backstop, but freshness is still judged on the
// batch's own FetchedAt so a clock or TTL mismatch never serves stale data.
type RedisCacheStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisCacheStore creates a new Redis-backed news cache store.
func NewRedisCacheStore(client *redis.Client, key string, ttl time.Duration, log logger.Logger) *RedisCacheStore {
	return &RedisCacheStore{
		client: client,
		key:    key,
		ttl:    ttl,
		logger: log.WithComponent("news_cache"),
	}
}

// Get returns the cached batch, or (nil, nil) when nothing is cached. A batch
// that fails to decode is treated as a miss and removed.
func (s *RedisCacheStore) Get(ctx context.Context) (*model.Batch, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		s.logger.Error("Failed to read news cache", zap.String("key", s.key), zap.Error(err))
		return nil, err
	}

	var batch model.Batch
	if err := json.Unmarshal(raw, &batch); err != nil {
		s.logger.Warn("Discarding undecodable news cache entry", zap.String("key", s.key), zap.Error(err))
		_ = s.client.Del(ctx, s.key).Err()
		return nil, nil
	}
	return &batch, nil
}

// Set stores the batch, replacing any previous entry.
func (s *RedisCacheStore) Set(ctx context.Context, batch *model.Batch) error {
	raw, err := json.Marshal(batch)
	if err != nil {
		s.logger.Error("Failed to serialize news batch", zap.Error(err))
		return err
	}
	if err := s.client.Set(ctx, s.key, raw, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to write news cache", zap.String("key", s.key), zap.Error(err))
		return err
	}
	s.logger.Debug("News cache updated",
		zap.String("key", s.key),
		zap.Int("items", len(batch.Items)),
		zap.Time("fetchedAt", batch.FetchedAt))
	return nil
}

// Delete removes the cached batch.
func (s *RedisCacheStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		s.logger.Error("Failed to delete news cache", zap.String("key", s.key), zap.Error(err))
		return err
	}
	return nil
}
