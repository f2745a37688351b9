package news

import (
	"clubsite/internal/news/adapter/client"
	newshttp "clubsite/internal/news/adapter/http"
	"clubsite/internal/news/adapter/persistence"
	"clubsite/internal/news/config"
	"clubsite/internal/news/domain/repository"
	"clubsite/internal/news/usecase"
	"clubsite/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// NewsModule wires the upstream client, the batch cache and the HTTP surface
// into one deployable unit.
type NewsModule struct {
	store       repository.CacheStore
	fetcher     *client.CryptoPanicClient
	usecase     usecase.NewsUsecaseInterface
	handler     *newshttp.NewsHTTPHandler
	redisClient *redis.Client
	config      *config.Config
}

// NewNewsModule creates a news module backed by Redis. When redisClient is
// nil the cache falls back to process memory.
func NewNewsModule(cfg *config.Config, redisClient *redis.Client, log logger.Logger) *NewsModule {
	var store repository.CacheStore
	if redisClient != nil {
		store = persistence.NewRedisCacheStore(redisClient, cfg.CacheKey, cfg.CacheTTL, log)
	} else {
		store = persistence.NewMemoryCacheStore()
	}

	fetcher := client.NewCryptoPanicClient(cfg, log)
	uc := usecase.NewNewsUsecase(store, fetcher, cfg.CacheTTL, log)

	return &NewsModule{
		store:       store,
		fetcher:     fetcher,
		usecase:     uc,
		handler:     newshttp.NewNewsHTTPHandler(uc, fetcher, log),
		redisClient: redisClient,
		config:      cfg,
	}
}

// RegisterRoutes registers the news routes with the provided router.
func (nm *NewsModule) RegisterRoutes(router fiber.Router) {
	nm.handler.RegisterRoutes(router)
}

// GetUsecase returns the news usecase for external access.
func (nm *NewsModule) GetUsecase() usecase.NewsUsecaseInterface {
	return nm.usecase
}

// Stop closes the module's Redis connection, if any.
func (nm *NewsModule) Stop() error {
	if nm.redisClient != nil {
		return nm.redisClient.Close()
	}
	return nil
}
