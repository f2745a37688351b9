package di

import (
	"context"
	"fmt"
	"sync"

	"clubsite/internal/auth"
	authconfig "clubsite/internal/auth/config"
	"clubsite/internal/content"
	contentconfig "clubsite/internal/content/config"
	"clubsite/internal/news"
	newsconfig "clubsite/internal/news/config"
	"clubsite/internal/shared/eventbus"
	"clubsite/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires module instances, shared infrastructure and their shutdown
// order into one place.
type Container struct {
	mu sync.RWMutex

	// Module instances
	AuthModule    *auth.AuthModule
	ContentModule *content.ContentModule
	NewsModule    *news.NewsModule

	// Shared infrastructure
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	EventBus    eventbus.EventBusInterface
	Logger      logger.Logger

	// Configuration
	AuthConfig    *authconfig.Config
	ContentConfig *contentconfig.Config
	NewsConfig    *newsconfig.Config
}

// NewContainer creates a new DI container.
func NewContainer(log logger.Logger) *Container {
	return &Container{
		EventBus: eventbus.NewEventBus(log),
		Logger:   log,
	}
}

// InitializeAuth initializes the authentication module.
func (c *Container) InitializeAuth(mongoDB *mongo.Database, cfg *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoDB = mongoDB
	c.AuthConfig = cfg

	authModule, err := auth.NewAuthModule(mongoDB, cfg, c.EventBus, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeContent initializes the content module. Requires MongoDB from
// InitializeAuth.
func (c *Container) InitializeContent(cfg *contentconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before the content module")
	}
	c.ContentConfig = cfg

	contentModule, err := content.NewContentModule(c.MongoDB, cfg, c.EventBus, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create content module: %w", err)
	}

	c.ContentModule = contentModule
	return nil
}

// InitializeNews initializes the news module. A nil redisClient leaves the
// news cache in process memory.
func (c *Container) InitializeNews(cfg *newsconfig.Config, redisClient *redis.Client) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.NewsConfig = cfg
	c.RedisClient = redisClient
	c.NewsModule = news.NewNewsModule(cfg, redisClient, c.Logger)
	return nil
}

// GetAuthModule returns the auth module instance.
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetContentModule returns the content module instance.
func (c *Container) GetContentModule() *content.ContentModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ContentModule
}

// GetNewsModule returns the news module instance.
func (c *Container) GetNewsModule() *news.NewsModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NewsModule
}

// HealthCheck verifies the shared backends are reachable.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB != nil {
		if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis health check failed: %w", err)
		}
	}
	return nil
}

// Close shuts the modules down in reverse order of initialization.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error

	if c.NewsModule != nil {
		if err := c.NewsModule.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.NewsModule = nil
	}
	if c.ContentModule != nil {
		if err := c.ContentModule.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.ContentModule = nil
	}
	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.AuthModule = nil
	}

	return firstErr
}
