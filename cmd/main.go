package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authconfig "clubsite/internal/auth/config"
	contentconfig "clubsite/internal/content/config"
	"clubsite/internal/di"
	newsconfig "clubsite/internal/news/config"
	"clubsite/internal/shared/logger"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"localhost"`
	Port string `env:"SERVER_PORT" envDefault:"3000"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	appLogger := logger.NewLogger()
	appLogger.Info("Application configuration loaded successfully")

	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	contentCfg, err := contentconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load content configuration: %v", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(contentCfg.MongoDBURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	appLogger.Info("MongoDB connection established successfully")

	authCfg, err := authconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load auth configuration: %v", err)
	}

	newsCfg, err := newsconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load news configuration: %v", err)
	}

	mongoDB := mongoClient.Database(contentCfg.DatabaseName)

	if err := container.InitializeAuth(mongoDB, authCfg); err != nil {
		log.Fatalf("Failed to initialize auth module: %v", err)
	}
	appLogger.Info("Auth module initialized successfully")

	if err := container.InitializeContent(contentCfg); err != nil {
		log.Fatalf("Failed to initialize content module: %v", err)
	}
	appLogger.Info("Content module initialized successfully")

	redisClient := connectRedis(ctx, newsCfg, appLogger)
	if err := container.InitializeNews(newsCfg, redisClient); err != nil {
		log.Fatalf("Failed to initialize news module: %v", err)
	}
	appLogger.Info("News module initialized successfully")

	app := fiber.New(fiber.Config{
		AppName:      "Club Site API v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		},
	})

	app.Use(recover.New())

	authModule := container.GetAuthModule()
	middleware := authModule.GetMiddleware()
	app.Use(middleware.CORS())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.RequestID())

	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "UNHEALTHY",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"timestamp": time.Now().UTC(),
			"modules": fiber.Map{
				"auth":    "initialized",
				"content": "initialized",
				"news":    "initialized",
			},
		})
	})

	api := app.Group("/api")
	authModule.RegisterRoutes(api)
	appLogger.Info("Auth routes registered")

	container.GetContentModule().RegisterRoutes(api, middleware.Protect())
	appLogger.Info("Content routes registered")

	container.GetNewsModule().RegisterRoutes(api)
	appLogger.Info("News routes registered")

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("All modules initialized. Starting HTTP server on %s", serverAddr)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}
		appLogger.Info("HTTP server stopped")
	}
}

// connectRedis attempts to reach the configured Redis backend. The news cache
// falls back to process memory when Redis is unavailable at startup.
func connectRedis(ctx context.Context, cfg *newsconfig.Config, log logger.Logger) *redis.Client {
	client := newsconfig.NewRedisClient(&cfg.Redis)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("Redis unavailable (%v), news cache will use process memory", err)
		_ = client.Close()
		return nil
	}
	log.Info("Redis connection established successfully")
	return client
}
