package auth

import (
	"fmt"

	authhttp "clubsite/internal/auth/adapter/http"
	"clubsite/internal/auth/adapter/persistence/mongodb"
	"clubsite/internal/auth/adapter/security"
	"clubsite/internal/auth/config"
	"clubsite/internal/auth/domain/repository"
	"clubsite/internal/auth/usecase"
	"clubsite/internal/shared/eventbus"
	"clubsite/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthModule represents the complete authentication module.
type AuthModule struct {
	repository repository.AuthRepository
	tokenSvc   repository.TokenService
	usecase    usecase.AuthUsecaseInterface
	handler    *authhttp.AuthHTTPHandler
	watch      *authhttp.SessionWatchHandler
	config     *config.Config
}

// NewAuthModule creates a new authentication module instance.
func NewAuthModule(db *mongo.Database, cfg *config.Config, bus eventbus.EventBusInterface, log logger.Logger) (*AuthModule, error) {
	authRepo, err := mongodb.NewMongoAuthRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth repository: %w", err)
	}

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(authRepo, tokenSvc, bus, cfg)

	handler := authhttp.NewAuthHTTPHandler(
		authUsecase,
		cfg.CookieName,
		cfg.CookiePath,
		cfg.CookieDomain,
		int(cfg.AccessTokenTTL.Seconds()),
		cfg.CookieSecure,
		cfg.CookieHTTPOnly,
		cfg.CookieSameSite,
	)

	return &AuthModule{
		repository: authRepo,
		tokenSvc:   tokenSvc,
		usecase:    authUsecase,
		handler:    handler,
		watch:      authhttp.NewSessionWatchHandler(bus, log),
		config:     cfg,
	}, nil
}

// RegisterRoutes registers authentication routes with the provided router.
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	middleware := am.GetMiddleware()
	am.handler.SetupAuthRoutesWithMiddleware(router, middleware)
	am.watch.RegisterRoutes(router)
}

// GetUsecase returns the auth usecase for external access.
func (am *AuthModule) GetUsecase() usecase.AuthUsecaseInterface {
	return am.usecase
}

// GetMiddleware returns the auth middleware.
func (am *AuthModule) GetMiddleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(am.usecase, am.config.CookieName)
}

// Stop performs cleanup when the module is shut down.
func (am *AuthModule) Stop() error {
	return nil
}
