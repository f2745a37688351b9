package content

import (
	"fmt"

	contenthttp "clubsite/internal/content/adapter/http"
	"clubsite/internal/content/adapter/persistence/mongodb"
	"clubsite/internal/content/config"
	"clubsite/internal/content/domain/repository"
	"clubsite/internal/content/schema"
	"clubsite/internal/content/usecase"
	"clubsite/internal/shared/eventbus"
	"clubsite/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContentModule wires the row store, the schema registry, the usecases and the
// HTTP handlers into one deployable unit.
type ContentModule struct {
	repository    repository.RowRepository
	registry      *schema.Registry
	adminUsecase  usecase.AdminUsecaseInterface
	publicUsecase usecase.ResourceUsecaseInterface
	adminHandler  *contenthttp.AdminHTTPHandler
	publicHandler *contenthttp.PublicHTTPHandler
	config        *config.Config
}

// NewContentModule creates a new content module instance.
func NewContentModule(db *mongo.Database, cfg *config.Config, bus eventbus.EventBusInterface, log logger.Logger) (*ContentModule, error) {
	rowRepo, err := mongodb.NewMongoRowRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create row repository: %w", err)
	}

	registry := schema.NewRegistry()
	adminUC := usecase.NewAdminUsecase(rowRepo, registry, bus, log)
	publicUC := usecase.NewResourceUsecase(rowRepo, log)

	return &ContentModule{
		repository:    rowRepo,
		registry:      registry,
		adminUsecase:  adminUC,
		publicUsecase: publicUC,
		adminHandler:  contenthttp.NewAdminHTTPHandler(adminUC, log),
		publicHandler: contenthttp.NewPublicHTTPHandler(publicUC, log),
		config:        cfg,
	}, nil
}

// RegisterRoutes registers the public content routes and the admin routes.
// The admin surface sits behind the supplied auth middleware.
func (cm *ContentModule) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	cm.publicHandler.RegisterRoutes(router)
	cm.adminHandler.RegisterRoutes(router, protect)
}

// GetAdminUsecase returns the admin usecase for external access.
func (cm *ContentModule) GetAdminUsecase() usecase.AdminUsecaseInterface {
	return cm.adminUsecase
}

// GetPublicUsecase returns the public resource usecase for external access.
func (cm *ContentModule) GetPublicUsecase() usecase.ResourceUsecaseInterface {
	return cm.publicUsecase
}

// Stop performs cleanup when the module is shut down.
func (cm *ContentModule) Stop() error {
	return nil
}
