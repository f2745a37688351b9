package usecase

import (
	"context"
	"fmt"

	"clubsite/internal/content/domain/model"
	"clubsite/internal/content/domain/repository"
	"clubsite/internal/content/schema"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/eventbus"
	"clubsite/internal/shared/logger"
)

// MutationResult is what every admin mutation returns: the freshly re-fetched
// list. A mutation that succeeded but whose mandatory re-fetch failed reports
// Stale=true with the rows it could not refresh, never a rollback.
type MutationResult struct {
	Rows  []model.Row `json:"rows"`
	Stale bool        `json:"stale"`
}

// AdminUsecaseInterface defines the contract for the generic admin CRUD flows.
// Every operation is parameterized by a resource key resolved against the
// schema registry.
type AdminUsecaseInterface interface {
	Schema(resource string) (*model.ResourceSchema, error)
	Tabs() []schema.Tab
	ListRows(ctx context.Context, resource string) ([]model.Row, error)
	CreateRow(ctx context.Context, resource string, form model.Row) (*MutationResult, error)
	UpdateRow(ctx context.Context, resource, id string, form model.Row) (*MutationResult, error)
	DeleteRow(ctx context.Context, resource, id string) (*MutationResult, error)
}

// AdminUsecase implements the admin table logic over the row repository.
type AdminUsecase struct {
	repo     repository.RowRepository
	registry *schema.Registry
	bus      eventbus.EventBusInterface
	logger   logger.Logger
}

// NewAdminUsecase creates a new AdminUsecase.
func NewAdminUsecase(
	repo repository.RowRepository,
	registry *schema.Registry,
	bus eventbus.EventBusInterface,
	log logger.Logger,
) *AdminUsecase {
	return &AdminUsecase{
		repo:     repo,
		registry: registry,
		bus:      bus,
		logger:   log.WithComponent("admin_usecase"),
	}
}

// Schema resolves a resource key against the registry.
func (uc *AdminUsecase) Schema(resource string) (*model.ResourceSchema, error) {
	s, ok := uc.registry.Get(resource)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("resource %q", resource))
	}
	return s, nil
}

// Tabs returns the console tab catalog.
func (uc *AdminUsecase) Tabs() []schema.Tab {
	return uc.registry.Tabs()
}

// ListRows fetches the full collection, ordered, and applies the schema's
// inbound mapping to each row. No pagination: collections are club-scale.
func (uc *AdminUsecase) ListRows(ctx context.Context, resource string) ([]model.Row, error) {
	s, err := uc.Schema(resource)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.List(ctx, s.Collection, repository.ListOptions{OrderBy: s.OrderBy})
	if err != nil {
		uc.logger.WithContext(ctx).Errorf("Failed to list %s: %v", s.Collection, err)
		return nil, apperrors.WrapError(err, fmt.Sprintf("failed to fetch %s", s.Collection))
	}

	mapped := make([]model.Row, len(rows))
	for i, row := range rows {
		mapped[i] = s.MapInbound(row)
	}
	return mapped, nil
}

// CreateRow decodes the submitted form record against the schema's field
// list, applies the outbound mapping and inserts the row, then re-fetches.
func (uc *AdminUsecase) CreateRow(ctx context.Context, resource string, form model.Row) (*MutationResult, error) {
	s, err := uc.mutableSchema(resource)
	if err != nil {
		return nil, err
	}

	record, err := DecodeForm(s.Fields, form)
	if err != nil {
		return nil, err
	}

	row := s.MapOutbound(record)
	if err := uc.repo.Insert(ctx, s.Collection, row); err != nil {
		uc.logger.WithContext(ctx).Errorf("Insert into %s failed: %v", s.Collection, err)
		return nil, err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeRowCreated, map[string]string{"resource": resource, "id": row.ID()}, "admin"))

	return uc.refetch(ctx, s)
}

// UpdateRow decodes and maps like CreateRow, then updates by primary
// identifier and re-fetches.
func (uc *AdminUsecase) UpdateRow(ctx context.Context, resource, id string, form model.Row) (*MutationResult, error) {
	s, err := uc.mutableSchema(resource)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperrors.NewValidationError("row id is required")
	}

	record, err := DecodeForm(s.Fields, form)
	if err != nil {
		return nil, err
	}

	row := s.MapOutbound(record)
	if err := uc.repo.Update(ctx, s.Collection, id, row); err != nil {
		uc.logger.WithContext(ctx).Errorf("Update of %s/%s failed: %v", s.Collection, id, err)
		return nil, err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeRowUpdated, map[string]string{"resource": resource, "id": id}, "admin"))

	return uc.refetch(ctx, s)
}

// DeleteRow removes a row by identifier and re-fetches. The interactive
// confirmation lives at the transport layer; by the time this runs the
// deletion is final.
func (uc *AdminUsecase) DeleteRow(ctx context.Context, resource, id string) (*MutationResult, error) {
	s, err := uc.mutableSchema(resource)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperrors.NewValidationError("row id is required")
	}

	if err := uc.repo.Delete(ctx, s.Collection, id); err != nil {
		uc.logger.WithContext(ctx).Errorf("Delete of %s/%s failed: %v", s.Collection, id, err)
		return nil, err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeRowDeleted, map[string]string{"resource": resource, "id": id}, "admin"))

	return uc.refetch(ctx, s)
}

// mutableSchema resolves a resource and rejects mutations on read-only
// schemas regardless of the field list's contents.
func (uc *AdminUsecase) mutableSchema(resource string) (*model.ResourceSchema, error) {
	s, err := uc.Schema(resource)
	if err != nil {
		return nil, err
	}
	if s.ReadOnly {
		return nil, apperrors.NewReadOnlyError(resource)
	}
	return s, nil
}

// refetch performs the mandatory post-mutation read. The mutation has already
// succeeded, so a failed read degrades to a stale result instead of an error.
func (uc *AdminUsecase) refetch(ctx context.Context, s *model.ResourceSchema) (*MutationResult, error) {
	rows, err := uc.repo.List(ctx, s.Collection, repository.ListOptions{OrderBy: s.OrderBy})
	if err != nil {
		uc.logger.WithContext(ctx).Warnf("Post-mutation refetch of %s failed: %v", s.Collection, err)
		return &MutationResult{Rows: nil, Stale: true}, nil
	}

	mapped := make([]model.Row, len(rows))
	for i, row := range rows {
		mapped[i] = s.MapInbound(row)
	}
	return &MutationResult{Rows: mapped}, nil
}
