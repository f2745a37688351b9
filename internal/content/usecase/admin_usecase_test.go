package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"clubsite/internal/content/adapter/persistence/memory"
	"clubsite/internal/content/domain/model"
	"clubsite/internal/content/domain/repository"
	"clubsite/internal/content/schema"
	"clubsite/internal/content/usecase"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/eventbus"
	"clubsite/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// recordingBus captures published events synchronously for assertions.
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (b *recordingBus) Subscribe(eventType string, handler eventbus.Handler) {}
func (b *recordingBus) Publish(ctx context.Context, event eventbus.Event) error {
	b.PublishAndForget(ctx, event)
	return nil
}
func (b *recordingBus) PublishAndForget(ctx context.Context, event eventbus.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}
func (b *recordingBus) Unsubscribe(eventType string)            {}
func (b *recordingBus) GetSubscriberCount(eventType string) int { return 0 }
func (b *recordingBus) GetEventTypes() []string                 { return nil }

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type()
	}
	return out
}

// mockRowRepository is used for failure injection.
type mockRowRepository struct {
	mock.Mock
}

func (m *mockRowRepository) List(ctx context.Context, collection string, opts repository.ListOptions) ([]model.Row, error) {
	args := m.Called(ctx, collection, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Row), args.Error(1)
}

func (m *mockRowRepository) Insert(ctx context.Context, collection string, row model.Row) error {
	args := m.Called(ctx, collection, row)
	return args.Error(0)
}

func (m *mockRowRepository) Update(ctx context.Context, collection, id string, row model.Row) error {
	args := m.Called(ctx, collection, id, row)
	return args.Error(0)
}

func (m *mockRowRepository) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

type AdminUsecaseTestSuite struct {
	suite.Suite
	repo *memory.MemoryRowRepository
	bus  *recordingBus
	uc   *usecase.AdminUsecase
	ctx  context.Context
}

func (s *AdminUsecaseTestSuite) SetupTest() {
	s.repo = memory.NewMemoryRowRepository()
	s.bus = &recordingBus{}
	s.uc = usecase.NewAdminUsecase(s.repo, schema.NewRegistry(), s.bus, logger.NewLogger())
	s.ctx = context.Background()
}

func TestAdminUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AdminUsecaseTestSuite))
}

func (s *AdminUsecaseTestSuite) teamForm(id string) model.Row {
	return model.Row{
		"id":        id,
		"code":      "OP-" + id,
		"name":      "Nova",
		"role":      "ANALYST",
		"status":    "ONLINE",
		"specialty": "defi, l2",
		"bio":       "On-chain analyst.",
	}
}

func (s *AdminUsecaseTestSuite) TestCreateRow_InsertsAndRefetches() {
	result, err := s.uc.CreateRow(s.ctx, "team", s.teamForm("m1"))
	s.Require().NoError(err)
	s.False(result.Stale)
	s.Require().Len(result.Rows, 1)
	s.Equal("m1", result.Rows[0].ID())
	s.Equal([]string{"defi", "l2"}, result.Rows[0].Strings("specialty"))

	s.Equal([]string{eventbus.EventTypeRowCreated}, s.bus.types())
}

func (s *AdminUsecaseTestSuite) TestCreateRow_ValidationFailureTouchesNothing() {
	form := s.teamForm("m1")
	delete(form, "name")

	_, err := s.uc.CreateRow(s.ctx, "team", form)
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))

	rows, listErr := s.uc.ListRows(s.ctx, "team")
	s.Require().NoError(listErr)
	s.Empty(rows)
	s.Empty(s.bus.types())
}

func (s *AdminUsecaseTestSuite) TestUpdateRow_MergesAndRefetches() {
	_, err := s.uc.CreateRow(s.ctx, "team", s.teamForm("m1"))
	s.Require().NoError(err)

	form := s.teamForm("m1")
	form["status"] = "BUSY"
	result, err := s.uc.UpdateRow(s.ctx, "team", "m1", form)
	s.Require().NoError(err)
	s.Require().Len(result.Rows, 1)
	s.Equal("BUSY", result.Rows[0].String("status"))
}

func (s *AdminUsecaseTestSuite) TestDeleteRow_RemovesAndRefetches() {
	_, err := s.uc.CreateRow(s.ctx, "team", s.teamForm("m1"))
	s.Require().NoError(err)

	result, err := s.uc.DeleteRow(s.ctx, "team", "m1")
	s.Require().NoError(err)
	s.Empty(result.Rows)

	s.Equal([]string{eventbus.EventTypeRowCreated, eventbus.EventTypeRowDeleted}, s.bus.types())
}

func (s *AdminUsecaseTestSuite) TestMutationsRejectedOnReadOnlyResources() {
	for _, resource := range []string{"submissions", "newsletter"} {
		_, err := s.uc.CreateRow(s.ctx, resource, model.Row{"id": "x"})
		s.Require().Error(err)
		s.Equal(405, apperrors.HTTPStatus(err))

		_, err = s.uc.UpdateRow(s.ctx, resource, "x", model.Row{})
		s.Require().Error(err)
		s.Equal(405, apperrors.HTTPStatus(err))

		_, err = s.uc.DeleteRow(s.ctx, resource, "x")
		s.Require().Error(err)
		s.Equal(405, apperrors.HTTPStatus(err))
	}
	s.Empty(s.bus.types())
}

func (s *AdminUsecaseTestSuite) TestListRows_ReadOnlyResourceStillReadable() {
	s.repo.Seed("contact_submissions", model.Row{"id": "s1", "org_name": "ACME", "created_at": "2026-01-10T00:00:00Z"})

	rows, err := s.uc.ListRows(s.ctx, "submissions")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("ACME", rows[0].String("org_name"))
}

func (s *AdminUsecaseTestSuite) TestListRows_AppliesInboundMapping() {
	s.repo.Seed("news_flash_items", model.Row{"id": "n1", "time": "08:00", "is_alert": true})

	rows, err := s.uc.ListRows(s.ctx, "news")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("true", rows[0]["is_alert"])
}

func (s *AdminUsecaseTestSuite) TestUnknownResource() {
	_, err := s.uc.ListRows(s.ctx, "widgets")
	s.Require().Error(err)
	s.True(apperrors.IsNotFound(err))
}

func TestCreateRow_RefetchFailureReturnsStaleResult(t *testing.T) {
	repo := new(mockRowRepository)
	bus := &recordingBus{}
	uc := usecase.NewAdminUsecase(repo, schema.NewRegistry(), bus, logger.NewLogger())

	repo.On("Insert", mock.Anything, "team_members", mock.Anything).Return(nil)
	repo.On("List", mock.Anything, "team_members", mock.Anything).Return(nil, errors.New("connection reset"))

	result, err := uc.CreateRow(context.Background(), "team", model.Row{
		"id": "m1", "code": "OP-1", "name": "Nova", "role": "ANALYST",
		"status": "ONLINE", "bio": "bio",
	})
	require.NoError(t, err)
	assert.True(t, result.Stale)
	assert.Empty(t, result.Rows)
	assert.Equal(t, []string{eventbus.EventTypeRowCreated}, bus.types())
}

func TestCreateRow_InsertFailurePropagates(t *testing.T) {
	repo := new(mockRowRepository)
	bus := &recordingBus{}
	uc := usecase.NewAdminUsecase(repo, schema.NewRegistry(), bus, logger.NewLogger())

	repo.On("Insert", mock.Anything, "team_members", mock.Anything).Return(errors.New("write failed"))

	_, err := uc.CreateRow(context.Background(), "team", model.Row{
		"id": "m1", "code": "OP-1", "name": "Nova", "role": "ANALYST",
		"status": "ONLINE", "bio": "bio",
	})
	require.Error(t, err)
	assert.Empty(t, bus.types())
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}
