package usecase

import (
	"context"
	"testing"
	"time"

	"clubsite/internal/auth/adapter/security"
	"clubsite/internal/auth/config"
	"clubsite/internal/auth/domain/model"
	"clubsite/internal/shared/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type mockAuthRepository struct {
	mock.Mock
}

func (m *mockAuthRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockAuthRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type recordingBus struct {
	events []eventbus.Event
}

func (b *recordingBus) Subscribe(eventType string, handler eventbus.Handler) {}
func (b *recordingBus) Publish(ctx context.Context, event eventbus.Event) error {
	b.events = append(b.events, event)
	return nil
}
func (b *recordingBus) PublishAndForget(ctx context.Context, event eventbus.Event) {
	b.events = append(b.events, event)
}
func (b *recordingBus) Unsubscribe(eventType string) {}

func (b *recordingBus) GetSubscriberCount(eventType string) int { return 0 }

func (b *recordingBus) GetEventTypes() []string { return nil }

func (b *recordingBus) types() []string {
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type())
	}
	return out
}

type AuthUsecaseTestSuite struct {
	suite.Suite
	repo *mockAuthRepository
	bus  *recordingBus
	uc   *AuthUsecase
	ctx  context.Context
}

func (s *AuthUsecaseTestSuite) SetupTest() {
	cfg := &config.Config{
		JWTSecretKey:   "test-secret-key-for-suite",
		JWTIssuer:      "clubsite-auth",
		AccessTokenTTL: 12 * time.Hour,
	}
	tokenSvc, err := security.NewJWTokenService(cfg)
	require.NoError(s.T(), err)

	s.repo = &mockAuthRepository{}
	s.bus = &recordingBus{}
	s.uc = NewAuthUsecase(s.repo, tokenSvc, s.bus, cfg)
	s.ctx = context.Background()
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func (s *AuthUsecaseTestSuite) TestRegister_Success() {
	s.repo.On("GetUserByEmail", s.ctx, "ops@club.example").Return(nil, ErrUserNotFound)
	s.repo.On("CreateUser", s.ctx, mock.AnythingOfType("*model.User")).Return(nil)

	user, token, err := s.uc.Register(s.ctx, RegisterRequest{
		Email:       "Ops@Club.example",
		Password:    "correct-horse",
		DisplayName: "Ops",
	})

	require.NoError(s.T(), err)
	require.NotNil(s.T(), user)
	assert.Equal(s.T(), "ops@club.example", user.Email)
	assert.Empty(s.T(), user.PasswordHash)
	assert.NotEmpty(s.T(), token)
	assert.Equal(s.T(), []string{eventbus.EventTypeSignedIn}, s.bus.types())
	s.repo.AssertExpectations(s.T())
}

func (s *AuthUsecaseTestSuite) TestRegister_DuplicateEmail() {
	s.repo.On("GetUserByEmail", s.ctx, "ops@club.example").Return(&model.User{
		ID:    "existing",
		Email: "ops@club.example",
	}, nil)

	user, token, err := s.uc.Register(s.ctx, RegisterRequest{
		Email:    "ops@club.example",
		Password: "correct-horse",
	})

	assert.ErrorIs(s.T(), err, ErrEmailTaken)
	assert.Nil(s.T(), user)
	assert.Empty(s.T(), token)
	assert.Empty(s.T(), s.bus.events)
	s.repo.AssertNotCalled(s.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (s *AuthUsecaseTestSuite) TestRegister_WeakPassword() {
	user, token, err := s.uc.Register(s.ctx, RegisterRequest{
		Email:    "ops@club.example",
		Password: "short",
	})

	assert.Error(s.T(), err)
	assert.Nil(s.T(), user)
	assert.Empty(s.T(), token)
	s.repo.AssertNotCalled(s.T(), "GetUserByEmail", mock.Anything, mock.Anything)
}

func (s *AuthUsecaseTestSuite) TestRegister_InvalidEmail() {
	_, _, err := s.uc.Register(s.ctx, RegisterRequest{
		Email:    "not-an-email",
		Password: "correct-horse",
	})
	assert.ErrorIs(s.T(), err, ErrInvalidEmailFormat)
}

func (s *AuthUsecaseTestSuite) TestLogin_Success() {
	s.repo.On("GetUserByEmail", s.ctx, "ops@club.example").Return(&model.User{
		ID:           "user-1",
		Email:        "ops@club.example",
		PasswordHash: hashPassword(s.T(), "correct-horse"),
	}, nil)

	user, token, err := s.uc.Login(s.ctx, LoginRequest{
		Email:    "ops@club.example",
		Password: "correct-horse",
	})

	require.NoError(s.T(), err)
	require.NotNil(s.T(), user)
	assert.Empty(s.T(), user.PasswordHash)
	assert.NotEmpty(s.T(), token)
	assert.Equal(s.T(), []string{eventbus.EventTypeSignedIn}, s.bus.types())
}

func (s *AuthUsecaseTestSuite) TestLogin_WrongPassword() {
	s.repo.On("GetUserByEmail", s.ctx, "ops@club.example").Return(&model.User{
		ID:           "user-1",
		Email:        "ops@club.example",
		PasswordHash: hashPassword(s.T(), "correct-horse"),
	}, nil)

	user, token, err := s.uc.Login(s.ctx, LoginRequest{
		Email:    "ops@club.example",
		Password: "wrong-password",
	})

	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)
	assert.Nil(s.T(), user)
	assert.Empty(s.T(), token)
	assert.Empty(s.T(), s.bus.events)
}

func (s *AuthUsecaseTestSuite) TestLogin_UnknownUserCollapsesToInvalidCredentials() {
	s.repo.On("GetUserByEmail", s.ctx, "ghost@club.example").Return(nil, ErrUserNotFound)

	_, _, err := s.uc.Login(s.ctx, LoginRequest{
		Email:    "ghost@club.example",
		Password: "whatever-hash",
	})

	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)
}

func (s *AuthUsecaseTestSuite) TestLogout_ValidTokenPublishesSignOut() {
	token, err := s.uc.tokenSvc.GenerateToken(s.ctx, "user-1", "ops@club.example")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.uc.Logout(s.ctx, token))
	assert.Equal(s.T(), []string{eventbus.EventTypeSignedOut}, s.bus.types())
}

func (s *AuthUsecaseTestSuite) TestLogout_InvalidTokenStillSucceeds() {
	assert.NoError(s.T(), s.uc.Logout(s.ctx, "not-a-token"))
	assert.Empty(s.T(), s.bus.events)
}

func (s *AuthUsecaseTestSuite) TestCurrentSession_FromValidToken() {
	token, err := s.uc.tokenSvc.GenerateToken(s.ctx, "user-1", "ops@club.example")
	require.NoError(s.T(), err)

	session, err := s.uc.CurrentSession(s.ctx, token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "user-1", session.UserID)
	assert.Equal(s.T(), "ops@club.example", session.Email)
	assert.WithinDuration(s.T(), time.Now().Add(12*time.Hour), session.ExpiresAt, time.Minute)
}

func (s *AuthUsecaseTestSuite) TestCurrentSession_InvalidToken() {
	session, err := s.uc.CurrentSession(s.ctx, "garbage")
	assert.ErrorIs(s.T(), err, ErrTokenInvalid)
	assert.Nil(s.T(), session)
}

func (s *AuthUsecaseTestSuite) TestGetUserFromToken() {
	s.repo.On("GetUserByID", s.ctx, "user-1").Return(&model.User{
		ID:           "user-1",
		Email:        "ops@club.example",
		PasswordHash: "never-exposed",
	}, nil)

	token, err := s.uc.tokenSvc.GenerateToken(s.ctx, "user-1", "ops@club.example")
	require.NoError(s.T(), err)

	user, err := s.uc.GetUserFromToken(s.ctx, token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "user-1", user.ID)
	assert.Empty(s.T(), user.PasswordHash)
}

func TestAuthUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuthUsecaseTestSuite))
}
