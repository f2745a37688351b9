package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubsite/internal/auth/domain/model"
	"clubsite/internal/auth/domain/repository"
	"clubsite/internal/auth/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "club_session"

// stubAuthUsecase returns canned results so the HTTP layer can be exercised
// without real credentials.
type stubAuthUsecase struct {
	user        *model.User
	token       string
	loginErr    error
	claims      *repository.Claims
	validateErr error
	session     *model.Session
	sessionErr  error
	logoutErr   error
}

func (s *stubAuthUsecase) Register(ctx context.Context, req usecase.RegisterRequest) (*model.User, string, error) {
	return s.user, s.token, s.loginErr
}

func (s *stubAuthUsecase) Login(ctx context.Context, req usecase.LoginRequest) (*model.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return s.user, s.token, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context, tokenString string) error {
	return s.logoutErr
}

func (s *stubAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.claims, nil
}

func (s *stubAuthUsecase) CurrentSession(ctx context.Context, tokenString string) (*model.Session, error) {
	if s.sessionErr != nil {
		return nil, s.sessionErr
	}
	return s.session, nil
}

func (s *stubAuthUsecase) GetUserFromToken(ctx context.Context, tokenString string) (*model.User, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.user, nil
}

func newAuthTestApp(uc usecase.AuthUsecaseInterface) *fiber.App {
	handler := NewAuthHTTPHandler(uc, testCookieName, "/", "", 43200, false, true, "Lax")
	app := fiber.New()
	handler.SetupAuthRoutesWithMiddleware(app, NewAuthMiddleware(uc, testCookieName))
	return app
}

func authRequest(t *testing.T, app *fiber.App, method, path, body, cookie string) (*nethttp.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&nethttp.Cookie{Name: testCookieName, Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func sessionCookie(resp *nethttp.Response) *nethttp.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_FailureReturnsUsecaseMessageVerbatim(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{loginErr: usecase.ErrInvalidCredentials})

	resp, body := authRequest(t, app, nethttp.MethodPost, "/auth/login",
		`{"email":"ops@club.example","password":"wrong"}`, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, usecase.ErrInvalidCredentials.Error(), body["error"])
	assert.Nil(t, sessionCookie(resp))
}

func TestLogin_SuccessSetsSessionCookie(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{
		user:  &model.User{ID: "user-1", Email: "ops@club.example"},
		token: "signed-token",
	})

	resp, body := authRequest(t, app, nethttp.MethodPost, "/auth/login",
		`{"email":"ops@club.example","password":"correct-horse"}`, "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "signed-token", body["token"])

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestGetSession_NoCookieIsUnauthorized(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{sessionErr: usecase.ErrTokenInvalid})

	resp, body := authRequest(t, app, nethttp.MethodGet, "/auth/session", "", "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No active session", body["error"])
}

func TestGetSession_ValidCookieReturnsSession(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{
		session: &model.Session{UserID: "user-1", Email: "ops@club.example"},
	})

	resp, body := authRequest(t, app, nethttp.MethodGet, "/auth/session", "", "valid-token")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-1", body["userId"])
}

func TestLogout_ClearsCookie(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{})

	resp, body := authRequest(t, app, nethttp.MethodPost, "/auth/logout", "", "stale-token")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged out successfully", body["message"])

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestProtect_MissingTokenRejected(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{})

	resp, body := authRequest(t, app, nethttp.MethodGet, "/auth/me", "", "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication required", body["error"])
}

func TestProtect_InvalidTokenRejected(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{validateErr: usecase.ErrTokenInvalid})

	resp, body := authRequest(t, app, nethttp.MethodGet, "/auth/me", "", "garbage")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["error"])
}

func TestProtect_ValidTokenPassesThrough(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{
		user:   &model.User{ID: "user-1", Email: "ops@club.example"},
		claims: &repository.Claims{UserID: "user-1", Email: "ops@club.example"},
	})

	resp, body := authRequest(t, app, nethttp.MethodGet, "/auth/me", "", "valid-token")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-1", body["id"])
}

func TestLogin_RateLimited(t *testing.T) {
	app := newAuthTestApp(&stubAuthUsecase{loginErr: usecase.ErrInvalidCredentials})

	var last *nethttp.Response
	for i := 0; i < 11; i++ {
		last, _ = authRequest(t, app, nethttp.MethodPost, "/auth/login",
			`{"email":"ops@club.example","password":"wrong"}`, "")
	}
	assert.Equal(t, nethttp.StatusTooManyRequests, last.StatusCode)
}
