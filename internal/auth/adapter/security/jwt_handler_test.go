package security

import (
	"context"
	"testing"
	"time"

	"clubsite/internal/auth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, ttl time.Duration) *JWTokenService {
	t.Helper()
	svc, err := NewJWTokenService(&config.Config{
		JWTSecretKey:   "test-secret-key",
		JWTIssuer:      "clubsite-auth",
		AccessTokenTTL: ttl,
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTokenService(t, 12*time.Hour)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "user-1", "ops@club.example")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ops@club.example", claims.Email)
	assert.Equal(t, "clubsite-auth", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTokenService(t, time.Nanosecond)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "user-1", "ops@club.example")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	ctx := context.Background()
	issuing := newTokenService(t, 12*time.Hour)
	token, err := issuing.GenerateToken(ctx, "user-1", "ops@club.example")
	require.NoError(t, err)

	other, err := NewJWTokenService(&config.Config{
		JWTSecretKey:   "a-different-secret",
		JWTIssuer:      "clubsite-auth",
		AccessTokenTTL: 12 * time.Hour,
	})
	require.NoError(t, err)

	_, err = other.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestValidateToken_EmptyAndGarbage(t *testing.T) {
	svc := newTokenService(t, 12*time.Hour)
	ctx := context.Background()

	_, err := svc.ValidateToken(ctx, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ValidateToken(ctx, "not.a.jwt")
	assert.Error(t, err)
}

func TestNewJWTokenService_RejectsInvalidConfig(t *testing.T) {
	_, err := NewJWTokenService(&config.Config{JWTIssuer: "x", AccessTokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewJWTokenService(&config.Config{JWTSecretKey: "x", AccessTokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewJWTokenService(&config.Config{JWTSecretKey: "x", JWTIssuer: "y"})
	assert.Error(t, err)
}
