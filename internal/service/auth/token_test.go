package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/passhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, password string, ttl time.Duration) *TokenService {
	t.Helper()

	hash, err := passhash.HashPassword(password)
	require.NoError(t, err)

	return NewTokenService("test-secret", hash, ttl, logger.InitLogger("test", logger.LevelError))
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	s := newTestTokenService(t, "correct horse", time.Hour)
	ctx := context.Background()

	token, err := s.IssueToken(ctx, "correct horse")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := s.Validate(ctx, token.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, types.AdminRole, claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestTokenService_WrongPassword(t *testing.T) {
	s := newTestTokenService(t, "correct horse", time.Hour)

	token, err := s.IssueToken(context.Background(), "battery staple")
	assert.Nil(t, token)
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestTokenService_GarbageToken(t *testing.T) {
	s := newTestTokenService(t, "correct horse", time.Hour)

	_, err := s.Validate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, types.ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "correct horse", time.Hour)
	verifier := NewTokenService("other-secret", "", time.Hour, logger.InitLogger("test", logger.LevelError))

	token, err := issuer.IssueToken(context.Background(), "correct horse")
	require.NoError(t, err)

	_, err = verifier.Validate(context.Background(), token.Token)
	assert.ErrorIs(t, err, types.ErrInvalidToken)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	s := newTestTokenService(t, "correct horse", -time.Minute)

	token, err := s.IssueToken(context.Background(), "correct horse")
	require.NoError(t, err)

	_, err = s.Validate(context.Background(), token.Token)
	assert.ErrorIs(t, err, types.ErrInvalidToken)
}
