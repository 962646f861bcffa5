package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/passhash"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/uuid"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the admin tokens that guard the
// cache management endpoints. There is a single admin identity whose
// password hash comes from configuration.
type TokenService struct {
	secret       string
	passwordHash string
	tokenTTL     time.Duration
	log          logger.Logger
}

func NewTokenService(secret, passwordHash string, tokenTTL time.Duration, log logger.Logger) *TokenService {
	return &TokenService{
		secret:       secret,
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
		log:          log,
	}
}

// IssueToken checks the admin password and, on success, returns a
// signed short-lived token.
func (s *TokenService) IssueToken(ctx context.Context, password string) (*models.AdminToken, error) {
	ctx = wrap.WithAction(ctx, "issue_token")

	if ok, err := passhash.VerifyPassword(password, s.passwordHash); err != nil || !ok {
		return nil, wrap.Error(ctx, types.ErrInvalidCredentials)
	}

	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"jti":  uuid.MustNew().String(),
		"role": types.AdminRole.String(),
		"iat":  issuedAt.Unix(),
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		s.log.Error(ctx, "failed to sign token", err)
		return nil, wrap.Error(ctx, fmt.Errorf("sign token: %w", err))
	}

	s.log.Info(ctx, "admin token issued", "expires_at", expiresAt)

	return &models.AdminToken{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate parses and verifies a token string, returning its claims.
func (s *TokenService) Validate(ctx context.Context, token string) (*models.TokenClaims, error) {
	ctx = wrap.WithAction(ctx, "validate_token")

	parsed, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, types.ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, wrap.Error(ctx, types.ErrInvalidToken)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrInvalidToken)
	}

	tokenID, _ := mc["jti"].(string)
	if tokenID == "" {
		return nil, wrap.Error(ctx, fmt.Errorf("invalid or missing 'jti' in token claims"))
	}

	role, _ := mc["role"].(string)

	expFloat, ok := mc["exp"].(float64)
	if !ok {
		return nil, wrap.Error(ctx, fmt.Errorf("invalid or missing 'exp' in token claims"))
	}

	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().UTC().After(expTime) {
		return nil, wrap.Error(ctx, types.ErrExpiredToken)
	}

	return &models.TokenClaims{
		TokenID:   tokenID,
		Role:      types.UserRole(role),
		ExpiresAt: expTime,
	}, nil
}
