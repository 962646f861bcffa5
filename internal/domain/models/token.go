package models

import (
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
)

// AdminToken is the signed credential returned by POST /auth/token.
type AdminToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenClaims are the validated contents of an admin token.
type TokenClaims struct {
	TokenID   string
	Role      types.UserRole
	ExpiresAt time.Time
}

// IsAdmin reports whether the claims grant admin access.
func (c *TokenClaims) IsAdmin() bool {
	return c != nil && c.Role == types.AdminRole
}
