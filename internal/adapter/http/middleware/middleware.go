package middleware

import (
	"context"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
)

type (
	TokenValidator interface {
		Validate(ctx context.Context, token string) (*models.TokenClaims, error)
	}

	Middleware struct {
		tokens TokenValidator
		log    logger.Logger
	}
)

func NewMiddleware(tokens TokenValidator, log logger.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		log:    log,
	}
}
