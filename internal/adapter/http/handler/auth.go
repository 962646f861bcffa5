package handler

import (
	"context"
	"net/http"

	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/http/handler/dto"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/validator"
)

type AuthService interface {
	IssueToken(ctx context.Context, password string) (*models.AdminToken, error)
}

type Auth struct {
	s AuthService
	l logger.Logger
}

func NewAuth(s AuthService, l logger.Logger) *Auth {
	return &Auth{
		s: s,
		l: l,
	}
}

// Token godoc
// @Summary      Issue admin token
// @Description  Exchanges the admin password for a short-lived bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.TokenRequest  true  "Admin password"
// @Success      201  {object}  models.AdminToken
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /auth/token [post]
func (h *Auth) Token(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "auth_token")

	var req dto.TokenRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateTokenRequest(v, &req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	token, err := h.s.IssueToken(ctx, req.Password)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to issue token", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusCreated, envelope{"auth": token}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
