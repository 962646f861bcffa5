package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
)

type AdminService interface {
	Refresh(ctx context.Context) (int, string, error)
	ClearCache()
	LastFetched() time.Time
}

type Admin struct {
	s AdminService
	l logger.Logger
}

func NewAdmin(s AdminService, l logger.Logger) *Admin {
	return &Admin{
		s: s,
		l: l,
	}
}

// Refresh godoc
// @Summary      Force dataset refresh
// @Description  Refetches the dataset from the row source, bypassing the cache TTL
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/admin/refresh [post]
func (h *Admin) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_refresh")

	count, checksum, err := h.s.Refresh(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "forced refresh failed", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"records":    count,
		"checksum":   checksum,
		"fetched_at": h.s.LastFetched(),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// ClearCache godoc
// @Summary      Drop the dataset cache
// @Description  Discards the cached dataset so the next query refetches from the source
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /v1/admin/cache [delete]
func (h *Admin) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_clear_cache")

	h.s.ClearCache()

	if err := writeJSON(w, http.StatusOK, envelope{"message": "cache cleared"}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
