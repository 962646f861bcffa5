package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/config"
	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/http/handler"
	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/http/middleware"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	ws "github.com/Bekzhan-O/tutor-dashboard/pkg/wsHub"
)

const serverIPAddress = "%s:%s"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	report *handler.Report
	admin  *handler.Admin
	auth   *handler.Auth
	health *handler.Health
	live   *handler.Live
}

func New(
	cfg config.Config,
	reportService handler.ReportService,
	adminService handler.AdminService,
	authService handler.AuthService,
	tokens middleware.TokenValidator,
	hub *ws.ConnectionHub,
	log logger.Logger,
) (*API, error) {
	if authService == nil {
		return nil, errors.New("auth service is required")
	}

	routes := &handlers{
		report: handler.NewReport(reportService, log),
		admin:  handler.NewAdmin(adminService, log),
		auth:   handler.NewAuth(authService, log),
		health: handler.NewHealth(types.ServiceName, cfg.Source.Mode.String(), adminService.LastFetched, log),
		live:   handler.NewLive(hub, types.ServiceName, log),
	}

	mid := middleware.NewMiddleware(tokens, log)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   fmt.Sprintf(serverIPAddress, cfg.Server.Host, cfg.Server.Port),
		cfg:    cfg,
		log:    log,
	}

	setupRoutes(api.mux, api.routes, api.m)

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Metrics(types.ServiceName)(a.m.Logging(a.mux))))
}
