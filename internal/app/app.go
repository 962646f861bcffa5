package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bekzhan-O/tutor-dashboard/config"
	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/csvfile"
	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/http/server"
	repo "github.com/Bekzhan-O/tutor-dashboard/internal/adapter/postgres"
	rabbitAdapter "github.com/Bekzhan-O/tutor-dashboard/internal/adapter/rabbit"
	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/sheets"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/internal/service/auth"
	"github.com/Bekzhan-O/tutor-dashboard/internal/service/dataset"
	"github.com/Bekzhan-O/tutor-dashboard/internal/service/report"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/postgres"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/rabbit"
	ws "github.com/Bekzhan-O/tutor-dashboard/pkg/wsHub"
)

type App struct {
	httpServer *server.API
	cache      *dataset.Cache
	hub        *ws.ConnectionHub

	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ

	cfg config.Config
	log logger.Logger
}

// NewApplication wires the row source, cache, services and transport
// together according to the configuration.
func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	app := &App{
		cfg: cfg,
		log: log,
	}

	source, err := app.initSource(ctx)
	if err != nil {
		return nil, err
	}

	parser := dataset.NewParser(log)
	cache := dataset.NewCache(source, parser, cfg.Cache.TTL, log)
	app.cache = cache

	hub := ws.NewConnHub(log)
	app.hub = hub

	// Every dataset change fans out to connected dashboard clients.
	cache.OnRefresh(func(ctx context.Context, count int, checksum string) {
		hub.Broadcast(map[string]any{
			"event":    types.ActionDatasetRefresh,
			"records":  count,
			"checksum": checksum,
		})
	})

	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			log.Error(ctx, "Failed to setup rabbitMQ", err)
			return nil, err
		}
		app.rabbitMQ = rabbitMQ

		notifier, err := rabbitAdapter.NewRefreshNotifier(rabbitMQ, cfg.RabbitMQ.Queue)
		if err != nil {
			log.Error(ctx, "Failed to setup refresh notifier", err)
			return nil, err
		}

		cache.OnRefresh(func(ctx context.Context, count int, checksum string) {
			if err := notifier.PublishRefresh(ctx, count, checksum); err != nil {
				log.Warn(ctx, "failed to publish refresh event", "error", err.Error())
			}
		})
	}

	reportService := report.New(cache, cfg.Report.TopStudents, cfg.Report.PageSize, log)
	tokenService := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AdminPasswordHash, cfg.Auth.TokenTTL, log)

	httpServer, err := server.New(cfg, reportService, reportService, tokenService, tokenService, hub, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}
	app.httpServer = httpServer

	return app, nil
}

// initSource picks the row source backend from the configuration.
func (a *App) initSource(ctx context.Context) (dataset.RowSource, error) {
	switch a.cfg.Source.Mode {
	case types.SourceSheets:
		return sheets.New(a.cfg.Sheets), nil
	case types.SourceCSV:
		return csvfile.New(a.cfg.CSV), nil
	case types.SourcePostgres:
		postgresDB, err := postgres.New(ctx, a.cfg.Database)
		if err != nil {
			a.log.Error(ctx, "Failed to setup database", err)
			return nil, err
		}
		a.postgresDB = postgresDB
		return repo.NewRowRepo(postgresDB.Pool), nil
	default:
		return nil, fmt.Errorf("invalid source mode: %s", a.cfg.Source.Mode)
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.httpServer.Run(ctx, errCh)
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "dashboard service closed")
	}()

	// Warm the cache so the first request does not pay the fetch. A
	// failure here is not fatal: the source may come up later.
	if _, err := a.cache.GetRecords(ctx, true); err != nil {
		a.log.Warn(ctx, "initial dataset fetch failed", "error", err.Error())
	}

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "dashboard service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	if a.httpServer != nil {
		if err := a.httpServer.Stop(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if a.hub != nil {
		a.hub.Close()
	}

	if a.rabbitMQ != nil {
		if err := a.rabbitMQ.Close(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close rabbitMQ", "error", err.Error())
		}
	}

	if a.postgresDB != nil {
		a.postgresDB.Close()
	}
}
