package main

import (
	"context"
	"flag"
	"os"

	"github.com/Bekzhan-O/tutor-dashboard/config"
	_ "github.com/Bekzhan-O/tutor-dashboard/docs"
	"github.com/Bekzhan-O/tutor-dashboard/internal/app"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	"github.com/joho/godotenv"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	// Local development convenience; absence of .env is fine.
	_ = godotenv.Load()

	ctx := context.Background()
	log := logger.InitLogger(types.ServiceName, logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		return
	}

	// Printing configuration
	config.PrintConfig(cfg)

	log = logger.InitLogger(types.ServiceName, cfg.Log.Level)

	// Creating application
	app, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	// Running the application
	if err = app.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
