package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/config"
	repo "github.com/Bekzhan-O/tutor-dashboard/internal/adapter/postgres"
	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/sheets"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

// syncdb mirrors the spreadsheet into Postgres so the service can run
// with SOURCE_MODE=postgres. Intended for cron or manual invocation.
func main() {
	flag.Parse()

	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Sheets.SpreadsheetID == "" {
		log.Fatal("syncdb: SHEETS_SPREADSHEET_ID is required")
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("syncdb: connect postgres: %v", err)
	}
	defer client.Close()

	ensureSchema(ctx, client.Pool)

	rows, err := sheets.New(cfg.Sheets).FetchRows(ctx)
	if err != nil {
		log.Fatalf("syncdb: fetch sheet: %v", err)
	}
	if len(rows) < 2 {
		log.Fatalf("syncdb: sheet returned %d rows, nothing to mirror", len(rows))
	}

	if err := repo.NewRowRepo(client.Pool).ReplaceRows(ctx, rows); err != nil {
		log.Fatalf("syncdb: replace rows: %v", err)
	}

	log.Printf("syncdb: mirrored %d data rows", len(rows)-1)
}

func ensureSchema(ctx context.Context, db *pgxpool.Pool) {
	const q = `
CREATE TABLE IF NOT EXISTS session_rows (
	pos      INT PRIMARY KEY,
	datum    TEXT NOT NULL DEFAULT '',
	name     TEXT NOT NULL DEFAULT '',
	anfang   TEXT NOT NULL DEFAULT '',
	ende     TEXT NOT NULL DEFAULT '',
	stunden  TEXT NOT NULL DEFAULT '',
	lohn     TEXT NOT NULL DEFAULT '',
	anbieter TEXT NOT NULL DEFAULT ''
);`

	if _, err := db.Exec(ctx, q); err != nil {
		log.Fatalf("syncdb: ensure schema: %v", err)
	}
}
