package config

import (
	"fmt"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/configparser"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server   ServerConfig
		Log      LogConfig
		Source   SourceConfig
		Sheets   SheetsConfig
		CSV      CSVConfig
		Cache    CacheConfig
		Report   ReportConfig
		Database DatabaseConfig
		RabbitMQ RabbitMQConfig
		Auth     AuthConfig
	}

	ServerConfig struct {
		Host string `env:"SERVER_HOST" default:"0.0.0.0"`
		Port string `env:"SERVER_PORT" default:"8080"`
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"DEBUG"`
	}

	// SourceConfig selects which backend supplies raw session rows.
	SourceConfig struct {
		Mode types.SourceMode `env:"SOURCE_MODE" default:"sheets"`
	}

	SheetsConfig struct {
		SpreadsheetID string        `env:"SHEETS_SPREADSHEET_ID"`
		Range         string        `env:"SHEETS_RANGE" default:"Daten!A1:H"`
		APIKey        string        `env:"SHEETS_API_KEY"`
		BaseURL       string        `env:"SHEETS_BASE_URL" default:"https://sheets.googleapis.com"`
		Timeout       time.Duration `env:"SHEETS_TIMEOUT" default:"10s"`
	}

	CSVConfig struct {
		Path      string `env:"CSV_PATH" default:"data/sessions.csv"`
		Separator string `env:"CSV_SEPARATOR" default:";"`
	}

	CacheConfig struct {
		TTL time.Duration `env:"CACHE_TTL" default:"10s"`
	}

	ReportConfig struct {
		TopStudents int `env:"REPORT_TOP_STUDENTS" default:"10"`
		PageSize    int `env:"REPORT_PAGE_SIZE" default:"10"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"dashboard_user"`
		Password string `env:"DATABASE_PASSWORD" default:"dashboard_pass"`
		Database string `env:"DATABASE_DATABASE" default:"dashboard_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"10"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"1"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
		Queue    string `env:"RABBITMQ_QUEUE" default:"dashboard.dataset.refreshed"`
	}

	AuthConfig struct {
		JWTSecret         string        `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
		TokenTTL          time.Duration `env:"AUTH_TOKEN_TTL" default:"15m"`
		AdminPasswordHash string        `env:"AUTH_ADMIN_PASSWORD_HASH"`
	}
)

// PoolSettings exposes the pgx pool tuning knobs.
func (c DatabaseConfig) PoolSettings() (int32, int32, time.Duration, time.Duration) {
	return c.MaxConns, c.MinConns, c.MaxConnLifetime, c.MaxConnIdleTime
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !logger.ValidateLogLevel(c.Log.Level) {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch c.Source.Mode {
	case types.SourceSheets, types.SourcePostgres, types.SourceCSV:
	default:
		return fmt.Errorf("invalid source mode: %s", c.Source.Mode)
	}

	if c.Source.Mode == types.SourceSheets && c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("SHEETS_SPREADSHEET_ID is required when SOURCE_MODE=sheets")
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.Cache.TTL)
	}

	return nil
}
