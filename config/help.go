package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Tutoring dashboard backend.

Usage:
  dashboard [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this message

Configuration is read from the YAML file, then overridden by environment
variables (SERVER_*, SOURCE_*, SHEETS_*, CSV_*, CACHE_*, REPORT_*,
DATABASE_*, RABBITMQ_*, AUTH_*). A .env file next to the binary is
loaded first when present.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective non-secret settings at startup.
func PrintConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	fmt.Printf("server:    %s:%s\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("source:    %s\n", cfg.Source.Mode)
	fmt.Printf("cache ttl: %s\n", cfg.Cache.TTL)
	fmt.Printf("top n:     %d\n", cfg.Report.TopStudents)
	fmt.Printf("rabbitmq:  enabled=%v\n", cfg.RabbitMQ.Enabled)
}
