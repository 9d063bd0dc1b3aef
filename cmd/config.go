package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config holds the settings read from the environment at startup. Empty
// values fall back to the defaults applied by the methods below and by the
// jobs package.
type Config struct {
	// HTTPPort defaults to 8080.
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// LogLevel is one of debug, info, warn or error.
	LogLevel   string

	// Cron specs for the report jobs; seconds and descriptors are accepted.
	LowStockReportSchedule      string
	OverdueOrdersReportSchedule string
}

// DSN builds the postgres connection string. SSL mode defaults to disable.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	port := c.HTTPPort
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("0.0.0.0:%s", port)
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
