// Package initializer sets up process-wide infrastructure.
package initializer

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mfarghaly/bankbook/pkg/config"
)

// SetupLogger builds the application *slog.Logger backed by a
// charmbracelet/log handler and installs it as the slog default.
func SetupLogger(cfg config.Log) *slog.Logger {
	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	return slogger
}
