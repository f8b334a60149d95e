package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// Dir, when set, tees log output into a size-rotated file under it
	// in addition to stderr.
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
		output = os.Stderr
	}

	if cfg.Dir != "" {
		if rotator, err := NewLogRotator(cfg.Dir, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays, cfg.Compress); err == nil {
			output = zerolog.MultiLevelWriter(output, rotator)
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a logger based on environment variables
// CHROMELESS_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// CHROMELESS_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("CHROMELESS_LOG_LEVEL"); level != "" {
		switch level {
		case "trace":
			cfg.Level = zerolog.TraceLevel
		case "debug":
			cfg.Level = zerolog.DebugLevel
		case "info":
			cfg.Level = zerolog.InfoLevel
		case "warn":
			cfg.Level = zerolog.WarnLevel
		case "error":
			cfg.Level = zerolog.ErrorLevel
		}
	}

	if format := os.Getenv("CHROMELESS_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}
