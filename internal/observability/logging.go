// Package observability builds the zap logger used by the adventure.
//
// Game text owns stdout. Diagnostics go to stderr or to files named in
// logging.output, never to stdout, so a transcript of a session contains
// only what the player saw.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/eldara/internal/config"
)

// NewLogger creates a structured logger from the given logging configuration.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Precondition: cfg.Output must not contain "stdout"; an empty list means stderr.
// Postcondition: Returns a zap.Logger whose main and internal-error sinks are
// cfg.Output, or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	sinks := cfg.Output
	if len(sinks) == 0 {
		sinks = []string{"stderr"}
	}
	for _, s := range sinks {
		if s == "stdout" {
			return nil, fmt.Errorf("log sink %q would interleave with game text", s)
		}
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = sinks
	zapCfg.ErrorOutputPaths = sinks

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("adventure"), nil
}
