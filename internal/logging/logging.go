// Package logging builds the zap loggers used by the TUI and the CLI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// level resolves the configured level; verbose always wins.
func level(name string, verbose bool) (zap.AtomicLevel, error) {
	if verbose {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}
	if name == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("parsing log level %q: %w", name, err)
	}
	return zap.NewAtomicLevelAt(lvl), nil
}

// NewFile returns a JSON logger writing to cfg.Path. The TUI owns the
// terminal, so nothing is written to stdout or stderr.
func NewFile(cfg model.LogConfig, verbose bool) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	lvl, err := level(cfg.Level, verbose)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = []string{cfg.Path}
	config.ErrorOutputPaths = []string{cfg.Path}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewConsole returns a human-readable logger on stderr for CLI subcommands.
func NewConsole(levelName string, verbose bool) (*zap.Logger, error) {
	lvl, err := level(levelName, verbose)
	if err != nil {
		return nil, err
	}

	config := zap.NewDevelopmentConfig()
	config.Level = lvl
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
