package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/abiforge/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle for one invocation.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Report output goes
// to outW; logs go to logW.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		config: config,
	}
}

// Run dispatches to the configured command. The returned error is the run's
// terminal outcome; callers map it to the process exit status.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	switch a.config.Command {
	case CommandGenerate:
		return a.runGenerate(ctx)
	case CommandActions:
		return a.runActions(ctx)
	}
	return fmt.Errorf("unknown command: %s", a.config.Command)
}
