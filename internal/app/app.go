package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/nodegraph/internal/builder"
	"github.com/specialistvlad/nodegraph/internal/config"
	"github.com/specialistvlad/nodegraph/internal/ctxlog"
	"github.com/specialistvlad/nodegraph/internal/graph"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader config.Loader
}

// NewApp is the constructor for the application. Results are written to outW
// and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
	}
}

// loadGraph builds the graph described at cfg.GraphPath, or the demonstration
// graph when no path is configured.
func (a *App) loadGraph(ctx context.Context, cfg *Config) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	if cfg.GraphPath == "" {
		logger.Debug("No graph path configured, using the demonstration graph.")
		return builder.Demo()
	}

	model, err := a.loader.Load(ctx, cfg.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph definition: %w", err)
	}
	logger.Debug("Graph definition loaded.", "root", model.Root, "nodes", len(model.Nodes))

	g, err := builder.Build(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}
	return g, nil
}
