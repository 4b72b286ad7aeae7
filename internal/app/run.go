package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/nodegraph/internal/ctxlog"
	"github.com/specialistvlad/nodegraph/internal/node"
	"github.com/specialistvlad/nodegraph/internal/path"
	"github.com/specialistvlad/nodegraph/internal/render"
)

// NoCycleMessage is printed when cycle detection finds nothing.
const NoCycleMessage = "no cycle found"

// Run builds the configured graph and prints either the first cycle reachable
// from the root or, when a trace target is configured, the route to it.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	g, err := a.loadGraph(ctx, cfg)
	if err != nil {
		return err
	}
	a.logger.Info("Graph ready.", "root", g.Root().Name())

	if cfg.PrintTree {
		fmt.Fprintln(a.outW, strings.TrimRight(render.Tree(g.Root()), "\n"))
	}

	p := path.New()
	if cfg.TraceTarget != "" {
		// Trace has no visited set; refuse targets it could loop around.
		if err := g.CheckTrace(cfg.TraceTarget); err != nil {
			return fmt.Errorf("trace to %q: %w", cfg.TraceTarget, err)
		}
		if !g.Trace(cfg.TraceTarget, p) {
			return fmt.Errorf("trace to %q: %w", cfg.TraceTarget, node.ErrNotFound)
		}
		a.logger.Info("Trace found.", "target", cfg.TraceTarget, "length", p.Len())
		fmt.Fprintln(a.outW, p.String())
		return nil
	}

	if !g.FindCycle(p) {
		a.logger.Info("No cycle reachable from the root.")
		fmt.Fprintln(a.outW, NoCycleMessage)
		return nil
	}
	a.logger.Warn("Cycle detected.", "path", p.Names())
	fmt.Fprintln(a.outW, p.String())

	a.logger.Debug("App.Run method finished.")
	return nil
}
