package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/nodegraph/internal/config"
	"github.com/specialistvlad/nodegraph/internal/ctxlog"
	"github.com/specialistvlad/nodegraph/internal/graph"
	"github.com/specialistvlad/nodegraph/internal/node"
)

// Build constructs a graph from a config model.
func Build(ctx context.Context, model *config.Model) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "root", model.Root)

	if err := model.Validate(); err != nil {
		return nil, err
	}
	g := graph.New(node.New(model.Root))

	// First pass: create named children.
	for _, spec := range model.Nodes {
		parent, err := resolve(g, spec.Name)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		for _, name := range spec.Children {
			if err := parent.AddChild(name); err != nil {
				return nil, fmt.Errorf("node %q: %w", spec.Name, err)
			}
			logger.Debug("Build: Added child.", "parent", spec.Name, "child", name)
		}
	}
	logger.Debug("Build: Child creation complete.")

	// Second pass: attach existing nodes by reference. Every endpoint is
	// resolved before the first link is attached; Find has no visited set and
	// would not return once a back reference is in place.
	type link struct {
		from, to       string
		parent, target *node.Node
	}
	var links []link
	for _, spec := range model.Nodes {
		if len(spec.Links) == 0 {
			continue
		}
		parent, err := resolve(g, spec.Name)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		for _, name := range spec.Links {
			target, err := resolve(g, name)
			if err != nil {
				return nil, fmt.Errorf("link %q -> %q: %w", spec.Name, name, err)
			}
			links = append(links, link{from: spec.Name, to: name, parent: parent, target: target})
		}
	}
	for _, l := range links {
		l.parent.AddChildNode(l.target)
		logger.Debug("Build: Linked existing node.", "parent", l.from, "target", l.to)
	}
	logger.Debug("Build: Linking complete.")

	return g, nil
}

// resolve maps a name to the root or to the first matching descendant.
func resolve(g *graph.Graph, name string) (*node.Node, error) {
	if name == g.Root().Name() {
		return g.Root(), nil
	}
	return g.Find(name)
}
