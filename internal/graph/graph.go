package graph

import (
	"github.com/specialistvlad/nodegraph/internal/node"
	"github.com/specialistvlad/nodegraph/internal/path"
)

// Graph anchors a node hierarchy at a fixed root.
type Graph struct {
	root *node.Node
}

// New creates a graph rooted at root.
func New(root *node.Node) *Graph {
	return &Graph{root: root}
}

// Root returns the node the graph was created with.
func (g *Graph) Root() *node.Node {
	return g.root
}

// FindOrDefault looks name up among the root's descendants. The root itself is
// never matched.
func (g *Graph) FindOrDefault(name string) (*node.Node, bool) {
	return g.root.FindOrDefault(name)
}

// Find is FindOrDefault that fails with node.ErrNotFound.
func (g *Graph) Find(name string) (*node.Node, error) {
	return g.root.Find(name)
}

// Trace records the route from the root to the first descendant named name.
// The root's name is always the first element of a successful trace.
func (g *Graph) Trace(name string, p *path.Path) bool {
	return g.root.Trace(name, p)
}

// FindCycle reports whether a cycle is reachable from the root, leaving the
// route to the repeated name in p.
func (g *Graph) FindCycle(p *path.Path) bool {
	return g.root.FindCycle(p)
}
