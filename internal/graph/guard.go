package graph

import (
	"errors"

	"github.com/specialistvlad/nodegraph/internal/node"
)

// ErrUnboundedTrace is returned by CheckTrace when Trace would walk around a
// cycle before reaching its target and therefore never return.
var ErrUnboundedTrace = errors.New("trace would not terminate")

// Reachable reports whether some descendant of the root is named name. Unlike
// FindOrDefault it keeps a visited set of nodes, so it terminates on cyclic
// graphs. A back reference to the root counts as a descendant.
func (g *Graph) Reachable(name string) bool {
	visited := map[*node.Node]struct{}{g.root: {}}

	var visit func(n *node.Node) bool
	visit = func(n *node.Node) bool {
		for _, child := range n.Children() {
			if child.Name() == name {
				return true
			}
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			if visit(child) {
				return true
			}
		}
		return false
	}
	return visit(g.root)
}

// CheckTrace reports whether Trace(name, ...) would return. It follows the
// same child order as Trace and stops when it would enter a node that is
// already on its active branch: Trace keeps no visited set, so from there it
// would repeat the same walk forever.
//
// It returns node.ErrNotFound when name is not reachable at all and
// ErrUnboundedTrace when a cycle is entered before the target is met.
func (g *Graph) CheckTrace(name string) error {
	if !g.Reachable(name) {
		return node.ErrNotFound
	}

	active := make(map[*node.Node]struct{})

	// visit returns found, or looped when the walk re-entered the active branch.
	var visit func(n *node.Node) (found, looped bool)
	visit = func(n *node.Node) (bool, bool) {
		if _, onBranch := active[n]; onBranch {
			return false, true
		}
		active[n] = struct{}{}
		defer delete(active, n)

		for _, child := range n.Children() {
			if child.Name() == name {
				return true, false
			}
			if found, looped := visit(child); found || looped {
				return found, looped
			}
		}
		return false, false
	}

	if _, looped := visit(g.root); looped {
		return ErrUnboundedTrace
	}
	return nil
}
