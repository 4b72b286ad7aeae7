// Package render prints node hierarchies as text trees.
package render

import (
	"github.com/shivamMg/ppds/tree"
	"github.com/specialistvlad/nodegraph/internal/node"
)

// backRefMarker is appended to the label of a child that repeats a name on the
// current branch.
const backRefMarker = " ↺"

// view adapts a node to tree.Node. ancestors holds the names on the branch
// above n so that back references become leaves instead of recursing forever.
// The tree printer walks the same node several times and matches children by
// identity, so child views are built once and reused.
type view struct {
	n         *node.Node
	ancestors map[string]struct{}
	backRef   bool

	built    bool
	children []tree.Node
}

func (v *view) Data() interface{} {
	if v.backRef {
		return v.n.Name() + backRefMarker
	}
	return v.n.Name()
}

func (v *view) Children() []tree.Node {
	if v.backRef {
		return nil
	}
	if !v.built {
		v.children = v.buildChildren()
		v.built = true
	}
	return v.children
}

func (v *view) buildChildren() (children []tree.Node) {
	branch := make(map[string]struct{}, len(v.ancestors)+1)
	for name := range v.ancestors {
		branch[name] = struct{}{}
	}
	branch[v.n.Name()] = struct{}{}

	for _, c := range v.n.Children() {
		_, seen := branch[c.Name()]
		children = append(children, tree.Node(&view{n: c, ancestors: branch, backRef: seen}))
	}
	return
}

// Tree renders root and everything below it, one node per line.
func Tree(root *node.Node) string {
	return tree.Sprint(&view{n: root})
}
