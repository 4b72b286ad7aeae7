package builder

import (
	"github.com/specialistvlad/nodegraph/internal/graph"
	"github.com/specialistvlad/nodegraph/internal/node"
)

// Demo builds the demonstration graph:
//
//	A
//	├── B
//	├── C
//	│   ├── I
//	│   └── J
//	└── D
//	    ├── E
//	    └── F
//	        ├── G
//	        └── H ──▶ A
//
// H holds a reference back to the root, so A→D→F→H→A is a cycle. Any error
// means the construction sequence itself is wrong.
func Demo() (*graph.Graph, error) {
	root := node.New("A")
	g := graph.New(root)

	steps := []struct {
		parent   string
		children []string
	}{
		{parent: "A", children: []string{"B", "C"}},
		{parent: "C", children: []string{"I", "J"}},
		{parent: "A", children: []string{"D"}},
		{parent: "D", children: []string{"E", "F"}},
		{parent: "F", children: []string{"G", "H"}},
	}
	for _, s := range steps {
		parent, err := resolve(g, s.parent)
		if err != nil {
			return nil, err
		}
		for _, name := range s.children {
			if err := parent.AddChild(name); err != nil {
				return nil, err
			}
		}
	}

	h, err := g.Find("H")
	if err != nil {
		return nil, err
	}
	h.AddChildNode(root)
	return g, nil
}
