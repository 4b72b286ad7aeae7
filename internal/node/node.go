package node

import (
	"github.com/pkg/errors"
	"github.com/specialistvlad/nodegraph/internal/path"
)

// Node is a named vertex holding an ordered, possibly aliased list of children.
type Node struct {
	// name identifies the node; it is fixed at construction.
	name string
	// children is kept in insertion order, which is also search order.
	children []*Node
}

// New creates a node with the given name and no children.
func New(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.name
}

// Children returns the direct children in insertion order. The returned slice
// is a copy; the nodes are not.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of direct child references.
func (n *Node) Len() int {
	return len(n.children)
}

// FindChildOrDefault returns the first direct child with the given name.
func (n *Node) FindChildOrDefault(name string) (*Node, bool) {
	for _, child := range n.children {
		if child.name == name {
			return child, true
		}
	}
	return nil, false
}

// FindChild is FindChildOrDefault that fails with ErrNotFound.
func (n *Node) FindChild(name string) (*Node, error) {
	child, ok := n.FindChildOrDefault(name)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "child %q of %q", name, n.name)
	}
	return child, nil
}

// FindOrDefault searches the strict descendants of n depth first and returns
// the first node with the given name. The receiver itself is never matched.
func (n *Node) FindOrDefault(name string) (*Node, bool) {
	for _, child := range n.children {
		if child.name == name {
			return child, true
		}
		if found, ok := child.FindOrDefault(name); ok {
			return found, true
		}
	}
	return nil, false
}

// Find is FindOrDefault that fails with ErrNotFound.
func (n *Node) Find(name string) (*Node, error) {
	found, ok := n.FindOrDefault(name)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "descendant %q of %q", name, n.name)
	}
	return found, nil
}

// AddChild creates a new childless node and appends it. It fails with
// ErrAlreadyExists, leaving the children untouched, if a direct child already
// carries that name.
func (n *Node) AddChild(name string) error {
	if _, exists := n.FindChildOrDefault(name); exists {
		return errors.Wrapf(ErrAlreadyExists, "child %q of %q", name, n.name)
	}
	n.children = append(n.children, New(name))
	return nil
}

// AddChildNode appends an existing node as a child. Nothing is checked: the
// name may repeat a sibling's, and child may be n or one of n's ancestors.
func (n *Node) AddChildNode(child *Node) {
	n.children = append(n.children, child)
}

// RemoveChild removes the first direct child with the given name, failing with
// ErrNotFound if there is none.
func (n *Node) RemoveChild(name string) error {
	child, err := n.FindChild(name)
	if err != nil {
		return err
	}
	n.RemoveChildNode(child)
	return nil
}

// RemoveChildNode removes the first reference to child. Removing a node that
// is not a child is a no-op.
func (n *Node) RemoveChildNode(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Trace searches for name below n and records the route in p. On success p
// ends with n's name followed by the names down to and including the match.
// On failure p is left as it was.
func (n *Node) Trace(name string, p *path.Path) bool {
	p.Push(n.name)

	for _, child := range n.children {
		if child.name == name {
			p.Push(child.name)
			return true
		}
		if child.Trace(name, p) {
			return true
		}
	}

	p.Pop()
	return false
}

// FindCycle walks the graph below n looking for a child whose name is already
// on the current search path. When it finds one, p holds the route from the
// first entry point to that child with the repeated name last. Names, not node
// identities, are compared. On failure p is left as it was.
func (n *Node) FindCycle(p *path.Path) bool {
	p.Push(n.name)

	for _, child := range n.children {
		if p.Contains(child.name) {
			p.Push(child.name)
			return true
		}
		if child.FindCycle(p) {
			return true
		}
	}

	p.Pop()
	return false
}
