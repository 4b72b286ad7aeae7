package config

import "errors"

// ErrNoRoot is returned by Validate when the model does not name a root.
var ErrNoRoot = errors.New("graph definition has no root")

// Model is the unified, format-agnostic representation of a graph definition.
type Model struct {
	// Root names the node the graph is anchored at.
	Root string
	// Nodes are applied in order; a node's children must exist before the
	// node can itself receive children.
	Nodes []*NodeSpec
}

// NodeSpec describes the outgoing references of one named node.
type NodeSpec struct {
	Name string
	// Children are created by name, in order.
	Children []string
	// Links attach already existing nodes by reference.
	Links []string
}

// Validate checks the model for problems that do not depend on build order.
func (m *Model) Validate() error {
	if m.Root == "" {
		return ErrNoRoot
	}
	return nil
}
