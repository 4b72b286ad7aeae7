package node

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a child, descendant or trace target is missing.
	ErrNotFound = errors.New("node not found")
	// ErrAlreadyExists is returned when a named child would collide with an
	// existing direct child.
	ErrAlreadyExists = errors.New("node already exists")
)
