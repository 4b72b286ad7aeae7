package config

import "context"

// Loader is the interface for a format-specific graph definition loader.
type Loader interface {
	// Load reads definitions from the given paths and merges them into a
	// single format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
