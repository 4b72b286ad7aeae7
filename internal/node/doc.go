// Package node implements the named vertex that every graph in this module is
// built from.
//
// # Shape
//
// A Node carries an immutable name and an ordered list of child references.
// Child references are shared, not owned: the same *Node may be attached under
// several parents and may even end up as its own descendant. Only insertion by
// name checks anything (direct-child name uniqueness); insertion by reference
// is unchecked and is the one way to introduce aliasing or a cycle. Whether a
// hierarchy is acyclic is something FindCycle tests, not something the type
// enforces.
//
// # Lookups
//
// Every lookup comes in two tiers:
//   - FindChildOrDefault / FindOrDefault report absence with a boolean.
//   - FindChild / Find return an error wrapping ErrNotFound.
//
// The descendant searches (FindOrDefault, Find) never match the receiver
// itself, only nodes below it, in pre-order: a child is compared before its
// subtree is searched, and siblings are visited left to right.
//
// # Traversals
//
// Trace and FindCycle walk depth first and record the current search path in a
// path.Path. They push a node's name on entry and pop it when every child has
// been exhausted, so a failed call leaves the path untouched and a successful
// call leaves the path from the receiver down to the match, inclusive.
//
// Neither walk keeps a visited set beyond the path itself: a node reachable
// along two different acyclic routes is walked twice.
//
// # Thread-Safety
//
// Node is not safe for concurrent mutation. Concurrent read-only traversal of a
// graph that nobody is modifying is safe.
package node
