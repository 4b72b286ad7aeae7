// Package path provides the ordered name accumulator that graph traversals
// write into.
//
// A Path is entry-first: the first pushed name is the node a traversal was
// started from, the last one is the node currently being visited (or, after a
// successful search, the matched node). Traversals push a node's name when they
// enter it and pop it again when they backtrack without a result, so a Path
// handed to a failed search comes back exactly as it went in.
package path
