// Package quantity provides a decimal magnitude tagged with a physical unit.
//
// Quantities can be added to and subtracted from each other only when their
// units match; scaling by a plain factor always succeeds. The package has no
// dependency on the graph packages.
package quantity
