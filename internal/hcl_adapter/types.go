package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Graphs []*GraphBlock `hcl:"graph,block"`
	Nodes  []*NodeBlock  `hcl:"node,block"`
	Remain hcl.Body      `hcl:",remain"`
}

// GraphBlock maps the `graph` block.
type GraphBlock struct {
	Root string `hcl:"root"`
}

// NodeBlock maps a `node "<name>"` block. The lists are kept as expressions so
// that they can be type-checked with cty before use.
type NodeBlock struct {
	Name     string         `hcl:"name,label"`
	Children hcl.Expression `hcl:"children,optional"`
	Links    hcl.Expression `hcl:"links,optional"`
}
