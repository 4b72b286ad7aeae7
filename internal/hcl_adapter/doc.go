// Package hcl_adapter reads graph definitions written in HCL and translates
// them into the format-agnostic config.Model.
//
// A definition names the root in a `graph` block and describes outgoing
// references with `node` blocks:
//
//	graph {
//	  root = "A"
//	}
//
//	node "A" {
//	  children = ["B", "C", "D"]
//	}
//
//	node "H" {
//	  links = ["A"]
//	}
package hcl_adapter
