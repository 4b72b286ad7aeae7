// Package graph provides a root-anchored view over a node hierarchy.
//
// # Why Graph Package Exists
//
// A node.Node already knows how to search, trace and detect cycles below
// itself. Graph pins one node as the root and exposes the same queries from
// there, so callers that think in terms of "the whole hierarchy" do not have to
// carry the root around separately.
//
// # Architecture
//
// Graph is a thin facade; every query is forwarded to the root:
//
//	┌─────────────────────────────┐
//	│            Graph            │
//	│ FindOrDefault Find Trace    │
//	│ FindCycle                   │
//	└──────────────┬──────────────┘
//	               │ delegates
//	               ▼
//	        ┌────────────┐
//	        │ root Node  │──▶ children ──▶ ...
//	        └────────────┘
//
// # Root Handling
//
// The lookups and the traversals treat the root differently, and callers must
// account for it:
//   - **FindOrDefault / Find** search the root's descendants only. A name equal
//     to the root's own name is reported as not found unless some descendant
//     carries it too.
//   - **Trace / FindCycle** always record the root's name as the first path
//     element.
//
// # Lifecycle
//
//  1. **Creation:** New pins the root; it is never reassigned.
//  2. **Population:** callers grow the hierarchy through the root node (or any
//     node reached from it) with AddChild / AddChildNode.
//  3. **Querying:** lookups, traces and cycle detection through Graph.
//
// # Thread-Safety
//
// Graph adds no synchronization on top of node.Node: it is not safe for
// concurrent mutation, and safe for concurrent read-only queries while nobody
// mutates the hierarchy.
package graph
