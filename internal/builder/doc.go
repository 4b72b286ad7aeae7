/*
Package builder turns a format-agnostic graph definition (config.Model) into a
live *graph.Graph, and provides the fixed demonstration graph.

Construction is a two-phase process:

 1. Children: node specs are applied in order. Each spec's node is resolved
    (the root by name, anything else through graph.Find) and its children are
    created by name with AddChild, so duplicate direct children surface as
    node.ErrAlreadyExists.

 2. Links: once every named node exists, each spec's links are resolved the
    same way and attached by reference with AddChildNode. This is the only
    phase that can introduce shared references or cycles.

Because lookups go through graph.Find, a spec naming a node that is not yet
reachable from the root fails with node.ErrNotFound.
*/
package builder
