// Package tree provides the in-memory model for rooted phylogenetic trees
// with typed attribute data.
//
// A [Tree] is a rooted, directed, acyclic structure built incrementally with
// [Tree.AddRoot] and [Tree.AddChild]. Nodes and edges are identified by small
// integer ids assigned in creation order; children of a node are reported in
// the order they were added.
//
// Attribute data lives in named columns alongside the structure:
//
//	t := tree.New()
//	root := t.AddRoot()
//	leaf := t.AddChild(root)
//
//	names := tree.NewColumn("node name", t.NodeCount())
//	names.SetValue(root, tree.NewString("root"))
//	names.SetValue(leaf, tree.NewString("leaf A"))
//	t.NodeData().Add(names)
//
// A [Column] is an ordered sequence of [Value] items, one per node (when held
// in the node-scope set) or one per edge (edge-scope set), plus an optional
// string-keyed metadata map used by serializers for things like property
// authorities and units. Values are a small tagged union over the primitive
// kinds a serializer needs to tell apart; see [Kind].
//
// Column sets preserve insertion order, so any consumer that iterates columns
// produces deterministic output across repeated runs.
//
// The model is not safe for concurrent mutation. Callers must serialize
// access between a writer and anything that modifies the tree.
package tree
