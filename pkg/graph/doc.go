// Package graph provides the labeled directed graph used to represent
// sentence meaning.
//
// A [Graph] stores nodes in an arena ordered by insertion and refers to them
// by small integer IDs. Edges are kept as a separate list of
// (source, target, label, normal) records, so reentrant and cyclic structures
// need no pointer cycles.
//
// # Nodes
//
// Every [Node] carries a concept label, a top flag and an ordered list of
// properties (parallel key and value slices):
//
//	g := graph.New("1", graph.FlavorAMR, graph.FrameworkAMR)
//	want, _ := g.AddNode(0, "want-01", true)
//	boy, _ := g.AddNode(1, "boy", false)
//	boy.SetProperty("quant", "2")
//	g.AddEdge(want.ID, boy.ID, "ARG0", "")
//
// # Preparation for Traversal
//
// Printers that walk the graph as a tree from its top node call
// [Graph.PrepareForDFS] first. It settles the top node and inverts edges
// where needed so that every node is reachable along edge direction. It
// fails with [ErrMultipleTops], [ErrNoTop] or [ErrDisconnected] on graphs
// that cannot be printed as a single rooted tree.
//
// # Overlays
//
// Alignment overlays use the same type with [FrameworkAlignment]. Their nodes
// share IDs with the semantic graph they annotate and carry character spans
// formatted by [FormatSpan] as labels and property values.
package graph
