package graph

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs are unique for the lifetime of a graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the source
	// node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the target
	// node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrPropertyMismatch is returned by [Graph.Validate] when a node's
	// property keys and values differ in length.
	ErrPropertyMismatch = errors.New("property keys and values differ in length")

	// ErrNoTop is returned by [Graph.PrepareForDFS] when no node is marked
	// top and the graph has no unique natural root.
	ErrNoTop = errors.New("graph has no top node")

	// ErrMultipleTops is returned by [Graph.PrepareForDFS] when more than
	// one node is marked top.
	ErrMultipleTops = errors.New("graph has multiple top nodes")

	// ErrDisconnected is returned by [Graph.PrepareForDFS] when some nodes
	// cannot be reached from the top node, even ignoring edge direction.
	ErrDisconnected = errors.New("graph is disconnected")
)

// Flavor identifies the family a graph belongs to. AMR graphs are
// unanchored: nodes carry no character spans of their own.
type Flavor int

// FlavorAMR is the flavor of AMR-shaped graphs and their overlays.
const FlavorAMR Flavor = 2

// Frameworks distinguish semantic graphs from the overlays built alongside them.
const (
	FrameworkAMR       = "amr"
	FrameworkAlignment = "alignment"
)

// Node is a vertex of a semantic graph.
//
// Properties and Values are parallel: Values[i] is the value of
// Properties[i]. Order follows insertion order and duplicates are allowed.
type Node struct {
	ID         int
	Label      string
	Top        bool
	Properties []string
	Values     []string
}

// SetProperty appends a key/value pair to the node's properties.
func (n *Node) SetProperty(key, value string) {
	n.Properties = append(n.Properties, key)
	n.Values = append(n.Values, value)
}

// Property returns the value of the first property named key.
func (n *Node) Property(key string) (string, bool) {
	for i, k := range n.Properties {
		if k == key {
			return n.Values[i], true
		}
	}
	return "", false
}

// Edge is a directed, labeled connection between two nodes.
//
// Normal, when non-empty, is the label that displays the edge in its
// inverse relational sense (for example "arg0" for an "arg0-of" edge).
// It is display metadata only and never changes the stored direction.
type Edge struct {
	Src    int
	Tgt    int
	Label  string
	Normal string
}

// Compare orders edges by source, then target, then label.
func (e *Edge) Compare(o *Edge) int {
	if e.Src != o.Src {
		return e.Src - o.Src
	}
	if e.Tgt != o.Tgt {
		return e.Tgt - o.Tgt
	}
	return strings.Compare(e.Label, o.Label)
}

func (e *Edge) String() string {
	return fmt.Sprintf("%d -%s-> %d", e.Src, e.Label, e.Tgt)
}

// Graph is a labeled directed graph that may contain reentrancies and cycles.
// Nodes live in an arena in insertion order and edges reference them by ID.
//
// The zero value is not usable - use New to create a graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	ID        string
	Flavor    Flavor
	Framework string
	// Input is the source sentence the graph describes, if known.
	Input string

	nodes []*Node
	index map[int]int // node ID -> position in nodes
	edges []*Edge
}

// New creates an empty graph.
func New(id string, flavor Flavor, framework string) *Graph {
	return &Graph{
		ID:        id,
		Flavor:    flavor,
		Framework: framework,
		index:     make(map[int]int),
	}
}

// SetInput attaches the source sentence to the graph.
func (g *Graph) SetInput(text string) { g.Input = text }

// AddNode adds a node with the given ID and label and returns it.
func (g *Graph) AddNode(id int, label string, top bool) (*Node, error) {
	if _, exists := g.index[id]; exists {
		return nil, fmt.Errorf("node %d: %w", id, ErrDuplicateNodeID)
	}
	n := &Node{ID: id, Label: label, Top: top}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return n, nil
}

// AddEdge adds a directed edge between two existing nodes and returns it.
// Multiple edges between the same pair of nodes are allowed.
func (g *Graph) AddEdge(src, tgt int, label, normal string) (*Edge, error) {
	if _, ok := g.index[src]; !ok {
		return nil, fmt.Errorf("edge %d->%d: %w", src, tgt, ErrUnknownSourceNode)
	}
	if _, ok := g.index[tgt]; !ok {
		return nil, fmt.Errorf("edge %d->%d: %w", src, tgt, ErrUnknownTargetNode)
	}
	e := &Edge{Src: src, Tgt: tgt, Label: label, Normal: normal}
	g.edges = append(g.edges, e)
	return e, nil
}

// FindNode returns the node with the given ID, or nil if there is none.
func (g *Graph) FindNode(id int) *Node {
	if i, ok := g.index[id]; ok {
		return g.nodes[i]
	}
	return nil
}

// Nodes returns the nodes in insertion order. The slice is a copy but the
// nodes are shared with the graph.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// Edges returns the edges in insertion order. The slice is a copy but the
// edges are shared with the graph.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Outgoing returns the edges leaving the node, sorted by [Edge.Compare].
func (g *Graph) Outgoing(id int) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Src == id {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, (*Edge).Compare)
	return out
}

// Incoming returns the edges entering the node in insertion order.
func (g *Graph) Incoming(id int) []*Edge {
	var in []*Edge
	for _, e := range g.edges {
		if e.Tgt == id {
			in = append(in, e)
		}
	}
	return in
}

// Tops returns the nodes marked top, in insertion order.
func (g *Graph) Tops() []*Node {
	var tops []*Node
	for _, n := range g.nodes {
		if n.Top {
			tops = append(tops, n)
		}
	}
	return tops
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := New(g.ID, g.Flavor, g.Framework)
	c.Input = g.Input
	for _, n := range g.nodes {
		cn := *n
		cn.Properties = slices.Clone(n.Properties)
		cn.Values = slices.Clone(n.Values)
		c.index[cn.ID] = len(c.nodes)
		c.nodes = append(c.nodes, &cn)
	}
	for _, e := range g.edges {
		ce := *e
		c.edges = append(c.edges, &ce)
	}
	return c
}

// Validate checks that every edge references existing nodes and that every
// node has as many property values as property keys.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if g.FindNode(e.Src) == nil || g.FindNode(e.Tgt) == nil {
			return fmt.Errorf("edge %s: %w", e, ErrInvalidEdgeEndpoint)
		}
	}
	for _, n := range g.nodes {
		if len(n.Properties) != len(n.Values) {
			return fmt.Errorf("node %d: %w", n.ID, ErrPropertyMismatch)
		}
	}
	return nil
}
