package amr

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	perrors "github.com/matzehuels/penman/pkg/errors"
	"github.com/matzehuels/penman/pkg/graph"
)

const (
	// propMarker is appended to property keys with WriteOptions.MarkProps.
	propMarker = "-prop"

	firstIndent = "     "
	indentStep  = "      "
)

// WriteOptions configures penman output.
type WriteOptions struct {
	// MarkProps suffixes every property key with "-prop" so properties can
	// be told apart from edges downstream. Stored data is not changed.
	MarkProps bool
}

// Write serializes g in penman notation to w. See Format.
func Write(w io.Writer, g *graph.Graph, opts WriteOptions) error {
	s, err := Format(g, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Format serializes g in penman notation, terminated by a blank line.
//
// The graph is printed as a tree from its unique top node. Nodes get short
// labels made of the lower-cased first letter of their concept, numbered
// from the second use of a letter on (w, w1, w2, ...). A node reached again
// prints as its short label only. Outgoing edges print in (source, target,
// label) order, so output is deterministic. Alignment and the wiki data
// dropped on reading are not represented.
//
// g itself is not modified: edge inversions needed to reach every node from
// the top are applied to a copy.
//
// Errors carry ErrCodeInvalidFlavor for overlays and non-AMR graphs,
// ErrCodeInvalidStructure for graphs without a unique top or with
// unreachable nodes, and ErrCodeInternal if the walk misses a node or edge.
func Format(g *graph.Graph, opts WriteOptions) (string, error) {
	if g.Flavor != graph.FlavorAMR || g.Framework == graph.FrameworkAlignment {
		return "", perrors.New(perrors.ErrCodeInvalidFlavor, "penman output cannot represent alignments (graph #%s)", g.ID)
	}
	if err := g.Validate(); err != nil {
		return "", perrors.Wrap(perrors.ErrCodeInvalidStructure, err, "graph #%s", g.ID)
	}

	g = g.Clone()
	if err := g.PrepareForDFS(); err != nil {
		return "", perrors.Wrap(perrors.ErrCodeInvalidStructure, err, "graph #%s", g.ID)
	}
	tops := g.Tops()
	if len(tops) != 1 {
		return "", perrors.New(perrors.ErrCodeInvalidStructure, "penman output requires a unique top node (graph #%s has %d)", g.ID, len(tops))
	}

	w := &writer{
		g:       g,
		opts:    opts,
		labels:  make(map[int]string, g.NodeCount()),
		uses:    make(map[rune]int),
		visited: make(map[*graph.Edge]bool, g.EdgeCount()),
	}
	top := tops[0]
	w.b.WriteString("(")
	if err := w.node(top); err != nil {
		return "", err
	}
	if err := w.outgoing(top, firstIndent); err != nil {
		return "", err
	}
	w.b.WriteString(")\n\n")

	if len(w.labels) != g.NodeCount() {
		return "", perrors.New(perrors.ErrCodeInternal, "some graph nodes weren't covered (graph #%s: %d of %d)", g.ID, len(w.labels), g.NodeCount())
	}
	if len(w.visited) != g.EdgeCount() {
		return "", perrors.New(perrors.ErrCodeInternal, "some graph edges weren't covered (graph #%s: %d of %d)", g.ID, len(w.visited), g.EdgeCount())
	}
	return w.b.String(), nil
}

// writer holds the state of one Format call.
type writer struct {
	g       *graph.Graph
	opts    WriteOptions
	labels  map[int]string // node ID -> short label, for nodes printed so far
	uses    map[rune]int   // first letter -> number of short labels using it
	visited map[*graph.Edge]bool
	b       strings.Builder
}

// node prints the short label of a node seen before, otherwise assigns one
// and prints "<short> / <concept>" followed by the node's properties.
func (w *writer) node(n *graph.Node) error {
	if short, ok := w.labels[n.ID]; ok {
		w.b.WriteString(short)
		return nil
	}
	if n.Label == "" {
		return perrors.New(perrors.ErrCodeInvalidInput, "node %d of graph #%s has no label", n.ID, w.g.ID)
	}

	r, _ := utf8.DecodeRuneInString(n.Label)
	r = unicode.ToLower(r)
	short := string(r)
	if c := w.uses[r]; c != 0 {
		short += strconv.Itoa(c)
	}
	w.uses[r]++
	w.labels[n.ID] = short

	w.b.WriteString(short)
	w.b.WriteString(" / ")
	w.b.WriteString(n.Label)
	for i, key := range n.Properties {
		if w.opts.MarkProps {
			key += propMarker
		}
		w.b.WriteString(" :")
		w.b.WriteString(key)
		w.b.WriteString(" ")
		w.b.WriteString(formatValue(n.Values[i]))
	}
	return nil
}

func (w *writer) outgoing(n *graph.Node, indent string) error {
	for _, e := range w.g.Outgoing(n.ID) {
		w.visited[e] = true
		tgt := w.g.FindNode(e.Tgt)

		w.b.WriteString("\n")
		w.b.WriteString(indent)
		w.b.WriteString(" :")
		w.b.WriteString(e.Label)
		w.b.WriteString(" ")

		if _, seen := w.labels[tgt.ID]; seen {
			w.b.WriteString(w.labels[tgt.ID])
			continue
		}
		w.b.WriteString("(")
		if err := w.node(tgt); err != nil {
			return err
		}
		if err := w.outgoing(tgt, indent+indentStep); err != nil {
			return err
		}
		w.b.WriteString(")")
	}
	return nil
}

// formatValue leaves digit strings and "-" bare and quotes everything else.
func formatValue(v string) string {
	if v == "-" || isDigits(v) {
		return v
	}
	return `"` + quoteEscaper.Replace(v) + `"`
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
