package amr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/penman/pkg/graph"
	"github.com/matzehuels/penman/pkg/penman"
)

// ErrUnknownVariable is returned by Convert when a relation targets a
// variable that names no node.
var ErrUnknownVariable = errors.New("unknown variable")

const (
	wikiKey = "wiki"

	// strayMarker is an encoding artifact found at the end of some
	// attribute values in released corpora.
	strayMarker = "¦"
)

// ConvertOptions controls how attributes are materialized.
type ConvertOptions struct {
	// Full keeps wiki attributes, which are dropped otherwise.
	Full bool
	// Reify turns every attribute into a node linked by an edge labeled
	// with the attribute key, instead of a node property.
	Reify bool
	// Logger receives warnings about dropped alignments. Nil uses log.Default().
	Logger *log.Logger
}

// NormalizeLabel returns the display label for the inverse sense of an edge
// labeled label, or "" if the label has none. "mod" is the inverse form of
// "domain"; other "-of" labels lose the suffix, except "consist-of",
// "subset-of" and "prep-" labels, which are relations in their own right.
// A doubled "-of-of" always loses one suffix.
func NormalizeLabel(label string) string {
	switch {
	case label == "mod":
		return "domain"
	case strings.HasSuffix(label, "-of-of"),
		strings.HasSuffix(label, "-of") &&
			label != "consist-of" && label != "subset-of" &&
			!strings.HasPrefix(label, "prep-"):
		return label[:len(label)-len("-of")]
	}
	return ""
}

// Convert builds the semantic graph for rec and, when align is non-nil, the
// alignment overlay sharing its node IDs.
//
// Nodes get dense IDs in record order; with Reify, the nodes created for a
// node's attributes take the IDs directly following it. Edges keep the
// direction of the relations they come from.
func Convert(id string, rec *penman.Record, opts ConvertOptions, align Alignment) (*graph.Graph, *graph.Graph, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := graph.New(id, graph.FlavorAMR, graph.FrameworkAMR)
	ids := make(map[string]int, rec.Len())
	next := 0
	for i, v := range rec.Nodes {
		j := next
		next++
		ids[v] = j

		attrs := rec.Attributes[i]
		top := false
		for _, a := range attrs {
			if a.Key == penman.TopKey {
				top = true
			}
		}
		node, err := g.AddNode(j, rec.Values[i], top)
		if err != nil {
			return nil, nil, err
		}

		for _, a := range attrs {
			if a.Key == penman.TopKey || (a.Key == wikiKey && !opts.Full) {
				continue
			}
			val, _ := strings.CutSuffix(a.Value, strayMarker)
			if !opts.Reify {
				node.SetProperty(a.Key, val)
				continue
			}
			if _, err := g.AddNode(next, val, false); err != nil {
				return nil, nil, err
			}
			if _, err := g.AddEdge(j, next, a.Key, ""); err != nil {
				return nil, nil, err
			}
			next++
		}
	}

	for i, src := range rec.Nodes {
		for _, r := range rec.Relations[i] {
			tgt, ok := ids[r.Target]
			if !ok {
				return nil, nil, fmt.Errorf("graph #%s: %s :%s %s: %w", id, src, r.Label, r.Target, ErrUnknownVariable)
			}
			if _, err := g.AddEdge(ids[src], tgt, r.Label, NormalizeLabel(r.Label)); err != nil {
				return nil, nil, err
			}
		}
	}

	if align == nil {
		return g, nil, nil
	}
	return g, buildOverlay(id, ids, align, logger), nil
}

// buildOverlay carries node spans as labels and property spans as
// properties. Spans on deeper paths are not representable and are dropped.
func buildOverlay(id string, ids map[string]int, align Alignment, logger *log.Logger) *graph.Graph {
	overlay := graph.New(id, graph.FlavorAMR, graph.FrameworkAlignment)
	tokens := align.Tokens()

	for _, tok := range tokens {
		j, ok := ids[tok]
		if !ok {
			logger.Warn("ignoring alignment for unknown node", "graph", id, "node", tok)
			continue
		}
		for _, ps := range align[tok] {
			if len(ps.Path) == 0 {
				// Each token has at most one empty path, so this cannot collide.
				_, _ = overlay.AddNode(j, graph.FormatSpan(ps.Sorted()), false)
			}
		}
	}

	for _, tok := range tokens {
		j, ok := ids[tok]
		if !ok {
			continue
		}
		for _, ps := range align[tok] {
			switch {
			case len(ps.Path) == 1:
				node := overlay.FindNode(j)
				if node == nil {
					node, _ = overlay.AddNode(j, "", false)
				}
				node.SetProperty(ps.Path[0], graph.FormatSpan(ps.Sorted()))
			case len(ps.Path) > 1:
				logger.Warn("ignoring alignment path", "path", strings.Join(ps.Path, " "), "graph", id, "node", tok)
			}
		}
	}
	return overlay
}
