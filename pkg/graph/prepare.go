package graph

import (
	"fmt"
	"strings"
)

// PrepareForDFS readies the graph for a depth-first walk from its top node.
//
// If no node is marked top, the unique node without incoming edges becomes
// top. Afterwards every node must be reachable from the top along edge
// direction: edges that only connect a node against their direction are
// inverted (see [Edge.Invert]) until no inversion helps.
//
// Returns ErrMultipleTops if more than one node is marked top, ErrNoTop if
// the graph is empty or has no unique root, and ErrDisconnected if some node
// cannot be reached even ignoring edge direction.
func (g *Graph) PrepareForDFS() error {
	top, err := g.settleTop()
	if err != nil {
		return err
	}

	reached := make([]bool, len(g.nodes))
	var walk func(id int)
	walk = func(id int) {
		reached[g.index[id]] = true
		for _, e := range g.edges {
			if e.Src == id && !reached[g.index[e.Tgt]] {
				walk(e.Tgt)
			}
		}
	}
	walk(top.ID)

	for {
		var back *Edge
		for _, e := range g.edges {
			if reached[g.index[e.Tgt]] && !reached[g.index[e.Src]] {
				back = e
				break
			}
		}
		if back == nil {
			break
		}
		back.Invert()
		walk(back.Tgt)
	}

	for i, ok := range reached {
		if !ok {
			return fmt.Errorf("node %d unreachable from top %d: %w", g.nodes[i].ID, top.ID, ErrDisconnected)
		}
	}
	return nil
}

func (g *Graph) settleTop() (*Node, error) {
	if len(g.nodes) == 0 {
		return nil, ErrNoTop
	}
	tops := g.Tops()
	switch len(tops) {
	case 1:
		return tops[0], nil
	case 0:
	default:
		return nil, fmt.Errorf("%d tops: %w", len(tops), ErrMultipleTops)
	}

	hasParent := make([]bool, len(g.nodes))
	for _, e := range g.edges {
		hasParent[g.index[e.Tgt]] = true
	}
	var roots []*Node
	for i, n := range g.nodes {
		if !hasParent[i] {
			roots = append(roots, n)
		}
	}
	if len(roots) != 1 {
		return nil, fmt.Errorf("%d candidate roots: %w", len(roots), ErrNoTop)
	}
	roots[0].Top = true
	return roots[0], nil
}

// Invert reverses the edge's direction. An "-of" suffix is dropped from the
// label, otherwise one is added; Normal keeps the label from before the
// inversion, which is the display form of the new edge's inverse sense.
func (e *Edge) Invert() {
	old := e.Label
	e.Src, e.Tgt = e.Tgt, e.Src
	if l, ok := strings.CutSuffix(old, "-of"); ok {
		e.Label = l
	} else {
		e.Label = old + "-of"
	}
	e.Normal = old
}
