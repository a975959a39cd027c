package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/penman/pkg/graph"
)

// ErrUnknownTop is returned when a graph's tops reference a missing node.
var ErrUnknownTop = errors.New("unknown top node")

// ReadJSON decodes every graph of a JSON stream. Graphs may be separated by
// any whitespace, so both JSON lines and concatenated objects are accepted.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]*graph.Graph, error) {
	dec := json.NewDecoder(r)
	var out []*graph.Graph
	for {
		var doc graphDoc
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("decode graph %d: %w", len(out)+1, err)
		}
		g, err := fromDoc(doc)
		if err != nil {
			return out, err
		}
		out = append(out, g)
	}
}

// ReadYAML decodes every document of a YAML stream.
func ReadYAML(r io.Reader) ([]*graph.Graph, error) {
	dec := yaml.NewDecoder(r)
	var out []*graph.Graph
	for {
		var doc graphDoc
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("decode graph %d: %w", len(out)+1, err)
		}
		g, err := fromDoc(doc)
		if err != nil {
			return out, err
		}
		out = append(out, g)
	}
}

// ImportJSON reads the JSON file at path and returns its graphs.
func ImportJSON(path string) ([]*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func fromDoc(doc graphDoc) (*graph.Graph, error) {
	g := graph.New(doc.ID, graph.Flavor(doc.Flavor), doc.Framework)
	g.SetInput(doc.Input)

	for _, n := range doc.Nodes {
		if len(n.Properties) != len(n.Values) {
			return nil, fmt.Errorf("graph #%s: node %d: %w", doc.ID, n.ID, graph.ErrPropertyMismatch)
		}
		node, err := g.AddNode(n.ID, n.Label, false)
		if err != nil {
			return nil, fmt.Errorf("graph #%s: %w", doc.ID, err)
		}
		for i, k := range n.Properties {
			node.SetProperty(k, n.Values[i])
		}
	}
	for _, id := range doc.Tops {
		n := g.FindNode(id)
		if n == nil {
			return nil, fmt.Errorf("graph #%s: top %d: %w", doc.ID, id, ErrUnknownTop)
		}
		n.Top = true
	}
	for _, e := range doc.Edges {
		if _, err := g.AddEdge(e.Source, e.Target, e.Label, e.Normal); err != nil {
			return nil, fmt.Errorf("graph #%s: %w", doc.ID, err)
		}
	}
	return g, nil
}
