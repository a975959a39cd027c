package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/penman/pkg/graph"
)

type graphDoc struct {
	ID        string    `json:"id" yaml:"id"`
	Flavor    int       `json:"flavor" yaml:"flavor"`
	Framework string    `json:"framework" yaml:"framework"`
	Input     string    `json:"input,omitempty" yaml:"input,omitempty"`
	Tops      []int     `json:"tops" yaml:"tops"`
	Nodes     []nodeDoc `json:"nodes" yaml:"nodes"`
	Edges     []edgeDoc `json:"edges" yaml:"edges"`
}

type nodeDoc struct {
	ID         int      `json:"id" yaml:"id"`
	Label      string   `json:"label,omitempty" yaml:"label,omitempty"`
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty,flow"`
	Values     []string `json:"values,omitempty" yaml:"values,omitempty,flow"`
}

type edgeDoc struct {
	Source int    `json:"source" yaml:"source"`
	Target int    `json:"target" yaml:"target"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Normal string `json:"normal,omitempty" yaml:"normal,omitempty"`
}

func toDoc(g *graph.Graph) graphDoc {
	doc := graphDoc{
		ID:        g.ID,
		Flavor:    int(g.Flavor),
		Framework: g.Framework,
		Input:     g.Input,
		Tops:      []int{},
		Nodes:     make([]nodeDoc, 0, g.NodeCount()),
		Edges:     make([]edgeDoc, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		if n.Top {
			doc.Tops = append(doc.Tops, n.ID)
		}
		doc.Nodes = append(doc.Nodes, nodeDoc{
			ID:         n.ID,
			Label:      n.Label,
			Properties: n.Properties,
			Values:     n.Values,
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeDoc{Source: e.Src, Target: e.Tgt, Label: e.Label, Normal: e.Normal})
	}
	return doc
}

// WriteJSON encodes g as a single line of JSON and writes it to w.
// The output can be re-read with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	if err := json.NewEncoder(w).Encode(toDoc(g)); err != nil {
		return fmt.Errorf("encode #%s: %w", g.ID, err)
	}
	return nil
}

// WriteYAML encodes g as one YAML document and writes it to w. Consecutive
// calls on the same writer should go through a [YAMLWriter] so documents
// are separated.
func WriteYAML(g *graph.Graph, w io.Writer) error {
	yw := NewYAMLWriter(w)
	if err := yw.Write(g); err != nil {
		return err
	}
	return yw.Close()
}

// YAMLWriter writes a stream of YAML documents, one per graph.
type YAMLWriter struct {
	enc *yaml.Encoder
}

// NewYAMLWriter returns a writer emitting two-space indented YAML to w.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLWriter{enc: enc}
}

// Write appends g as the next document.
func (yw *YAMLWriter) Write(g *graph.Graph) error {
	if err := yw.enc.Encode(toDoc(g)); err != nil {
		return fmt.Errorf("encode #%s: %w", g.ID, err)
	}
	return nil
}

// Close flushes the stream.
func (yw *YAMLWriter) Close() error { return yw.enc.Close() }

// ExportJSON writes graphs to a JSON lines file at path.
func ExportJSON(path string, graphs ...*graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	for _, g := range graphs {
		if err := WriteJSON(g, f); err != nil {
			return err
		}
	}
	return nil
}
