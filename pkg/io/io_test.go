package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/penman/pkg/graph"
)

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New("20003012", graph.FlavorAMR, graph.FrameworkAMR)
	g.SetInput("The boy wants to go.")
	_, err := g.AddNode(0, "want-01", true)
	require.NoError(t, err)
	b, err := g.AddNode(1, "boy", false)
	require.NoError(t, err)
	b.SetProperty("quant", "2")
	_, err = g.AddEdge(0, 1, "arg0", "arg0")
	require.NoError(t, err)
	return g
}

func assertSameGraph(t *testing.T, want, got *graph.Graph) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Flavor, got.Flavor)
	assert.Equal(t, want.Framework, got.Framework)
	assert.Equal(t, want.Input, got.Input)
	assert.Equal(t, want.Nodes(), got.Nodes())
	assert.Equal(t, want.Edges(), got.Edges())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(sample(t), &buf))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "one graph per line")
	assert.Contains(t, out, `"tops":[0]`)
	assert.Contains(t, out, `"properties":["quant"],"values":["2"]`)
	assert.Contains(t, out, `{"source":0,"target":1,"label":"arg0","normal":"arg0"}`)
}

func TestJSONStream(t *testing.T) {
	g := sample(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(g, &buf))
	require.NoError(t, WriteJSON(g, &buf))

	graphs, err := ReadJSON(&buf)
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	assertSameGraph(t, g, graphs[0])
	assertSameGraph(t, g, graphs[1])
}

func TestYAMLStream(t *testing.T) {
	g := sample(t)
	var buf bytes.Buffer
	yw := NewYAMLWriter(&buf)
	require.NoError(t, yw.Write(g))
	require.NoError(t, yw.Write(g))
	require.NoError(t, yw.Close())

	assert.Contains(t, buf.String(), "---")
	graphs, err := ReadYAML(&buf)
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	assertSameGraph(t, g, graphs[1])
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphs.json")
	g := sample(t)
	require.NoError(t, ExportJSON(path, g))

	graphs, err := ImportJSON(path)
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assertSameGraph(t, g, graphs[0])

	_, err = ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"duplicate node", `{"id":"x","nodes":[{"id":0},{"id":0}]}`, graph.ErrDuplicateNodeID},
		{"unknown target", `{"id":"x","nodes":[{"id":0}],"edges":[{"source":0,"target":4}]}`, graph.ErrUnknownTargetNode},
		{"unknown top", `{"id":"x","tops":[3],"nodes":[{"id":0}]}`, ErrUnknownTop},
		{"property mismatch", `{"id":"x","nodes":[{"id":0,"properties":["a"]}]}`, graph.ErrPropertyMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := ReadJSON(strings.NewReader(`{"id":`))
	assert.Error(t, err)
}
