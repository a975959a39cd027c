package nodelink

import (
	"strings"
	"testing"

	perrors "github.com/matzehuels/penman/pkg/errors"
	"github.com/matzehuels/penman/pkg/graph"
)

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New("7", graph.FlavorAMR, graph.FrameworkAMR)
	w, _ := g.AddNode(0, "want-01", true)
	w.SetProperty("polarity", "-")
	g.AddNode(1, "boy", false)
	if _, err := g.AddEdge(0, 1, "arg0", ""); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sample(t), Options{})

	for _, want := range []string{
		"digraph G",
		`label="#7"`,
		`n0 [label="want-01", peripheries=2];`,
		`n1 [label="boy"];`,
		`n0 -> n1 [label="arg0"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sample(t), Options{Detailed: true})

	if !strings.Contains(dot, `#0 want-01\npolarity: -`) {
		t.Errorf("ToDOT() detailed output missing properties:\n%s", dot)
	}
}

func TestFmtLabel(t *testing.T) {
	n := &graph.Node{ID: 3, Label: "dog", Properties: []string{"quant"}, Values: []string{"2"}}

	if got := fmtLabel(n, false); got != "dog" {
		t.Errorf("fmtLabel() simple = %q, want %q", got, "dog")
	}
	if got := fmtLabel(n, true); got != "#3 dog\nquant: 2" {
		t.Errorf("fmtLabel() detailed = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}

func TestRasterizeWithoutConverter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	for _, format := range []string{"pdf", "png"} {
		out, err := rasterize([]byte("<svg/>"), format)
		if err == nil {
			t.Fatalf("%s: expected error without %s on PATH", format, rsvgConvert)
		}
		if !perrors.Is(err, perrors.ErrCodeUnsupported) {
			t.Errorf("%s: code = %q, want %q", format, perrors.GetCode(err), perrors.ErrCodeUnsupported)
		}
		if !strings.Contains(perrors.UserMessage(err), format) {
			t.Errorf("%s: message %q does not name the format", format, perrors.UserMessage(err))
		}
		if out != nil {
			t.Errorf("%s: got %d bytes, want none", format, len(out))
		}
	}
}
