// Package nodelink draws semantic graphs as Graphviz node-link diagrams.
//
// Nodes are labeled with their concept, the top node gets a double outline,
// and edges carry their role label. Inverted "-of" edges are drawn as
// stored; nothing is re-rooted.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// Rendering runs Graphviz in-process through [github.com/goccy/go-graphviz].
// [RenderPDF] and [RenderPNG] additionally pipe the SVG through the
// external rsvg-convert tool and fail with an UNSUPPORTED error when it
// is not installed.
package nodelink
