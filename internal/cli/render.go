package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/penman/pkg/amr"
	"github.com/matzehuels/penman/pkg/graph"
	"github.com/matzehuels/penman/pkg/render/nodelink"
)

const (
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"

	defaultPNGScale = 2.0
)

type renderOpts struct {
	output   string
	format   string
	detailed bool
	full     bool
	reify    bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the graphs of a penman file as node-link diagrams",
		Long: `Draw every graph of a penman file as a Graphviz diagram.

With one graph, --output names the file. With several, --output is a base
path and each file is suffixed with the graph id. Without --output, files
are named after the graph ids in the current directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			applyDecodeDefaults(cmd, &opts.full, &opts.reify)
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = cfg.Render.Detailed
			}
			if !cmd.Flags().Changed("format") && cfg.Render.Format != "" {
				opts.format = cfg.Render.Format
			}
			if err := validateFormat(opts.format, formatSVG, formatDOT, formatPDF, formatPNG); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (one graph) or base path (several)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg, dot, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node ids and properties")
	cmd.Flags().BoolVar(&opts.full, "full", false, "keep :wiki attributes")
	cmd.Flags().BoolVar(&opts.reify, "reify", false, "turn attributes into nodes")

	return cmd
}

func runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	pairs, err := amr.ReadAll(in, amr.ReadOptions{
		Full:   opts.full,
		Reify:  opts.reify,
		Quiet:  true,
		Logger: logger,
	}, true)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		printWarning("no graphs in %s", input)
		return nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d graph(s)...", len(pairs)))
	spinner.Start()
	var written []string
	for i, p := range pairs {
		spinner.Update(fmt.Sprintf("Rendering #%s (%d/%d)...", p.Graph.ID, i+1, len(pairs)))
		path := renderPath(opts.output, p.Graph.ID, opts.format, len(pairs) > 1)
		if err := renderGraph(p.Graph, path, opts); err != nil {
			spinner.StopWithError(fmt.Sprintf("Failed to render #%s", p.Graph.ID))
			return err
		}
		written = append(written, path)
	}
	spinner.Stop()

	prog.done(fmt.Sprintf("Rendered %d graph(s)", len(written)))
	for _, path := range written {
		printFile(path)
	}
	return nil
}

func renderGraph(g *graph.Graph, path string, opts renderOpts) error {
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed})

	var (
		data []byte
		err  error
	)
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatPDF:
		data, err = nodelink.RenderPDF(dot)
	case formatPNG:
		data, err = nodelink.RenderPNG(dot, defaultPNGScale)
	default:
		data, err = nodelink.RenderSVG(dot)
	}
	if err != nil {
		return fmt.Errorf("render #%s: %w", g.ID, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// renderPath names the output file of graph id.
func renderPath(output, id, format string, multi bool) string {
	if output == "" {
		return fileSafeID(id) + "." + format
	}
	if !multi {
		return output
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + "-" + fileSafeID(id) + "." + format
}

// fileSafeID maps a graph id to a single path element. Ids are passed
// through from the input and may contain separators or dot segments.
func fileSafeID(id string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, id)
	if strings.Trim(name, ".") == "" {
		return "graph"
	}
	return name
}
