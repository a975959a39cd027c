package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/penman/pkg/amr"
	perrors "github.com/matzehuels/penman/pkg/errors"
	"github.com/matzehuels/penman/pkg/graph"
	gio "github.com/matzehuels/penman/pkg/io"
	"github.com/matzehuels/penman/pkg/render/nodelink"
)

// readOpts holds the command-line flags for the read command.
type readOpts struct {
	output    string
	alignment string
	format    string
	text      string
	full      bool
	reify     bool
	quiet     bool
	strict    bool
	markProps bool
}

func newReadCmd() *cobra.Command {
	var opts readOpts

	cmd := &cobra.Command{
		Use:   "read [file]",
		Short: "Decode penman notation into graphs",
		Long: `Decode a penman file (or - for stdin) into semantic graphs.

Graphs are written as penman (normalized), JSON lines, YAML documents or
Graphviz DOT. With --alignment, alignment overlays are written after their
graphs in the JSON and YAML formats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfig(cmd)
			if err := validateFormat(opts.format, formatPenman, formatJSON, formatYAML, formatDOT); err != nil {
				return err
			}
			return runRead(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.alignment, "alignment", "a", "", "alignment file read in lockstep with the graphs")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatPenman, "output format: penman, json, yaml, dot")
	cmd.Flags().StringVar(&opts.text, "text", "", "input text attached to every graph instead of # ::snt")
	cmd.Flags().BoolVar(&opts.full, "full", false, "keep :wiki attributes")
	cmd.Flags().BoolVar(&opts.reify, "reify", false, "turn attributes into nodes")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not log attached input text")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "stop at the first graph that fails to parse")
	cmd.Flags().BoolVar(&opts.markProps, "mark-props", false, "mark property roles with -prop (penman output)")

	return cmd
}

// applyConfig fills flags the user did not set from the config file.
func (o *readOpts) applyConfig(cmd *cobra.Command) {
	cfg := configFromContext(cmd.Context())
	flags := cmd.Flags()
	applyDecodeDefaults(cmd, &o.full, &o.reify)
	if !flags.Changed("quiet") {
		o.quiet = cfg.Read.Quiet
	}
	if !flags.Changed("strict") {
		o.strict = cfg.Read.Strict
	}
	if !flags.Changed("format") && cfg.Read.Format != "" {
		o.format = cfg.Read.Format
	}
	if !flags.Changed("mark-props") {
		o.markProps = cfg.Write.MarkProps
	}
}

func runRead(ctx context.Context, input string, opts readOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	ropts := amr.ReadOptions{
		Full:   opts.full,
		Reify:  opts.reify,
		Text:   opts.text,
		Quiet:  opts.quiet,
		Logger: logger,
	}
	if opts.alignment != "" {
		af, err := openInput(opts.alignment)
		if err != nil {
			return err
		}
		defer af.Close()
		ropts.Alignment = af
	}

	out, err := createOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	sink := newGraphSink(opts.format, out, amr.WriteOptions{MarkProps: opts.markProps})
	n, skipped, err := readGraphs(ctx, amr.NewReader(in, ropts), sink, opts.strict, logger)
	if cerr := sink.close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if skipped > 0 {
		printWarning("skipped %d graph(s) that failed to parse", skipped)
	}
	prog.done(fmt.Sprintf("Read %d graph(s) from %s", n, input))
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// readGraphs copies every graph of r into sink. Unless strict, graphs that
// fail to parse or convert are logged and counted instead of stopping.
func readGraphs(ctx context.Context, r *amr.Reader, sink graphSink, strict bool, logger *log.Logger) (n, skipped int, err error) {
	for {
		if err := ctx.Err(); err != nil {
			return n, skipped, err
		}
		g, overlay, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n, skipped, nil
		}
		if err != nil {
			if strict || !(perrors.Is(err, perrors.ErrCodeParse) || perrors.Is(err, perrors.ErrCodeInvalidInput)) {
				return n, skipped, err
			}
			logger.Error("skipping graph", "err", err)
			skipped++
			continue
		}
		if err := sink.write(g, overlay); err != nil {
			return n, skipped, err
		}
		n++
	}
}

// graphSink writes decoded graphs in one output format.
type graphSink interface {
	write(g, overlay *graph.Graph) error
	close() error
}

func newGraphSink(format string, w io.Writer, wopts amr.WriteOptions) graphSink {
	switch format {
	case formatJSON:
		return &jsonSink{w: w}
	case formatYAML:
		return &yamlSink{yw: gio.NewYAMLWriter(w)}
	case formatDOT:
		return &dotSink{w: w}
	default:
		return &penmanSink{w: w, opts: wopts}
	}
}

type penmanSink struct {
	w    io.Writer
	opts amr.WriteOptions
}

// write emits the metadata header and the graph together, or nothing if
// the graph cannot be serialized.
func (s *penmanSink) write(g, _ *graph.Graph) error {
	text, err := amr.Format(g, s.opts)
	if err != nil {
		return err
	}
	header := "# ::id " + g.ID + "\n"
	if g.Input != "" {
		header += "# ::snt " + g.Input + "\n"
	}
	_, err = io.WriteString(s.w, header+text)
	return err
}

func (s *penmanSink) close() error { return nil }

type jsonSink struct{ w io.Writer }

func (s *jsonSink) write(g, overlay *graph.Graph) error {
	if err := gio.WriteJSON(g, s.w); err != nil {
		return err
	}
	if overlay != nil {
		return gio.WriteJSON(overlay, s.w)
	}
	return nil
}

func (s *jsonSink) close() error { return nil }

type yamlSink struct{ yw *gio.YAMLWriter }

func (s *yamlSink) write(g, overlay *graph.Graph) error {
	if err := s.yw.Write(g); err != nil {
		return err
	}
	if overlay != nil {
		return s.yw.Write(overlay)
	}
	return nil
}

func (s *yamlSink) close() error { return s.yw.Close() }

type dotSink struct{ w io.Writer }

func (s *dotSink) write(g, _ *graph.Graph) error {
	_, err := io.WriteString(s.w, nodelink.ToDOT(g, nodelink.Options{}))
	return err
}

func (s *dotSink) close() error { return nil }
