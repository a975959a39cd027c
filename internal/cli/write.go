package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/penman/pkg/amr"
	"github.com/matzehuels/penman/pkg/graph"
	gio "github.com/matzehuels/penman/pkg/io"
)

type writeOpts struct {
	output      string
	inputFormat string
	markProps   bool
}

func newWriteCmd() *cobra.Command {
	var opts writeOpts

	cmd := &cobra.Command{
		Use:   "write [file]",
		Short: "Serialize JSON or YAML graphs as penman notation",
		Long: `Serialize the AMR graphs of a JSON lines or YAML file (or - for stdin)
as penman notation. Alignment overlays in the input are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mark-props") {
				opts.markProps = configFromContext(cmd.Context()).Write.MarkProps
			}
			if opts.inputFormat == "" {
				opts.inputFormat = inferInputFormat(args[0])
			}
			if err := validateFormat(opts.inputFormat, formatJSON, formatYAML); err != nil {
				return err
			}
			return runWrite(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.inputFormat, "input-format", "i", "", "input format: json, yaml (default from extension)")
	cmd.Flags().BoolVar(&opts.markProps, "mark-props", false, "mark property roles with -prop")

	return cmd
}

// inferInputFormat picks yaml for .yaml/.yml files and json otherwise.
func inferInputFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSON
}

func runWrite(ctx context.Context, input string, opts writeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	var graphs []*graph.Graph
	if opts.inputFormat == formatYAML {
		graphs, err = gio.ReadYAML(in)
	} else {
		graphs, err = gio.ReadJSON(in)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	out, err := createOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	sink := &penmanSink{w: out, opts: amr.WriteOptions{MarkProps: opts.markProps}}
	n := 0
	for _, g := range graphs {
		if g.Framework == graph.FrameworkAlignment {
			logger.Debug("skipping alignment overlay", "graph", g.ID)
			continue
		}
		if err := sink.write(g, nil); err != nil {
			return err
		}
		n++
	}

	prog.done(fmt.Sprintf("Wrote %d graph(s)", n))
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}
