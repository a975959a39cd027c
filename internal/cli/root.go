// Package cli implements the penman command-line interface.
//
// # Commands
//
//   - read: decode penman notation into graphs (penman, JSON, YAML or DOT)
//   - write: serialize JSON graphs back into penman notation
//   - render: draw graphs as node-link diagrams
//   - browse: page through the graphs of a file interactively
//
// # Configuration
//
// Defaults for command flags come from an optional TOML file, by default
// $XDG_CONFIG_HOME/penman/config.toml; see [config.Load]. Flags given on the
// command line take precedence.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/penman/pkg/buildinfo"
	"github.com/matzehuels/penman/pkg/config"
)

// Execute runs the penman CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Penman reads and writes AMR graphs",
		Long:         `Penman converts Abstract Meaning Representation graphs between penman notation and a labeled graph model, with optional token alignments.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/penman/config.toml)")

	root.AddCommand(newReadCmd())
	root.AddCommand(newWriteCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
