package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/penman/pkg/config"
	perrors "github.com/matzehuels/penman/pkg/errors"
)

const appName = "penman"

// Output formats of the read command.
const (
	formatPenman = "penman"
	formatJSON   = "json"
	formatYAML   = "yaml"
	formatDOT    = "dot"
)

// configKey is the context key for the loaded configuration.
const configKey ctxKey = 1

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the loaded configuration, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// openInput opens path for reading; "-" is standard input.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "%s not found", path)
		}
		return nil, err
	}
	return f, nil
}

// createOutput creates path for writing; "" and "-" are standard output.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func validateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return perrors.New(perrors.ErrCodeInvalidFormat, "invalid format %q (valid: %s)", format, strings.Join(allowed, ", "))
}

// applyDecodeDefaults takes --full and --reify from the [read] config
// section unless they were given on the command line.
func applyDecodeDefaults(cmd *cobra.Command, full, reify *bool) {
	cfg := configFromContext(cmd.Context())
	if !cmd.Flags().Changed("full") {
		*full = cfg.Read.Full
	}
	if !cmd.Flags().Changed("reify") {
		*reify = cfg.Read.Reify
	}
}
