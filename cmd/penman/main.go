package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/penman/internal/cli"
	perrors "github.com/matzehuels/penman/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		if perrors.IsInternal(err) {
			fmt.Fprintln(os.Stderr, "internal error, please report:", err)
			os.Exit(2)
		}
		os.Exit(1)
	}
}
