// Package main provides the entry point for the charnet CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "charnet",
		Short:   "A character relationship graph editor backed by a portable SQLite snapshot",
		Version: version,
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newShowCmd(),
		newCharactersCmd(),
		newAddCmd(),
		newRelateCmd(),
		newRelationsCmd(),
		newEditCmd(),
		newExportCmd(),
		newHistoryCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
