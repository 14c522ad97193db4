package main

import (
	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/domain/services"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the snapshot as a timestamped artifact",
		Long: `Serializes the current network into a standalone SQLite file named
network-<timestamp>.sqlite. Publishing is manual: replace the canonical
snapshot with the artifact and commit it.`,
		RunE: runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withPublisher(func(d *Deps, publisher *services.Publisher) error {
		_, err := publisher.Publish(ctx)
		return err
	})
}
