package main

import (
	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/application/handlers"
	"github.com/charnet/charnet/internal/infrastructure/render/text"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [character]",
		Short: "Render the relationship graph",
		Long: `Renders the current network. With a character argument, highlights
that character's neighborhood: the character, everyone it relates to or is
related by, and the connecting relationships. Everything else is dimmed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		handler := handlers.NewGraphHandler(d.Store)
		renderer := text.New(cmd.OutOrStdout())

		if len(args) == 0 {
			vm, err := handler.HandleShow(ctx)
			if err != nil {
				return err
			}
			return renderer.Mount(vm)
		}

		vm, highlight, err := handler.HandleNeighborhood(ctx, args[0])
		if err != nil {
			return err
		}
		if err := renderer.Mount(vm); err != nil {
			return err
		}
		renderer.SetHighlight(highlight)
		return nil
	})
}
