package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/application/handlers"
	"github.com/charnet/charnet/internal/domain/services"
)

func newRelateCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "relate <source> <type> <target>",
		Short: "Set how one character feels about another",
		Long: `Writes the directed relationship from source to target, replacing any
previous relationship for that ordered pair. The reverse direction is
independent. Characters may be referenced by id or display name.

Valid relationship types:
  despises (-3), hates (-2), dislikes (-1), neutral (0),
  likes (+1), likes_a_lot (+2), in_love_with (+3)

Examples:
  charnet relate Alice likes Bob
  charnet relate "Jon Snow" in_love_with Ygritte --notes "beyond the wall"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelate(cmd, args, notes)
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-form note on the relationship")

	return cmd
}

func runRelate(cmd *cobra.Command, args []string, notes string) error {
	ctx := cmd.Context()
	sourceRef, relType, targetRef := args[0], args[1], args[2]

	return withPublisher(func(d *Deps, publisher *services.Publisher) error {
		handler := handlers.NewRelationshipHandler(d.Store, d.Log)
		rel, err := handler.HandleRelate(ctx, sourceRef, targetRef, relType, notes)
		if err != nil {
			return fmt.Errorf("saving relationship: %w", err)
		}

		fmt.Printf("Saved relationship: %s\n", rel.ID)
		fmt.Printf("  %s -[%s %+d]-> %s\n", rel.SourceID, rel.Type, rel.Strength, rel.TargetID)

		_, err = publisher.Publish(ctx)
		return err
	})
}
