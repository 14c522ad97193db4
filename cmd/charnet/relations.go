package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/application/handlers"
	"github.com/charnet/charnet/internal/domain/entities"
)

func newRelationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations [character]",
		Short: "List relationships",
		Long: `Lists every stored relationship, including those whose endpoints are
deactivated. With a character argument, lists only relationships involving
that character.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRelations,
	}
}

func runRelations(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		handler := handlers.NewRelationshipHandler(d.Store, d.Log)
		relationships, err := handler.HandleList(ctx)
		if err != nil {
			return err
		}

		characters, err := d.Store.ListActiveCharacters(ctx)
		if err != nil {
			return err
		}
		names := make(map[string]string, len(characters))
		for _, c := range characters {
			names[c.ID] = c.Name
		}

		filter := ""
		if len(args) == 1 {
			filter = args[0]
			if _, ok := names[filter]; !ok {
				filter = entities.CharacterID(args[0])
			}
		}

		shown := 0
		for _, rel := range relationships {
			if filter != "" && rel.SourceID != filter && rel.TargetID != filter {
				continue
			}
			line := fmt.Sprintf("%s -[%s %+d]-> %s",
				displayName(names, rel.SourceID), rel.Type, rel.Strength, displayName(names, rel.TargetID))
			if rel.Notes != "" {
				line += "  // " + rel.Notes
			}
			fmt.Println(line)
			shown++
		}
		if shown == 0 {
			fmt.Println("No relationships.")
		}
		return nil
	})
}

// displayName resolves an id against the active characters, falling back to
// the raw id for deactivated endpoints.
func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
