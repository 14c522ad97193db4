package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/application/handlers"
	"github.com/charnet/charnet/internal/domain/services"
)

func newCharactersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "characters",
		Short: "Manage characters",
		RunE:  runCharactersList,
	}

	cmd.AddCommand(
		newCharactersListCmd(),
		newCharactersAddCmd(),
		newCharactersDeactivateCmd(),
	)

	return cmd
}

func newCharactersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active characters",
		RunE:  runCharactersList,
	}
}

func runCharactersList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		handler := handlers.NewCharacterHandler(d.Store, d.Log)
		characters, err := handler.HandleList(ctx)
		if err != nil {
			return err
		}

		if len(characters) == 0 {
			fmt.Println("No characters yet. Add one with 'charnet add'.")
			return nil
		}
		for _, c := range characters {
			line := fmt.Sprintf("%s (%s) %s", c.Name, c.ID, c.Color)
			if c.Group != "" {
				line += " [" + c.Group + "]"
			}
			fmt.Println(line)
		}
		return nil
	})
}

func newCharactersAddCmd() *cobra.Command {
	var color, group string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a character without relationships",
		Long: `Adds a single character. The id is derived from the name; use
'charnet add' instead to relate the new character to everyone in one pass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharactersAdd(cmd, args, color, group)
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Node color as a hex string")
	cmd.Flags().StringVar(&group, "group", "", "Display group")

	return cmd
}

func runCharactersAdd(cmd *cobra.Command, args []string, color, group string) error {
	ctx := cmd.Context()

	return withPublisher(func(d *Deps, publisher *services.Publisher) error {
		handler := handlers.NewCharacterHandler(d.Store, d.Log)
		character, err := handler.HandleAdd(ctx, args[0], color, group)
		if err != nil {
			return err
		}

		fmt.Printf("Added character: %s (%s)\n", character.Name, character.ID)

		_, err = publisher.Publish(ctx)
		return err
	})
}

func newCharactersDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <character>",
		Short: "Remove a character from the view",
		Long: `Soft-deletes a character referenced by id or name. Its relationships
stay in the snapshot and drop out of the rendered graph.`,
		Args: cobra.ExactArgs(1),
		RunE: runCharactersDeactivate,
	}
}

func runCharactersDeactivate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withPublisher(func(d *Deps, publisher *services.Publisher) error {
		handler := handlers.NewCharacterHandler(d.Store, d.Log)
		character, err := handler.HandleDeactivate(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Deactivated character: %s (%s)\n", character.Name, character.ID)

		_, err = publisher.Publish(ctx)
		return err
	})
}
