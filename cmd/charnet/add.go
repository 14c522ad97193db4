package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/services"
)

func newAddCmd() *cobra.Command {
	var all string
	var sets []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a character through the relationship wizard",
		Long: `Prompts for a new character, then collects one outgoing relationship
per existing character. Selectors start at neutral; answer the per-character
prompts, or skip them with --all and --set.

Examples:
  charnet add
  charnet add --all likes
  charnet add --all neutral --set cersei=hates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, all, sets)
		},
	}

	cmd.Flags().StringVar(&all, "all", "", "Apply one relationship type to every character")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Override a single selector as <character>=<type> (repeatable)")

	return cmd
}

func runAdd(cmd *cobra.Command, all string, sets []string) error {
	ctx := cmd.Context()

	return withSession(func(d *Deps, session *services.Session, _ *services.Publisher) error {
		if err := session.Start(ctx); err != nil {
			return err
		}
		if err := session.StartWizard(ctx); err != nil {
			return err
		}
		if session.State() != services.StateModalWizard {
			fmt.Println("Aborted.")
			return nil
		}

		if all != "" {
			relType, err := entities.ParseRelationType(all)
			if err != nil {
				return err
			}
			if err := session.BulkApply(relType); err != nil {
				return err
			}
		}

		for _, set := range sets {
			target, typeStr, ok := strings.Cut(set, "=")
			if !ok {
				return fmt.Errorf("invalid --set %q, expected <character>=<type>", set)
			}
			relType, err := entities.ParseRelationType(typeStr)
			if err != nil {
				return err
			}
			if err := session.SetWizardType(entities.CharacterID(target), relType); err != nil {
				return err
			}
		}

		// Without flags the wizard is interactive: one prompt per character,
		// empty answers keep the current selector.
		if all == "" && len(sets) == 0 {
			if err := promptWizardRows(session); err != nil {
				return err
			}
		}

		return session.CompleteWizard(ctx)
	})
}

func promptWizardRows(session *services.Session) error {
	prompter := newStdinPrompter(os.Stdin, os.Stdout)
	for _, row := range session.Wizard().Rows {
		answer, err := prompter.Prompt(
			fmt.Sprintf("Relationship to %s", row.TargetName),
			string(row.Type),
		)
		if err != nil {
			return err
		}
		relType, err := entities.ParseRelationType(answer)
		if err != nil {
			return fmt.Errorf("selector for %s: %w", row.TargetName, err)
		}
		if err := session.SetWizardType(row.TargetID, relType); err != nil {
			return err
		}
	}
	return nil
}
