package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/services"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Start an interactive editing session",
		Long: `Opens a live session against a working copy of the snapshot. The
session starts in view mode, where tapping a character highlights its
neighborhood; toggle to edit mode to relate characters by tapping a source
and a target. Changes only outlive the session through 'export'.

Type 'help' inside the session for the command list.`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withSession(func(d *Deps, session *services.Session, publisher *services.Publisher) error {
		if err := session.Start(ctx); err != nil {
			return err
		}
		fmt.Println("Interactive session started. Type 'help' for commands.")

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Printf("charnet[%s]> ", session.State())
			if !scanner.Scan() {
				return scanner.Err()
			}
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}

			done, err := dispatchEdit(ctx, session, publisher, fields)
			if err != nil {
				fmt.Printf("error: %v\n", err)
			}
			if done {
				return nil
			}
		}
	})
}

// dispatchEdit executes one session command. Errors are reported to the
// user without ending the session.
func dispatchEdit(ctx context.Context, session *services.Session, publisher *services.Publisher, fields []string) (bool, error) {
	switch fields[0] {
	case "mode":
		return false, session.ToggleMode()

	case "tap":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: tap <character>")
		}
		return false, session.TapNode(ctx, resolveTapRef(session, fields[1]))

	case "save":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: save <type> [notes...]")
		}
		relType, err := entities.ParseRelationType(fields[1])
		if err != nil {
			return false, err
		}
		return false, session.SavePicker(ctx, relType, strings.Join(fields[2:], " "))

	case "cancel":
		if session.State() == services.StateModalWizard {
			return false, session.CancelWizard(ctx)
		}
		return false, session.CancelPicker()

	case "wizard":
		return false, session.StartWizard(ctx)

	case "all":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: all <type>")
		}
		relType, err := entities.ParseRelationType(fields[1])
		if err != nil {
			return false, err
		}
		return false, session.BulkApply(relType)

	case "set":
		if len(fields) != 3 {
			return false, fmt.Errorf("usage: set <character> <type>")
		}
		relType, err := entities.ParseRelationType(fields[2])
		if err != nil {
			return false, err
		}
		return false, session.SetWizardType(entities.CharacterID(fields[1]), relType)

	case "done":
		return false, session.CompleteWizard(ctx)

	case "show":
		return false, session.Start(ctx)

	case "export":
		_, err := publisher.Publish(ctx)
		return false, err

	case "help":
		printEditHelp()
		return false, nil

	case "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
}

// resolveTapRef lets taps use display names as well as node ids.
func resolveTapRef(session *services.Session, ref string) string {
	vm := session.View()
	if vm == nil || vm.HasNode(ref) {
		return ref
	}
	if id := entities.CharacterID(ref); vm.HasNode(id) {
		return id
	}
	return ref
}

func printEditHelp() {
	fmt.Print(`Commands:
  mode                  toggle between view and edit mode
  tap <character>       view mode: highlight; edit mode: select source/target
  save <type> [notes]   commit the open relationship picker
  cancel                close the open picker or wizard without saving
  wizard                add a character and relate it to everyone
  all <type>            wizard: set every selector at once
  set <character> <type> wizard: override one selector
  done                  complete the wizard (writes and exports)
  show                  redraw the graph
  export                write a timestamped snapshot artifact
  quit                  end the session (unexported changes are discarded)

Relationship types: despises, hates, dislikes, neutral, likes,
likes_a_lot, in_love_with.
`)
}
