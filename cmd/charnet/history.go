package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/application/handlers"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the snapshot's mutation trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		handler := handlers.NewAuditHandler(d.Store)
		entries, err := handler.HandleList(ctx, limit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No history.")
			return nil
		}
		for _, entry := range entries {
			line := fmt.Sprintf("%s  %-22s %s",
				entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.Action, entry.SubjectID)
			if len(entry.Details) > 0 {
				details, err := json.Marshal(entry.Details)
				if err == nil {
					line += "  " + string(details)
				}
			}
			fmt.Println(line)
		}
		return nil
	})
}
