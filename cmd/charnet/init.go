package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/charnet/charnet/internal/infrastructure/config"
	"github.com/charnet/charnet/internal/infrastructure/snapshot/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new character network",
		Long:  "Creates a .charnet directory with default configuration and an empty canonical snapshot.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("charnet already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	snapshotPath := resolvePath(cwd, cfg.Snapshot.Path)
	if _, err := os.Stat(snapshotPath); err == nil {
		fmt.Printf("Snapshot already exists: %s\n", snapshotPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(snapshotPath), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	store, err := sqlite.Open(config.SnapshotConfig{Path: snapshotPath})
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("creating snapshot schema: %w", err)
	}

	fmt.Printf("Created snapshot: %s\n", snapshotPath)
	fmt.Println("Charnet initialized successfully!")
	return nil
}
