package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/charnet/charnet/internal/domain/services"
	"github.com/charnet/charnet/internal/infrastructure/config"
	"github.com/charnet/charnet/internal/infrastructure/logger"
	"github.com/charnet/charnet/internal/infrastructure/render/text"
	"github.com/charnet/charnet/internal/infrastructure/snapshot/sqlite"
)

// Deps holds high-level dependencies for commands. The store is a working
// copy loaded from the canonical snapshot; the canonical file is never
// written in place.
type Deps struct {
	Config *config.Config
	Store  *sqlite.Store
	Log    *zap.Logger

	// SnapshotPath and ExportDir are resolved against the working directory.
	SnapshotPath string
	ExportDir    string
}

// withDeps loads config, opens a working copy of the canonical snapshot and
// calls the provided function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	snapshotPath := resolvePath(cwd, cfg.Snapshot.Path)
	data, err := os.ReadFile(snapshotPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("snapshot not found: %s (run 'charnet init' first)", snapshotPath)
	}
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	store, err := sqlite.LoadBytes(data)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	defer store.Close()

	deps := &Deps{
		Config:       cfg,
		Store:        store,
		Log:          log,
		SnapshotPath: snapshotPath,
		ExportDir:    resolvePath(cwd, cfg.Export.Dir),
	}
	return fn(deps)
}

// withPublisher provides the export/publish workflow on top of the working
// copy. One-shot mutating commands publish so their changes outlive the
// working copy.
func withPublisher(fn func(*Deps, *services.Publisher) error) error {
	return withDeps(func(d *Deps) error {
		return fn(d, newPublisher(d))
	})
}

// withSession builds the interaction state machine wired to the terminal.
func withSession(fn func(*Deps, *services.Session, *services.Publisher) error) error {
	return withDeps(func(d *Deps) error {
		publisher := newPublisher(d)
		session := services.NewSession(
			d.Store,
			text.New(os.Stdout),
			newStdinPrompter(os.Stdin, os.Stdout),
			publisher,
			d.Log,
		)
		return fn(d, session, publisher)
	})
}

func newPublisher(d *Deps) *services.Publisher {
	return services.NewPublisher(d.Store, d.ExportDir, d.SnapshotPath, os.Stdout, d.Log)
}

func resolvePath(basePath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basePath, path)
}
