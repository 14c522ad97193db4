package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charnet/charnet/internal/domain/ports"
	"go.uber.org/zap"
)

// Publisher implements the export/publish workflow: it serializes the
// current store state into a timestamped artifact and tells the user how to
// manually promote it to the canonical snapshot. The promotion itself is
// deliberately out of band; charnet never overwrites the canonical file.
type Publisher struct {
	store     ports.SnapshotStore
	dir       string
	canonical string
	out       io.Writer
	log       *zap.Logger
	now       func() time.Time
}

// NewPublisher creates a publisher writing artifacts into dir. canonical is
// the snapshot path the user is instructed to replace.
func NewPublisher(store ports.SnapshotStore, dir, canonical string, out io.Writer, log *zap.Logger) *Publisher {
	return &Publisher{
		store:     store,
		dir:       dir,
		canonical: canonical,
		out:       out,
		log:       log,
		now:       time.Now,
	}
}

// Publish exports the full snapshot image and returns the artifact path. The
// filename carries a timestamp so successive exports never overwrite each
// other.
func (p *Publisher) Publish(ctx context.Context) (string, error) {
	data, err := p.store.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("exporting snapshot: %w", err)
	}

	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	name := fmt.Sprintf("network-%d.sqlite", p.now().UnixMilli())
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing artifact: %w", err)
	}

	fmt.Fprintf(p.out, "Exported snapshot: %s (%d bytes)\n", path, len(data))
	fmt.Fprintln(p.out, "To publish:")
	fmt.Fprintf(p.out, "  1. Replace %s with %s\n", p.canonical, name)
	fmt.Fprintln(p.out, "  2. Commit the change through version control")

	p.log.Info("snapshot exported",
		zap.String("artifact", path),
		zap.Int("bytes", len(data)),
	)
	return path, nil
}
