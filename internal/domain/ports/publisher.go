package ports

import "context"

// Publisher turns the current snapshot into a downloadable artifact and
// tells the user how to manually replace the canonical snapshot with it.
type Publisher interface {
	// Publish exports the snapshot and returns the path of the artifact.
	Publish(ctx context.Context) (string, error)
}
