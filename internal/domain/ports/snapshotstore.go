// Package ports defines the interfaces between the core and its
// collaborators.
package ports

import (
	"context"

	"github.com/charnet/charnet/internal/domain/entities"
)

// SnapshotStore owns the relational image of characters and relationships.
// It is the only component holding persisted state; the interaction session
// is its sole writer.
type SnapshotStore interface {
	// EnsureSchema creates the snapshot schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the store and any working copy backing it.
	Close() error

	// ListActiveCharacters returns all characters with active = true, in
	// store-native order.
	ListActiveCharacters(ctx context.Context) ([]entities.Character, error)

	// ListCharactersExcluding returns all active characters except the one
	// with the given id. Used by the character wizard.
	ListCharactersExcluding(ctx context.Context, id string) ([]entities.Character, error)

	// ListRelationships returns all relationships, independent of endpoint
	// activity.
	ListRelationships(ctx context.Context) ([]entities.Relationship, error)

	// InsertCharacter adds a new character. Fails with ErrDuplicateID if the
	// id already exists among active or inactive rows.
	InsertCharacter(ctx context.Context, character *entities.Character) error

	// SetCharacterActive soft-deletes or restores a character. Existing
	// relationships are untouched.
	SetCharacterActive(ctx context.Context, id string, active bool) error

	// UpsertRelationship writes a relationship keyed by the ordered
	// (source, target) pair, replacing any prior row for that exact pair.
	// Strength is computed from the type; fails with ErrUnknownType for a
	// type outside the scale.
	UpsertRelationship(ctx context.Context, sourceID, targetID string, relType entities.RelationType, notes string) (*entities.Relationship, error)

	// Export serializes the full current relational image.
	Export(ctx context.Context) ([]byte, error)

	// ListAuditLog returns the most recent audit entries, newest first.
	ListAuditLog(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}
