// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"

	"github.com/charnet/charnet/internal/domain/entities"
)

// SnapshotStore is an in-memory mock implementation of ports.SnapshotStore.
type SnapshotStore struct {
	Characters    []entities.Character
	Relationships map[string]entities.Relationship // keyed by source->target

	InsertErr error
	UpsertErr error
	ListErr   error
	ExportErr error

	ExportData []byte

	UpsertCallCount int
	ExportCallCount int

	nextID int
}

// NewSnapshotStore creates an empty mock store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		Relationships: make(map[string]entities.Relationship),
	}
}

// AddCharacter seeds an active character.
func (m *SnapshotStore) AddCharacter(id, name string) {
	m.Characters = append(m.Characters, entities.Character{
		ID:     id,
		Name:   name,
		Color:  entities.DefaultColor,
		Active: true,
	})
}

func pairKey(sourceID, targetID string) string {
	return sourceID + "->" + targetID
}

// Relationship returns the stored relationship for an ordered pair.
func (m *SnapshotStore) Relationship(sourceID, targetID string) (entities.Relationship, bool) {
	rel, ok := m.Relationships[pairKey(sourceID, targetID)]
	return rel, ok
}

// EnsureSchema is a no-op.
func (m *SnapshotStore) EnsureSchema(ctx context.Context) error { return nil }

// Close is a no-op.
func (m *SnapshotStore) Close() error { return nil }

// ListActiveCharacters returns all seeded characters with Active true.
func (m *SnapshotStore) ListActiveCharacters(ctx context.Context) ([]entities.Character, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]entities.Character, 0, len(m.Characters))
	for _, c := range m.Characters {
		if c.Active {
			result = append(result, c)
		}
	}
	return result, nil
}

// ListCharactersExcluding returns active characters except the given id.
func (m *SnapshotStore) ListCharactersExcluding(ctx context.Context, id string) ([]entities.Character, error) {
	all, err := m.ListActiveCharacters(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]entities.Character, 0, len(all))
	for _, c := range all {
		if c.ID != id {
			result = append(result, c)
		}
	}
	return result, nil
}

// ListRelationships returns all stored relationships.
func (m *SnapshotStore) ListRelationships(ctx context.Context) ([]entities.Relationship, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]entities.Relationship, 0, len(m.Relationships))
	for _, rel := range m.Relationships {
		result = append(result, rel)
	}
	return result, nil
}

// InsertCharacter adds a character, rejecting duplicate ids.
func (m *SnapshotStore) InsertCharacter(ctx context.Context, character *entities.Character) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	for _, c := range m.Characters {
		if c.ID == character.ID {
			return fmt.Errorf("inserting character %q: %w", character.ID, entities.ErrDuplicateID)
		}
	}
	character.Active = true
	m.Characters = append(m.Characters, *character)
	return nil
}

// SetCharacterActive flips the active flag.
func (m *SnapshotStore) SetCharacterActive(ctx context.Context, id string, active bool) error {
	for i := range m.Characters {
		if m.Characters[i].ID == id {
			m.Characters[i].Active = active
			return nil
		}
	}
	return fmt.Errorf("character not found: %s", id)
}

// UpsertRelationship stores a relationship keyed by the ordered pair.
func (m *SnapshotStore) UpsertRelationship(ctx context.Context, sourceID, targetID string, relType entities.RelationType, notes string) (*entities.Relationship, error) {
	m.UpsertCallCount++
	if m.UpsertErr != nil {
		return nil, m.UpsertErr
	}
	if !relType.Valid() {
		return nil, fmt.Errorf("upserting relationship: %w: %q", entities.ErrUnknownType, relType)
	}

	key := pairKey(sourceID, targetID)
	rel, ok := m.Relationships[key]
	if !ok {
		m.nextID++
		rel = entities.Relationship{
			ID:       fmt.Sprintf("rel-%d", m.nextID),
			SourceID: sourceID,
			TargetID: targetID,
		}
	}
	rel.Type = relType
	rel.Strength = relType.Strength()
	rel.Notes = notes
	m.Relationships[key] = rel
	return &rel, nil
}

// Export returns the configured bytes.
func (m *SnapshotStore) Export(ctx context.Context) ([]byte, error) {
	m.ExportCallCount++
	if m.ExportErr != nil {
		return nil, m.ExportErr
	}
	return m.ExportData, nil
}

// ListAuditLog returns nothing.
func (m *SnapshotStore) ListAuditLog(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	return nil, nil
}
