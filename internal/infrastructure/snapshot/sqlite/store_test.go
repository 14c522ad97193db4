package sqlite

import (
	"context"
	"testing"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates an in-memory snapshot store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(config.SnapshotConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	err = store.EnsureSchema(context.Background())
	require.NoError(t, err)

	return store
}

func insertTestCharacter(t *testing.T, store *Store, id, name string) {
	t.Helper()
	err := store.InsertCharacter(context.Background(), &entities.Character{
		ID:    id,
		Name:  name,
		Color: entities.DefaultColor,
	})
	require.NoError(t, err)
}

func TestOpen(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		store, err := Open(config.SnapshotConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer store.Close()
		assert.NotNil(t, store)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := Open(config.SnapshotConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestStore_EnsureSchema(t *testing.T) {
	store := setupTestStore(t)

	tables := []string{"characters", "relationships", "audit_log"}
	for _, table := range tables {
		var count int
		err := store.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	// Idempotent
	require.NoError(t, store.EnsureSchema(context.Background()))
}

func TestStore_InsertCharacter(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("insert and list", func(t *testing.T) {
		insertTestCharacter(t, store, "alice", "Alice")

		chars, err := store.ListActiveCharacters(ctx)
		require.NoError(t, err)
		require.Len(t, chars, 1)
		assert.Equal(t, "alice", chars[0].ID)
		assert.Equal(t, "Alice", chars[0].Name)
		assert.True(t, chars[0].Active)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		err := store.InsertCharacter(ctx, &entities.Character{ID: "alice", Name: "Other Alice"})
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrDuplicateID)
	})

	t.Run("duplicate id rejected even when inactive", func(t *testing.T) {
		insertTestCharacter(t, store, "ghost", "Ghost")
		require.NoError(t, store.SetCharacterActive(ctx, "ghost", false))

		err := store.InsertCharacter(ctx, &entities.Character{ID: "ghost", Name: "Ghost Again"})
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrDuplicateID)
	})
}

func TestStore_SetCharacterActive(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertTestCharacter(t, store, "alice", "Alice")
	insertTestCharacter(t, store, "bob", "Bob")

	_, err := store.UpsertRelationship(ctx, "alice", "bob", entities.RelationLikes, "")
	require.NoError(t, err)

	t.Run("deactivated character leaves the active list", func(t *testing.T) {
		require.NoError(t, store.SetCharacterActive(ctx, "bob", false))

		chars, err := store.ListActiveCharacters(ctx)
		require.NoError(t, err)
		require.Len(t, chars, 1)
		assert.Equal(t, "alice", chars[0].ID)
	})

	t.Run("relationships are not cascade-deleted", func(t *testing.T) {
		rels, err := store.ListRelationships(ctx)
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, "bob", rels[0].TargetID)
	})

	t.Run("reactivation restores the character", func(t *testing.T) {
		require.NoError(t, store.SetCharacterActive(ctx, "bob", true))

		chars, err := store.ListActiveCharacters(ctx)
		require.NoError(t, err)
		assert.Len(t, chars, 2)
	})

	t.Run("unknown character", func(t *testing.T) {
		err := store.SetCharacterActive(ctx, "nobody", false)
		require.Error(t, err)
	})
}

func TestStore_ListCharactersExcluding(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertTestCharacter(t, store, "alice", "Alice")
	insertTestCharacter(t, store, "bob", "Bob")
	insertTestCharacter(t, store, "carol", "Carol")

	chars, err := store.ListCharactersExcluding(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, chars, 2)
	for _, c := range chars {
		assert.NotEqual(t, "carol", c.ID)
	}
}

func TestStore_UpsertRelationship(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertTestCharacter(t, store, "alice", "Alice")
	insertTestCharacter(t, store, "bob", "Bob")

	t.Run("strength follows the type scale", func(t *testing.T) {
		for _, rt := range entities.RelationTypes {
			rel, err := store.UpsertRelationship(ctx, "alice", "bob", rt, "")
			require.NoError(t, err)
			assert.Equal(t, rt.Strength(), rel.Strength)
		}
	})

	t.Run("second upsert replaces the pair row", func(t *testing.T) {
		first, err := store.UpsertRelationship(ctx, "alice", "bob", entities.RelationLikes, "old note")
		require.NoError(t, err)

		second, err := store.UpsertRelationship(ctx, "alice", "bob", entities.RelationHates, "new note")
		require.NoError(t, err)

		// The surrogate id survives the replacement; the editable fields don't.
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, entities.RelationHates, second.Type)
		assert.Equal(t, -2, second.Strength)
		assert.Equal(t, "new note", second.Notes)

		rels, err := store.ListRelationships(ctx)
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, entities.RelationHates, rels[0].Type)
	})

	t.Run("ordered pairs are independent", func(t *testing.T) {
		_, err := store.UpsertRelationship(ctx, "bob", "alice", entities.RelationInLoveWith, "")
		require.NoError(t, err)

		rels, err := store.ListRelationships(ctx)
		require.NoError(t, err)
		require.Len(t, rels, 2)

		byPair := make(map[string]entities.Relationship, len(rels))
		for _, rel := range rels {
			byPair[rel.SourceID+"->"+rel.TargetID] = rel
		}
		assert.Equal(t, entities.RelationHates, byPair["alice->bob"].Type)
		assert.Equal(t, entities.RelationInLoveWith, byPair["bob->alice"].Type)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := store.UpsertRelationship(ctx, "alice", "bob", "adores", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUnknownType)

		// Store unchanged
		rels, err := store.ListRelationships(ctx)
		require.NoError(t, err)
		assert.Len(t, rels, 2)
	})
}

func TestStore_ExportAndLoadBytes(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertTestCharacter(t, store, "alice", "Alice")
	insertTestCharacter(t, store, "bob", "Bob")
	_, err := store.UpsertRelationship(ctx, "alice", "bob", entities.RelationLikesALot, "childhood friends")
	require.NoError(t, err)

	data, err := store.Export(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	loaded, err := LoadBytes(data)
	require.NoError(t, err)
	defer loaded.Close()

	chars, err := loaded.ListActiveCharacters(ctx)
	require.NoError(t, err)
	assert.Len(t, chars, 2)

	rels, err := loaded.ListRelationships(ctx)
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Equal(t, entities.RelationLikesALot, rels[0].Type)
	assert.Equal(t, 2, rels[0].Strength)
	assert.Equal(t, "childhood friends", rels[0].Notes)
}

func TestLoadBytes_Corrupt(t *testing.T) {
	t.Run("not a database", func(t *testing.T) {
		_, err := LoadBytes([]byte("this is not a sqlite file at all"))
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrCorruptSnapshot)
	})

	t.Run("empty image is missing the row-sets", func(t *testing.T) {
		_, err := LoadBytes(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrCorruptSnapshot)
	})
}

func TestStore_AuditLog(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertTestCharacter(t, store, "alice", "Alice")
	insertTestCharacter(t, store, "bob", "Bob")
	_, err := store.UpsertRelationship(ctx, "alice", "bob", entities.RelationNeutral, "")
	require.NoError(t, err)

	entries, err := store.ListAuditLog(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first
	assert.Equal(t, "upsert_relationship", entries[0].Action)
	assert.Equal(t, "alice", entries[0].Details["source"])
	assert.Equal(t, "insert_character", entries[1].Action)
	assert.Equal(t, "bob", entries[1].SubjectID)
}
