package handlers

import (
	"context"
	"testing"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphFixture(t *testing.T) (*GraphHandler, *mocks.SnapshotStore) {
	t.Helper()
	store := mocks.NewSnapshotStore()
	store.AddCharacter("jon_snow", "Jon Snow")
	store.AddCharacter("arya", "Arya")
	store.AddCharacter("cersei", "Cersei")

	ctx := context.Background()
	_, err := store.UpsertRelationship(ctx, "jon_snow", "arya", entities.RelationLikesALot, "")
	require.NoError(t, err)
	_, err = store.UpsertRelationship(ctx, "cersei", "jon_snow", entities.RelationHates, "")
	require.NoError(t, err)

	return NewGraphHandler(store), store
}

func TestGraphHandler_HandleShow(t *testing.T) {
	handler, _ := graphFixture(t)

	vm, err := handler.HandleShow(context.Background())
	require.NoError(t, err)
	assert.Len(t, vm.Nodes, 3)
	assert.Len(t, vm.Edges, 2)
}

func TestGraphHandler_HandleShow_SkipsInactiveEndpoints(t *testing.T) {
	handler, store := graphFixture(t)
	require.NoError(t, store.SetCharacterActive(context.Background(), "cersei", false))

	vm, err := handler.HandleShow(context.Background())
	require.NoError(t, err)
	assert.Len(t, vm.Nodes, 2)
	require.Len(t, vm.Edges, 1)
	assert.Equal(t, "jon_snow", vm.Edges[0].Source)
}

func TestGraphHandler_HandleNeighborhood(t *testing.T) {
	handler, _ := graphFixture(t)

	t.Run("by id", func(t *testing.T) {
		vm, highlight, err := handler.HandleNeighborhood(context.Background(), "jon_snow")
		require.NoError(t, err)
		assert.Len(t, vm.Nodes, 3)
		assert.True(t, highlight.Nodes["jon_snow"])
		assert.True(t, highlight.Nodes["arya"])
		assert.True(t, highlight.Nodes["cersei"])
		assert.Len(t, highlight.Edges, 2)
	})

	t.Run("by display name", func(t *testing.T) {
		_, highlight, err := handler.HandleNeighborhood(context.Background(), "Arya")
		require.NoError(t, err)
		assert.True(t, highlight.Nodes["arya"])
		assert.True(t, highlight.Nodes["jon_snow"])
		assert.False(t, highlight.Nodes["cersei"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := handler.HandleNeighborhood(context.Background(), "ghost")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown character")
	})
}
