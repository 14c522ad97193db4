package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCharacterHandler_HandleAdd(t *testing.T) {
	tests := []struct {
		name      string
		inputName string
		color     string
		group     string
		wantID    string
		wantColor string
		wantErr   bool
	}{
		{
			name:      "derives id from name",
			inputName: "Jon Snow",
			wantID:    "jon_snow",
			wantColor: entities.DefaultColor,
		},
		{
			name:      "keeps explicit color and group",
			inputName: "Arya",
			color:     "#336699",
			group:     "stark",
			wantID:    "arya",
			wantColor: "#336699",
		},
		{
			name:      "trims whitespace",
			inputName: "  Davos  ",
			wantID:    "davos",
			wantColor: entities.DefaultColor,
		},
		{
			name:      "rejects empty name",
			inputName: "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewSnapshotStore()
			handler := NewCharacterHandler(store, zap.NewNop())

			character, err := handler.HandleAdd(context.Background(), tt.inputName, tt.color, tt.group)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, store.Characters)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, character.ID)
			assert.Equal(t, tt.wantColor, character.Color)
			assert.Equal(t, tt.group, character.Group)
			assert.True(t, character.Active)
			require.Len(t, store.Characters, 1)
		})
	}
}

func TestCharacterHandler_HandleAdd_Duplicate(t *testing.T) {
	store := mocks.NewSnapshotStore()
	store.AddCharacter("jon_snow", "Jon Snow")
	handler := NewCharacterHandler(store, zap.NewNop())

	_, err := handler.HandleAdd(context.Background(), "Jon Snow", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrDuplicateID)
}

func TestCharacterHandler_HandleDeactivate(t *testing.T) {
	store := mocks.NewSnapshotStore()
	store.AddCharacter("jon_snow", "Jon Snow")
	store.AddCharacter("arya", "Arya")
	handler := NewCharacterHandler(store, zap.NewNop())

	t.Run("by display name", func(t *testing.T) {
		character, err := handler.HandleDeactivate(context.Background(), "Jon Snow")
		require.NoError(t, err)
		assert.Equal(t, "jon_snow", character.ID)

		remaining, err := handler.HandleList(context.Background())
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "arya", remaining[0].ID)
	})

	t.Run("already inactive", func(t *testing.T) {
		_, err := handler.HandleDeactivate(context.Background(), "jon_snow")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown character")
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := handler.HandleDeactivate(context.Background(), "ghost")
		require.Error(t, err)
	})
}

func TestCharacterHandler_HandleList_StoreError(t *testing.T) {
	store := mocks.NewSnapshotStore()
	store.ListErr = errors.New("db gone")
	handler := NewCharacterHandler(store, zap.NewNop())

	_, err := handler.HandleList(context.Background())
	require.Error(t, err)
}
