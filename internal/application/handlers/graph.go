// Package handlers contains application-level operations backing the CLI
// commands.
package handlers

import (
	"context"
	"fmt"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/ports"
	"github.com/charnet/charnet/internal/domain/services"
)

// GraphHandler serves read-only views of the network.
type GraphHandler struct {
	store ports.SnapshotStore
}

// NewGraphHandler creates a new GraphHandler.
func NewGraphHandler(store ports.SnapshotStore) *GraphHandler {
	return &GraphHandler{store: store}
}

// HandleShow projects the current store state into a view model.
func (h *GraphHandler) HandleShow(ctx context.Context) (*entities.ViewModel, error) {
	characters, err := h.store.ListActiveCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	relationships, err := h.store.ListRelationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}
	return services.Project(characters, relationships), nil
}

// HandleNeighborhood projects the store and computes the highlight set for
// one character, referenced by id or display name.
func (h *GraphHandler) HandleNeighborhood(ctx context.Context, ref string) (*entities.ViewModel, entities.Highlight, error) {
	vm, err := h.HandleShow(ctx)
	if err != nil {
		return nil, entities.Highlight{}, err
	}

	id, err := resolveNode(vm, ref)
	if err != nil {
		return nil, entities.Highlight{}, err
	}
	return vm, services.Neighborhood(vm, id), nil
}

// resolveNode accepts either a node id or a display name.
func resolveNode(vm *entities.ViewModel, ref string) (string, error) {
	if vm.HasNode(ref) {
		return ref, nil
	}
	if id := entities.CharacterID(ref); vm.HasNode(id) {
		return id, nil
	}
	return "", fmt.Errorf("unknown character: %q", ref)
}
