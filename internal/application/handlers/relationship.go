package handlers

import (
	"context"
	"fmt"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/ports"
	"go.uber.org/zap"
)

// RelationshipHandler handles the pair-picker flow as a one-shot operation.
type RelationshipHandler struct {
	store ports.SnapshotStore
	log   *zap.Logger
}

// NewRelationshipHandler creates a new RelationshipHandler.
func NewRelationshipHandler(store ports.SnapshotStore, log *zap.Logger) *RelationshipHandler {
	return &RelationshipHandler{store: store, log: log}
}

// HandleList returns all relationships.
func (h *RelationshipHandler) HandleList(ctx context.Context) ([]entities.Relationship, error) {
	return h.store.ListRelationships(ctx)
}

// HandleRelate upserts the directed relationship between two characters
// referenced by id or display name.
func (h *RelationshipHandler) HandleRelate(ctx context.Context, sourceRef, targetRef, relTypeStr, notes string) (*entities.Relationship, error) {
	relType, err := entities.ParseRelationType(relTypeStr)
	if err != nil {
		return nil, err
	}

	characters, err := h.store.ListActiveCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	source, err := findCharacter(characters, sourceRef)
	if err != nil {
		return nil, err
	}
	target, err := findCharacter(characters, targetRef)
	if err != nil {
		return nil, err
	}
	if source.ID == target.ID {
		return nil, fmt.Errorf("relating %q to itself: %w", source.ID, entities.ErrSelfRelationship)
	}

	rel, err := h.store.UpsertRelationship(ctx, source.ID, target.ID, relType, notes)
	if err != nil {
		return nil, err
	}

	h.log.Info("relationship saved",
		zap.String("source", rel.SourceID),
		zap.String("target", rel.TargetID),
		zap.String("type", string(rel.Type)),
	)
	return rel, nil
}
