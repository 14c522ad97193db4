package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/ports"
	"go.uber.org/zap"
)

// CharacterHandler handles character operations outside the wizard.
type CharacterHandler struct {
	store ports.SnapshotStore
	log   *zap.Logger
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(store ports.SnapshotStore, log *zap.Logger) *CharacterHandler {
	return &CharacterHandler{store: store, log: log}
}

// HandleList returns all active characters.
func (h *CharacterHandler) HandleList(ctx context.Context) ([]entities.Character, error) {
	return h.store.ListActiveCharacters(ctx)
}

// HandleAdd is the single-character form: it derives the id from the name
// and inserts the character without touching relationships.
func (h *CharacterHandler) HandleAdd(ctx context.Context, name, color, group string) (*entities.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("character name is required")
	}
	if color == "" {
		color = entities.DefaultColor
	}

	character := &entities.Character{
		ID:    entities.CharacterID(name),
		Name:  name,
		Color: color,
		Group: group,
	}
	if err := h.store.InsertCharacter(ctx, character); err != nil {
		return nil, err
	}

	h.log.Info("character added",
		zap.String("id", character.ID),
		zap.String("name", character.Name),
	)
	return character, nil
}

// HandleDeactivate soft-deletes a character referenced by id or name. Its
// relationships stay in the store and drop out of the view.
func (h *CharacterHandler) HandleDeactivate(ctx context.Context, ref string) (*entities.Character, error) {
	characters, err := h.store.ListActiveCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	character, err := findCharacter(characters, ref)
	if err != nil {
		return nil, err
	}

	if err := h.store.SetCharacterActive(ctx, character.ID, false); err != nil {
		return nil, err
	}
	h.log.Info("character deactivated", zap.String("id", character.ID))
	return &character, nil
}

// findCharacter resolves a reference (id or display name) against a
// character list.
func findCharacter(characters []entities.Character, ref string) (entities.Character, error) {
	for _, c := range characters {
		if c.ID == ref {
			return c, nil
		}
	}
	slug := entities.CharacterID(ref)
	for _, c := range characters {
		if c.ID == slug {
			return c, nil
		}
	}
	return entities.Character{}, fmt.Errorf("unknown character: %q", ref)
}
