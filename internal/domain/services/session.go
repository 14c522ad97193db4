package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/domain/ports"
	"go.uber.org/zap"
)

// SessionState identifies where the interaction state machine currently is.
type SessionState int

const (
	// StateView is the read-only mode: taps highlight neighborhoods.
	StateView SessionState = iota
	// StateEditIdle is edit mode with no pending selection.
	StateEditIdle
	// StateEditPendingTarget is edit mode with a source node selected.
	StateEditPendingTarget
	// StateModalPicker is the relationship picker dialog.
	StateModalPicker
	// StateModalWizard is the character-add wizard dialog.
	StateModalWizard
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case StateView:
		return "view"
	case StateEditIdle:
		return "edit"
	case StateEditPendingTarget:
		return "edit (source selected)"
	case StateModalPicker:
		return "relationship picker"
	case StateModalWizard:
		return "character wizard"
	default:
		return "unknown"
	}
}

// PendingRelationship is the ordered pair held open by the relationship
// picker, pre-populated with neutral.
type PendingRelationship struct {
	SourceID string
	TargetID string
	Type     entities.RelationType
}

// WizardRow is one per-character relationship selector in the wizard.
type WizardRow struct {
	TargetID   string
	TargetName string
	Type       entities.RelationType
}

// WizardState holds the character-add wizard: the new character's id and one
// selector per other active character.
type WizardState struct {
	CharacterID   string
	CharacterName string
	Rows          []WizardRow
}

// Session is the interaction state machine. It owns all mutable interaction
// state explicitly (no ambient globals): the current mode, the pending
// selection, any open modal, and the projected view model. It is the sole
// writer of the snapshot store.
type Session struct {
	store     ports.SnapshotStore
	renderer  ports.Renderer
	prompter  ports.Prompter
	publisher ports.Publisher
	log       *zap.Logger

	state  SessionState
	source string // selected source while in StateEditPendingTarget
	picker *PendingRelationship
	wizard *WizardState
	view   *entities.ViewModel
}

// NewSession creates a session in view mode. Nothing is rendered until
// Start.
func NewSession(store ports.SnapshotStore, renderer ports.Renderer, prompter ports.Prompter, publisher ports.Publisher, log *zap.Logger) *Session {
	return &Session{
		store:     store,
		renderer:  renderer,
		prompter:  prompter,
		publisher: publisher,
		log:       log,
		state:     StateView,
	}
}

// State returns the current machine state.
func (s *Session) State() SessionState {
	return s.state
}

// View returns the current projected view model.
func (s *Session) View() *entities.ViewModel {
	return s.view
}

// Source returns the pending source selection, if any.
func (s *Session) Source() string {
	return s.source
}

// Picker returns the open relationship picker, if any.
func (s *Session) Picker() *PendingRelationship {
	return s.picker
}

// Wizard returns the open character wizard, if any.
func (s *Session) Wizard() *WizardState {
	return s.wizard
}

// Start projects the store and mounts the initial view.
func (s *Session) Start(ctx context.Context) error {
	return s.refresh(ctx)
}

// refresh re-derives the view model from the store and rebuilds the rendered
// graph from scratch. Full teardown-and-recreate is the synchronization
// strategy: no incremental patching, no drift.
func (s *Session) refresh(ctx context.Context) error {
	characters, err := s.store.ListActiveCharacters(ctx)
	if err != nil {
		return fmt.Errorf("listing characters: %w", err)
	}
	relationships, err := s.store.ListRelationships(ctx)
	if err != nil {
		return fmt.Errorf("listing relationships: %w", err)
	}

	vm := Project(characters, relationships)
	s.renderer.Teardown()
	if err := s.renderer.Mount(vm); err != nil {
		return fmt.Errorf("mounting view: %w", err)
	}
	s.view = vm
	return nil
}

// ToggleMode flips between view and edit mode. Leaving edit mode with a
// pending source clears the selection; no partial edge is ever committed.
func (s *Session) ToggleMode() error {
	switch s.state {
	case StateView:
		s.state = StateEditIdle
	case StateEditIdle:
		s.state = StateView
	case StateEditPendingTarget:
		s.renderer.SetSelected(s.source, false)
		s.source = ""
		s.state = StateView
	default:
		return fmt.Errorf("cannot toggle mode while the %s is open", s.state)
	}
	s.log.Debug("mode toggled", zap.Stringer("state", s.state))
	return nil
}

// TapNode handles a tap gesture on the node with the given id.
func (s *Session) TapNode(ctx context.Context, nodeID string) error {
	switch s.state {
	case StateView:
		if !s.view.HasNode(nodeID) {
			return fmt.Errorf("unknown node: %s", nodeID)
		}
		// Recompute the highlight set; a new tap replaces the old set,
		// it never accumulates.
		s.renderer.SetHighlight(Neighborhood(s.view, nodeID))
		return nil

	case StateEditIdle:
		if !s.view.HasNode(nodeID) {
			return fmt.Errorf("unknown node: %s", nodeID)
		}
		s.source = nodeID
		s.renderer.SetSelected(nodeID, true)
		s.state = StateEditPendingTarget
		return nil

	case StateEditPendingTarget:
		source := s.source
		s.renderer.SetSelected(source, false)
		s.source = ""
		if nodeID == source {
			s.state = StateEditIdle
			return fmt.Errorf("relating %q to itself: %w", nodeID, entities.ErrSelfRelationship)
		}
		if !s.view.HasNode(nodeID) {
			s.state = StateEditIdle
			return fmt.Errorf("unknown node: %s", nodeID)
		}
		s.picker = &PendingRelationship{
			SourceID: source,
			TargetID: nodeID,
			Type:     entities.RelationNeutral,
		}
		s.state = StateModalPicker
		return nil

	default:
		return fmt.Errorf("cannot tap while the %s is open", s.state)
	}
}

// SavePicker commits the pending relationship and returns to edit mode. An
// unknown type keeps the picker open for correction; the pending mutation is
// discarded either way until a valid save.
func (s *Session) SavePicker(ctx context.Context, relType entities.RelationType, notes string) error {
	if s.state != StateModalPicker {
		return fmt.Errorf("no relationship picker is open")
	}

	rel, err := s.store.UpsertRelationship(ctx, s.picker.SourceID, s.picker.TargetID, relType, notes)
	if err != nil {
		// The picker stays open; cancel is always available.
		return err
	}
	s.log.Info("relationship saved",
		zap.String("source", rel.SourceID),
		zap.String("target", rel.TargetID),
		zap.String("type", string(rel.Type)),
		zap.Int("strength", rel.Strength),
	)

	s.picker = nil
	s.state = StateEditIdle
	return s.refresh(ctx)
}

// CancelPicker discards the pending relationship without touching the store.
func (s *Session) CancelPicker() error {
	if s.state != StateModalPicker {
		return fmt.Errorf("no relationship picker is open")
	}
	s.picker = nil
	s.state = StateEditIdle
	return nil
}

// StartWizard prompts for a new character and opens the bulk relationship
// wizard. An empty name aborts silently with nothing mutated. A duplicate id
// aborts with the store unchanged and the previous state intact.
func (s *Session) StartWizard(ctx context.Context) error {
	if s.state == StateModalPicker || s.state == StateModalWizard {
		return fmt.Errorf("cannot start the wizard while the %s is open", s.state)
	}

	name, err := s.prompter.Prompt("Character name", "")
	if err != nil {
		return fmt.Errorf("prompting for name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	color, err := s.prompter.Prompt("Color hex", entities.DefaultColor)
	if err != nil {
		return fmt.Errorf("prompting for color: %w", err)
	}
	if color == "" {
		color = entities.DefaultColor
	}

	character := &entities.Character{
		ID:    entities.CharacterID(name),
		Name:  name,
		Color: color,
	}
	if err := s.store.InsertCharacter(ctx, character); err != nil {
		return err
	}

	others, err := s.store.ListCharactersExcluding(ctx, character.ID)
	if err != nil {
		return fmt.Errorf("enumerating characters: %w", err)
	}

	rows := make([]WizardRow, 0, len(others))
	for _, other := range others {
		rows = append(rows, WizardRow{
			TargetID:   other.ID,
			TargetName: other.Name,
			Type:       entities.RelationNeutral,
		})
	}

	// The wizard takes over the screen; drop any pending edit selection.
	if s.state == StateEditPendingTarget {
		s.renderer.SetSelected(s.source, false)
		s.source = ""
	}
	s.wizard = &WizardState{
		CharacterID:   character.ID,
		CharacterName: character.Name,
		Rows:          rows,
	}
	s.state = StateModalWizard
	s.log.Info("character wizard started",
		zap.String("id", character.ID),
		zap.Int("others", len(rows)),
	)
	return nil
}

// BulkApply sets every wizard selector to the given type in one step. The
// selectors stay individually overridable afterward.
func (s *Session) BulkApply(relType entities.RelationType) error {
	if s.state != StateModalWizard {
		return fmt.Errorf("no character wizard is open")
	}
	if !relType.Valid() {
		return fmt.Errorf("bulk apply: %w: %q", entities.ErrUnknownType, relType)
	}
	for i := range s.wizard.Rows {
		s.wizard.Rows[i].Type = relType
	}
	return nil
}

// SetWizardType overrides a single wizard selector.
func (s *Session) SetWizardType(targetID string, relType entities.RelationType) error {
	if s.state != StateModalWizard {
		return fmt.Errorf("no character wizard is open")
	}
	if !relType.Valid() {
		return fmt.Errorf("setting selector: %w: %q", entities.ErrUnknownType, relType)
	}
	for i := range s.wizard.Rows {
		if s.wizard.Rows[i].TargetID == targetID {
			s.wizard.Rows[i].Type = relType
			return nil
		}
	}
	return fmt.Errorf("character %q is not in the wizard", targetID)
}

// CompleteWizard reads every selector, creates one outgoing relationship per
// other active character, closes the modal and publishes a snapshot.
func (s *Session) CompleteWizard(ctx context.Context) error {
	if s.state != StateModalWizard {
		return fmt.Errorf("no character wizard is open")
	}

	for _, row := range s.wizard.Rows {
		if _, err := s.store.UpsertRelationship(ctx, s.wizard.CharacterID, row.TargetID, row.Type, ""); err != nil {
			// The wizard stays open; cancel is always available.
			return err
		}
	}

	characterID := s.wizard.CharacterID
	s.wizard = nil
	s.state = StateEditIdle

	if err := s.refresh(ctx); err != nil {
		return err
	}

	artifact, err := s.publisher.Publish(ctx)
	if err != nil {
		return fmt.Errorf("publishing snapshot: %w", err)
	}
	s.log.Info("character wizard completed",
		zap.String("id", characterID),
		zap.String("artifact", artifact),
	)
	return nil
}

// CancelWizard closes the wizard without writing any relationships. The
// character inserted when the wizard opened stays in the store; mutations
// are final once applied.
func (s *Session) CancelWizard(ctx context.Context) error {
	if s.state != StateModalWizard {
		return fmt.Errorf("no character wizard is open")
	}
	s.wizard = nil
	s.state = StateEditIdle
	return s.refresh(ctx)
}
