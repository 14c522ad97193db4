package entities

import "errors"

// Error kinds surfaced by the snapshot store and handled at the session
// boundary. Wrap with fmt.Errorf("...: %w", err) and check with errors.Is.
var (
	// ErrCorruptSnapshot means a byte sequence is not a valid snapshot image.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrDuplicateID means a character id already exists, active or inactive.
	ErrDuplicateID = errors.New("duplicate character id")

	// ErrUnknownType means a relationship type outside the fixed scale.
	ErrUnknownType = errors.New("unknown relationship type")

	// ErrSelfRelationship means source and target are the same character.
	ErrSelfRelationship = errors.New("character cannot relate to itself")
)
