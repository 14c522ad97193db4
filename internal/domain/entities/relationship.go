package entities

import (
	"fmt"
	"time"
)

// RelationType defines the kind of feeling one character holds toward
// another. The set is closed; each type maps to a fixed signed strength.
type RelationType string

const (
	RelationDespises   RelationType = "despises"
	RelationHates      RelationType = "hates"
	RelationDislikes   RelationType = "dislikes"
	RelationNeutral    RelationType = "neutral"
	RelationLikes      RelationType = "likes"
	RelationLikesALot  RelationType = "likes_a_lot"
	RelationInLoveWith RelationType = "in_love_with"
)

// RelationTypes lists all valid relationship types in scale order.
var RelationTypes = []RelationType{
	RelationDespises,
	RelationHates,
	RelationDislikes,
	RelationNeutral,
	RelationLikes,
	RelationLikesALot,
	RelationInLoveWith,
}

// strengthScale maps each relationship type to its strength, symmetric
// around neutral.
var strengthScale = map[RelationType]int{
	RelationDespises:   -3,
	RelationHates:      -2,
	RelationDislikes:   -1,
	RelationNeutral:    0,
	RelationLikes:      1,
	RelationLikesALot:  2,
	RelationInLoveWith: 3,
}

// Valid reports whether t is one of the enumerated relationship types.
func (t RelationType) Valid() bool {
	_, ok := strengthScale[t]
	return ok
}

// Strength returns the signed strength for t. It is only meaningful for
// valid types; callers validate with ParseRelationType first.
func (t RelationType) Strength() int {
	return strengthScale[t]
}

// ParseRelationType validates and converts a string to a RelationType.
func ParseRelationType(s string) (RelationType, error) {
	t := RelationType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (valid: despises, hates, dislikes, neutral, likes, likes_a_lot, in_love_with)", ErrUnknownType, s)
	}
	return t, nil
}

// Relationship represents a directed edge between two characters. At most
// one relationship exists per ordered (SourceID, TargetID) pair; writing the
// same pair again replaces the previous row.
type Relationship struct {
	ID        string       `json:"id"`
	SourceID  string       `json:"source_id"`
	TargetID  string       `json:"target_id"`
	Type      RelationType `json:"type"`
	Strength  int          `json:"strength"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
