package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationType_Strength(t *testing.T) {
	tests := []struct {
		relType  RelationType
		expected int
	}{
		{RelationDespises, -3},
		{RelationHates, -2},
		{RelationDislikes, -1},
		{RelationNeutral, 0},
		{RelationLikes, 1},
		{RelationLikesALot, 2},
		{RelationInLoveWith, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.relType), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.relType.Strength())
		})
	}
}

func TestRelationType_Valid(t *testing.T) {
	tests := []struct {
		name     string
		relType  RelationType
		expected bool
	}{
		{"likes is valid", RelationLikes, true},
		{"in_love_with is valid", RelationInLoveWith, true},
		{"empty string is invalid", RelationType(""), false},
		{"unknown type is invalid", RelationType("adores"), false},
		{"uppercase type is invalid", RelationType("LIKES"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.relType.Valid())
		})
	}
}

func TestParseRelationType(t *testing.T) {
	t.Run("valid types", func(t *testing.T) {
		for _, rt := range RelationTypes {
			parsed, err := ParseRelationType(string(rt))
			require.NoError(t, err)
			assert.Equal(t, rt, parsed)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := ParseRelationType("worships")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownType)
	})
}

func TestRelationTypes_ScaleOrder(t *testing.T) {
	// The scale is a total order symmetric around neutral.
	prev := RelationTypes[0].Strength()
	for _, rt := range RelationTypes[1:] {
		assert.Equal(t, prev+1, rt.Strength(), "scale should increase by one at %s", rt)
		prev = rt.Strength()
	}
}
