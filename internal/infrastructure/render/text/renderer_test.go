package text

import (
	"strings"
	"testing"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViewModel() *entities.ViewModel {
	return &entities.ViewModel{
		Nodes: []entities.Node{
			{ID: "alice", Label: "Alice", Color: "#f00", Group: "court"},
			{ID: "bob", Label: "Bob", Color: "#0f0"},
			{ID: "carol", Label: "Carol", Color: "#00f"},
		},
		Edges: []entities.Edge{
			{ID: "e1", Source: "alice", Target: "bob", Label: "hates", Strength: -2, Notes: "old feud"},
		},
	}
}

func TestRenderer_Mount(t *testing.T) {
	var out strings.Builder
	r := New(&out)

	require.NoError(t, r.Mount(testViewModel()))

	assert.Contains(t, out.String(), "Characters (3):")
	assert.Contains(t, out.String(), "Alice (alice) #f00 [court]")
	assert.Contains(t, out.String(), "Alice -[hates -2]-> Bob")
	assert.Contains(t, out.String(), "// old feud")
}

func TestRenderer_SetHighlight(t *testing.T) {
	var out strings.Builder
	r := New(&out)
	require.NoError(t, r.Mount(testViewModel()))
	out.Reset()

	r.SetHighlight(entities.Highlight{
		Nodes: map[string]bool{"alice": true, "bob": true},
		Edges: map[string]bool{"e1": true},
	})

	assert.Contains(t, out.String(), "Highlighted: Alice, Bob (1 dimmed)")
	assert.Contains(t, out.String(), "Alice -[hates -2]-> Bob")
}

func TestRenderer_SetSelected(t *testing.T) {
	var out strings.Builder
	r := New(&out)
	require.NoError(t, r.Mount(testViewModel()))
	out.Reset()

	r.SetSelected("alice", true)
	assert.Contains(t, out.String(), "Selected source: Alice")

	out.Reset()
	r.SetSelected("alice", false)
	assert.Empty(t, out.String())
}

func TestRenderer_TeardownSilencesUpdates(t *testing.T) {
	var out strings.Builder
	r := New(&out)
	require.NoError(t, r.Mount(testViewModel()))
	r.Teardown()
	out.Reset()

	r.SetSelected("alice", true)
	r.SetHighlight(entities.Highlight{Nodes: map[string]bool{"alice": true}})
	assert.Empty(t, out.String())
}
