package ports

import "github.com/charnet/charnet/internal/domain/entities"

// Renderer draws the projected view model. It has no partial-update API: a
// changed view model is reflected by a full Teardown followed by Mount.
type Renderer interface {
	// Mount builds the rendered graph from a view model.
	Mount(vm *entities.ViewModel) error

	// Teardown destroys the rendered graph.
	Teardown()

	// SetSelected toggles the selected marker on a node.
	SetSelected(nodeID string, selected bool)

	// SetHighlight emphasizes the given elements and dims everything else.
	SetHighlight(h entities.Highlight)

	// ClearHighlight removes all highlight and dim markers.
	ClearHighlight()
}
