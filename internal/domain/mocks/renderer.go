package mocks

import "github.com/charnet/charnet/internal/domain/entities"

// Renderer is a mock implementation of ports.Renderer that records calls.
type Renderer struct {
	MountErr error

	Mounted       *entities.ViewModel
	Selected      map[string]bool
	LastHighlight *entities.Highlight

	MountCallCount     int
	TeardownCallCount  int
	HighlightCallCount int
}

// Mount records the mounted view model.
func (m *Renderer) Mount(vm *entities.ViewModel) error {
	m.MountCallCount++
	if m.MountErr != nil {
		return m.MountErr
	}
	m.Mounted = vm
	return nil
}

// Teardown records the teardown.
func (m *Renderer) Teardown() {
	m.TeardownCallCount++
	m.Mounted = nil
}

// SetSelected records the selected marker per node.
func (m *Renderer) SetSelected(nodeID string, selected bool) {
	if m.Selected == nil {
		m.Selected = make(map[string]bool)
	}
	m.Selected[nodeID] = selected
}

// SetHighlight records the last highlight set.
func (m *Renderer) SetHighlight(h entities.Highlight) {
	m.HighlightCallCount++
	m.LastHighlight = &h
}

// ClearHighlight drops the recorded highlight.
func (m *Renderer) ClearHighlight() {
	m.LastHighlight = nil
}
