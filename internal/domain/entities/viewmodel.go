package entities

// Node is the rendered representation of an active character.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Group string `json:"group,omitempty"`
}

// Edge is the rendered representation of a relationship. Label carries the
// relationship type string.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Label    string `json:"label"`
	Strength int    `json:"strength"`
	Notes    string `json:"notes,omitempty"`
}

// ViewModel is the node/edge view derived from the current snapshot store
// state. It is rebuilt in full after every mutation.
type ViewModel struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node returns the node with the given id, if present.
func (vm *ViewModel) Node(id string) (Node, bool) {
	for _, n := range vm.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// HasNode reports whether a node with the given id is in the view.
func (vm *ViewModel) HasNode(id string) bool {
	_, ok := vm.Node(id)
	return ok
}

// Highlight is the set of elements emphasized after a view-mode tap. All
// elements outside the set are dimmed.
type Highlight struct {
	Nodes map[string]bool
	Edges map[string]bool
}
