// Package services contains the core behaviors of the graph editor.
package services

import "github.com/charnet/charnet/internal/domain/entities"

// Project derives the node/edge view model from the queried rows. It is a
// pure, full re-derivation: after any mutation the whole view model is
// rebuilt rather than patched, which keeps store and view trivially in sync
// for graphs of this size.
func Project(characters []entities.Character, relationships []entities.Relationship) *entities.ViewModel {
	vm := &entities.ViewModel{
		Nodes: make([]entities.Node, 0, len(characters)),
		Edges: make([]entities.Edge, 0, len(relationships)),
	}

	active := make(map[string]bool, len(characters))
	for _, c := range characters {
		active[c.ID] = true
		vm.Nodes = append(vm.Nodes, entities.Node{
			ID:    c.ID,
			Label: c.Name,
			Color: c.Color,
			Group: c.Group,
		})
	}

	for _, rel := range relationships {
		// Relationships touching a soft-deleted endpoint stay in the store
		// but have no place in the view.
		if !active[rel.SourceID] || !active[rel.TargetID] {
			continue
		}
		vm.Edges = append(vm.Edges, entities.Edge{
			ID:       "e" + rel.ID,
			Source:   rel.SourceID,
			Target:   rel.TargetID,
			Label:    string(rel.Type),
			Strength: rel.Strength,
			Notes:    rel.Notes,
		})
	}

	return vm
}

// Neighborhood returns the highlight set for a tapped node: the node itself,
// its direct neighbors and every incident edge. Elements outside the set are
// dimmed by the renderer.
func Neighborhood(vm *entities.ViewModel, nodeID string) entities.Highlight {
	h := entities.Highlight{
		Nodes: make(map[string]bool),
		Edges: make(map[string]bool),
	}
	if !vm.HasNode(nodeID) {
		return h
	}

	h.Nodes[nodeID] = true
	for _, e := range vm.Edges {
		if e.Source == nodeID || e.Target == nodeID {
			h.Edges[e.ID] = true
			h.Nodes[e.Source] = true
			h.Nodes[e.Target] = true
		}
	}
	return h
}
