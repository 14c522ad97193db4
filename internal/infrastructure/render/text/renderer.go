// Package text renders the projected graph as plain terminal output. It is
// the CLI stand-in for the browser graph canvas: no partial updates, a
// changed view model is redrawn from scratch.
package text

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charnet/charnet/internal/domain/entities"
)

// Renderer implements ports.Renderer on an io.Writer.
type Renderer struct {
	out io.Writer
	vm  *entities.ViewModel
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Mount draws the full graph.
func (r *Renderer) Mount(vm *entities.ViewModel) error {
	r.vm = vm
	r.draw()
	return nil
}

// Teardown forgets the mounted view.
func (r *Renderer) Teardown() {
	r.vm = nil
}

// SetSelected announces the pending source selection.
func (r *Renderer) SetSelected(nodeID string, selected bool) {
	if r.vm == nil {
		return
	}
	if selected {
		fmt.Fprintf(r.out, "Selected source: %s (tap a target to relate)\n", r.label(nodeID))
	}
}

// SetHighlight draws the tapped neighborhood; everything else is reported as
// dimmed.
func (r *Renderer) SetHighlight(h entities.Highlight) {
	if r.vm == nil {
		return
	}

	names := make([]string, 0, len(h.Nodes))
	for id := range h.Nodes {
		names = append(names, r.label(id))
	}
	sort.Strings(names)

	dimmed := len(r.vm.Nodes) - len(h.Nodes)
	fmt.Fprintf(r.out, "Highlighted: %s (%d dimmed)\n", strings.Join(names, ", "), dimmed)

	for _, e := range r.vm.Edges {
		if h.Edges[e.ID] {
			r.drawEdge(e)
		}
	}
}

// ClearHighlight is a no-op for a scrolling terminal.
func (r *Renderer) ClearHighlight() {}

// draw prints the whole view model.
func (r *Renderer) draw() {
	fmt.Fprintf(r.out, "Characters (%d):\n", len(r.vm.Nodes))
	for _, n := range r.vm.Nodes {
		line := fmt.Sprintf("  %s (%s) %s", n.Label, n.ID, n.Color)
		if n.Group != "" {
			line += " [" + n.Group + "]"
		}
		fmt.Fprintln(r.out, line)
	}

	fmt.Fprintf(r.out, "Relationships (%d):\n", len(r.vm.Edges))
	for _, e := range r.vm.Edges {
		r.drawEdge(e)
	}
}

func (r *Renderer) drawEdge(e entities.Edge) {
	line := fmt.Sprintf("  %s -[%s %+d]-> %s", r.label(e.Source), e.Label, e.Strength, r.label(e.Target))
	if e.Notes != "" {
		line += "  // " + e.Notes
	}
	fmt.Fprintln(r.out, line)
}

// label resolves a node id to its display label.
func (r *Renderer) label(id string) string {
	if n, ok := r.vm.Node(id); ok {
		return n.Label
	}
	return id
}
