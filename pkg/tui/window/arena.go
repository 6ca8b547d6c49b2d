// ABOUTME: Flat arena of window records addressed by generated refs
// ABOUTME: Ownership of nested windows is reachability through each record's child map

package window

import (
	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
)

// ref addresses a node in an arena. Zero means none.
type ref uint32

// node is one window record.
type node struct {
	handle terminal.Handle
	shape  geom.Shape
	id     string
	parent ref
	// base is the absolute origin of the frame shape.Pos is measured in:
	// the parent's origin at creation time, or zero for a root.
	base     geom.Position
	order    []string
	children map[string]ref
	marker   rune
}

// arena holds every node created under one root window.
type arena struct {
	backend terminal.Backend
	nodes   map[ref]*node
	root    ref
	next    ref
}

func newArena(b terminal.Backend) *arena {
	return &arena{backend: b, nodes: make(map[ref]*node)}
}

func (a *arena) add(n *node) ref {
	a.next++
	a.nodes[a.next] = n
	return a.next
}

// detach removes r from its parent's registry. The order list and the
// map are always edited together.
func (a *arena) detach(r ref) {
	n, ok := a.nodes[r]
	if !ok || n.parent == 0 {
		return
	}
	if p, ok := a.nodes[n.parent]; ok && p.children[n.id] == r {
		delete(p.children, n.id)
		p.order = removeID(p.order, n.id)
	}
	n.parent = 0
}

// release destroys r and every node reachable from it, children first.
func (a *arena) release(r ref) {
	n, ok := a.nodes[r]
	if !ok {
		return
	}
	for _, id := range n.order {
		a.release(n.children[id])
	}
	a.backend.DestroySurface(n.handle)
	delete(a.nodes, r)
}

// releaseAll destroys every node left in the arena, including windows
// that were replaced and never closed by their holder.
func (a *arena) releaseAll() {
	for r := range a.nodes {
		if a.nodes[r] != nil && a.nodes[r].parent == 0 {
			a.release(r)
		}
	}
	for r, n := range a.nodes {
		a.backend.DestroySurface(n.handle)
		delete(a.nodes, r)
	}
}

func removeID(order []string, id string) []string {
	for i, x := range order {
		if x == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
