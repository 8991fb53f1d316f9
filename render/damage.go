package render

import (
	"slices"

	"github.com/grindlemire/go-panel"
)

// Damage is a panel.Renderer that remembers which nodes were re-arranged
// since the last Take, so a host repaints only what moved.
type Damage struct {
	seen  map[panel.NodeID]bool
	nodes []*panel.Node
}

var _ panel.Renderer = (*Damage)(nil)

// NewDamage creates an empty damage tracker.
func NewDamage() *Damage {
	return &Damage{seen: map[panel.NodeID]bool{}}
}

// NodeArranged implements panel.Renderer.
func (d *Damage) NodeArranged(n *panel.Node) {
	if d.seen[n.ID()] {
		return
	}
	d.seen[n.ID()] = true
	d.nodes = append(d.nodes, n)
}

// Len returns the number of damaged nodes.
func (d *Damage) Len() int {
	return len(d.nodes)
}

// Take returns the damaged nodes in the order they were arranged and resets
// the tracker.
func (d *Damage) Take() []*panel.Node {
	out := slices.Clone(d.nodes)
	clear(d.seen)
	d.nodes = d.nodes[:0]
	return out
}

// Region returns the union of the absolute bounds of every damaged node
// without resetting the tracker. It must be called after the layout pass,
// once every ancestor has its final position.
func (d *Damage) Region(tree *panel.Tree) panel.Rect {
	var region panel.Rect
	for _, n := range d.nodes {
		region = region.Union(tree.AbsoluteBounds(n))
	}
	return region
}
