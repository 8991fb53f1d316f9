package panel

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Renderer is told about every node whose bounds were (re)computed, so it can
// update the visual the node stands for.
type Renderer interface {
	NodeArranged(n *Node)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(n *Node)

// NodeArranged calls f(n).
func (f RendererFunc) NodeArranged(n *Node) {
	f(n)
}

// Tree owns a set of nodes and runs layout on them. It is the default
// Scheduler of its nodes: invalidation reports are queued and propagated to
// ancestors on the next UpdateLayout.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes     []*Node // index is NodeID-1
	root      *Node
	renderer  Renderer
	scheduler Scheduler

	pendingMeasure []*Node
	pendingArrange []*Node

	available Size
	passes    int
}

var _ Scheduler = (*Tree)(nil)

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithRenderer sets the renderer notified after each node is arranged.
func WithRenderer(r Renderer) TreeOption {
	return func(t *Tree) {
		t.renderer = r
	}
}

// WithScheduler routes invalidation reports to s instead of the tree's own
// queue. UpdateLayout then only propagates what s hands back through
// Tree.InvalidateMeasure and Tree.InvalidateArrange.
func WithScheduler(s Scheduler) TreeOption {
	return func(t *Tree) {
		t.scheduler = s
	}
}

// NewTree creates an empty tree.
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{available: InfiniteSize}
	t.scheduler = t
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewNode creates a node owned by t. The node starts detached; attach it with
// SetRoot or AddChild.
func (t *Tree) NewNode(opts ...Option) *Node {
	n := &Node{
		tree:    t,
		id:      NodeID(len(t.nodes) + 1),
		props:   defaultProperties(),
		content: Overlay{},
		affects: DefaultClassification(),
	}
	t.nodes = append(t.nodes, n)
	for _, opt := range opts {
		opt(n)
	}
	logf(CategoryTree, "new %s (id %d)", n, n.id)
	return n
}

// Node returns the node with the given handle.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	if id == 0 || int(id) > len(t.nodes) {
		return nil, false
	}
	return t.nodes[id-1], true
}

// Len returns the number of nodes created by t, attached or not.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root node, or nil.
func (t *Tree) Root() *Node {
	return t.root
}

// SetRoot makes n the root. It panics if n belongs to another tree or has a
// parent.
func (t *Tree) SetRoot(n *Node) {
	if n != nil {
		if n.tree != t {
			panic(fmt.Sprintf("panel: %s belongs to another tree", n))
		}
		if n.parent != nil {
			panic(fmt.Sprintf("panel: %s has a parent and cannot be the root", n))
		}
	}
	t.root = n
	logf(CategoryTree, "root %s", n)
}

// InvalidateMeasure queues n so its ancestors are invalidated before the next
// layout pass.
func (t *Tree) InvalidateMeasure(n *Node) {
	t.pendingMeasure = append(t.pendingMeasure, n)
}

// InvalidateArrange queues n so its ancestors are re-arranged on the next
// layout pass.
func (t *Tree) InvalidateArrange(n *Node) {
	t.pendingArrange = append(t.pendingArrange, n)
}

// NeedsLayout reports whether invalidations are queued or the root has never
// been laid out.
func (t *Tree) NeedsLayout() bool {
	if t.root == nil {
		return false
	}
	return len(t.pendingMeasure) > 0 || len(t.pendingArrange) > 0 || t.root.state != MeasureAndArrangeValid
}

// Available returns the size passed to the last UpdateLayout, +Inf on both
// axes before the first one.
func (t *Tree) Available() Size {
	return t.available
}

// Relayout runs UpdateLayout again with the last available size.
func (t *Tree) Relayout() error {
	return t.UpdateLayout(t.available)
}

// Passes returns how many times UpdateLayout ran a layout pass.
func (t *Tree) Passes() int {
	return t.passes
}

// flush propagates queued invalidations to every ancestor. Ancestors that
// were still valid report back and are queued in turn, which is harmless.
func (t *Tree) flush() {
	for i := 0; i < len(t.pendingMeasure); i++ {
		for p := t.pendingMeasure[i].parent; p != nil; p = p.parent {
			p.InvalidateMeasure()
		}
	}
	for i := 0; i < len(t.pendingArrange); i++ {
		for p := t.pendingArrange[i].parent; p != nil; p = p.parent {
			p.InvalidateArrange()
		}
	}
	t.pendingMeasure = t.pendingMeasure[:0]
	t.pendingArrange = t.pendingArrange[:0]
}

// Measure propagates queued invalidations and measures the root without
// arranging it, for hosts that want a preferred size ahead of layout.
func (t *Tree) Measure(available Size) (Size, error) {
	if t.root == nil {
		return ZeroSize, nil
	}
	t.flush()
	return t.root.Measure(available)
}

// UpdateLayout runs a full pass on the root: queued invalidations are
// propagated, the root is measured against available and arranged at the
// origin. On an unbounded axis the root gets its desired size instead.
// Valid subtrees whose inputs did not change are served from cache.
func (t *Tree) UpdateLayout(available Size) error {
	if t.root == nil {
		return nil
	}
	t.flush()
	t.available = available

	scope := beginScope(CategoryTree, false, "update layout %v", available)
	defer scope.end("")

	desired, err := t.root.Measure(available)
	if err != nil {
		return err
	}
	final := Rect{Width: available.Width, Height: available.Height}
	if math.IsInf(final.Width, 1) {
		final.Width = desired.Width
	}
	if math.IsInf(final.Height, 1) {
		final.Height = desired.Height
	}
	if _, err := t.root.Arrange(final); err != nil {
		return err
	}
	t.passes++
	return nil
}

// Walk visits the attached nodes depth-first, parents before children. It
// stops descending into a node's children when fn returns false.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	if t.root == nil {
		return
	}
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, ref := range n.children {
			walk(ref.node, depth+1)
		}
	}
	walk(t.root, 0)
}

// AbsoluteBounds returns n's bounds relative to the root's origin.
func (t *Tree) AbsoluteBounds(n *Node) Rect {
	r := n.bounds
	for p := n.parent; p != nil; p = p.parent {
		r = r.Translate(p.bounds.X, p.bounds.Y)
	}
	return r
}

// AbsoluteClip returns n's clip rectangle relative to the root's origin.
func (t *Tree) AbsoluteClip(n *Node) Rect {
	r := n.clip
	for p := n.parent; p != nil; p = p.parent {
		r = r.Translate(p.bounds.X, p.bounds.Y)
	}
	return r
}

// Dump writes the attached hierarchy with brace-indented children:
//
//	grid root
//	{
//	    leaf title
//	}
func (t *Tree) Dump(w io.Writer) error {
	var sb strings.Builder
	if t.root != nil {
		dumpNode(&sb, t.root, 0)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func dumpNode(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("    ", depth)
	sb.WriteString(indent)
	sb.WriteString(n.String())
	sb.WriteString("\n")
	if len(n.children) == 0 {
		return
	}
	sb.WriteString(indent)
	sb.WriteString("{\n")
	for _, ref := range n.children {
		dumpNode(sb, ref.node, depth+1)
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

// LogDump writes the hierarchy to the diagnostic log under CategoryTree.
func (t *Tree) LogDump() {
	if t.root == nil {
		return
	}
	var dump func(n *Node)
	dump = func(n *Node) {
		if len(n.children) == 0 {
			logf(CategoryTree, "%s", n)
			return
		}
		scope := beginScope(CategoryTree, true, "%v", n)
		for _, ref := range n.children {
			dump(ref.node)
		}
		scope.end("")
	}
	dump(t.root)
}
