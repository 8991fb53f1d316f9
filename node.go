package panel

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-panel/internal/layout"
)

// NodeID is a stable handle for a node within its tree. The zero value is
// never a valid handle.
type NodeID uint32

// State is a node's layout validity.
type State uint8

const (
	Invalid                State = iota // Both passes must run
	MeasureValid                        // Desired size is current, bounds are not
	MeasureAndArrangeValid              // Desired size and bounds are current
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case MeasureValid:
		return "measure-valid"
	case MeasureAndArrangeValid:
		return "valid"
	default:
		return "invalid"
	}
}

// child is a child reference together with its placement. The placement
// belongs to the parent/child edge, not to the child itself.
type child struct {
	node *Node
	cell Cell
}

// Node is a box in a layout tree. Nodes are created by a Tree and take part
// in the two-pass protocol: Measure computes the size a node wants, Arrange
// gives it its final rectangle.
type Node struct {
	// Tree structure
	tree     *Tree
	id       NodeID
	parent   *Node
	children []child

	// Layout inputs
	props    layout.Properties
	content  Content
	affects  Classification
	tag      string
	userData any

	// Layout state, written only by successful passes
	state       State
	desired     Size
	bounds      Rect
	clip        Rect
	lastMeasure Size
	lastArrange Rect
	hasMeasured bool
	hasArranged bool
}

// Compile-time check that Node implements Layoutable
var _ Layoutable = (*Node)(nil)

// ID returns the node's handle within its tree.
func (n *Node) ID() NodeID {
	return n.id
}

// Tree returns the tree that owns the node.
func (n *Node) Tree() *Tree {
	return n.tree
}

// Tag returns the diagnostic tag.
func (n *Node) Tag() string {
	return n.tag
}

// SetTag sets the diagnostic tag. It has no effect on layout.
func (n *Node) SetTag(tag string) {
	n.tag = tag
}

// UserData returns the value attached with SetUserData.
func (n *Node) UserData() any {
	return n.userData
}

// SetUserData attaches an arbitrary value, typically the visual the node
// stands for.
func (n *Node) SetUserData(v any) {
	n.userData = v
}

// Kind names the node type: "panel", "grid", "leaf" or whatever the content
// reports.
func (n *Node) Kind() string {
	if k, ok := n.content.(kinder); ok {
		return k.Kind()
	}
	return fmt.Sprintf("%T", n.content)
}

// String returns "<kind> <tag>", or just the kind when there is no tag.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.tag == "" {
		return n.Kind()
	}
	return n.Kind() + " " + n.tag
}

// State returns the node's layout validity.
func (n *Node) State() State {
	return n.state
}

// Properties returns a copy of the node's layout inputs.
func (n *Node) Properties() layout.Properties {
	return n.props
}

// Content returns the node's content.
func (n *Node) Content() Content {
	return n.content
}

// DesiredSize returns the result of the last successful Measure, margin
// included.
func (n *Node) DesiredSize() Size {
	return n.desired
}

// Bounds returns the result of the last successful Arrange, relative to the
// parent's origin.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// ClipRect returns the slot the node was last arranged into, relative to the
// parent's origin. Bounds may exceed it when content overflows.
func (n *Node) ClipRect() Rect {
	return n.clip
}

// Layout returns a snapshot of the computed layout.
func (n *Node) Layout() LayoutResult {
	return LayoutResult{DesiredSize: n.desired, Bounds: n.bounds, Clip: n.clip}
}

// LastMeasureInput returns the available size of the last successful
// Measure and whether there was one.
func (n *Node) LastMeasureInput() (Size, bool) {
	return n.lastMeasure, n.hasMeasured
}

// LastArrangeInput returns the rectangle of the last successful Arrange and
// whether there was one.
func (n *Node) LastArrangeInput() (Rect, bool) {
	return n.lastArrange, n.hasArranged
}

// --- Tree structure ---

// AddChild appends children at the default cell (0, 0) with single spans.
func (n *Node) AddChild(children ...*Node) {
	for _, c := range children {
		n.AddChildAt(c, layout.DefaultCell())
	}
}

// AddChildAt appends a child placed at cell. It panics if the child belongs
// to another tree, already has a parent, is the root or is an ancestor of n.
func (n *Node) AddChildAt(c *Node, cell Cell) {
	n.checkAdoptable(c)
	c.parent = n
	n.children = append(n.children, child{node: c, cell: cell})
	logf(CategoryTree, "add %s to %s at %+v", c, n, cell)
	n.changed(PropChildren)
}

func (n *Node) checkAdoptable(c *Node) {
	switch {
	case c == nil:
		panic("panel: nil child")
	case c.tree != n.tree:
		panic(fmt.Sprintf("panel: %s belongs to another tree", c))
	case c.parent != nil:
		panic(fmt.Sprintf("panel: %s already has a parent", c))
	case n.tree != nil && n.tree.root == c:
		panic(fmt.Sprintf("panel: %s is the root", c))
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			panic(fmt.Sprintf("panel: adding %s to %s would create a cycle", c, n))
		}
	}
}

// RemoveChild removes a child, keeping the order of the others.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(c *Node) bool {
	for i, ref := range n.children {
		if ref.node == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			logf(CategoryTree, "remove %s from %s", c, n)
			n.changed(PropChildren)
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, ref := range n.children {
		ref.node.parent = nil
	}
	n.children = nil
	n.changed(PropChildren)
}

// Children returns the children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	for i, ref := range n.children {
		out[i] = ref.node
	}
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Parent returns the parent node, or nil if n is detached or the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Cell returns the placement of n inside its parent.
func (n *Node) Cell() Cell {
	if n.parent == nil {
		return layout.DefaultCell()
	}
	return n.parent.children[n.parent.indexOf(n)].cell
}

// SetCell moves n to another cell of its parent. The parent's measure is
// invalidated since the grid has to be resolved again.
func (n *Node) SetCell(cell Cell) {
	if n.parent == nil {
		panic(fmt.Sprintf("panel: %s has no parent to be placed in", n))
	}
	ref := &n.parent.children[n.parent.indexOf(n)]
	if ref.cell == cell {
		return
	}
	ref.cell = cell
	n.parent.changed(PropChildren)
}

func (n *Node) indexOf(c *Node) int {
	for i, ref := range n.children {
		if ref.node == c {
			return i
		}
	}
	panic(fmt.Sprintf("panel: %s is not a child of %s", c, n))
}

// --- Property setters ---
//
// Setters are no-ops when the value does not change, otherwise they
// invalidate according to the node's classification.

// SetWidth sets the explicit width. NaN unsets it.
func (n *Node) SetWidth(v float64) {
	if sameFloat(n.props.Width, v) {
		return
	}
	n.props.Width = v
	n.changed(PropWidth)
}

// SetHeight sets the explicit height. NaN unsets it.
func (n *Node) SetHeight(v float64) {
	if sameFloat(n.props.Height, v) {
		return
	}
	n.props.Height = v
	n.changed(PropHeight)
}

// SetMinWidth sets the minimum width.
func (n *Node) SetMinWidth(v float64) {
	if sameFloat(n.props.MinSize.Width, v) {
		return
	}
	n.props.MinSize.Width = v
	n.changed(PropMinWidth)
}

// SetMinHeight sets the minimum height.
func (n *Node) SetMinHeight(v float64) {
	if sameFloat(n.props.MinSize.Height, v) {
		return
	}
	n.props.MinSize.Height = v
	n.changed(PropMinHeight)
}

// SetMaxWidth sets the maximum width. +Inf removes the limit.
func (n *Node) SetMaxWidth(v float64) {
	if sameFloat(n.props.MaxSize.Width, v) {
		return
	}
	n.props.MaxSize.Width = v
	n.changed(PropMaxWidth)
}

// SetMaxHeight sets the maximum height. +Inf removes the limit.
func (n *Node) SetMaxHeight(v float64) {
	if sameFloat(n.props.MaxSize.Height, v) {
		return
	}
	n.props.MaxSize.Height = v
	n.changed(PropMaxHeight)
}

// SetMargin sets the margin.
func (n *Node) SetMargin(m Thickness) {
	if n.props.Margin == m {
		return
	}
	n.props.Margin = m
	n.changed(PropMargin)
}

// SetHorizontalAlignment sets the horizontal alignment.
func (n *Node) SetHorizontalAlignment(a Alignment) {
	if n.props.HorizontalAlignment == a {
		return
	}
	n.props.HorizontalAlignment = a
	n.changed(PropHorizontalAlignment)
}

// SetVerticalAlignment sets the vertical alignment.
func (n *Node) SetVerticalAlignment(a Alignment) {
	if n.props.VerticalAlignment == a {
		return
	}
	n.props.VerticalAlignment = a
	n.changed(PropVerticalAlignment)
}

// SetContent replaces the node's content. A nil content restores Overlay.
// The property classification is rebuilt for the new content type.
func (n *Node) SetContent(c Content) {
	if c == nil {
		c = Overlay{}
	}
	if b, ok := n.content.(binder); ok {
		b.unbind()
	}
	if b, ok := c.(binder); ok {
		b.bind(n)
	}
	n.content = c
	n.affects = DefaultClassification()
	if cl, ok := c.(classifier); ok {
		cl.Classify(&n.affects)
	}
	n.changed(PropContent)
}

// Affects returns the effect of changing p on this node.
func (n *Node) Affects(p Property) Effect {
	return n.affects.Of(p)
}

// changed invalidates n according to the effect of p.
func (n *Node) changed(p Property) {
	switch n.affects.Of(p) {
	case AffectsMeasure:
		logf(CategoryInvalidate, "%s changed on %s: measure", p, n)
		n.InvalidateMeasure()
	case AffectsArrange:
		logf(CategoryInvalidate, "%s changed on %s: arrange", p, n)
		n.InvalidateArrange()
	}
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
