package panel

// Content is the node-type-specific part of layout. A node handles margins,
// explicit sizes, min/max and alignment itself and asks its content only for
// the natural size of what is inside.
type Content interface {
	// MeasureContent returns the natural size of the content given the
	// constrained space (margin already removed, already clamped into the
	// node's min/max range). Children are measured here.
	MeasureContent(n *Node, available Size) (Size, error)

	// ArrangeContent lays out the content in a box of the candidate size and
	// returns the size actually used. It may return more than final;
	// renderers clip overflow. Children are arranged here, with rectangles
	// relative to the node's own origin.
	ArrangeContent(n *Node, final Size) (Size, error)
}

// kinder names the node type in diagnostics.
type kinder interface {
	Kind() string
}

// binder is implemented by content that needs to invalidate the node it is
// attached to when its own inputs change.
type binder interface {
	bind(n *Node)
	unbind()
}

// Overlay is the default content: children are stacked at the origin, the
// node wants as much as its largest child, and every child gets the node's
// full final size.
type Overlay struct{}

// Kind implements the kinder interface.
func (Overlay) Kind() string { return "panel" }

// MeasureContent returns the componentwise maximum of the children's desired
// sizes, each measured against the same space.
func (Overlay) MeasureContent(n *Node, available Size) (Size, error) {
	var size Size
	for _, c := range n.children {
		desired, err := c.node.Measure(available)
		if err != nil {
			return Size{}, err
		}
		size = size.Max(desired)
	}
	return size, nil
}

// ArrangeContent places every child at the origin with the full final size.
func (Overlay) ArrangeContent(n *Node, final Size) (Size, error) {
	slot := Rect{Width: final.Width, Height: final.Height}
	for _, c := range n.children {
		if _, err := c.node.Arrange(slot); err != nil {
			return Size{}, err
		}
	}
	return final, nil
}

// Intrinsic is leaf content with a natural size supplied from outside, such
// as a measured text run or an image. Children of a node with Intrinsic
// content take no part in layout.
type Intrinsic struct {
	size Size
	node *Node
}

// NewIntrinsic creates leaf content that wants size.
func NewIntrinsic(size Size) *Intrinsic {
	return &Intrinsic{size: size}
}

// Kind implements the kinder interface.
func (*Intrinsic) Kind() string { return "leaf" }

// Size returns the natural size.
func (c *Intrinsic) Size() Size {
	return c.size
}

// SetSize changes the natural size and invalidates the node's measure.
func (c *Intrinsic) SetSize(size Size) {
	if c.size == size {
		return
	}
	c.size = size
	if c.node != nil {
		c.node.changed(PropContent)
	}
}

func (c *Intrinsic) bind(n *Node) {
	if c.node != nil && c.node != n {
		panic("panel: content is already attached to " + c.node.String())
	}
	c.node = n
}

func (c *Intrinsic) unbind() {
	c.node = nil
}

// MeasureContent returns the natural size.
func (c *Intrinsic) MeasureContent(_ *Node, _ Size) (Size, error) {
	return c.size, nil
}

// ArrangeContent uses whatever box it is given.
func (c *Intrinsic) ArrangeContent(_ *Node, final Size) (Size, error) {
	return final, nil
}
