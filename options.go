package panel

import "github.com/grindlemire/go-panel/internal/layout"

// Option configures a Node at creation.
//
// Options write the node's inputs directly; the node is still Invalid at that
// point so nothing needs to be reported.
type Option func(*Node)

func defaultProperties() layout.Properties {
	return layout.DefaultProperties()
}

// --- Dimension Options ---

// WithWidth sets an explicit width.
func WithWidth(v float64) Option {
	return func(n *Node) {
		n.props.Width = v
	}
}

// WithHeight sets an explicit height.
func WithHeight(v float64) Option {
	return func(n *Node) {
		n.props.Height = v
	}
}

// WithSize sets both explicit width and height.
func WithSize(width, height float64) Option {
	return func(n *Node) {
		n.props.Width = width
		n.props.Height = height
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(v float64) Option {
	return func(n *Node) {
		n.props.MinSize.Width = v
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(v float64) Option {
	return func(n *Node) {
		n.props.MinSize.Height = v
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(v float64) Option {
	return func(n *Node) {
		n.props.MaxSize.Width = v
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(v float64) Option {
	return func(n *Node) {
		n.props.MaxSize.Height = v
	}
}

// --- Spacing and Alignment Options ---

// WithMargin sets the same margin on all sides.
func WithMargin(v float64) Option {
	return func(n *Node) {
		n.props.Margin = layout.ThicknessAll(v)
	}
}

// WithMarginLTRB sets the margin in left, top, right, bottom order.
func WithMarginLTRB(l, t, r, b float64) Option {
	return func(n *Node) {
		n.props.Margin = layout.ThicknessLTRB(l, t, r, b)
	}
}

// WithThickness sets the margin from a Thickness.
func WithThickness(m Thickness) Option {
	return func(n *Node) {
		n.props.Margin = m
	}
}

// WithHorizontalAlignment sets the horizontal alignment.
func WithHorizontalAlignment(a Alignment) Option {
	return func(n *Node) {
		n.props.HorizontalAlignment = a
	}
}

// WithVerticalAlignment sets the vertical alignment.
func WithVerticalAlignment(a Alignment) Option {
	return func(n *Node) {
		n.props.VerticalAlignment = a
	}
}

// WithAlignment sets both alignments.
func WithAlignment(horizontal, vertical Alignment) Option {
	return func(n *Node) {
		n.props.HorizontalAlignment = horizontal
		n.props.VerticalAlignment = vertical
	}
}

// --- Content Options ---

// WithContent sets the node's content.
func WithContent(c Content) Option {
	return func(n *Node) {
		n.SetContent(c)
	}
}

// WithIntrinsicSize makes the node a leaf that wants the given size.
func WithIntrinsicSize(width, height float64) Option {
	return func(n *Node) {
		n.SetContent(NewIntrinsic(layout.NewSize(width, height)))
	}
}

// WithGrid makes the node a grid with the given rows and columns.
func WithGrid(rows, columns []SpanDefinition) Option {
	return func(n *Node) {
		n.SetContent(NewGrid(rows, columns))
	}
}

// --- Diagnostic Options ---

// WithTag sets the diagnostic tag.
func WithTag(tag string) Option {
	return func(n *Node) {
		n.tag = tag
	}
}

// WithUserData attaches an arbitrary value to the node.
func WithUserData(v any) Option {
	return func(n *Node) {
		n.userData = v
	}
}
