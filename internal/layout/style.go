package layout

// Axis selects the horizontal (width, columns) or vertical (height, rows)
// dimension.
type Axis uint8

const (
	Horizontal Axis = iota // Width, columns
	Vertical               // Height, rows
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Alignment specifies how a node is positioned inside the slot its parent
// arranges it into.
type Alignment uint8

const (
	AlignStretch Alignment = iota // Fill the slot (centered when capped by max size)
	AlignStart                    // Left or top edge
	AlignCenter                   // Centered in the slot
	AlignEnd                      // Right or bottom edge
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "stretch"
	}
}

// AlignmentOffset returns how far a used extent is shifted inside an
// available extent for the given alignment. Stretch behaves like Center
// unless the used extent overflows, in which case it falls back to Start so
// overflowing content is clipped at the far edge instead of both.
func AlignmentOffset(align Alignment, available, used float64) float64 {
	if align == AlignStretch && used > available {
		align = AlignStart
	}
	switch align {
	case AlignCenter, AlignStretch:
		return (available - used) / 2
	case AlignEnd:
		return available - used
	default:
		return 0
	}
}

// Properties are the layout inputs of a single node.
type Properties struct {
	// Explicit size; NaN on an axis means unset.
	Width  float64
	Height float64

	MinSize Size
	MaxSize Size

	Margin Thickness

	HorizontalAlignment Alignment
	VerticalAlignment   Alignment
}

// DefaultProperties returns Properties with unset explicit size, a [0, +Inf]
// range on both axes, no margin and Stretch alignment.
func DefaultProperties() Properties {
	return Properties{
		Width:   UnsetSize.Width,
		Height:  UnsetSize.Height,
		MinSize: ZeroSize,
		MaxSize: InfiniteSize,
	}
}

// ExplicitSize returns the explicit width/height pair (NaN where unset).
func (p Properties) ExplicitSize() Size {
	return Size{Width: p.Width, Height: p.Height}
}

// EffectiveRange intersects the declared min/max with any explicit size.
// Min wins over max when they conflict, and an explicit dimension collapses
// its axis to a single point inside the declared range.
func (p Properties) EffectiveRange() (lo, hi Size) {
	lo = p.MinSize.Max(ZeroSize)
	hi = p.MaxSize.Max(lo)
	explicit := p.ExplicitSize()
	pinnedLo := explicit.OrIfNaN(lo).Clamp(lo, hi)
	pinnedHi := explicit.OrIfNaN(hi).Clamp(lo, hi)
	return pinnedLo, pinnedHi
}

// Alignment returns the alignment along the given axis.
func (p Properties) Alignment(a Axis) Alignment {
	if a == Vertical {
		return p.VerticalAlignment
	}
	return p.HorizontalAlignment
}
