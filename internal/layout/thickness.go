package layout

import "fmt"

// Thickness is spacing on four sides, used for margins.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// ZeroThickness has no spacing on any side.
var ZeroThickness = Thickness{}

// ThicknessAll creates a Thickness with the same value on all sides.
func ThicknessAll(n float64) Thickness {
	return Thickness{Left: n, Top: n, Right: n, Bottom: n}
}

// ThicknessSymmetric creates a Thickness with horizontal (left/right) and
// vertical (top/bottom) values.
func ThicknessSymmetric(h, v float64) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// ThicknessLTRB creates a Thickness in left, top, right, bottom order.
func ThicknessLTRB(l, t, r, b float64) Thickness {
	return Thickness{Left: l, Top: t, Right: r, Bottom: b}
}

// Horizontal returns the total horizontal extent (left + right).
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the total vertical extent (top + bottom).
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Size returns the total extent as a Size.
func (t Thickness) Size() Size {
	return Size{Width: t.Horizontal(), Height: t.Vertical()}
}

// TopLeft returns the offset the thickness applies to an origin.
func (t Thickness) TopLeft() Point {
	return Point{X: t.Left, Y: t.Top}
}

// IsZero returns true if all sides are zero.
func (t Thickness) IsZero() bool {
	return t == ZeroThickness
}

// String formats the thickness as (l, t, r, b).
func (t Thickness) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.Left, t.Top, t.Right, t.Bottom)
}
