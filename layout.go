// layout.go re-exports geometry and grid types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package panel

import "github.com/grindlemire/go-panel/internal/layout"

// Size is a width/height pair. Components may be +Inf (unbounded) or NaN
// (unset) depending on context.
type Size = layout.Size

// Rect is a position and a size.
type Rect = layout.Rect

// Point is an x/y coordinate.
type Point = layout.Point

// Thickness is spacing on the four sides of a node.
type Thickness = layout.Thickness

// Axis selects the horizontal or vertical dimension.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Alignment positions a node inside the slot it is arranged into.
type Alignment = layout.Alignment

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd

	// Axis-specific spellings.
	AlignLeft   = layout.AlignStart
	AlignTop    = layout.AlignStart
	AlignRight  = layout.AlignEnd
	AlignBottom = layout.AlignEnd
)

// SizeSpec is the sizing rule of a grid row or column.
type SizeSpec = layout.SizeSpec

// Unit is the kind of a SizeSpec.
type Unit = layout.Unit

const (
	UnitAbsolute = layout.UnitAbsolute
	UnitAuto     = layout.UnitAuto
	UnitStar     = layout.UnitStar
)

// SpanDefinition is a grid row or column: a SizeSpec plus a [Min, Max] range.
type SpanDefinition = layout.SpanDefinition

// Cell is a child's row/column placement inside a grid.
type Cell = layout.Cell

// Layoutable is anything that takes part in Measure and Arrange.
type Layoutable = layout.Layoutable

// LayoutResult is a snapshot of a node's computed layout.
type LayoutResult = layout.Layout

// LayoutError describes a failed Measure or Arrange on a node.
type LayoutError = layout.Error

var (
	ErrInvalidInput  = layout.ErrInvalidInput
	ErrInvalidOutput = layout.ErrInvalidOutput
	ErrFormat        = layout.ErrFormat
)

var (
	ZeroSize      = layout.ZeroSize
	InfiniteSize  = layout.InfiniteSize
	ZeroThickness = layout.ZeroThickness
)

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// ThicknessAll creates a Thickness with the same value on all sides.
func ThicknessAll(n float64) Thickness {
	return layout.ThicknessAll(n)
}

// ThicknessSymmetric creates a Thickness with horizontal (left/right) and
// vertical (top/bottom) values.
func ThicknessSymmetric(h, v float64) Thickness {
	return layout.ThicknessSymmetric(h, v)
}

// ThicknessLTRB creates a Thickness in left, top, right, bottom order.
func ThicknessLTRB(l, t, r, b float64) Thickness {
	return layout.ThicknessLTRB(l, t, r, b)
}

// Absolute is a fixed length.
func Absolute(v float64) SizeSpec {
	return layout.Absolute(v)
}

// Auto sizes to the content of the cells it covers.
func Auto() SizeSpec {
	return layout.Auto()
}

// Star takes a weighted share of the space left over.
func Star(weight float64) SizeSpec {
	return layout.Star(weight)
}

// ParseSizeSpec parses "*", "2*", "Auto" or "150".
func ParseSizeSpec(s string) (SizeSpec, error) {
	return layout.ParseSizeSpec(s)
}

// NewSpan creates a span with the default [0, +Inf] range.
func NewSpan(size SizeSpec) SpanDefinition {
	return layout.NewSpan(size)
}

// ParseSpans parses a comma-separated list such as "auto, *, 100".
func ParseSpans(s string) ([]SpanDefinition, error) {
	return layout.ParseSpans(s)
}

// Rows builds row definitions from size strings. It panics on a malformed
// string, so it is meant for literals.
func Rows(specs ...string) []SpanDefinition {
	return layout.Spans(specs...)
}

// Columns builds column definitions from size strings. It panics on a
// malformed string, so it is meant for literals.
func Columns(specs ...string) []SpanDefinition {
	return layout.Spans(specs...)
}

// At places a child at row, column with single spans.
func At(row, column int) Cell {
	return Cell{Row: row, Column: column, RowSpan: 1, ColumnSpan: 1}
}

// Span places a child at row, column covering rowSpan rows and columnSpan
// columns.
func Span(row, column, rowSpan, columnSpan int) Cell {
	return Cell{Row: row, Column: column, RowSpan: rowSpan, ColumnSpan: columnSpan}
}
