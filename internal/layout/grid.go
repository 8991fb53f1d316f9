package layout

import "math"

// Cell is a child's placement in a grid. Spans are at least 1.
type Cell struct {
	Row, Column         int
	RowSpan, ColumnSpan int
}

// DefaultCell is the top-left cell with single spans.
func DefaultCell() Cell {
	return Cell{RowSpan: 1, ColumnSpan: 1}
}

// normalize clamps the cell into a grid of rows x columns.
func (c Cell) normalize(rows, columns int) Cell {
	c.Row, c.RowSpan = clampRange(c.Row, c.RowSpan, rows)
	c.Column, c.ColumnSpan = clampRange(c.Column, c.ColumnSpan, columns)
	return c
}

func clampRange(start, span, n int) (int, int) {
	start = max(0, min(start, n-1))
	span = max(1, min(span, n-start))
	return start, span
}

// GridItem is a child together with its cell placement.
type GridItem struct {
	Child Layoutable
	Cell  Cell
}

// GridResult is the outcome of resolving a grid's spans.
type GridResult struct {
	Rows    []float64 // computed row heights
	Columns []float64 // computed column widths
	Used    Size      // space the grid occupies
}

// CellRect returns the rectangle covered by the cell: the origin is the
// offset of its first row and column, the size the sum of the spans it
// covers.
func (r GridResult) CellRect(c Cell) Rect {
	c = c.normalize(len(r.Rows), len(r.Columns))
	x, w := spanExtent(r.Columns, c.Column, c.ColumnSpan)
	y, h := spanExtent(r.Rows, c.Row, c.RowSpan)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func spanExtent(sizes []float64, first, count int) (offset, extent float64) {
	for i := range first {
		offset += sizes[i]
	}
	for i := first; i < first+count && i < len(sizes); i++ {
		extent += sizes[i]
	}
	return offset, extent
}

// ResolveGrid sizes the rows and columns of a grid against the available
// size, measuring every child along the way. Each axis goes through the same
// steps:
//
//  1. every span starts at its minimum, which is reserved from the pool
//  2. absolute spans take their length, clamped to their range and capped
//     by what is left
//  3. each child is measured with the fixed space it covers plus, if it
//     covers any auto or star span, everything it could still receive
//  4. the part of the child's size not covered by fixed spans enlarges its
//     auto spans in cell order
//  5. star spans split the leftover by weight, one after another
//
// An axis with no definitions behaves as a single star span. On an unbounded
// axis star spans are sized to content like auto spans, since there is no
// leftover to share.
func ResolveGrid(rows, columns []SpanDefinition, items []GridItem, available Size) (GridResult, error) {
	cols := newAxisState(columns, available.Width)
	rs := newAxisState(rows, available.Height)

	for _, ax := range []*axisState{cols, rs} {
		ax.reserveMinimums()
		ax.assignAbsolute()
	}

	for _, item := range items {
		cell := item.Cell.normalize(len(rs.tracks), len(cols.tracks))
		offered := Size{
			Width:  cols.offer(cell.Column, cell.ColumnSpan),
			Height: rs.offer(cell.Row, cell.RowSpan),
		}
		desired, err := item.Child.Measure(offered)
		if err != nil {
			return GridResult{}, err
		}
		cols.distribute(cell.Column, cell.ColumnSpan, desired.Width)
		rs.distribute(cell.Row, cell.RowSpan, desired.Height)
	}

	cols.distributeStars()
	rs.distributeStars()

	return GridResult{
		Rows:    rs.sizes(),
		Columns: cols.sizes(),
		Used:    Size{Width: cols.used(), Height: rs.used()},
	}, nil
}

// ArrangeGrid arranges every item into the rectangle of its cell.
func ArrangeGrid(r GridResult, items []GridItem) error {
	for _, item := range items {
		if _, err := item.Child.Arrange(r.CellRect(item.Cell)); err != nil {
			return err
		}
	}
	return nil
}

type track struct {
	spec   SizeSpec
	lo, hi float64
	size   float64
}

// axisState is the running state of one axis while it is being resolved.
// remaining never drops below zero.
type axisState struct {
	tracks    []track
	available float64
	remaining float64
	unbounded bool
}

func newAxisState(defs []SpanDefinition, available float64) *axisState {
	if len(defs) == 0 {
		defs = []SpanDefinition{NewSpan(Star(1))}
	}
	s := &axisState{
		tracks:    make([]track, len(defs)),
		available: available,
		remaining: available,
		unbounded: math.IsInf(available, 1),
	}
	for i, d := range defs {
		lo, hi := d.bounds()
		s.tracks[i] = track{spec: d.Size, lo: lo, hi: hi}
	}
	return s
}

func (s *axisState) reserve(amount float64) {
	s.remaining = math.Max(0, s.remaining-amount)
}

func (s *axisState) fixed(i int) bool {
	return s.tracks[i].spec.IsAbsolute()
}

func (s *axisState) contentSized(i int) bool {
	spec := s.tracks[i].spec
	return spec.IsAuto() || (s.unbounded && spec.IsStar())
}

// Step 1: a span never gets smaller than its minimum, even if the grid
// overflows and has to be clipped.
func (s *axisState) reserveMinimums() {
	for i := range s.tracks {
		t := &s.tracks[i]
		t.size = t.lo
		s.reserve(t.lo)
	}
}

// Step 2.
func (s *axisState) assignAbsolute() {
	for i := range s.tracks {
		if !s.fixed(i) {
			continue
		}
		t := &s.tracks[i]
		target := Clamp(t.spec.Magnitude, t.lo, t.hi)
		grow := math.Min(target-t.lo, s.remaining)
		t.size = t.lo + math.Max(0, grow)
		s.reserve(t.size - t.lo)
	}
}

// Step 3: the space offered to a child covering [first, first+count).
func (s *axisState) offer(first, count int) float64 {
	var fixedSpace, flexibleSpace float64
	flexible := false
	for i := first; i < first+count; i++ {
		if s.fixed(i) {
			fixedSpace += s.tracks[i].size
			continue
		}
		flexible = true
		flexibleSpace += s.tracks[i].size
	}
	if !flexible {
		return fixedSpace
	}
	return fixedSpace + flexibleSpace + s.remaining
}

// Step 4: enlarge covered content-sized spans until the child's measured
// extent fits, the pool runs dry, or the spans run out.
func (s *axisState) distribute(first, count int, measured float64) {
	need := measured
	for i := first; i < first+count; i++ {
		if s.fixed(i) {
			need -= s.tracks[i].size
		}
	}
	for i := first; i < first+count; i++ {
		if need <= 0 || s.remaining <= 0 {
			return
		}
		if !s.contentSized(i) {
			continue
		}
		t := &s.tracks[i]
		grow := Clamp(need-t.size, 0, t.hi-t.size)
		grow = math.Min(grow, s.remaining)
		t.size += grow
		s.reserve(grow)
		need -= t.size
	}
}

// Step 5: star spans split what is left, in order. A span clamped by its
// range takes its clamped size out of the pool and the per-weight size is
// recomputed for the spans after it, so earlier spans are never revisited.
func (s *axisState) distributeStars() {
	if s.unbounded {
		return
	}
	pool := s.remaining
	var weight float64
	for _, t := range s.tracks {
		if t.spec.IsStar() {
			weight += t.spec.Magnitude
			pool += t.lo
		}
	}
	if weight <= 0 {
		return
	}

	perWeight := pool / weight
	for i := range s.tracks {
		t := &s.tracks[i]
		if !t.spec.IsStar() {
			continue
		}
		t.size = Clamp(t.spec.Magnitude*perWeight, t.lo, t.hi)
		pool = math.Max(0, pool-t.size)
		weight -= t.spec.Magnitude
		if weight > 0 {
			perWeight = pool / weight
		}
	}
	s.remaining = pool
}

func (s *axisState) sizes() []float64 {
	out := make([]float64, len(s.tracks))
	for i, t := range s.tracks {
		out[i] = t.size
	}
	return out
}

// used is the extent the grid occupies on this axis.
func (s *axisState) used() float64 {
	if s.unbounded {
		var total float64
		for _, t := range s.tracks {
			total += t.size
		}
		return total
	}
	return s.available - s.remaining
}
