package panel

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-panel/internal/layout"
)

// Grid is content that places children into rows and columns. Rows and
// columns are sized absolutely, to content (Auto) or by weighted share of
// the leftover space (Star); see ResolveGrid in internal/layout for the
// exact procedure.
type Grid struct {
	rows    []SpanDefinition
	columns []SpanDefinition

	node        *Node
	result      layout.GridResult
	resolved    bool
	resolvedFor Size
}

// NewGrid creates grid content. Nil rows or columns mean a single star span
// on that axis.
func NewGrid(rows, columns []SpanDefinition) *Grid {
	return &Grid{rows: slices.Clone(rows), columns: slices.Clone(columns)}
}

// Kind implements the kinder interface.
func (*Grid) Kind() string { return "grid" }

// Classify marks the grid definitions as affecting measure.
func (*Grid) Classify(c *Classification) {
	c.Set(PropRows, AffectsMeasure)
	c.Set(PropColumns, AffectsMeasure)
}

func (g *Grid) bind(n *Node) {
	if g.node != nil && g.node != n {
		panic(fmt.Sprintf("panel: grid is already attached to %s", g.node))
	}
	g.node = n
}

func (g *Grid) unbind() {
	g.node = nil
	g.resolved = false
}

// Rows returns a copy of the row definitions.
func (g *Grid) Rows() []SpanDefinition {
	return slices.Clone(g.rows)
}

// Columns returns a copy of the column definitions.
func (g *Grid) Columns() []SpanDefinition {
	return slices.Clone(g.columns)
}

// SetRows replaces the row definitions.
func (g *Grid) SetRows(rows []SpanDefinition) {
	if slices.Equal(g.rows, rows) {
		return
	}
	g.rows = slices.Clone(rows)
	g.changed(PropRows)
}

// SetColumns replaces the column definitions.
func (g *Grid) SetColumns(columns []SpanDefinition) {
	if slices.Equal(g.columns, columns) {
		return
	}
	g.columns = slices.Clone(columns)
	g.changed(PropColumns)
}

func (g *Grid) changed(p Property) {
	g.resolved = false
	if g.node != nil {
		g.node.changed(p)
	}
}

// RowHeights returns the row sizes computed by the last layout pass.
func (g *Grid) RowHeights() []float64 {
	return slices.Clone(g.result.Rows)
}

// ColumnWidths returns the column sizes computed by the last layout pass.
func (g *Grid) ColumnWidths() []float64 {
	return slices.Clone(g.result.Columns)
}

// MeasureContent resolves the spans against the constrained space and
// reports the space the grid occupies.
func (g *Grid) MeasureContent(n *Node, available Size) (Size, error) {
	if err := g.resolve(n, available); err != nil {
		return Size{}, err
	}
	return g.result.Used, nil
}

// ArrangeContent places every child into its cell. The spans are resolved
// again first if the grid is arranged at a size it was not measured with,
// as happens for stretched grids whose parent offers more than they asked
// for.
func (g *Grid) ArrangeContent(n *Node, final Size) (Size, error) {
	if !g.resolved || g.resolvedFor != final {
		if err := g.resolve(n, final); err != nil {
			return Size{}, err
		}
	}
	if err := layout.ArrangeGrid(g.result, g.items(n)); err != nil {
		return Size{}, err
	}
	return final, nil
}

func (g *Grid) resolve(n *Node, available Size) error {
	res, err := layout.ResolveGrid(g.rows, g.columns, g.items(n), available)
	if err != nil {
		return err
	}
	logf(CategoryLayout, "%s spans: rows %v columns %v", n, res.Rows, res.Columns)
	g.result = res
	g.resolvedFor = available
	g.resolved = true
	return nil
}

func (g *Grid) items(n *Node) []layout.GridItem {
	items := make([]layout.GridItem, len(n.children))
	for i, ref := range n.children {
		items[i] = layout.GridItem{Child: ref.node, Cell: ref.cell}
	}
	return items
}
