// Package fynepanel lays out fyne canvas objects with a panel grid.
//
//	l := fynepanel.New(panel.Rows("auto", "*"), panel.Columns("200", "*"))
//	l.Place(toolbar, panel.Span(0, 0, 1, 2))
//	l.Place(sidebar, panel.At(1, 0), panel.WithMargin(4))
//	l.Place(editor, panel.At(1, 1))
//	w.SetContent(container.New(l, toolbar, sidebar, editor))
//
// Every visible object becomes a grid child whose natural size is the
// object's MinSize. Hidden objects take no part in layout.
package fynepanel

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/grindlemire/go-panel"
)

// Layout is a fyne.Layout backed by a panel tree whose root is a grid.
type Layout struct {
	tree    *panel.Tree
	root    *panel.Node
	grid    *panel.Grid
	entries map[fyne.CanvasObject]*entry
}

type entry struct {
	node *panel.Node
	leaf *panel.Intrinsic
	cell panel.Cell
}

var _ fyne.Layout = (*Layout)(nil)

// New creates a layout with the given row and column definitions.
func New(rows, columns []panel.SpanDefinition, opts ...panel.TreeOption) *Layout {
	tree := panel.NewTree(opts...)
	grid := panel.NewGrid(rows, columns)
	root := tree.NewNode(panel.WithContent(grid), panel.WithTag("fyne"))
	tree.SetRoot(root)
	return &Layout{
		tree:    tree,
		root:    root,
		grid:    grid,
		entries: map[fyne.CanvasObject]*entry{},
	}
}

// NewContainer creates a container with l as its layout.
func NewContainer(l *Layout, objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(l, objects...)
}

// Place puts obj in cell. The options configure the object's node the first
// time the object is seen; later calls only move it. Objects that are never
// placed go to the top-left cell.
func (l *Layout) Place(obj fyne.CanvasObject, cell panel.Cell, opts ...panel.Option) {
	if e, ok := l.entries[obj]; ok {
		e.cell = cell
		if e.node.Parent() != nil {
			e.node.SetCell(cell)
		}
		return
	}
	l.newEntry(obj, cell, opts)
}

func (l *Layout) newEntry(obj fyne.CanvasObject, cell panel.Cell, opts []panel.Option) *entry {
	leaf := panel.NewIntrinsic(toSize(obj.MinSize()))
	opts = append(slices.Clone(opts), panel.WithContent(leaf))
	e := &entry{node: l.tree.NewNode(opts...), leaf: leaf, cell: cell}
	l.entries[obj] = e
	return e
}

// Node returns the node standing in for obj, for changing its margin,
// alignment or size limits after it was placed.
func (l *Layout) Node(obj fyne.CanvasObject) (*panel.Node, bool) {
	e, ok := l.entries[obj]
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Tree returns the underlying tree.
func (l *Layout) Tree() *panel.Tree {
	return l.tree
}

// Grid returns the root grid, for changing rows and columns.
func (l *Layout) Grid() *panel.Grid {
	return l.grid
}

// Layout implements fyne.Layout. Objects are moved and resized to their
// arranged bounds, which may overflow their cell.
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	visible := l.sync(objects)
	if err := l.tree.UpdateLayout(panel.NewSize(float64(size.Width), float64(size.Height))); err != nil {
		fyne.LogError("panel layout failed", err)
		return
	}
	for _, obj := range visible {
		b := l.tree.AbsoluteBounds(l.entries[obj].node)
		obj.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
		obj.Resize(fyne.NewSize(float32(b.Width), float32(b.Height)))
	}
}

// MinSize implements fyne.Layout. It is the grid's desired size with
// nothing imposed, so star spans shrink to their content.
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	l.sync(objects)
	desired, err := l.tree.Measure(panel.InfiniteSize)
	if err != nil {
		fyne.LogError("panel measure failed", err)
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(float32(desired.Width), float32(desired.Height))
}

// sync makes the grid's children match the visible objects, in order, and
// refreshes their natural sizes.
func (l *Layout) sync(objects []fyne.CanvasObject) []fyne.CanvasObject {
	var visible []fyne.CanvasObject
	var nodes []*panel.Node
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		e, ok := l.entries[obj]
		if !ok {
			e = l.newEntry(obj, panel.At(0, 0), nil)
		}
		e.leaf.SetSize(toSize(obj.MinSize()))
		visible = append(visible, obj)
		nodes = append(nodes, e.node)
	}

	if slices.Equal(nodes, l.root.Children()) {
		return visible
	}
	l.root.RemoveAllChildren()
	for _, obj := range visible {
		e := l.entries[obj]
		l.root.AddChildAt(e.node, e.cell)
	}
	return visible
}

func toSize(s fyne.Size) panel.Size {
	return panel.NewSize(float64(s.Width), float64(s.Height))
}
