// Package panel is a two-pass layout engine.
//
// A Tree owns Nodes. Each node has layout inputs (explicit size, min/max,
// margin, alignment) and a Content that knows what is inside it: an Overlay
// of children, a Grid of rows and columns, or an Intrinsic leaf.
//
// Layout runs in two passes. Measure walks down the tree asking every node
// how much space it wants given what it is offered; Arrange walks down again
// giving every node its final rectangle. Both passes are cached per node and
// redone only after an invalidation or when their input changes.
//
//	tree := panel.NewTree()
//	root := tree.NewNode(panel.WithGrid(panel.Rows("auto", "*"), panel.Columns("200", "*")))
//	title := tree.NewNode(panel.WithIntrinsicSize(120, 24))
//	body := tree.NewNode()
//	root.AddChildAt(title, panel.Span(0, 0, 1, 2))
//	root.AddChildAt(body, panel.At(1, 1))
//	tree.SetRoot(root)
//	if err := tree.UpdateLayout(panel.NewSize(800, 600)); err != nil {
//		...
//	}
//	fmt.Println(tree.AbsoluteBounds(body))
package panel
