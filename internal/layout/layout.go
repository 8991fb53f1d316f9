package layout

// Layout is a snapshot of a node's computed layout.
type Layout struct {
	// DesiredSize is the result of the last successful Measure, margin
	// included.
	DesiredSize Size

	// Bounds is the result of the last successful Arrange: position relative
	// to the parent's origin, size excluding margin.
	Bounds Rect

	// Clip is the slot the node was arranged into. Bounds may exceed it when
	// content overflows; renderers clip to it.
	Clip Rect
}
