package layout

// Layoutable is anything that takes part in the two-pass protocol.
// The span resolver works entirely with this interface, so grid children can
// be any implementation, not just panel nodes.
type Layoutable interface {
	// Measure reports the size the child wants, margin included, given the
	// space offered. It must never return more than it was offered.
	Measure(available Size) (Size, error)

	// Arrange places the child inside final (parent-relative) and returns
	// the bounds it actually occupies, margin excluded.
	Arrange(final Rect) (Rect, error)
}
