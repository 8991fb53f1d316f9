package panel

import (
	"math"

	"github.com/grindlemire/go-panel/internal/layout"
)

// Arrange places n inside final, a rectangle relative to the parent's
// origin, and returns the bounds n occupies (margin excluded). final must
// have a finite position and a finite, non-negative size.
//
// If n is not measure-valid it is measured first, with the last available
// size it was measured with or, failing that, the size of final.
func (n *Node) Arrange(final Rect) (Rect, error) {
	if !validArrangeInput(final) {
		return Rect{}, n.layoutError("arrange", final.String(), ErrInvalidInput)
	}
	if n.state == Invalid {
		available := final.Size()
		if n.hasMeasured {
			available = n.lastMeasure
		}
		if _, err := n.Measure(available); err != nil {
			return Rect{}, err
		}
	}
	if n.state == MeasureAndArrangeValid && n.hasArranged && n.lastArrange == final {
		logf(CategoryCache, "arrange %s: cached %v", n, n.bounds)
		return n.bounds, nil
	}

	scope := beginScope(CategoryLayout, true, "arrange %v %v", n, final)
	bounds, slot, err := n.arrange(final)
	if err != nil {
		scope.end("failed: %v", err)
		return Rect{}, err
	}
	scope.end("bounds %v", bounds)

	n.bounds = bounds
	n.clip = slot
	n.lastArrange = final
	n.hasArranged = true
	n.state = MeasureAndArrangeValid
	if n.tree != nil && n.tree.renderer != nil {
		n.tree.renderer.NodeArranged(n)
	}
	return bounds, nil
}

func (n *Node) arrange(final Rect) (bounds, slot Rect, err error) {
	margin := n.props.Margin
	lo, hi := n.props.EffectiveRange()

	slot = layout.RectFrom(final.TopLeft().Add(margin.TopLeft()), final.Size().Sub(margin.Size()).Max(ZeroSize))
	available := slot.Size()
	desired := n.desired.Sub(margin.Size()).Max(ZeroSize)

	candidate := desired
	if n.props.HorizontalAlignment == AlignStretch {
		candidate.Width = available.Width
	}
	if n.props.VerticalAlignment == AlignStretch {
		candidate.Height = available.Height
	}
	candidate = candidate.Clamp(lo, hi)

	used, err := n.content.ArrangeContent(n, candidate)
	if err != nil {
		return Rect{}, Rect{}, err
	}
	if !validDesired(used) {
		return Rect{}, Rect{}, n.layoutError("arrange", "content "+used.String(), ErrInvalidOutput)
	}
	used = used.Clamp(lo, hi)

	bounds = Rect{
		X:      slot.X + layout.AlignmentOffset(n.props.HorizontalAlignment, available.Width, used.Width),
		Y:      slot.Y + layout.AlignmentOffset(n.props.VerticalAlignment, available.Height, used.Height),
		Width:  used.Width,
		Height: used.Height,
	}
	return bounds, slot, nil
}

func validArrangeInput(r Rect) bool {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	return finite(r.X) && finite(r.Y) && validExtent(r.Width, false) && validExtent(r.Height, false)
}
