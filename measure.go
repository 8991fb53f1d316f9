package panel

import (
	"math"

	"github.com/grindlemire/go-panel/internal/layout"
)

// Measure computes the size n wants given the available space, margin
// included. Every component of available must be non-negative, +Inf is
// allowed to mean unbounded. The result is finite, non-negative and never
// larger than available.
//
// While n is measure-valid, measuring again with the same input returns the
// cached size without consulting the content.
func (n *Node) Measure(available Size) (Size, error) {
	if !validMeasureInput(available) {
		return Size{}, n.layoutError("measure", available.String(), ErrInvalidInput)
	}
	if n.state != Invalid && n.hasMeasured && n.lastMeasure == available {
		logf(CategoryCache, "measure %s: cached %v", n, n.desired)
		return n.desired, nil
	}

	scope := beginScope(CategoryLayout, true, "measure %v %v", n, available)
	desired, err := n.measure(available)
	if err != nil {
		scope.end("failed: %v", err)
		return Size{}, err
	}
	scope.end("desired %v", desired)

	n.desired = desired
	n.lastMeasure = available
	n.hasMeasured = true
	n.state = MeasureValid
	return desired, nil
}

func (n *Node) measure(available Size) (Size, error) {
	lo, hi := n.props.EffectiveRange()
	margin := n.props.Margin.Size()

	constrained := available.Sub(margin).Max(ZeroSize).Clamp(lo, hi)
	natural, err := n.content.MeasureContent(n, constrained)
	if err != nil {
		return Size{}, err
	}
	if natural.HasNaN() {
		return Size{}, n.layoutError("measure", "content "+natural.String(), ErrInvalidOutput)
	}

	// lo == hi on an axis with an explicit size, so clamping substitutes it.
	desired := natural.Clamp(lo, hi).Add(margin).Max(ZeroSize).Min(available)
	if !validDesired(desired) {
		return Size{}, n.layoutError("measure", desired.String(), ErrInvalidOutput)
	}
	return desired, nil
}

func validMeasureInput(s Size) bool {
	return validExtent(s.Width, true) && validExtent(s.Height, true)
}

func validDesired(s Size) bool {
	return validExtent(s.Width, false) && validExtent(s.Height, false)
}

// validExtent reports whether v is a usable length: not NaN, not negative,
// and finite unless inf is allowed.
func validExtent(v float64, inf bool) bool {
	if math.IsNaN(v) || v < 0 {
		return false
	}
	return inf || !math.IsInf(v, 1)
}

func (n *Node) layoutError(op, value string, kind error) error {
	return &layout.Error{Op: op, Node: n.String(), Value: value, Err: kind}
}
