package panel

import "math"

// countingContent reports a fixed natural size and counts how often it is
// consulted.
type countingContent struct {
	natural     Size
	arrangeSize *Size // when set, returned by ArrangeContent instead of final
	measureErr  error

	measures      int
	arranges      int
	lastAvailable Size
	lastFinal     Size
}

func (c *countingContent) MeasureContent(_ *Node, available Size) (Size, error) {
	c.measures++
	c.lastAvailable = available
	if c.measureErr != nil {
		return Size{}, c.measureErr
	}
	return c.natural, nil
}

func (c *countingContent) ArrangeContent(_ *Node, final Size) (Size, error) {
	c.arranges++
	c.lastFinal = final
	if c.arrangeSize != nil {
		return *c.arrangeSize, nil
	}
	return final, nil
}

func (c *countingContent) Kind() string { return "counting" }

// recordingScheduler records invalidation reports.
type recordingScheduler struct {
	measure []*Node
	arrange []*Node
}

func (s *recordingScheduler) InvalidateMeasure(n *Node) { s.measure = append(s.measure, n) }
func (s *recordingScheduler) InvalidateArrange(n *Node) { s.arrange = append(s.arrange, n) }

var (
	nan = math.NaN()
	inf = math.Inf(1)
)

func sizePtr(w, h float64) *Size {
	s := NewSize(w, h)
	return &s
}
