package panel

// Scheduler receives invalidation reports. A node reports itself once per
// transition and never touches its parent or children; the scheduler decides
// how far an invalidation travels and when layout runs again.
type Scheduler interface {
	InvalidateMeasure(n *Node)
	InvalidateArrange(n *Node)
}

// InvalidateMeasure drops n to Invalid. Arrange is invalidated with it since
// bounds depend on the desired size. The scheduler hears about it only if n
// was measure-valid.
func (n *Node) InvalidateMeasure() {
	if n.state == Invalid {
		return
	}
	n.state = Invalid
	logf(CategoryInvalidate, "invalidate measure %s", n)
	if s := n.scheduler(); s != nil {
		s.InvalidateMeasure(n)
	}
}

// InvalidateArrange drops n from MeasureAndArrangeValid to MeasureValid. The
// scheduler hears about it only if n was arrange-valid.
func (n *Node) InvalidateArrange() {
	if n.state != MeasureAndArrangeValid {
		return
	}
	n.state = MeasureValid
	logf(CategoryInvalidate, "invalidate arrange %s", n)
	if s := n.scheduler(); s != nil {
		s.InvalidateArrange(n)
	}
}

func (n *Node) scheduler() Scheduler {
	if n.tree == nil {
		return nil
	}
	return n.tree.scheduler
}
