package layout

import (
	"fmt"
	"math"
)

// Size is a width/height pair. Components may be +Inf to mean "unbounded"
// and NaN to mean "unset" where a caller documents it.
type Size struct {
	Width, Height float64
}

var (
	// ZeroSize is the empty size.
	ZeroSize = Size{}

	// InfiniteSize is unbounded on both axes.
	InfiniteSize = Size{Width: math.Inf(1), Height: math.Inf(1)}

	// UnsetSize has both components NaN.
	UnsetSize = Size{Width: math.NaN(), Height: math.NaN()}
)

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Add returns the componentwise sum.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns the componentwise difference.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Min returns the componentwise minimum.
func (s Size) Min(o Size) Size {
	return Size{Width: math.Min(s.Width, o.Width), Height: math.Min(s.Height, o.Height)}
}

// Max returns the componentwise maximum.
func (s Size) Max(o Size) Size {
	return Size{Width: math.Max(s.Width, o.Width), Height: math.Max(s.Height, o.Height)}
}

// Clamp bounds each component to [lo, hi]. A NaN component stays NaN.
func (s Size) Clamp(lo, hi Size) Size {
	return Size{
		Width:  Clamp(s.Width, lo.Width, hi.Width),
		Height: Clamp(s.Height, lo.Height, hi.Height),
	}
}

// OrIfNaN substitutes the fallback component wherever s has a NaN component.
func (s Size) OrIfNaN(fallback Size) Size {
	return Size{Width: OrIfNaN(s.Width, fallback.Width), Height: OrIfNaN(s.Height, fallback.Height)}
}

// Axis returns the component along the given axis.
func (s Size) Axis(a Axis) float64 {
	if a == Vertical {
		return s.Height
	}
	return s.Width
}

// WithAxis returns a copy of s with the component along a replaced.
func (s Size) WithAxis(a Axis, v float64) Size {
	if a == Vertical {
		s.Height = v
	} else {
		s.Width = v
	}
	return s
}

// IsFinite reports whether both components are finite numbers.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

// HasNaN reports whether either component is NaN.
func (s Size) HasNaN() bool {
	return math.IsNaN(s.Width) || math.IsNaN(s.Height)
}

// String formats the size as (w, h).
func (s Size) String() string {
	return fmt.Sprintf("(%g, %g)", s.Width, s.Height)
}

// Clamp returns v bounded to [lo, hi]. When lo > hi, lo wins.
// NaN is returned unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// OrIfNaN returns fallback when v is NaN, v otherwise.
func OrIfNaN(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
