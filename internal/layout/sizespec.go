package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a SizeSpec is interpreted.
type Unit uint8

const (
	UnitAbsolute Unit = iota // Fixed length
	UnitAuto                 // Sized to content
	UnitStar                 // Weighted share of leftover space
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitStar:
		return "star"
	default:
		return "absolute"
	}
}

// SizeSpec is the sizing rule of a grid span. For UnitStar the magnitude is
// a relative weight, never a length.
type SizeSpec struct {
	Magnitude float64
	Unit      Unit
}

// Absolute returns a SizeSpec of a fixed length.
func Absolute(v float64) SizeSpec {
	return SizeSpec{Magnitude: v, Unit: UnitAbsolute}
}

// Auto returns a SizeSpec that sizes to content.
func Auto() SizeSpec {
	return SizeSpec{Magnitude: 1, Unit: UnitAuto}
}

// Star returns a SizeSpec taking weight shares of the leftover space.
func Star(weight float64) SizeSpec {
	return SizeSpec{Magnitude: weight, Unit: UnitStar}
}

// IsAbsolute returns true for fixed-length specs.
func (s SizeSpec) IsAbsolute() bool { return s.Unit == UnitAbsolute }

// IsAuto returns true for content-sized specs.
func (s SizeSpec) IsAuto() bool { return s.Unit == UnitAuto }

// IsStar returns true for proportional specs.
func (s SizeSpec) IsStar() bool { return s.Unit == UnitStar }

// String formats the spec in the same grammar ParseSizeSpec accepts.
func (s SizeSpec) String() string {
	switch s.Unit {
	case UnitAuto:
		return "Auto"
	case UnitStar:
		if s.Magnitude == 1 {
			return "*"
		}
		return strconv.FormatFloat(s.Magnitude, 'g', -1, 64) + "*"
	default:
		return strconv.FormatFloat(s.Magnitude, 'g', -1, 64)
	}
}

// ParseSizeSpec parses a size rule. The forms are tried in order:
//
//	"*"      Star(1)
//	"auto"   Auto (case-insensitive)
//	"150"    Absolute(150)
//	"2.5*"   Star(2.5)
//
// Surrounding whitespace is ignored. Magnitudes must be finite and
// non-negative. Failures wrap ErrFormat.
func ParseSizeSpec(s string) (SizeSpec, error) {
	text := strings.TrimSpace(s)

	if text == "*" {
		return Star(1), nil
	}
	if strings.EqualFold(text, "auto") {
		return Auto(), nil
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		if !validMagnitude(v) {
			return SizeSpec{}, formatErrorf(s, "length must be finite and non-negative")
		}
		return Absolute(v), nil
	}
	if weight, ok := strings.CutSuffix(text, "*"); ok {
		v, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return SizeSpec{}, formatErrorf(s, "invalid star weight")
		}
		if !validMagnitude(v) {
			return SizeSpec{}, formatErrorf(s, "star weight must be finite and non-negative")
		}
		return Star(v), nil
	}
	return SizeSpec{}, formatErrorf(s, "expected a number, \"Auto\", \"*\" or \"<number>*\"")
}

// MustParseSizeSpec is like ParseSizeSpec but panics on error.
// Intended for literals in code and tests.
func MustParseSizeSpec(s string) SizeSpec {
	spec, err := ParseSizeSpec(s)
	if err != nil {
		panic(err)
	}
	return spec
}

func validMagnitude(v float64) bool {
	return isFinite(v) && v >= 0
}

func formatErrorf(input, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrFormat, input, reason)
}
