package layout

import (
	"fmt"
	"math"
	"strings"
)

// SpanDefinition is a row or column of a grid: a sizing rule plus the
// range its computed size must stay within.
type SpanDefinition struct {
	Size SizeSpec
	Min  float64
	Max  float64
}

// NewSpan creates a SpanDefinition with the default [0, +Inf] range.
func NewSpan(size SizeSpec) SpanDefinition {
	return SpanDefinition{Size: size, Min: 0, Max: math.Inf(1)}
}

// WithMin returns a copy of d with its minimum replaced.
func (d SpanDefinition) WithMin(v float64) SpanDefinition {
	d.Min = v
	return d
}

// WithMax returns a copy of d with its maximum replaced.
func (d SpanDefinition) WithMax(v float64) SpanDefinition {
	d.Max = v
	return d
}

// bounds returns the definition's range with min winning over max and
// NaN treated as unset.
func (d SpanDefinition) bounds() (lo, hi float64) {
	lo = OrIfNaN(d.Min, 0)
	if lo < 0 {
		lo = 0
	}
	hi = OrIfNaN(d.Max, math.Inf(1))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// String formats the definition, including the range when it is not the
// default.
func (d SpanDefinition) String() string {
	lo, hi := d.bounds()
	if lo == 0 && math.IsInf(hi, 1) {
		return d.Size.String()
	}
	return fmt.Sprintf("%s[%g..%g]", d.Size, lo, hi)
}

// ParseSpans parses a comma-separated list of size rules, e.g.
// "Auto, *, 100, 2*", into span definitions with default ranges.
// An empty or all-whitespace string yields no spans.
func ParseSpans(s string) ([]SpanDefinition, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	defs := make([]SpanDefinition, 0, len(parts))
	for i, part := range parts {
		spec, err := ParseSizeSpec(part)
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		defs = append(defs, NewSpan(spec))
	}
	return defs, nil
}

// Spans parses each string as a size rule. It panics on malformed input and
// is meant for literal definitions such as Spans("Auto", "*", "100").
func Spans(specs ...string) []SpanDefinition {
	defs := make([]SpanDefinition, len(specs))
	for i, s := range specs {
		defs[i] = NewSpan(MustParseSizeSpec(s))
	}
	return defs
}
