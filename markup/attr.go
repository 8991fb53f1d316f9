package markup

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/grindlemire/go-panel"
)

// attrError names the attribute a parse failure came from.
type attrError struct {
	name string
	err  error
}

func (e *attrError) Error() string { return e.name + ": " + e.err.Error() }
func (e *attrError) Unwrap() error { return e.err }

// attrs is an element's attribute set. Every lookup marks the attribute as
// used so leftovers can be reported.
type attrs struct {
	values map[string]string
	order  []string
	used   map[string]bool
}

func newAttrs(list []html.Attribute) *attrs {
	a := &attrs{values: map[string]string{}, used: map[string]bool{}}
	for _, attr := range list {
		if _, dup := a.values[attr.Key]; !dup {
			a.order = append(a.order, attr.Key)
		}
		a.values[attr.Key] = attr.Val
	}
	return a
}

func (a *attrs) get(name string) (string, bool) {
	v, ok := a.values[name]
	if ok {
		a.used[name] = true
	}
	return strings.TrimSpace(v), ok
}

func (a *attrs) unused() error {
	var extra []string
	for _, name := range a.order {
		if !a.used[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	slices.Sort(extra)
	return &attrError{name: extra[0], err: fmt.Errorf("%w: unknown attribute", ErrSyntax)}
}

// length parses a length. "auto" or an empty value yields NaN (unset) when
// allowUnset is true. Infinite values are only accepted as +Inf and only
// when allowInf is true.
func (a *attrs) length(name string, allowUnset, allowInf bool) (float64, bool, error) {
	v, ok := a.get(name)
	if !ok {
		return 0, false, nil
	}
	if allowUnset && (v == "" || strings.EqualFold(v, "auto")) {
		return math.NaN(), true, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, &attrError{name: name, err: fmt.Errorf("%w: %q is not a number", panel.ErrFormat, v)}
	}
	if math.IsNaN(f) || math.IsInf(f, -1) || (math.IsInf(f, 1) && !allowInf) {
		return 0, false, &attrError{name: name, err: fmt.Errorf("%w: %q is not a finite number", panel.ErrFormat, v)}
	}
	return f, true, nil
}

func (a *attrs) integer(name string, def int) (int, error) {
	v, ok := a.get(name)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, &attrError{name: name, err: fmt.Errorf("%w: %q is not an integer", panel.ErrFormat, v)}
	}
	return i, nil
}

// floats parses a comma-separated list of numbers.
func (a *attrs) floats(name string) ([]float64, bool, error) {
	v, ok := a.get(name)
	if !ok {
		return nil, false, nil
	}
	parts := strings.Split(v, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false, &attrError{name: name, err: fmt.Errorf("%w: %q is not a number list", panel.ErrFormat, v)}
		}
		out[i] = f
	}
	return out, true, nil
}

func (a *attrs) size(name string) (panel.Size, error) {
	vals, ok, err := a.floats(name)
	switch {
	case err != nil:
		return panel.Size{}, err
	case !ok:
		return panel.ZeroSize, nil
	case len(vals) == 1:
		return panel.NewSize(vals[0], vals[0]), nil
	case len(vals) == 2:
		return panel.NewSize(vals[0], vals[1]), nil
	}
	return panel.Size{}, &attrError{name: name, err: fmt.Errorf("%w: want \"w, h\"", panel.ErrFormat)}
}

func (a *attrs) thickness(name string) (panel.Thickness, bool, error) {
	vals, ok, err := a.floats(name)
	if err != nil || !ok {
		return panel.Thickness{}, false, err
	}
	switch len(vals) {
	case 1:
		return panel.ThicknessAll(vals[0]), true, nil
	case 2:
		return panel.ThicknessSymmetric(vals[0], vals[1]), true, nil
	case 4:
		return panel.ThicknessLTRB(vals[0], vals[1], vals[2], vals[3]), true, nil
	}
	return panel.Thickness{}, false, &attrError{name: name, err: fmt.Errorf("%w: want 1, 2 or 4 values", panel.ErrFormat)}
}

var alignments = map[string]panel.Alignment{
	"stretch": panel.AlignStretch,
	"start":   panel.AlignStart,
	"center":  panel.AlignCenter,
	"end":     panel.AlignEnd,
	"left":    panel.AlignLeft,
	"top":     panel.AlignTop,
	"right":   panel.AlignRight,
	"bottom":  panel.AlignBottom,
}

func (a *attrs) alignment(name string) (panel.Alignment, bool, error) {
	v, ok := a.get(name)
	if !ok {
		return 0, false, nil
	}
	al, known := alignments[strings.ToLower(v)]
	if !known {
		return 0, false, &attrError{name: name, err: fmt.Errorf("%w: unknown alignment %q", panel.ErrFormat, v)}
	}
	return al, true, nil
}

func (a *attrs) spans(name string) ([]panel.SpanDefinition, error) {
	v, ok := a.get(name)
	if !ok {
		return nil, nil
	}
	defs, err := panel.ParseSpans(v)
	if err != nil {
		return nil, &attrError{name: name, err: err}
	}
	return defs, nil
}

// span parses a <row> or <column> definition.
func (a *attrs) span() (panel.SpanDefinition, error) {
	spec := panel.Star(1)
	if v, ok := a.get("size"); ok {
		s, err := panel.ParseSizeSpec(v)
		if err != nil {
			return panel.SpanDefinition{}, &attrError{name: "size", err: err}
		}
		spec = s
	}
	def := panel.NewSpan(spec)
	if v, ok, err := a.length("min", false, false); err != nil {
		return def, err
	} else if ok {
		def = def.WithMin(v)
	}
	if v, ok, err := a.length("max", false, true); err != nil {
		return def, err
	} else if ok {
		def = def.WithMax(v)
	}
	return def, nil
}

func (a *attrs) cell() (panel.Cell, error) {
	var c panel.Cell
	var err error
	if c.Row, err = a.integer("row", 0); err != nil {
		return c, err
	}
	if c.Column, err = a.integer("column", 0); err != nil {
		return c, err
	}
	if c.RowSpan, err = a.integer("row-span", 1); err != nil {
		return c, err
	}
	if c.ColumnSpan, err = a.integer("column-span", 1); err != nil {
		return c, err
	}
	return c, nil
}

// nodeOptions turns the common attributes into node options.
func (a *attrs) nodeOptions() ([]panel.Option, error) {
	var opts []panel.Option

	if tag, ok := a.get("tag"); ok {
		opts = append(opts, panel.WithTag(tag))
	}

	lengths := []struct {
		name       string
		allowUnset bool
		allowInf   bool
		opt        func(float64) panel.Option
	}{
		{"width", true, false, panel.WithWidth},
		{"height", true, false, panel.WithHeight},
		{"min-width", false, false, panel.WithMinWidth},
		{"min-height", false, false, panel.WithMinHeight},
		{"max-width", false, true, panel.WithMaxWidth},
		{"max-height", false, true, panel.WithMaxHeight},
	}
	for _, l := range lengths {
		v, ok, err := a.length(l.name, l.allowUnset, l.allowInf)
		if err != nil {
			return nil, err
		}
		if ok {
			opts = append(opts, l.opt(v))
		}
	}

	if m, ok, err := a.thickness("margin"); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, panel.WithThickness(m))
	}
	if h, ok, err := a.alignment("halign"); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, panel.WithHorizontalAlignment(h))
	}
	if v, ok, err := a.alignment("valign"); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, panel.WithVerticalAlignment(v))
	}
	return opts, nil
}
