package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/grindlemire/go-panel"
)

// PNGOptions controls the snapshot style.
type PNGOptions struct {
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64

	// Background fills the whole canvas. Hex, e.g. "#ffffff".
	Background string

	// Palette fills nodes by depth, cycling. Hex colors; alpha allowed
	// ("#4078c080").
	Palette []string

	// Stroke outlines every node. Empty disables outlines.
	Stroke    string
	LineWidth float64

	// Labels draws each node's String() in its top-left corner.
	Labels bool

	// NoClip draws overflowing nodes in full instead of clipping them to
	// the slot they were arranged into.
	NoClip bool
}

// DefaultPNGOptions is a light theme with labels.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Scale:      1,
		Background: "#ffffff",
		Palette:    []string{"#dfe7f280", "#c4d6b080", "#f2d7b680", "#e2c2d980"},
		Stroke:     "#333333",
		LineWidth:  1,
		Labels:     true,
	}
}

// WritePNG draws the tree's root and every descendant into a PNG of the
// root's size and writes it to w.
func WritePNG(w io.Writer, tree *panel.Tree, opts PNGOptions) error {
	dc, err := Draw(tree, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// Draw returns a gg context with the tree drawn on it, for callers that want
// to keep drawing.
func Draw(tree *panel.Tree, opts PNGOptions) (*gg.Context, error) {
	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("render: tree has no root")
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	b := root.Bounds()
	width := int(math.Ceil((b.X + b.Width) * opts.Scale))
	height := int(math.Ceil((b.Y + b.Height) * opts.Scale))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: root %s has empty bounds %v", root, b)
	}

	palette := make([]color.Color, len(opts.Palette))
	for i, hex := range opts.Palette {
		c, err := parseHex(hex)
		if err != nil {
			return nil, err
		}
		palette[i] = c
	}

	dc := gg.NewContext(width, height)
	if opts.Background != "" {
		bg, err := parseHex(opts.Background)
		if err != nil {
			return nil, err
		}
		dc.SetColor(bg)
		dc.Clear()
	}

	var stroke color.Color
	if opts.Stroke != "" {
		c, err := parseHex(opts.Stroke)
		if err != nil {
			return nil, err
		}
		stroke = c
	}

	p := &painter{dc: dc, tree: tree, opts: opts, palette: palette, stroke: stroke}
	tree.Walk(func(n *panel.Node, depth int) bool {
		p.paint(n, depth)
		return true
	})
	return dc, nil
}

type painter struct {
	dc      *gg.Context
	tree    *panel.Tree
	opts    PNGOptions
	palette []color.Color
	stroke  color.Color
}

func (p *painter) paint(n *panel.Node, depth int) {
	r := p.scaled(p.tree.AbsoluteBounds(n))
	if r.IsEmpty() {
		return
	}

	p.dc.Push()
	defer p.dc.Pop()

	if !p.opts.NoClip && n.Parent() != nil {
		clip := p.scaled(VisibleClip(p.tree, n))
		p.dc.DrawRectangle(clip.X, clip.Y, clip.Width, clip.Height)
		p.dc.Clip()
	}

	if len(p.palette) > 0 {
		p.dc.SetColor(p.palette[depth%len(p.palette)])
		p.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		p.dc.Fill()
	}
	if p.stroke != nil {
		// Inset by half a line so the outline stays inside the box.
		lw := p.opts.LineWidth
		p.dc.SetColor(p.stroke)
		p.dc.SetLineWidth(lw)
		p.dc.DrawRectangle(r.X+lw/2, r.Y+lw/2, math.Max(0, r.Width-lw), math.Max(0, r.Height-lw))
		p.dc.Stroke()
	}
	if p.opts.Labels {
		p.dc.SetColor(p.stroke)
		if p.stroke == nil {
			p.dc.SetColor(color.Black)
		}
		p.dc.DrawStringAnchored(n.String(), r.X+3, r.Y+3, 0, 1)
	}
}

func (p *painter) scaled(r panel.Rect) panel.Rect {
	s := p.opts.Scale
	return panel.NewRect(r.X*s, r.Y*s, r.Width*s, r.Height*s)
}

// VisibleClip is the part of the canvas where n may draw: its own clip
// rectangle intersected with the clip of every ancestor, in root
// coordinates.
func VisibleClip(tree *panel.Tree, n *panel.Node) panel.Rect {
	clip := tree.AbsoluteClip(n)
	for p := n.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
		clip = clip.Intersect(tree.AbsoluteClip(p))
	}
	return clip
}

func parseHex(s string) (color.Color, error) {
	var r, g, b, a uint8 = 0, 0, 0, 0xff
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var n int
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return nil, fmt.Errorf("render: bad color %q", s)
	}
	if err != nil || n < 3 {
		return nil, fmt.Errorf("render: bad color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
