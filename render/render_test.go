package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/grindlemire/go-panel"
	"github.com/grindlemire/go-panel/markup"
	"github.com/grindlemire/go-panel/render"
)

// overflowDoc has a leaf that is wider than its grid column.
const overflowDoc = `
<panel tag="root">
    <grid tag="middle" columns="50, *">
        <leaf tag="child" size="10" min-width="80" halign="start" valign="start"/>
    </grid>
</panel>`

func layoutDoc(t *testing.T, src string, size panel.Size, opts ...panel.TreeOption) *markup.Document {
	t.Helper()
	doc, err := markup.ParseString(src, opts...)
	require.NoError(t, err)
	require.NoError(t, doc.Tree.UpdateLayout(size))
	return doc
}

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	return img
}

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

var (
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func TestWritePNG(t *testing.T) {
	doc := layoutDoc(t, overflowDoc, panel.NewSize(100, 100))
	opts := render.PNGOptions{Palette: []string{"#f00", "#00ff00", "#0000ffff"}}

	type tc struct {
		noClip bool
		at     image.Point
		want   color.NRGBA
	}

	tests := map[string]tc{
		"child inside its column": {at: image.Pt(20, 5), want: blue},
		"overflow is clipped":     {at: image.Pt(60, 5), want: green},
		"overflow drawn unclipped": {
			noClip: true,
			at:     image.Pt(60, 5),
			want:   blue,
		},
		"below the child": {at: image.Pt(20, 50), want: green},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := opts
			o.NoClip = tt.noClip

			var buf bytes.Buffer
			require.NoError(t, render.WritePNG(&buf, doc.Tree, o))
			img := decode(t, &buf)

			assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
			assert.Equal(t, tt.want, nrgba(img, tt.at.X, tt.at.Y))
		})
	}
}

func TestWritePNG_Scale(t *testing.T) {
	doc := layoutDoc(t, overflowDoc, panel.NewSize(100, 100))

	var buf bytes.Buffer
	opts := render.DefaultPNGOptions()
	opts.Scale = 2
	require.NoError(t, render.WritePNG(&buf, doc.Tree, opts))

	assert.Equal(t, image.Rect(0, 0, 200, 200), decode(t, &buf).Bounds())
}

func TestWritePNG_Errors(t *testing.T) {
	doc := layoutDoc(t, overflowDoc, panel.NewSize(100, 100))

	err := render.WritePNG(&bytes.Buffer{}, doc.Tree, render.PNGOptions{Background: "#12"})
	assert.ErrorContains(t, err, "bad color")

	bad := render.DefaultPNGOptions()
	bad.Stroke = "#zzzzzz"
	err = render.WritePNG(&bytes.Buffer{}, doc.Tree, bad)
	assert.ErrorContains(t, err, "bad color")

	err = render.WritePNG(&bytes.Buffer{}, panel.NewTree(), render.DefaultPNGOptions())
	assert.ErrorContains(t, err, "no root")

	empty := layoutDoc(t, `<panel/>`, panel.NewSize(0, 0))
	err = render.WritePNG(&bytes.Buffer{}, empty.Tree, render.DefaultPNGOptions())
	assert.ErrorContains(t, err, "empty bounds")
}

func TestWritePNG_NoStroke(t *testing.T) {
	doc := layoutDoc(t, overflowDoc, panel.NewSize(100, 100))

	opts := render.DefaultPNGOptions()
	opts.Stroke = ""
	opts.Labels = true

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, doc.Tree, opts))
	assert.Equal(t, image.Rect(0, 0, 100, 100), decode(t, &buf).Bounds())
}

func TestVisibleClip(t *testing.T) {
	doc := layoutDoc(t, overflowDoc, panel.NewSize(100, 100))
	child, _ := doc.Lookup("child")

	assert.Equal(t, panel.NewRect(0, 0, 80, 10), doc.Tree.AbsoluteBounds(child))
	assert.Equal(t, panel.NewRect(0, 0, 50, 100), render.VisibleClip(doc.Tree, child))
}

func findByTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "data-tag" && a.Val == tag {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestWriteHTML(t *testing.T) {
	doc := layoutDoc(t, overflowDoc, panel.NewSize(100, 100))

	var buf bytes.Buffer
	require.NoError(t, render.WriteHTML(&buf, doc.Tree, render.HTMLOptions{Title: "overflow", Clip: true}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), out)
	assert.Contains(t, out, "<title>overflow</title>")

	page, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	child := findByTag(page, "child")
	require.NotNil(t, child)
	assert.Equal(t, "leaf", attr(child, "data-kind"))
	assert.Contains(t, attr(child, "style"), "left:0px;top:0px;width:80px;height:10px")
	assert.Contains(t, attr(child, "style"), "overflow:hidden")

	middle := findByTag(page, "middle")
	require.NotNil(t, middle)
	assert.Same(t, middle, child.Parent)
}

func TestWriteHTML_Fragment(t *testing.T) {
	doc := layoutDoc(t, `<panel tag="only" margin="2.5"/>`, panel.NewSize(10, 10))

	var buf bytes.Buffer
	require.NoError(t, render.WriteHTML(&buf, doc.Tree, render.HTMLOptions{Fragment: true}))
	assert.Equal(t,
		`<div data-kind="panel" style="position:absolute;box-sizing:border-box;left:2.5px;top:2.5px;width:5px;height:5px" data-tag="only"></div>`,
		buf.String())
}

func TestDamage(t *testing.T) {
	damage := render.NewDamage()
	doc := layoutDoc(t, overflowDoc, panel.NewSize(100, 100), panel.WithRenderer(damage))

	assert.Equal(t, 3, damage.Len())
	assert.Equal(t, panel.NewRect(0, 0, 100, 100), damage.Region(doc.Tree))
	damage.Take()
	assert.Equal(t, 0, damage.Len())

	require.NoError(t, doc.Tree.Relayout())
	assert.Empty(t, damage.Take(), "an unchanged tree is served from cache")

	child, _ := doc.Lookup("child")
	child.SetVerticalAlignment(panel.AlignEnd)
	require.NoError(t, doc.Tree.Relayout())

	var tags []string
	for _, n := range damage.Take() {
		tags = append(tags, n.Tag())
	}
	assert.Equal(t, []string{"child", "middle", "root"}, tags)
	assert.Equal(t, panel.NewRect(0, 90, 80, 10), doc.Tree.AbsoluteBounds(child))
}
