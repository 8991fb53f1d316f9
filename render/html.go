package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/grindlemire/go-panel"
)

// HTMLOptions controls the generated page.
type HTMLOptions struct {
	Title string
	// Fragment writes only the root <div>, without the surrounding page.
	Fragment bool
	// Clip sets overflow:hidden on every box so overflowing children are
	// cut at their parent's edge.
	Clip bool
}

// WriteHTML writes the tree as nested, absolutely positioned <div>s. Each
// box carries data-kind and data-tag attributes.
func WriteHTML(w io.Writer, tree *panel.Tree, opts HTMLOptions) error {
	root := tree.Root()
	if root == nil {
		return fmt.Errorf("render: tree has no root")
	}

	box := boxNode(root, opts)
	if opts.Fragment {
		return html.Render(w, box)
	}

	title := opts.Title
	if title == "" {
		title = root.String()
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	page := element(atom.Html)
	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	titleEl := element(atom.Title)
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(meta)
	head.AppendChild(titleEl)
	body := element(atom.Body)
	body.Attr = []html.Attribute{{Key: "style", Val: "margin:0"}}
	body.AppendChild(box)
	page.AppendChild(head)
	page.AppendChild(body)
	doc.AppendChild(page)
	return html.Render(w, doc)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func boxNode(n *panel.Node, opts HTMLOptions) *html.Node {
	b := n.Bounds()
	style := []string{
		"position:absolute",
		"box-sizing:border-box",
		"left:" + px(b.X),
		"top:" + px(b.Y),
		"width:" + px(b.Width),
		"height:" + px(b.Height),
	}
	if opts.Clip {
		style = append(style, "overflow:hidden")
	}

	div := element(atom.Div)
	div.Attr = []html.Attribute{
		{Key: "data-kind", Val: n.Kind()},
		{Key: "style", Val: strings.Join(style, ";")},
	}
	if tag := n.Tag(); tag != "" {
		div.Attr = append(div.Attr, html.Attribute{Key: "data-tag", Val: tag})
	}
	for _, c := range n.Children() {
		div.AppendChild(boxNode(c, opts))
	}
	return div
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
