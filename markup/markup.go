package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/grindlemire/go-panel"
)

// ErrSyntax reports a structural problem in a document: unknown elements,
// misplaced definitions, unbalanced tags, stray text or more than one root.
var ErrSyntax = errors.New("markup syntax error")

// Error locates a failure at an element and, when relevant, an attribute.
type Error struct {
	Path string // element path, e.g. "grid/panel[2]"
	Attr string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("markup")
	if e.Path != "" {
		sb.WriteString(" <")
		sb.WriteString(e.Path)
		sb.WriteString(">")
	}
	if e.Attr != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Attr)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Document is a parsed markup document.
type Document struct {
	Tree *panel.Tree
	Root *panel.Node

	tagged map[string]*panel.Node
}

// Lookup returns the node with the given tag attribute.
func (d *Document) Lookup(tag string) (*panel.Node, bool) {
	n, ok := d.tagged[tag]
	return n, ok
}

// Tags returns every tag in document order.
func (d *Document) Tags() []string {
	var tags []string
	d.Tree.Walk(func(n *panel.Node, _ int) bool {
		if n.Tag() != "" {
			tags = append(tags, n.Tag())
		}
		return true
	})
	return tags
}

// ParseString parses a document held in a string.
func ParseString(s string, opts ...panel.TreeOption) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a document and builds a tree from it. The tree options are
// passed to panel.NewTree.
func Parse(r io.Reader, opts ...panel.TreeOption) (*Document, error) {
	b := &builder{
		doc: &Document{
			Tree:   panel.NewTree(opts...),
			tagged: map[string]*panel.Node{},
		},
	}

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return b.finish()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if err := b.start(tok); err != nil {
				return nil, err
			}
			if tt == html.SelfClosingTagToken {
				if err := b.end(tok.Data); err != nil {
					return nil, err
				}
			}
		case html.EndTagToken:
			tok := z.Token()
			if err := b.end(tok.Data); err != nil {
				return nil, err
			}
		case html.TextToken:
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				return nil, b.errorf("", "%w: unexpected text %q", ErrSyntax, text)
			}
		}
	}
}

// frame is an open element.
type frame struct {
	name     string
	path     string
	node     *panel.Node // nil for row/column definitions
	grid     *panel.Grid
	children int
}

type builder struct {
	doc   *Document
	stack []*frame
}

func (b *builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *builder) path() string {
	if f := b.top(); f != nil {
		return f.path
	}
	return ""
}

func (b *builder) errorf(attr, format string, args ...any) error {
	return &Error{Path: b.path(), Attr: attr, Err: fmt.Errorf(format, args...)}
}

func (b *builder) start(tok html.Token) error {
	parent := b.top()
	f := &frame{name: tok.Data, path: tok.Data}
	if parent != nil {
		parent.children++
		f.path = fmt.Sprintf("%s/%s[%d]", parent.path, tok.Data, parent.children)
	}
	b.stack = append(b.stack, f)

	a := newAttrs(tok.Attr)
	switch tok.Data {
	case "row", "column":
		if parent == nil || parent.grid == nil {
			return b.errorf("", "%w: <%s> outside a grid", ErrSyntax, tok.Data)
		}
		def, err := a.span()
		if err != nil {
			return b.attrError(err)
		}
		if tok.Data == "row" {
			parent.grid.SetRows(append(parent.grid.Rows(), def))
		} else {
			parent.grid.SetColumns(append(parent.grid.Columns(), def))
		}
		return b.attrError(a.unused())

	case "panel", "grid", "leaf":
		if parent == nil && b.doc.Root != nil {
			return b.errorf("", "%w: more than one root element", ErrSyntax)
		}
		if parent != nil && parent.node == nil {
			return b.errorf("", "%w: <%s> inside <%s>", ErrSyntax, tok.Data, parent.name)
		}
		if err := b.newNode(f, a); err != nil {
			return b.attrError(err)
		}
		if parent == nil {
			b.doc.Tree.SetRoot(f.node)
			b.doc.Root = f.node
		}
		return nil

	default:
		return b.errorf("", "%w: unknown element <%s>", ErrSyntax, tok.Data)
	}
}

func (b *builder) newNode(f *frame, a *attrs) error {
	opts, err := a.nodeOptions()
	if err != nil {
		return err
	}

	switch f.name {
	case "grid":
		rows, err := a.spans("rows")
		if err != nil {
			return err
		}
		columns, err := a.spans("columns")
		if err != nil {
			return err
		}
		f.grid = panel.NewGrid(rows, columns)
		opts = append(opts, panel.WithContent(f.grid))
	case "leaf":
		size, err := a.size("size")
		if err != nil {
			return err
		}
		opts = append(opts, panel.WithContent(panel.NewIntrinsic(size)))
	}

	cell, err := a.cell()
	if err != nil {
		return err
	}
	if err := a.unused(); err != nil {
		return err
	}

	f.node = b.doc.Tree.NewNode(opts...)
	if tag := f.node.Tag(); tag != "" {
		if _, dup := b.doc.tagged[tag]; dup {
			return &attrError{name: "tag", err: fmt.Errorf("%w: duplicate tag %q", ErrSyntax, tag)}
		}
		b.doc.tagged[tag] = f.node
	}

	if len(b.stack) > 1 {
		parent := b.stack[len(b.stack)-2]
		parent.node.AddChildAt(f.node, cell)
	} else if cell != panel.At(0, 0) {
		return &attrError{name: "row", err: fmt.Errorf("%w: the root element cannot be placed", ErrSyntax)}
	}
	return nil
}

func (b *builder) attrError(err error) error {
	if err == nil {
		return nil
	}
	var ae *attrError
	if errors.As(err, &ae) {
		return &Error{Path: b.path(), Attr: ae.name, Err: ae.err}
	}
	return &Error{Path: b.path(), Err: err}
}

func (b *builder) end(name string) error {
	f := b.top()
	if f == nil || f.name != name {
		return b.errorf("", "%w: unexpected </%s>", ErrSyntax, name)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *builder) finish() (*Document, error) {
	if f := b.top(); f != nil {
		return nil, b.errorf("", "%w: <%s> is not closed", ErrSyntax, f.name)
	}
	if b.doc.Root == nil {
		return nil, &Error{Err: fmt.Errorf("%w: no root element", ErrSyntax)}
	}
	return b.doc, nil
}
