package panel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newPageTree builds a header row over a sidebar and a body:
//
//	rows:    auto, *
//	columns: 200, *
func newPageTree(t *testing.T) (tree *Tree, title *Intrinsic, nodes map[string]*Node) {
	t.Helper()

	tree = NewTree()
	title = NewIntrinsic(NewSize(120, 24))
	nodes = map[string]*Node{
		"root":    tree.NewNode(WithTag("root"), WithGrid(Rows("auto", "*"), Columns("200", "*"))),
		"title":   tree.NewNode(WithTag("title"), WithContent(title)),
		"sidebar": tree.NewNode(WithTag("sidebar")),
		"body":    tree.NewNode(WithTag("body"), WithContent(&countingContent{})),
	}
	nodes["root"].AddChildAt(nodes["title"], Span(0, 0, 1, 2))
	nodes["root"].AddChildAt(nodes["sidebar"], At(1, 0))
	nodes["root"].AddChildAt(nodes["body"], At(1, 1))
	tree.SetRoot(nodes["root"])
	return tree, title, nodes
}

func absoluteBounds(tree *Tree, nodes map[string]*Node) map[string]Rect {
	out := make(map[string]Rect, len(nodes))
	for name, n := range nodes {
		out[name] = tree.AbsoluteBounds(n)
	}
	return out
}

func TestTree_UpdateLayout(t *testing.T) {
	tree, _, nodes := newPageTree(t)

	if !tree.NeedsLayout() {
		t.Error("NeedsLayout() = false before the first pass")
	}
	if err := tree.UpdateLayout(NewSize(800, 600)); err != nil {
		t.Fatalf("UpdateLayout() error = %v", err)
	}
	if tree.NeedsLayout() {
		t.Error("NeedsLayout() = true after a pass")
	}

	want := map[string]Rect{
		"root":    NewRect(0, 0, 800, 600),
		"title":   NewRect(0, 0, 800, 24),
		"sidebar": NewRect(0, 24, 200, 576),
		"body":    NewRect(200, 24, 600, 576),
	}
	if diff := cmp.Diff(want, absoluteBounds(tree, nodes)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}

	grid := nodes["root"].Content().(*Grid)
	if diff := cmp.Diff([]float64{24, 576}, grid.RowHeights()); diff != "" {
		t.Errorf("RowHeights mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{200, 600}, grid.ColumnWidths()); diff != "" {
		t.Errorf("ColumnWidths mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_UpdateLayout_PropagatesMeasureInvalidation(t *testing.T) {
	tree, title, nodes := newPageTree(t)
	if err := tree.UpdateLayout(NewSize(800, 600)); err != nil {
		t.Fatalf("UpdateLayout() error = %v", err)
	}

	title.SetSize(NewSize(120, 40))
	if !tree.NeedsLayout() {
		t.Fatal("NeedsLayout() = false after a leaf changed")
	}
	if err := tree.Relayout(); err != nil {
		t.Fatalf("Relayout() error = %v", err)
	}

	if want := NewRect(200, 40, 600, 560); tree.AbsoluteBounds(nodes["body"]) != want {
		t.Errorf("body bounds = %v, want %v", tree.AbsoluteBounds(nodes["body"]), want)
	}
	if tree.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", tree.Passes())
	}
}

func TestTree_UpdateLayout_ArrangeOnlyChange(t *testing.T) {
	tree, _, nodes := newPageTree(t)
	if err := tree.UpdateLayout(NewSize(800, 600)); err != nil {
		t.Fatalf("UpdateLayout() error = %v", err)
	}
	body := nodes["body"].Content().(*countingContent)
	measures, arranges := body.measures, body.arranges

	nodes["body"].SetHorizontalAlignment(AlignStart)
	if nodes["root"].State() != MeasureAndArrangeValid {
		t.Fatalf("root State() = %v before flush, want it untouched", nodes["root"].State())
	}
	if err := tree.UpdateLayout(NewSize(800, 600)); err != nil {
		t.Fatalf("UpdateLayout() error = %v", err)
	}

	if body.measures != measures {
		t.Errorf("body measured %d more times, want 0", body.measures-measures)
	}
	if body.arranges != arranges+1 {
		t.Errorf("body arranged %d more times, want 1", body.arranges-arranges)
	}
	if want := NewRect(200, 24, 0, 576); tree.AbsoluteBounds(nodes["body"]) != want {
		t.Errorf("body bounds = %v, want %v", tree.AbsoluteBounds(nodes["body"]), want)
	}
}

func TestTree_UpdateLayout_Cached(t *testing.T) {
	tree, _, nodes := newPageTree(t)
	body := nodes["body"].Content().(*countingContent)

	for range 3 {
		if err := tree.UpdateLayout(NewSize(800, 600)); err != nil {
			t.Fatalf("UpdateLayout() error = %v", err)
		}
	}
	if body.measures != 1 || body.arranges != 1 {
		t.Errorf("body consulted %d/%d times, want 1/1", body.measures, body.arranges)
	}
}

func TestTree_UpdateLayout_Unbounded(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode(WithIntrinsicSize(50, 30))
	tree.SetRoot(root)

	if err := tree.UpdateLayout(NewSize(inf, 100)); err != nil {
		t.Fatalf("UpdateLayout() error = %v", err)
	}
	if want := NewRect(0, 0, 50, 100); root.Bounds() != want {
		t.Errorf("root bounds = %v, want %v", root.Bounds(), want)
	}
}

func TestTree_Measure(t *testing.T) {
	tree, title, nodes := newPageTree(t)

	got, err := tree.Measure(InfiniteSize)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if want := NewSize(200, 24); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}

	title.SetSize(NewSize(120, 40))
	got, err = tree.Measure(InfiniteSize)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if want := NewSize(200, 40); got != want {
		t.Errorf("Measure() after a leaf changed = %v, want %v", got, want)
	}
	if nodes["root"].State() != MeasureValid {
		t.Errorf("root State() = %v, want %v", nodes["root"].State(), MeasureValid)
	}
	if !tree.NeedsLayout() {
		t.Error("NeedsLayout() = false before the root was arranged")
	}
}

func TestTree_UpdateLayout_NoRoot(t *testing.T) {
	tree := NewTree()
	if err := tree.UpdateLayout(NewSize(10, 10)); err != nil {
		t.Errorf("UpdateLayout() error = %v, want nil", err)
	}
	if tree.NeedsLayout() {
		t.Error("NeedsLayout() = true without a root")
	}
}

func TestTree_NodeHandles(t *testing.T) {
	tree := NewTree()
	a := tree.NewNode()
	b := tree.NewNode()

	if a.ID() == b.ID() || a.ID() == 0 {
		t.Fatalf("IDs %d and %d are not distinct non-zero handles", a.ID(), b.ID())
	}
	if got, ok := tree.Node(b.ID()); !ok || got != b {
		t.Errorf("Node(%d) = %v, %v, want b", b.ID(), got, ok)
	}
	if _, ok := tree.Node(0); ok {
		t.Error("Node(0) found a node")
	}
	if _, ok := tree.Node(99); ok {
		t.Error("Node(99) found a node")
	}
	if tree.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tree.Len())
	}
}

func TestNode_AddChild_Panics(t *testing.T) {
	type tc struct {
		setup func() (parent, child *Node)
		msg   string
	}

	tests := map[string]tc{
		"child from another tree": {
			setup: func() (*Node, *Node) {
				return NewTree().NewNode(), NewTree().NewNode()
			},
			msg: "another tree",
		},
		"child already has a parent": {
			setup: func() (*Node, *Node) {
				tree := NewTree()
				p, c := tree.NewNode(), tree.NewNode()
				p.AddChild(c)
				return tree.NewNode(), c
			},
			msg: "already has a parent",
		},
		"ancestor as child": {
			setup: func() (*Node, *Node) {
				tree := NewTree()
				p, c := tree.NewNode(), tree.NewNode()
				p.AddChild(c)
				return c, p
			},
			msg: "cycle",
		},
		"node as its own child": {
			setup: func() (*Node, *Node) {
				n := NewTree().NewNode()
				return n, n
			},
			msg: "cycle",
		},
		"root as child": {
			setup: func() (*Node, *Node) {
				tree := NewTree()
				root := tree.NewNode()
				tree.SetRoot(root)
				return tree.NewNode(), root
			},
			msg: "is the root",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent, child := tt.setup()
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("AddChild did not panic")
				}
				msg, _ := r.(string)
				if !strings.HasPrefix(msg, "panel: ") || !strings.Contains(msg, tt.msg) {
					t.Errorf("panic = %q, want a panel: message containing %q", msg, tt.msg)
				}
			}()
			parent.AddChild(child)
		})
	}
}

func TestNode_RemoveChild(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode()
	a, b, c := tree.NewNode(WithTag("a")), tree.NewNode(WithTag("b")), tree.NewNode(WithTag("c"))
	parent.AddChild(a, b, c)

	if !parent.RemoveChild(b) {
		t.Fatal("RemoveChild(b) = false")
	}
	if parent.RemoveChild(b) {
		t.Error("RemoveChild(b) twice = true")
	}
	if b.Parent() != nil {
		t.Error("removed child still has a parent")
	}

	var tags []string
	for _, n := range parent.Children() {
		tags = append(tags, n.Tag())
	}
	if diff := cmp.Diff([]string{"a", "c"}, tags); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}

	parent.RemoveAllChildren()
	if parent.ChildCount() != 0 || a.Parent() != nil {
		t.Error("RemoveAllChildren left children attached")
	}
}

func TestTree_Dump(t *testing.T) {
	tree, _, _ := newPageTree(t)

	var sb strings.Builder
	if err := tree.Dump(&sb); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	want := `grid root
{
    leaf title
    panel sidebar
    counting body
}
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_Walk(t *testing.T) {
	tree, _, nodes := newPageTree(t)
	nested := tree.NewNode(WithTag("nested"))
	nodes["sidebar"].AddChild(nested)

	var visited []string
	tree.Walk(func(n *Node, depth int) bool {
		visited = append(visited, strings.Repeat(".", depth)+n.Tag())
		return n.Tag() != "sidebar"
	})

	want := []string{"root", ".title", ".sidebar", ".body"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_String(t *testing.T) {
	tree := NewTree()
	tests := map[string]struct {
		node *Node
		want string
	}{
		"tagged grid":    {node: tree.NewNode(WithGrid(nil, nil), WithTag("main")), want: "grid main"},
		"untagged panel": {node: tree.NewNode(), want: "panel"},
		"nil":            {node: nil, want: "<nil>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
