package vdom

import (
	"testing"

	"github.com/vango-dev/djed/pkg/host/memory"
)

func TestListGrow(t *testing.T) {
	f := newFixture(t)
	first := NewList(Li("a"))
	f.apply(first, nil)

	second := NewList(Li("a"), Li("b"), Li("c"))
	f.apply(second, first)

	if want := `<li>a</li><li>b</li><li>c</li>`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
}

func TestListShrink(t *testing.T) {
	f := newFixture(t)
	first := NewList(Li("a"), Li("b"), Li("c"))
	f.apply(first, nil)

	second := NewList(Li("a"))
	journal := f.apply(second, first)

	if want := `<li>a</li>`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
	if n := memory.Count(journal, memory.OpRemove); n != 2 {
		t.Errorf("removals = %d, want 2", n)
	}
}

func TestListEmptyGetsPlaceholder(t *testing.T) {
	f := newFixture(t)
	list := NewList()

	ref := list.Apply(f.scope, f.root, NewNodeRef(), nil)

	kids := f.root.Children()
	if len(kids) != 1 {
		t.Fatalf("children = %d, want 1 placeholder", len(kids))
	}
	text, ok := kids[0].(*memory.Text)
	if !ok || text.Data() != "" {
		t.Errorf("placeholder = %v, want empty text", kids[0])
	}
	if ref.Get() != kids[0] || list.FirstNode() != kids[0] {
		t.Error("list should resolve to its placeholder")
	}
}

func TestListEmptiedKeepsPosition(t *testing.T) {
	f := newFixture(t)
	tail := f.doc.NewText("tail")
	_ = f.root.AppendChild(tail)
	first := NewList(Span("a"), Span("b"))
	first.Apply(f.scope, f.root, NodeRefOf(tail), nil)

	second := NewList()
	second.Apply(f.scope, f.root, NodeRefOf(tail), first)

	if want := `tail`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
	if len(f.root.Children()) != 2 {
		t.Errorf("want placeholder plus tail, got %d nodes", len(f.root.Children()))
	}

	third := NewList(Em("c"))
	third.Apply(f.scope, f.root, NodeRefOf(tail), second)
	if want := `<em>c</em>tail`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
}

func TestListRespectsOuterNextSibling(t *testing.T) {
	f := newFixture(t)
	tail := f.doc.NewText("tail")
	_ = f.root.AppendChild(tail)

	first := NewList(P("a"))
	first.Apply(f.scope, f.root, NodeRefOf(tail), nil)
	second := NewList(P("a"), P("b"))
	second.Apply(f.scope, f.root, NodeRefOf(tail), first)

	if want := `<p>a</p><p>b</p>tail`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
}

func TestListReplaceMiddleKeepsOrder(t *testing.T) {
	f := newFixture(t)
	first := NewList(Div("1"), Span("2"), P("3"))
	f.apply(first, nil)

	second := NewList(Div("1"), Em("2"), P("3"))
	f.apply(second, first)

	if want := `<div>1</div><em>2</em><p>3</p>`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
}

func TestListAgainstSingleAncestor(t *testing.T) {
	f := newFixture(t)
	first := Text("x")
	f.apply(first, nil)
	textNode := first.FirstNode()

	second := NewList(Text("y"), Div())
	f.apply(second, first)

	if want := `y<div></div>`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
	if f.root.FirstChild() != textNode {
		t.Error("text node should be reused")
	}
}

func TestNestedListGrowsBeforeFollowingSibling(t *testing.T) {
	f := newFixture(t)
	first := Fragment(Fragment("a", "b"), "c")
	f.apply(first, nil)

	second := Fragment(Fragment("a", "b", "b2"), "c")
	f.apply(second, first)

	if want := `abb2c`; children(f.root) != want {
		t.Errorf("markup = %q, want %q", children(f.root), want)
	}
	kids := f.root.Children()
	if got := kids[2].(*memory.Text).Data(); got != "b2" {
		t.Errorf("third node = %q, want b2", got)
	}
}

func TestListHintFollowsReplacedSibling(t *testing.T) {
	f := newFixture(t)
	firstProps := &fakeProps{}
	first := NewList(NewComp(typeOf[int](), firstProps, nil, ""), Span())
	f.apply(first, nil)
	scope := firstProps.mounted

	second := NewList(NewComp(typeOf[int](), &fakeProps{}, nil, ""), Em())
	f.apply(second, first)

	if len(scope.reused) != 1 {
		t.Fatalf("reused %d times, want 1", len(scope.reused))
	}
	hint := scope.reused[0]
	em := second.Children[1].FirstNode()
	if hint.Get() != em {
		t.Errorf("hint resolves to %v, want the new <em> %v", hint.Get(), em)
	}
}

func TestListHintFallsBackToOuterSibling(t *testing.T) {
	f := newFixture(t)
	tail := f.doc.NewText("tail")
	_ = f.root.AppendChild(tail)
	outer := NodeRefOf(tail)

	firstProps := &fakeProps{}
	first := NewList(Span(), NewComp(typeOf[int](), firstProps, nil, ""), P())
	first.Apply(f.scope, f.root, outer, nil)
	scope := firstProps.mounted

	second := NewList(Span(), NewComp(typeOf[int](), &fakeProps{}, nil, ""))
	second.Apply(f.scope, f.root, outer, first)

	hint := scope.reused[0]
	if hint.Get() != tail {
		t.Errorf("hint resolves to %v, want tail", hint.Get())
	}
}

func TestListDetach(t *testing.T) {
	f := newFixture(t)
	list := NewList(Span(), Text("x"), NewList(Em()))
	f.apply(list, nil)

	list.Detach(f.scope, f.root)

	if len(f.root.Children()) != 0 {
		t.Errorf("children left: %q", children(f.root))
	}
}

func TestListFirstNodeEmptyPanics(t *testing.T) {
	expectPanicCode(t, "E207", func() { NewList().FirstNode() })
}

func TestListEqual(t *testing.T) {
	a := NewList(Span("x"), Text("y"))
	b := NewList(Span("x"), Text("y"))
	c := NewList(Span("x"))
	if !Equal(a, b) {
		t.Error("equal lists reported different")
	}
	if Equal(a, c) {
		t.Error("lists of different length reported equal")
	}
}
