package djed

import (
	"testing"

	"github.com/vango-dev/djed/pkg/vdom"
)

type frameProps struct {
	children Children
}

// frame renders a pass counter followed by its children.
type frame struct {
	props  frameProps
	passes int
}

func (f *frame) Change(p frameProps) bool {
	f.props = p
	return true
}

func (f *frame) Update(any) bool {
	f.passes++
	return true
}

func (f *frame) View() vdom.VNode {
	return vdom.Section(vdom.Textf("%d", f.passes), f.props.children.List())
}

func newFrame(p frameProps, _ *Scope[*frame, frameProps]) *frame {
	return &frame{props: p}
}

func TestChildrenRenderedOnEveryPass(t *testing.T) {
	e := newEnv(t)
	log := &events{}
	children := NewChildren(
		vdom.P("static"),
		Child(newLabel, labelProps{text: "a", log: log}, nil, ""),
	)
	scope := NewApp(e.sched, newFrame).MountToElement(e.root, frameProps{children: children})
	p := e.root.ChildElement(0).ChildElement(1)
	if p == nil || p.TagName() != "p" {
		t.Fatalf("html after mount = %q", e.html())
	}

	scope.Send(struct{}{})
	scope.Send(struct{}{})

	if want := `<section>2<p>static</p><span>a</span></section>`; e.html() != want {
		t.Errorf("html = %q, want %q", e.html(), want)
	}
	if got := e.root.ChildElement(0).ChildElement(1); got != p {
		t.Errorf("<p> was recreated: got %v, want %v", got, p)
	}
	if got := log.String(); got != "create:a,change:a,change:a" {
		t.Errorf("log = %q, want %q", got, "create:a,change:a,change:a")
	}
}

type itemsProps struct {
	items ChildrenWithProps[*label, labelProps]
}

// items prefixes every child's text before rendering it.
type items struct {
	props itemsProps
}

func (l *items) Change(p itemsProps) bool {
	l.props = p
	return true
}

func (l *items) Update(any) bool { return true }

func (l *items) View() vdom.VNode {
	var nodes []vdom.VNode
	for _, item := range l.props.items.All() {
		item.Props.text = "item-" + item.Props.text
		nodes = append(nodes, item.Node())
	}
	return vdom.Ul(nodes)
}

func TestChildrenWithPropsYieldCopies(t *testing.T) {
	e := newEnv(t)
	log := &events{}
	list := NewChildrenWithProps(
		VChild[*label, labelProps]{Factory: newLabel, Props: labelProps{text: "a", log: log}},
		VChild[*label, labelProps]{Factory: newLabel, Props: labelProps{text: "b", log: log}},
	)
	factory := func(p itemsProps, _ *Scope[*items, itemsProps]) *items { return &items{props: p} }
	scope := NewApp(e.sched, factory).MountToElement(e.root, itemsProps{items: list})

	scope.Send(struct{}{})

	if want := `<ul><span>item-a</span><span>item-b</span></ul>`; e.html() != want {
		t.Errorf("html = %q, want %q", e.html(), want)
	}
	if list.Len() != 2 || list.IsEmpty() {
		t.Errorf("Len() = %d, IsEmpty() = %v", list.Len(), list.IsEmpty())
	}
	if got := len(list.Nodes()); got != 2 {
		t.Errorf("Nodes() = %d nodes, want 2", got)
	}
}

func TestChildrenAccessorsClone(t *testing.T) {
	tmpl := vdom.Span("x")
	c := NewChildren(tmpl, nil, vdom.Text("y"))

	if c.Len() != 2 || c.IsEmpty() {
		t.Fatalf("Len() = %d, IsEmpty() = %v; want 2, false", c.Len(), c.IsEmpty())
	}
	if c.At(0) == vdom.VNode(tmpl) {
		t.Error("At returned the stored node")
	}
	for i, n := range c.All() {
		if n == c.nodes[i] {
			t.Errorf("All yielded stored node %d", i)
		}
		if !vdom.Equal(n, c.nodes[i]) {
			t.Errorf("All yielded a different node at %d", i)
		}
	}
	if !c.Equal(NewChildren(vdom.Span("x"), vdom.Text("y"))) {
		t.Error("Equal = false for matching children")
	}
	if c.Equal(NewChildren(vdom.Span("x"))) {
		t.Error("Equal = true for different lengths")
	}
	if !(Children{}).IsEmpty() || (Children{}).List().Len() != 0 {
		t.Error("zero Children should be empty")
	}
}
