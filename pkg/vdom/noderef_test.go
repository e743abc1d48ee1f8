package vdom

import "testing"

func TestNodeRefGetFollowsLinks(t *testing.T) {
	f := newFixture(t)
	el := f.doc.NewElement("div")

	a := NewNodeRef()
	b := NodeRefOf(el)
	a.Link(b)

	if a.Get() != el {
		t.Error("linked ref should resolve through its link")
	}
	if !a.Linked() {
		t.Error("Linked() = false, want true")
	}
	if a.Element() == nil {
		t.Error("Element() should cast to the element")
	}
}

func TestNodeRefNilIsUnresolved(t *testing.T) {
	var r *NodeRef
	if r.Get() != nil {
		t.Error("nil ref should resolve to nil")
	}
	if r.Element() != nil {
		t.Error("nil ref Element() should be nil")
	}
	if r.Linked() {
		t.Error("nil ref should not be linked")
	}
}

func TestNodeRefSetClearsLink(t *testing.T) {
	f := newFixture(t)
	a := NewNodeRef()
	a.Link(NodeRefOf(f.doc.NewElement("div")))
	text := f.doc.NewText("t")

	a.Set(text)

	if a.Linked() {
		t.Error("Set should drop the link")
	}
	if a.Get() != text {
		t.Error("Set node not returned")
	}
}

func TestNodeRefSelfLinkIsNoop(t *testing.T) {
	f := newFixture(t)
	el := f.doc.NewElement("div")
	a := NodeRefOf(el)

	a.Link(a)

	if a.Linked() {
		t.Error("self link must be ignored")
	}
	if a.Get() != el {
		t.Error("self link must keep the node")
	}
}

func TestNodeRefLinkRefusesCycle(t *testing.T) {
	f := newFixture(t)
	el := f.doc.NewElement("div")
	a := NodeRefOf(el)
	b := NewNodeRef()
	b.Link(a)

	// b already leads to a, so a -> b would close a cycle.
	a.Link(b)

	if a.Linked() {
		t.Error("cycle-forming link must be ignored")
	}
	if b.Get() != el {
		t.Error("chain should still resolve")
	}
}

func TestNodeRefEqual(t *testing.T) {
	a := NewNodeRef()
	b := NewNodeRef()
	c := NewNodeRef()
	b.Link(a)
	c.Link(b)

	tests := []struct {
		name string
		x, y *NodeRef
		want bool
	}{
		{"same cell", a, a, true},
		{"direct link", a, b, true},
		{"transitive link", a, c, true},
		{"reverse direction", b, a, false},
		{"unrelated", a, NewNodeRef(), false},
		{"both nil", nil, nil, true},
		{"one nil", a, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Equal(tt.y); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeRefLinkNilClears(t *testing.T) {
	f := newFixture(t)
	a := NodeRefOf(f.doc.NewElement("div"))
	a.Link(nil)
	if a.Get() != nil {
		t.Error("Link(nil) should clear the reference")
	}
}
