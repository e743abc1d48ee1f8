package vdom

import "github.com/vango-dev/djed/pkg/host"

// VList is an ordered group of nodes without a live node of its own.
type VList struct {
	Children []VNode
	Key      string
}

// NewList creates a list of the given children.
func NewList(children ...VNode) *VList {
	return &VList{Children: children}
}

// Kind implements VNode.
func (l *VList) Kind() VKind { return KindList }

func (l *VList) isVNode() {}

// AddChild appends a child.
func (l *VList) AddChild(child VNode) {
	l.Children = append(l.Children, child)
}

// AddChildren appends children.
func (l *VList) AddChildren(children ...VNode) {
	l.Children = append(l.Children, children...)
}

// IsEmpty reports whether the list has no children.
func (l *VList) IsEmpty() bool {
	return l == nil || len(l.Children) == 0
}

// Len returns the number of children.
func (l *VList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Children)
}

// Clone implements VNode.
func (l *VList) Clone() VNode {
	return l.cloneList()
}

func (l *VList) cloneList() *VList {
	if l == nil {
		return NewList()
	}
	out := &VList{Key: l.Key, Children: make([]VNode, len(l.Children))}
	for i, c := range l.Children {
		out.Children[i] = c.Clone()
	}
	return out
}

// FirstNode implements VNode.
func (l *VList) FirstNode() host.Node {
	if l.IsEmpty() {
		fatal("E207", "FirstNode called on an empty list")
	}
	return l.Children[0].FirstNode()
}

// Detach implements VNode.
func (l *VList) Detach(scope Scope, parent host.Element) {
	if l == nil {
		return
	}
	for _, child := range l.Children {
		child.Detach(scope, parent)
	}
}

// Apply implements VNode. Children are matched to the ancestor's children
// by position.
func (l *VList) Apply(scope Scope, parent host.Element, nextSibling *NodeRef, ancestor VNode) *NodeRef {
	// An empty list still needs a live node to mark its position.
	if len(l.Children) == 0 {
		l.AddChild(NewText(""))
	}

	var rights []VNode
	switch a := ancestor.(type) {
	case nil:
	case *VList:
		if a != nil {
			rights = a.Children
		}
	default:
		rights = []VNode{ancestor}
	}

	// Every child gets its own next-sibling cell. It starts out at the
	// first node of the following ancestor child, or the outer sibling when
	// there is none, and is relinked to the following child once that child
	// has been applied, so anchors never point at detached nodes.
	var first, prevHint *NodeRef
	for i, left := range l.Children {
		var right VNode
		if i < len(rights) {
			right = rights[i]
		}

		hint := NewNodeRef()
		if i+1 < len(rights) {
			hint.Set(rights[i+1].FirstNode())
		} else {
			hint.Link(nextSibling)
		}

		ref := left.Apply(scope, parent, hint, right)
		if i == 0 {
			first = ref
		}
		if prevHint != nil {
			prevHint.Link(ref)
		}
		prevHint = hint
	}
	prevHint.Link(nextSibling)

	for i := len(l.Children); i < len(rights); i++ {
		rights[i].Detach(scope, parent)
	}
	return first
}

func (l *VList) equal(o *VList) bool {
	if l.Len() != o.Len() {
		return false
	}
	if l == nil || o == nil {
		return true
	}
	if l.Key != o.Key {
		return false
	}
	for i := range l.Children {
		if !Equal(l.Children[i], o.Children[i]) {
			return false
		}
	}
	return true
}
