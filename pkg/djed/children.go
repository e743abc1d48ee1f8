package djed

import (
	"iter"

	"github.com/vango-dev/djed/pkg/vdom"
)

// Children is a list of virtual nodes handed to a component through its
// properties. The stored nodes are templates and are never applied: every
// accessor returns fresh clones, so a component may render its children on
// every pass.
//
//	type cardProps struct {
//	    Title    string
//	    Children djed.Children
//	}
//
//	func (c *card) View() vdom.VNode {
//	    return vdom.Section(vdom.H2(c.props.Title), c.props.Children.List())
//	}
type Children struct {
	nodes []vdom.VNode
}

// NewChildren wraps nodes. Nil nodes are dropped.
func NewChildren(nodes ...vdom.VNode) Children {
	out := make([]vdom.VNode, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return Children{nodes: out}
}

// IsEmpty reports whether there are no children.
func (c Children) IsEmpty() bool { return len(c.nodes) == 0 }

// Len returns the number of children.
func (c Children) Len() int { return len(c.nodes) }

// At returns a clone of the i-th child.
func (c Children) At(i int) vdom.VNode { return c.nodes[i].Clone() }

// All iterates over clones of the children. Each child is cloned only when
// the iteration reaches it.
func (c Children) All() iter.Seq2[int, vdom.VNode] {
	return func(yield func(int, vdom.VNode) bool) {
		for i, n := range c.nodes {
			if !yield(i, n.Clone()) {
				return
			}
		}
	}
}

// Nodes returns clones of all children.
func (c Children) Nodes() []vdom.VNode {
	out := make([]vdom.VNode, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n.Clone()
	}
	return out
}

// List returns clones of all children grouped in a list.
func (c Children) List() *vdom.VList {
	return vdom.NewList(c.Nodes()...)
}

// Equal reports whether both lists describe the same children.
func (c Children) Equal(other Children) bool {
	if len(c.nodes) != len(other.nodes) {
		return false
	}
	for i := range c.nodes {
		if !vdom.Equal(c.nodes[i], other.nodes[i]) {
			return false
		}
	}
	return true
}

// VChild describes a child component whose properties the receiving
// component may read and change before rendering it.
type VChild[C Component[P], P any] struct {
	Factory Factory[C, P]
	Props   P
	Ref     *vdom.NodeRef
	Key     string
}

// Node returns a virtual component for the child.
func (v VChild[C, P]) Node() *vdom.VComp {
	return Child(v.Factory, v.Props, v.Ref, v.Key)
}

// ChildrenWithProps is a list of child components of one type. Iteration
// yields copies, so changing an item's Props does not affect the list.
type ChildrenWithProps[C Component[P], P any] struct {
	children []VChild[C, P]
}

// NewChildrenWithProps wraps children.
func NewChildrenWithProps[C Component[P], P any](children ...VChild[C, P]) ChildrenWithProps[C, P] {
	return ChildrenWithProps[C, P]{children: append([]VChild[C, P](nil), children...)}
}

// IsEmpty reports whether there are no children.
func (c ChildrenWithProps[C, P]) IsEmpty() bool { return len(c.children) == 0 }

// Len returns the number of children.
func (c ChildrenWithProps[C, P]) Len() int { return len(c.children) }

// All iterates over copies of the children.
func (c ChildrenWithProps[C, P]) All() iter.Seq2[int, VChild[C, P]] {
	return func(yield func(int, VChild[C, P]) bool) {
		for i, child := range c.children {
			if !yield(i, child) {
				return
			}
		}
	}
}

// Nodes returns a virtual component for every child.
func (c ChildrenWithProps[C, P]) Nodes() []vdom.VNode {
	out := make([]vdom.VNode, len(c.children))
	for i, child := range c.children {
		out[i] = child.Node()
	}
	return out
}
