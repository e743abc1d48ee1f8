package vdom

import "github.com/vango-dev/djed/pkg/host"

// NodeRef is a shared reference to the live node produced for a virtual
// node. It holds either a node, a link to another NodeRef, or nothing.
//
// Links never form cycles: Link refuses any target whose chain already
// leads back to the receiver. A nil *NodeRef reads as unresolved.
//
// Example:
//
//	input := vdom.NewNodeRef()
//	view := vdom.Input(input, vdom.Type("text"))
//	// after the render pass
//	el := input.Element()
type NodeRef struct {
	node host.Node
	link *NodeRef
}

// NewNodeRef creates an unresolved reference.
func NewNodeRef() *NodeRef {
	return &NodeRef{}
}

// NodeRefOf creates a reference resolved to node.
func NodeRefOf(node host.Node) *NodeRef {
	return &NodeRef{node: node}
}

// Get returns the live node, following links, or nil.
func (r *NodeRef) Get() host.Node {
	if r == nil {
		return nil
	}
	if r.node != nil {
		return r.node
	}
	return r.link.Get()
}

// Element returns the live node if it is an element.
func (r *NodeRef) Element() host.Element {
	el, _ := r.Get().(host.Element)
	return el
}

// Set makes the reference resolve directly to node, dropping any link.
func (r *NodeRef) Set(node host.Node) {
	r.node = node
	r.link = nil
}

// Link makes the reference delegate to other. Linking to a reference that
// is, or already leads back to, r is a no-op. Linking to nil clears r.
func (r *NodeRef) Link(other *NodeRef) {
	if other == nil {
		r.Set(nil)
		return
	}
	if r.Equal(other) {
		return
	}
	r.node = nil
	r.link = other
}

// Equal reports whether r and other are the same cell or other's link
// chain leads to r.
func (r *NodeRef) Equal(other *NodeRef) bool {
	if r == nil || other == nil {
		return r == other
	}
	for o := other; o != nil; o = o.link {
		if o == r {
			return true
		}
	}
	return false
}

// Linked reports whether r currently delegates to another reference.
func (r *NodeRef) Linked() bool {
	return r != nil && r.link != nil
}
