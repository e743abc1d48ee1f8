package vdom

import "github.com/vango-dev/djed/pkg/host"

// VRef imports an existing live node into the tree.
type VRef struct {
	Node host.Node
}

// NewRef wraps node.
func NewRef(node host.Node) *VRef {
	return &VRef{Node: node}
}

// Kind implements VNode.
func (r *VRef) Kind() VKind { return KindRef }

func (r *VRef) isVNode() {}

// Clone implements VNode. The copy wraps the same live node.
func (r *VRef) Clone() VNode {
	return &VRef{Node: r.Node}
}

// FirstNode implements VNode.
func (r *VRef) FirstNode() host.Node {
	return r.Node
}

// Detach implements VNode.
func (r *VRef) Detach(scope Scope, parent host.Element) {
	if err := parent.RemoveChild(r.Node); err != nil {
		hostFailure(scope, "remove_child", err, "node", "VRef")
	}
}

// Apply implements VNode.
func (r *VRef) Apply(scope Scope, parent host.Element, nextSibling *NodeRef, ancestor VNode) *NodeRef {
	if anc, ok := ancestor.(*VRef); ok && anc != nil && anc.Node == r.Node {
		return NodeRefOf(r.Node)
	}
	if ancestor != nil {
		ancestor.Detach(scope, parent)
	}
	InsertNode(scope, r.Node, parent, nextSibling.Get())
	return NodeRefOf(r.Node)
}
