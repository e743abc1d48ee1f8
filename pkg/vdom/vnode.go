package vdom

import (
	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/scheduler"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindTag       VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindList                   // Grouping without wrapper
	KindComponent              // Nested component
	KindRef                    // Existing live node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindTag:
		return "Tag"
	case KindText:
		return "Text"
	case KindList:
		return "List"
	case KindComponent:
		return "Component"
	case KindRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// VNode is a virtual node. It is implemented by *VTag, *VText, *VList,
// *VComp and *VRef only.
type VNode interface {
	Kind() VKind

	// Apply renders the node into parent before nextSibling, reusing the
	// live nodes of ancestor where identity matches, and returns a
	// reference to the resulting first live node. A nil ancestor renders
	// fresh.
	Apply(scope Scope, parent host.Element, nextSibling *NodeRef, ancestor VNode) *NodeRef

	// Detach removes the node's live subtree from parent. Host failures are
	// reported to scope.
	Detach(scope Scope, parent host.Element)

	// FirstNode returns the first live node of a rendered node.
	FirstNode() host.Node

	// Clone returns an unrendered copy.
	Clone() VNode

	isVNode()
}

// Scope is the component context a subtree is rendered in.
type Scope interface {
	Scheduler() *scheduler.Scheduler
	Parent() Scope
}

// Scoped is a mounted component instance.
type Scoped interface {
	// Destroy schedules the instance's teardown.
	Destroy()
	// RootVNode returns the last rendered root, or nil.
	RootVNode() VNode
	// NodeRef returns the reference the instance was mounted with. It
	// follows the instance's current root.
	NodeRef() *NodeRef
}

// Mountable carries the properties of a not yet mounted component and
// knows how to mount or update an instance of its concrete type.
type Mountable interface {
	Copy() Mountable
	Mount(ref *NodeRef, parent Scope, parentEl host.Element, nextSibling *NodeRef) Scoped
	Reuse(scope Scoped, nextSibling *NodeRef)
}

// KeyOf returns the reconciliation key of a node, or "".
func KeyOf(n VNode) string {
	switch v := n.(type) {
	case *VTag:
		if v != nil {
			return v.Key
		}
	case *VList:
		if v != nil {
			return v.Key
		}
	case *VComp:
		if v != nil {
			return v.Key
		}
	}
	return ""
}

// InsertNode inserts node into parent before next, or appends it when next
// is nil. A rejected insertion before next is logged and retried as an
// append so the node is never left orphaned.
func InsertNode(scope Scope, node host.Node, parent host.Element, next host.Node) {
	if next != nil {
		err := parent.InsertBefore(node, next)
		if err == nil {
			return
		}
		hostFailure(scope, "insert_before", err)
	}
	if err := parent.AppendChild(node); err != nil {
		hostFailure(scope, "append_child", err)
	}
}

// Equal reports whether two virtual trees describe the same UI. Components
// compare by type, refs by live node identity.
func Equal(a, b VNode) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *VTag:
		return x.equal(b.(*VTag))
	case *VText:
		return x.Text == b.(*VText).Text
	case *VList:
		return x.equal(b.(*VList))
	case *VComp:
		return x.typ == b.(*VComp).typ
	case *VRef:
		return x.Node == b.(*VRef).Node
	}
	return false
}
