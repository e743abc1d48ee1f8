package vdom

import (
	"reflect"

	"github.com/vango-dev/djed/pkg/host"
)

// VComp is a placeholder for a child component. It is unmounted while it
// carries properties and mounted once it holds a scope; never both.
type VComp struct {
	typ   reflect.Type
	props Mountable
	scope Scoped
	Ref   *NodeRef
	Key   string
}

// NewComp creates an unmounted component node. typ identifies the
// component type for reuse across renders.
func NewComp(typ reflect.Type, props Mountable, ref *NodeRef, key string) *VComp {
	if ref == nil {
		ref = NewNodeRef()
	}
	return &VComp{typ: typ, props: props, Ref: ref, Key: key}
}

// Type returns the component type identity.
func (c *VComp) Type() reflect.Type { return c.typ }

// Mounted reports whether the node holds a live component.
func (c *VComp) Mounted() bool { return c.scope != nil }

// Scope returns the mounted component's scope, or nil.
func (c *VComp) Scope() Scoped { return c.scope }

// Kind implements VNode.
func (c *VComp) Kind() VKind { return KindComponent }

func (c *VComp) isVNode() {}

// Clone implements VNode. Cloning a mounted component is a logic error.
func (c *VComp) Clone() VNode {
	if c.scope != nil {
		fatal("E205", "component "+c.name())
	}
	var props Mountable
	if c.props != nil {
		props = c.props.Copy()
	}
	return &VComp{typ: c.typ, props: props, Ref: c.Ref, Key: c.Key}
}

// FirstNode implements VNode.
func (c *VComp) FirstNode() host.Node {
	node := c.Ref.Get()
	if node == nil {
		fatal("E207", "component "+c.name())
	}
	return node
}

// Detach implements VNode. The component is torn down by the scheduler.
func (c *VComp) Detach(Scope, host.Element) {
	scope := c.scope
	if scope == nil {
		fatal("E204", "detach of component "+c.name())
	}
	c.scope = nil
	scope.Destroy()
}

// Apply implements VNode.
func (c *VComp) Apply(scope Scope, parent host.Element, nextSibling *NodeRef, ancestor VNode) *NodeRef {
	props := c.props
	if props == nil {
		fatal("E203", "component "+c.name())
	}
	c.props = nil

	if anc, ok := ancestor.(*VComp); ok && anc != nil && anc.typ == c.typ {
		handle := anc.scope
		if handle == nil {
			fatal("E204", "reuse of component "+c.name())
		}
		// Link to the scope's own reference rather than the ancestor's so
		// the chain stays one hop long across renders.
		c.Ref.Link(handle.NodeRef())
		anc.scope = nil
		props.Reuse(handle, nextSibling)
		c.scope = handle
		return anc.Ref
	}

	if ancestor != nil {
		ancestor.Detach(scope, parent)
	}
	placeholder := parent.OwnerDocument().CreateTextNode("")
	InsertNode(scope, placeholder, parent, nextSibling.Get())
	c.Ref.Set(placeholder)
	c.scope = props.Mount(c.Ref, scope, parent, nextSibling)
	collector(scope).RecordNodeCreated(KindComponent.String())
	return c.Ref
}

func (c *VComp) name() string {
	if c.typ == nil {
		return "<nil>"
	}
	return c.typ.String()
}
