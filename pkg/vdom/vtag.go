package vdom

import (
	"strings"

	"github.com/vango-dev/djed/pkg/host"
)

// ElementType caches the form-control category of a tag for fast dispatch.
type ElementType uint8

const (
	ElementOther ElementType = iota
	ElementInput
	ElementTextarea
	ElementButton
)

func elementTypeOf(tag string) ElementType {
	switch strings.ToLower(tag) {
	case "input":
		return ElementInput
	case "textarea":
		return ElementTextarea
	case "button":
		return ElementButton
	default:
		return ElementOther
	}
}

// VTag is a virtual element.
type VTag struct {
	tag         string
	elementType ElementType
	element     host.Element
	captured    []host.ListenerHandle

	Attributes Attributes
	Listeners  []Listener
	Children   *VList

	// Value is the live value of an input or textarea.
	Value *string
	// Type is the live type of an input or button.
	Type *string
	// Checked is the live checked state of an input. It is written on
	// every render instead of being diffed.
	Checked bool

	Ref *NodeRef
	Key string
}

// NewTag creates an element node. The tag name cannot change later.
func NewTag(tag string) *VTag {
	return &VTag{
		tag:         tag,
		elementType: elementTypeOf(tag),
		Attributes:  make(Attributes),
		Children:    NewList(),
		Ref:         NewNodeRef(),
	}
}

// Tag returns the element name.
func (t *VTag) Tag() string { return t.tag }

// ElementType returns the cached form-control category.
func (t *VTag) ElementType() ElementType { return t.elementType }

// Element returns the live element, or nil before Apply.
func (t *VTag) Element() host.Element { return t.element }

// Kind implements VNode.
func (t *VTag) Kind() VKind { return KindTag }

func (t *VTag) isVNode() {}

// AddChild appends a child node.
func (t *VTag) AddChild(child VNode) {
	t.Children.AddChild(child)
}

// SetAttribute sets an attribute value.
func (t *VTag) SetAttribute(name, value string) {
	t.Attributes[name] = value
}

// SetValue sets the live value.
func (t *VTag) SetValue(value string) {
	t.Value = &value
}

// SetType sets the live type.
func (t *VTag) SetType(kind string) {
	t.Type = &kind
}

// AddListener appends an event listener.
func (t *VTag) AddListener(l Listener) {
	t.Listeners = append(t.Listeners, l)
}

// Clone implements VNode. The copy shares the NodeRef but no live state.
func (t *VTag) Clone() VNode {
	c := &VTag{
		tag:         t.tag,
		elementType: t.elementType,
		Attributes:  t.Attributes.Clone(),
		Listeners:   append([]Listener(nil), t.Listeners...),
		Children:    t.Children.cloneList(),
		Checked:     t.Checked,
		Ref:         t.Ref,
		Key:         t.Key,
	}
	if t.Value != nil {
		c.SetValue(*t.Value)
	}
	if t.Type != nil {
		c.SetType(*t.Type)
	}
	return c
}

// FirstNode implements VNode.
func (t *VTag) FirstNode() host.Node {
	if t.element == nil {
		fatal("E201", "FirstNode called on <"+t.tag+">")
	}
	return t.element
}

// Detach implements VNode. Children are detached from the element before
// the element leaves parent.
func (t *VTag) Detach(scope Scope, parent host.Element) {
	el := t.element
	if el == nil {
		fatal("E201", "tried to remove <"+t.tag+"> which was never rendered")
	}
	t.element = nil
	t.Children.Detach(scope, el)
	if err := parent.RemoveChild(el); err != nil {
		hostFailure(scope, "remove_child", err, "node", "VTag", "tag", t.tag)
	}
	t.releaseListeners()
}

// Apply implements VNode.
func (t *VTag) Apply(scope Scope, parent host.Element, nextSibling *NodeRef, ancestor VNode) *NodeRef {
	var anc *VTag
	if ancestor != nil {
		if a, ok := ancestor.(*VTag); ok && a != nil && a.tag == t.tag {
			anc = a
		} else {
			// Different identity: stake out the position in front of the
			// old node, then drop the old subtree.
			el := t.newElement(scope, parent)
			InsertNode(scope, el, parent, ancestor.FirstNode())
			t.element = el
			ancestor.Detach(scope, parent)
		}
	}

	if anc != nil {
		// The user may have edited the control since the last render.
		anc.refreshValue()
		t.element = anc.element
		anc.element = nil
	} else if t.element == nil {
		el := t.newElement(scope, parent)
		InsertNode(scope, el, parent, nextSibling.Get())
		t.element = el
	}

	t.applyDiffs(scope, anc)
	t.recreateListeners(anc)

	el := t.element
	if !t.Children.IsEmpty() {
		var ancChildren VNode
		if anc != nil {
			ancChildren = anc.Children
		}
		t.Children.Apply(scope, el, NewNodeRef(), ancChildren)
	} else if anc != nil {
		anc.Children.Detach(scope, el)
	}

	if t.Ref == nil {
		t.Ref = NewNodeRef()
	}
	t.Ref.Set(el)
	return t.Ref
}

func (t *VTag) newElement(scope Scope, parent host.Element) host.Element {
	doc := parent.OwnerDocument()
	var (
		el  host.Element
		err error
	)
	if t.tag == "svg" || parent.Namespace() == host.SVGNamespace {
		el, err = doc.CreateElementNS(host.SVGNamespace, t.tag)
	} else {
		el, err = doc.CreateElement(t.tag)
	}
	if err != nil {
		fatal("E209", err.Error())
	}
	collector(scope).RecordNodeCreated(KindTag.String())
	return el
}

// refreshValue folds the live control value into the virtual value.
func (t *VTag) refreshValue() {
	if t.element == nil {
		return
	}
	if t.elementType != ElementInput && t.elementType != ElementTextarea {
		return
	}
	if vc, ok := t.element.(host.ValueControl); ok {
		t.SetValue(vc.Value())
	}
}

// applyDiffs writes attribute, type, value and checked changes to the live
// element.
func (t *VTag) applyDiffs(scope Scope, anc *VTag) {
	el := t.element
	if el == nil {
		fatal("E206", "<"+t.tag+"> has no live element to patch")
	}

	var old Attributes
	if anc != nil {
		old = anc.Attributes
	}
	m := collector(scope)
	for _, p := range t.Attributes.Diff(old) {
		var err error
		switch p.Op {
		case PatchAdd, PatchReplace:
			err = el.SetAttribute(p.Key, p.Value)
		case PatchRemove:
			err = el.RemoveAttribute(p.Key)
		}
		if err != nil {
			hostFailure(scope, "attribute", err, "patch", p.Op.String(), "key", p.Key)
			continue
		}
		m.RecordPatch(p.Op.String())
	}

	var oldValue, oldType *string
	if anc != nil {
		oldValue, oldType = anc.Value, anc.Type
	}

	switch t.elementType {
	case ElementButton:
		if tc, ok := el.(host.TypeControl); ok {
			if p := DiffSlot(t.Type, oldType); p != nil {
				tc.SetType(p.Applied())
				m.RecordPatch(p.Op.String())
			}
		}
	case ElementInput:
		if tc, ok := el.(host.TypeControl); ok {
			if p := DiffSlot(t.Type, oldType); p != nil {
				tc.SetType(p.Applied())
				m.RecordPatch(p.Op.String())
			}
		}
		if vc, ok := el.(host.ValueControl); ok {
			if p := DiffSlot(t.Value, oldValue); p != nil {
				vc.SetValue(p.Applied())
				m.RecordPatch(p.Op.String())
			}
		}
		// Browsers track default-checked and checked separately; only a
		// forced write keeps the live control in sync.
		if cc, ok := el.(host.CheckControl); ok {
			cc.SetChecked(t.Checked)
		}
	case ElementTextarea:
		if vc, ok := el.(host.ValueControl); ok {
			if p := DiffSlot(t.Value, oldValue); p != nil {
				vc.SetValue(p.Applied())
				m.RecordPatch(p.Op.String())
			}
		}
	}
}

// recreateListeners releases every listener attached for the ancestor and
// attaches the current ones.
func (t *VTag) recreateListeners(anc *VTag) {
	if anc != nil {
		anc.releaseListeners()
	}
	t.releaseListeners()
	for _, l := range t.Listeners {
		t.captured = append(t.captured, l.Attach(t.element))
	}
}

func (t *VTag) releaseListeners() {
	for _, h := range t.captured {
		h.Release()
	}
	t.captured = nil
}

func (t *VTag) equal(o *VTag) bool {
	if t.tag != o.tag || t.Checked != o.Checked {
		return false
	}
	if !optionalEqual(t.Value, o.Value) || !optionalEqual(t.Type, o.Type) {
		return false
	}
	if len(t.Listeners) != len(o.Listeners) {
		return false
	}
	for i := range t.Listeners {
		if t.Listeners[i].Kind() != o.Listeners[i].Kind() {
			return false
		}
	}
	return t.Attributes.equal(o.Attributes) && t.Children.equal(o.Children)
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
