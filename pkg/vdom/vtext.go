package vdom

import (
	"unicode/utf8"

	"github.com/vango-dev/djed/pkg/host"
)

// VText is a virtual text node.
type VText struct {
	Text string
	node host.Text
}

// NewText creates a text node.
func NewText(text string) *VText {
	return &VText{Text: text}
}

// Kind implements VNode.
func (t *VText) Kind() VKind { return KindText }

func (t *VText) isVNode() {}

// Clone implements VNode.
func (t *VText) Clone() VNode {
	return &VText{Text: t.Text}
}

// FirstNode implements VNode.
func (t *VText) FirstNode() host.Node {
	if t.node == nil {
		fatal("E202", "FirstNode called on text "+quoteShort(t.Text))
	}
	return t.node
}

// Detach implements VNode.
func (t *VText) Detach(scope Scope, parent host.Element) {
	node := t.node
	if node == nil {
		fatal("E202", "tried to remove text "+quoteShort(t.Text)+" which was never rendered")
	}
	t.node = nil
	if err := parent.RemoveChild(node); err != nil {
		hostFailure(scope, "remove_child", err, "node", "VText")
	}
}

// Apply implements VNode.
func (t *VText) Apply(scope Scope, parent host.Element, nextSibling *NodeRef, ancestor VNode) *NodeRef {
	if anc, ok := ancestor.(*VText); ok && anc != nil {
		node := anc.node
		if node == nil {
			fatal("E202", "ancestor text "+quoteShort(anc.Text)+" was never rendered")
		}
		anc.node = nil
		if anc.Text != t.Text {
			node.SetData(t.Text)
			collector(scope).RecordPatch("Text")
		}
		t.node = node
		return NodeRefOf(node)
	}

	if ancestor != nil {
		ancestor.Detach(scope, parent)
	}
	node := parent.OwnerDocument().CreateTextNode(t.Text)
	collector(scope).RecordNodeCreated(KindText.String())
	InsertNode(scope, node, parent, nextSibling.Get())
	t.node = node
	return NodeRefOf(node)
}

func quoteShort(s string) string {
	const limit = 32
	if len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return `"` + s + `"`
}
