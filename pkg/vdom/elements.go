package vdom

import (
	"fmt"
	"strconv"
)

// Attr is a name/value pair passed to an element factory.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// createElement creates a VTag with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, VNode, []VNode, string, Listener,
// []Listener, *NodeRef.
func createElement(tag string, args []any) *VTag {
	node := NewTag(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}

		case *NodeRef:
			if v != nil {
				node.Ref = v
			}

		case Listener:
			if v != nil {
				node.AddListener(v)
			}

		case []Listener:
			for _, l := range v {
				if l != nil {
					node.AddListener(l)
				}
			}

		case string:
			// Shorthand for text node
			node.AddChild(NewText(v))

		case []VNode:
			for _, child := range v {
				if !isNilNode(child) {
					node.AddChild(child)
				}
			}

		case VNode:
			if !isNilNode(v) {
				node.AddChild(v)
			}

		default:
			panic(fmt.Sprintf("vdom: unsupported argument %T for <%s>", arg, tag))
		}
	}
	return node
}

// setAttr routes the live form-control properties to their slots and
// everything else into the attribute map.
func (t *VTag) setAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	switch a.Key {
	case "key":
		t.Key = propToString(a.Value)
		return
	case "value":
		if t.elementType == ElementInput || t.elementType == ElementTextarea {
			t.SetValue(propToString(a.Value))
			return
		}
	case "type":
		if t.elementType == ElementInput || t.elementType == ElementButton {
			t.SetType(propToString(a.Value))
			return
		}
	case "checked":
		if t.elementType == ElementInput {
			on, _ := a.Value.(bool)
			t.Checked = on
			return
		}
	}
	if b, ok := a.Value.(bool); ok {
		// Boolean attributes are present or absent.
		if b {
			t.Attributes[a.Key] = ""
		} else {
			delete(t.Attributes, a.Key)
		}
		return
	}
	t.Attributes[a.Key] = propToString(a.Value)
}

func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n VNode) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *VTag:
		return v == nil
	case *VText:
		return v == nil
	case *VList:
		return v == nil
	case *VComp:
		return v == nil
	case *VRef:
		return v == nil
	}
	return false
}

// Tag creates an element with an arbitrary name.
func Tag(name string, args ...any) *VTag { return createElement(name, args) }

// Content sectioning elements

func Header(args ...any) *VTag  { return createElement("header", args) }
func Footer(args ...any) *VTag  { return createElement("footer", args) }
func Main(args ...any) *VTag    { return createElement("main", args) }
func Nav(args ...any) *VTag     { return createElement("nav", args) }
func Section(args ...any) *VTag { return createElement("section", args) }
func H1(args ...any) *VTag      { return createElement("h1", args) }
func H2(args ...any) *VTag      { return createElement("h2", args) }
func H3(args ...any) *VTag      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *VTag  { return createElement("div", args) }
func P(args ...any) *VTag    { return createElement("p", args) }
func Span(args ...any) *VTag { return createElement("span", args) }
func Pre(args ...any) *VTag  { return createElement("pre", args) }
func Ul(args ...any) *VTag   { return createElement("ul", args) }
func Ol(args ...any) *VTag   { return createElement("ol", args) }
func Li(args ...any) *VTag   { return createElement("li", args) }
func Hr(args ...any) *VTag   { return createElement("hr", args) }

// Inline text semantics

func A(args ...any) *VTag      { return createElement("a", args) }
func Strong(args ...any) *VTag { return createElement("strong", args) }
func Em(args ...any) *VTag     { return createElement("em", args) }
func Code(args ...any) *VTag   { return createElement("code", args) }
func Br(args ...any) *VTag     { return createElement("br", args) }

// Embedded content

func Img(args ...any) *VTag { return createElement("img", args) }
func Svg(args ...any) *VTag { return createElement("svg", args) }

// Tables

func Table(args ...any) *VTag { return createElement("table", args) }
func Tr(args ...any) *VTag    { return createElement("tr", args) }
func Td(args ...any) *VTag    { return createElement("td", args) }
func Th(args ...any) *VTag    { return createElement("th", args) }

// Forms

func Form(args ...any) *VTag     { return createElement("form", args) }
func Label(args ...any) *VTag    { return createElement("label", args) }
func Input(args ...any) *VTag    { return createElement("input", args) }
func Textarea(args ...any) *VTag { return createElement("textarea", args) }
func Button(args ...any) *VTag   { return createElement("button", args) }
func Select(args ...any) *VTag   { return createElement("select", args) }
func Option(args ...any) *VTag   { return createElement("option", args) }
