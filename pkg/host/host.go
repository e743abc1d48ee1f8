package host

import "errors"

// SVGNamespace is the namespace URI for SVG elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

// ErrNotFound is returned when a node is not a child of the element it is
// being removed from or inserted relative to.
var ErrNotFound = errors.New("host: node not found")

// ErrHierarchy is returned when an insertion would make a node its own
// ancestor.
var ErrHierarchy = errors.New("host: hierarchy request")

// ErrInvalidCharacter is returned for attribute or tag names a document
// refuses to accept.
var ErrInvalidCharacter = errors.New("host: invalid character")

// Node is any live node. Nodes are compared by identity.
type Node interface {
	// Parent returns the element the node is attached to, or nil.
	Parent() Element
	// OwnerDocument returns the document that created the node.
	OwnerDocument() Document
}

// Element is a live element node.
type Element interface {
	Node

	TagName() string
	Namespace() string

	SetAttribute(name, value string) error
	RemoveAttribute(name string) error

	// InsertBefore inserts child before ref. A nil ref appends.
	InsertBefore(child, ref Node) error
	AppendChild(child Node) error
	RemoveChild(child Node) error

	// FirstChild returns the first child node, or nil.
	FirstChild() Node

	// AddEventListener registers fn for events of the given kind.
	AddEventListener(kind string, fn func(Event)) ListenerHandle
}

// Text is a live text node.
type Text interface {
	Node
	Data() string
	SetData(data string)
}

// Document creates live nodes.
type Document interface {
	CreateElement(tag string) (Element, error)
	CreateElementNS(namespace, tag string) (Element, error)
	CreateTextNode(data string) Text
}

// ValueControl is implemented by elements with a live value property
// (input, textarea).
type ValueControl interface {
	Value() string
	SetValue(value string)
}

// TypeControl is implemented by elements with a live type property
// (input, button).
type TypeControl interface {
	SetType(kind string)
}

// CheckControl is implemented by checkable inputs.
type CheckControl interface {
	Checked() bool
	SetChecked(checked bool)
}

// ListenerHandle keeps an attached listener alive until released.
type ListenerHandle interface {
	Release()
}

// Event is delivered to listeners.
type Event interface {
	Type() string
	Target() Node
}
