// Package memory is an in-memory implementation of the host node tree.
//
// It behaves like a minimal DOM: elements keep ordered children, attributes
// and live control properties, attribute names are validated, and every
// mutation is appended to a journal so tests can assert exactly what the
// reconciler touched.
package memory

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/vango-dev/djed/pkg/host"
)

// Document is an in-memory host.Document.
type Document struct {
	nextID  int
	journal []Mutation
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement creates a detached element in the HTML namespace.
func (d *Document) CreateElement(tag string) (host.Element, error) {
	return d.createElement("", tag)
}

// CreateElementNS creates a detached element in the given namespace.
func (d *Document) CreateElementNS(namespace, tag string) (host.Element, error) {
	return d.createElement(namespace, tag)
}

// NewElement is CreateElement returning the concrete type. It panics on
// invalid tag names and is meant for test setup.
func (d *Document) NewElement(tag string) *Element {
	el, err := d.createElement("", tag)
	if err != nil {
		panic(err)
	}
	return el
}

func (d *Document) createElement(namespace, tag string) (*Element, error) {
	if !validName(tag) {
		return nil, fmt.Errorf("create element %q: %w", tag, host.ErrInvalidCharacter)
	}
	d.nextID++
	el := &Element{
		id:        d.nextID,
		doc:       d,
		tag:       tag,
		namespace: namespace,
		attrs:     make(map[string]string),
		listeners: make(map[string][]*listener),
	}
	d.record(Mutation{Op: OpCreateElement, Target: el, Name: tag})
	return el, nil
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) host.Text {
	return d.NewText(data)
}

// NewText is CreateTextNode returning the concrete type.
func (d *Document) NewText(data string) *Text {
	d.nextID++
	t := &Text{id: d.nextID, doc: d, data: data}
	d.record(Mutation{Op: OpCreateText, Target: t, Value: data})
	return t
}

// Journal returns a copy of the recorded mutations.
func (d *Document) Journal() []Mutation {
	return slices.Clone(d.journal)
}

// ResetJournal discards the recorded mutations.
func (d *Document) ResetJournal() {
	d.journal = nil
}

func (d *Document) record(m Mutation) {
	d.journal = append(d.journal, m)
}

// validName mirrors the characters a DOM rejects in attribute and tag names.
func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\n\f\r\"'/>=")
}

// Element is an in-memory element.
type Element struct {
	id        int
	doc       *Document
	parent    *Element
	tag       string
	namespace string
	attrs     map[string]string
	children  []host.Node
	listeners map[string][]*listener

	value   string
	kind    string
	checked bool
}

var (
	_ host.Element      = (*Element)(nil)
	_ host.ValueControl = (*Element)(nil)
	_ host.TypeControl  = (*Element)(nil)
	_ host.CheckControl = (*Element)(nil)
)

// ID returns the document-unique node id.
func (e *Element) ID() int { return e.id }

// Parent implements host.Node.
func (e *Element) Parent() host.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// OwnerDocument implements host.Node.
func (e *Element) OwnerDocument() host.Document { return e.doc }

// TagName implements host.Element.
func (e *Element) TagName() string { return e.tag }

// Namespace implements host.Element.
func (e *Element) Namespace() string { return e.namespace }

// SetAttribute implements host.Element.
func (e *Element) SetAttribute(name, value string) error {
	if !validName(name) {
		return fmt.Errorf("set attribute %q: %w", name, host.ErrInvalidCharacter)
	}
	e.attrs[name] = value
	e.doc.record(Mutation{Op: OpSetAttribute, Target: e, Name: name, Value: value})
	return nil
}

// RemoveAttribute implements host.Element.
func (e *Element) RemoveAttribute(name string) error {
	if !validName(name) {
		return fmt.Errorf("remove attribute %q: %w", name, host.ErrInvalidCharacter)
	}
	delete(e.attrs, name)
	e.doc.record(Mutation{Op: OpRemoveAttribute, Target: e, Name: name})
	return nil
}

// Attribute returns the attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attributes returns a copy of the attribute map.
func (e *Element) Attributes() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// AttributeNames returns the attribute names in sorted order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// InsertBefore implements host.Element. A child that already has a parent
// is moved.
func (e *Element) InsertBefore(child, ref host.Node) error {
	if child == nil {
		return fmt.Errorf("insert nil child: %w", host.ErrNotFound)
	}
	if child == ref {
		return nil
	}
	idx := len(e.children)
	if ref != nil {
		idx = e.indexOf(ref)
		if idx < 0 {
			return fmt.Errorf("insert before: reference %w", host.ErrNotFound)
		}
	}
	if err := e.adopt(child); err != nil {
		return err
	}
	// adopting may have removed the child from this element
	if ref != nil {
		idx = e.indexOf(ref)
	} else {
		idx = len(e.children)
	}
	e.children = slices.Insert(e.children, idx, child)
	e.doc.record(Mutation{Op: OpInsert, Target: e, Child: child, Ref: ref})
	return nil
}

// AppendChild implements host.Element.
func (e *Element) AppendChild(child host.Node) error {
	return e.InsertBefore(child, nil)
}

// RemoveChild implements host.Element.
func (e *Element) RemoveChild(child host.Node) error {
	idx := e.indexOf(child)
	if idx < 0 {
		return fmt.Errorf("remove child: %w", host.ErrNotFound)
	}
	e.children = slices.Delete(e.children, idx, idx+1)
	setParent(child, nil)
	e.doc.record(Mutation{Op: OpRemove, Target: e, Child: child})
	return nil
}

// FirstChild implements host.Element.
func (e *Element) FirstChild() host.Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// Children returns a copy of the child list.
func (e *Element) Children() []host.Node {
	return slices.Clone(e.children)
}

// ChildElement returns the i-th child as an element, or nil.
func (e *Element) ChildElement(i int) *Element {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	el, _ := e.children[i].(*Element)
	return el
}

func (e *Element) indexOf(n host.Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (e *Element) adopt(child host.Node) error {
	var old *Element
	switch c := child.(type) {
	case *Element:
		for p := e; p != nil; p = p.parent {
			if p == c {
				return fmt.Errorf("insert ancestor into descendant: %w", host.ErrHierarchy)
			}
		}
		old = c.parent
		c.parent = e
	case *Text:
		old = c.parent
		c.parent = e
	default:
		return fmt.Errorf("insert foreign node %T: %w", child, host.ErrNotFound)
	}
	if old != nil {
		if idx := old.indexOf(child); idx >= 0 {
			old.children = slices.Delete(old.children, idx, idx+1)
		}
	}
	return nil
}

func setParent(n host.Node, p *Element) {
	switch c := n.(type) {
	case *Element:
		c.parent = p
	case *Text:
		c.parent = p
	}
}

// Value implements host.ValueControl.
func (e *Element) Value() string { return e.value }

// SetValue implements host.ValueControl.
func (e *Element) SetValue(value string) {
	e.value = value
	e.doc.record(Mutation{Op: OpSetValue, Target: e, Value: value})
}

// Type returns the live type property.
func (e *Element) Type() string { return e.kind }

// SetType implements host.TypeControl.
func (e *Element) SetType(kind string) {
	e.kind = kind
	e.doc.record(Mutation{Op: OpSetType, Target: e, Value: kind})
}

// Checked implements host.CheckControl.
func (e *Element) Checked() bool { return e.checked }

// SetChecked implements host.CheckControl.
func (e *Element) SetChecked(checked bool) {
	e.checked = checked
	e.doc.record(Mutation{Op: OpSetChecked, Target: e, Value: fmt.Sprint(checked)})
}

// UserInput simulates a user editing the control: the live value changes
// without any framework involvement and an "input" event is dispatched.
func (e *Element) UserInput(value string) {
	e.value = value
	e.Dispatch(&Event{Kind: "input", Node: e, Value: value})
}

// UserToggle simulates a user clicking a checkbox.
func (e *Element) UserToggle() {
	e.checked = !e.checked
	e.Dispatch(&Event{Kind: "change", Node: e, Value: fmt.Sprint(e.checked)})
}

// AddEventListener implements host.Element.
func (e *Element) AddEventListener(kind string, fn func(host.Event)) host.ListenerHandle {
	l := &listener{el: e, kind: kind, fn: fn}
	e.listeners[kind] = append(e.listeners[kind], l)
	e.doc.record(Mutation{Op: OpAddListener, Target: e, Name: kind})
	return l
}

// ListenerCount returns the number of attached listeners for kind.
func (e *Element) ListenerCount(kind string) int {
	return len(e.listeners[kind])
}

// Dispatch delivers ev to every listener registered for its type.
// It reports whether any listener ran.
func (e *Element) Dispatch(ev host.Event) bool {
	ls := slices.Clone(e.listeners[ev.Type()])
	for _, l := range ls {
		l.fn(ev)
	}
	return len(ls) > 0
}

// String renders a short identifier such as "<div#3>".
func (e *Element) String() string {
	return fmt.Sprintf("<%s#%d>", e.tag, e.id)
}

type listener struct {
	el       *Element
	kind     string
	fn       func(host.Event)
	released bool
}

func (l *listener) Release() {
	if l.released {
		return
	}
	l.released = true
	ls := l.el.listeners[l.kind]
	if idx := slices.Index(ls, l); idx >= 0 {
		l.el.listeners[l.kind] = slices.Delete(ls, idx, idx+1)
	}
	l.el.doc.record(Mutation{Op: OpReleaseListener, Target: l.el, Name: l.kind})
}

// Text is an in-memory text node.
type Text struct {
	id     int
	doc    *Document
	parent *Element
	data   string
}

var _ host.Text = (*Text)(nil)

// ID returns the document-unique node id.
func (t *Text) ID() int { return t.id }

// Parent implements host.Node.
func (t *Text) Parent() host.Element {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

// OwnerDocument implements host.Node.
func (t *Text) OwnerDocument() host.Document { return t.doc }

// Data implements host.Text.
func (t *Text) Data() string { return t.data }

// SetData implements host.Text.
func (t *Text) SetData(data string) {
	t.data = data
	t.doc.record(Mutation{Op: OpSetData, Target: t, Value: data})
}

// String renders a short identifier such as `"hi"#4`.
func (t *Text) String() string {
	return fmt.Sprintf("%q#%d", t.data, t.id)
}

// Event is a simple host.Event.
type Event struct {
	Kind  string
	Node  host.Node
	Value string
}

// Type implements host.Event.
func (e *Event) Type() string { return e.Kind }

// Target implements host.Event.
func (e *Event) Target() host.Node { return e.Node }
