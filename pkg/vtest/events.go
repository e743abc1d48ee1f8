package vtest

import (
	"github.com/vango-dev/djed/pkg/host/memory"
)

// Find returns the first element with the given tag in document order
// below the root, or nil.
func (h *Harness[C, P]) Find(tag string) *memory.Element {
	return walk(h.Root, func(el *memory.Element) bool { return el.TagName() == tag })
}

// FindAll returns every element with the given tag in document order.
func (h *Harness[C, P]) FindAll(tag string) []*memory.Element {
	var out []*memory.Element
	walk(h.Root, func(el *memory.Element) bool {
		if el.TagName() == tag {
			out = append(out, el)
		}
		return false
	})
	return out
}

// Click dispatches a click event on el.
func (h *Harness[C, P]) Click(el *memory.Element) {
	h.t.Helper()
	h.dispatch(el, &memory.Event{Kind: "click", Node: el})
}

// Submit dispatches a submit event on el.
func (h *Harness[C, P]) Submit(el *memory.Element) {
	h.t.Helper()
	h.dispatch(el, &memory.Event{Kind: "submit", Node: el})
}

// Input simulates typing value into el.
func (h *Harness[C, P]) Input(el *memory.Element, value string) {
	h.t.Helper()
	if el == nil {
		h.t.Fatal("vtest: input on nil element")
	}
	el.UserInput(value)
}

// Toggle simulates clicking a checkbox.
func (h *Harness[C, P]) Toggle(el *memory.Element) {
	h.t.Helper()
	if el == nil {
		h.t.Fatal("vtest: toggle on nil element")
	}
	el.UserToggle()
}

func (h *Harness[C, P]) dispatch(el *memory.Element, ev *memory.Event) {
	h.t.Helper()
	if el == nil {
		h.t.Fatalf("vtest: %s on nil element", ev.Kind)
	}
	if !el.Dispatch(ev) {
		h.t.Errorf("vtest: no %s listener on %v", ev.Kind, el)
	}
}

// walk visits the elements below root depth-first and returns the first
// one match accepts.
func walk(root *memory.Element, match func(*memory.Element) bool) *memory.Element {
	for _, child := range root.Children() {
		el, ok := child.(*memory.Element)
		if !ok {
			continue
		}
		if match(el) {
			return el
		}
		if found := walk(el, match); found != nil {
			return found
		}
	}
	return nil
}
