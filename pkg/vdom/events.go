package vdom

import "github.com/vango-dev/djed/pkg/host"

// Listener is an event handler bound to a VTag. Attach registers it on a
// live element and returns the handle that removes it again.
type Listener interface {
	Kind() string
	Attach(el host.Element) host.ListenerHandle
}

type listener struct {
	kind string
	fn   func(host.Event)
}

func (l *listener) Kind() string { return l.kind }

func (l *listener) Attach(el host.Element) host.ListenerHandle {
	return el.AddEventListener(l.kind, l.fn)
}

// On creates a listener for an arbitrary event type.
func On(kind string, fn func(host.Event)) Listener {
	return &listener{kind: kind, fn: fn}
}

// Mouse events

// OnClick handles click events.
func OnClick(fn func(host.Event)) Listener { return On("click", fn) }

// OnDblClick handles dblclick events.
func OnDblClick(fn func(host.Event)) Listener { return On("dblclick", fn) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(fn func(host.Event)) Listener { return On("keydown", fn) }

// OnKeyUp handles keyup events.
func OnKeyUp(fn func(host.Event)) Listener { return On("keyup", fn) }

// Form events

// OnInput handles input events.
func OnInput(fn func(host.Event)) Listener { return On("input", fn) }

// OnChange handles change events.
func OnChange(fn func(host.Event)) Listener { return On("change", fn) }

// OnSubmit handles submit events.
func OnSubmit(fn func(host.Event)) Listener { return On("submit", fn) }

// Focus events

// OnFocus handles focus events.
func OnFocus(fn func(host.Event)) Listener { return On("focus", fn) }

// OnBlur handles blur events.
func OnBlur(fn func(host.Event)) Listener { return On("blur", fn) }
