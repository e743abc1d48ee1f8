// Package djed is the component runtime: it mounts components into a live
// host tree and drives their lifecycle through a scheduler.
//
// A component is any type implementing Component for its properties type.
// It is built by a Factory, which receives the component's Scope so the
// component can send itself messages:
//
//	type Counter struct {
//	    scope *djed.Scope[*Counter, int]
//	    n     int
//	}
//
//	func NewCounter(start int, s *djed.Scope[*Counter, int]) *Counter {
//	    return &Counter{scope: s, n: start}
//	}
//
//	func (c *Counter) Change(start int) bool { return false }
//	func (c *Counter) Update(msg any) bool  { c.n++; return true }
//	func (c *Counter) View() vdom.VNode {
//	    return vdom.Button(vdom.OnClick(c.scope.Callback(func(host.Event) any { return "inc" })),
//	        vdom.Textf("%d", c.n))
//	}
//
// # Lifecycle
//
// Every transition is a runnable on the scope's scheduler:
//
//   - create builds the component with its factory
//   - update applies a message, a batch or new properties, and computes a
//     fresh view when the component asks for it
//   - render reconciles that view against the previous one and links the
//     component's NodeRef to the result
//   - destroy tears the component down and removes its nodes
//
// Updates that arrive while a render is pending are parked and replayed
// once the render ran, so a component never computes two views without
// applying the first.
//
// # Threading
//
// A scheduler and everything mounted on it belong to one goroutine, the
// same way a browser document does. Use one scheduler per document.
package djed
