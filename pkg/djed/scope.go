package djed

import (
	"log/slog"
	"reflect"

	"github.com/vango-dev/djed/internal/errors"
	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/scheduler"
	"github.com/vango-dev/djed/pkg/vdom"
)

// Scope is the handle of one mounted component. It is the component's
// entry point for messages and the parent scope of everything the
// component renders.
type Scope[C Component[P], P any] struct {
	sched  *scheduler.Scheduler
	parent vdom.Scope
	logger *slog.Logger

	// state is shared by every runnable of this component and is nil
	// until create ran and again after destroy.
	state   *componentState[C, P]
	nodeRef *vdom.NodeRef
	// destroyed is set as soon as teardown is requested, which may be
	// before create ran.
	destroyed bool
}

var (
	_ vdom.Scope  = (*Scope[Component[any], any])(nil)
	_ vdom.Scoped = (*Scope[Component[any], any])(nil)
)

func newScope[C Component[P], P any](sched *scheduler.Scheduler, parent vdom.Scope) *Scope[C, P] {
	return &Scope[C, P]{
		sched:  sched,
		parent: parent,
		logger: sched.Logger().With("component", "djed", "type", typeName[C]()),
	}
}

// Scheduler implements vdom.Scope.
func (s *Scope[C, P]) Scheduler() *scheduler.Scheduler { return s.sched }

// Parent implements vdom.Scope. It is nil for an application root.
func (s *Scope[C, P]) Parent() vdom.Scope { return s.parent }

// Logger returns the component's logger.
func (s *Scope[C, P]) Logger() *slog.Logger { return s.logger }

// NodeRef implements vdom.Scoped. It follows the component's first live
// node.
func (s *Scope[C, P]) NodeRef() *vdom.NodeRef { return s.nodeRef }

// Component returns the live component. ok is false before create and
// after destroy.
func (s *Scope[C, P]) Component() (c C, ok bool) {
	if s.state == nil {
		return c, false
	}
	return s.state.component, true
}

// RootVNode implements vdom.Scoped.
func (s *Scope[C, P]) RootVNode() vdom.VNode {
	if s.state == nil {
		return nil
	}
	return s.state.lastRoot
}

// Send delivers msg to the component's Update method.
func (s *Scope[C, P]) Send(msg any) {
	s.update(&componentUpdate[P]{kind: updateMessage, msgs: []any{msg}})
}

// SendBatch delivers msgs in order and renders at most once.
func (s *Scope[C, P]) SendBatch(msgs ...any) {
	if len(msgs) == 0 {
		return
	}
	s.update(&componentUpdate[P]{kind: updateBatch, msgs: msgs})
}

// Callback returns an event listener function that maps events to
// messages with fn. A nil message is dropped.
func (s *Scope[C, P]) Callback(fn func(host.Event) any) func(host.Event) {
	return func(ev host.Event) {
		if msg := fn(ev); msg != nil {
			s.Send(msg)
		}
	}
}

// BatchCallback is Callback for functions producing several messages.
func (s *Scope[C, P]) BatchCallback(fn func(host.Event) []any) func(host.Event) {
	return func(ev host.Event) {
		s.SendBatch(fn(ev)...)
	}
}

// Destroy implements vdom.Scoped. The component is torn down by the
// scheduler.
func (s *Scope[C, P]) Destroy() {
	s.destroyed = true
	s.sched.PushComponent(scheduler.KindDestroy, &destroyRunnable[C, P]{scope: s})
}

// mountInPlace schedules creation and the first render of the component.
func (s *Scope[C, P]) mountInPlace(factory Factory[C, P], parentEl host.Element, nextSibling *vdom.NodeRef, placeholder vdom.VNode, ref *vdom.NodeRef, props P) {
	if ref == nil {
		ref = vdom.NewNodeRef()
	}
	s.nodeRef = ref
	s.sched.PushComponent(scheduler.KindCreate, &createRunnable[C, P]{
		scope:       s,
		factory:     factory,
		parentEl:    parentEl,
		nextSibling: nextSibling,
		placeholder: placeholder,
		props:       props,
	})
	s.update(&componentUpdate[P]{kind: updateFirst})
}

func (s *Scope[C, P]) update(u *componentUpdate[P]) {
	s.sched.PushComponent(scheduler.KindUpdate, &updateRunnable[C, P]{scope: s, update: u})
}

func typeName[C any]() string {
	return reflect.TypeFor[C]().String()
}

func newError(code, detail string) *errors.Error {
	return errors.New(code).WithDetail(detail)
}
