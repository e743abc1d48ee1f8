package djed

import (
	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/scheduler"
)

// App mounts a root component of type C.
type App[C Component[P], P any] struct {
	sched   *scheduler.Scheduler
	factory Factory[C, P]
}

// NewApp creates an application that mounts components built by factory
// on sched. A nil sched gets a fresh scheduler with default options.
func NewApp[C Component[P], P any](sched *scheduler.Scheduler, factory Factory[C, P]) *App[C, P] {
	if sched == nil {
		sched = scheduler.New()
	}
	return &App[C, P]{sched: sched, factory: factory}
}

// Scheduler returns the application's scheduler.
func (a *App[C, P]) Scheduler() *scheduler.Scheduler { return a.sched }

// MountToElement removes every child of el and mounts the root component
// into it. The component is rendered before MountToElement returns unless
// it is called from inside a running scheduler loop.
func (a *App[C, P]) MountToElement(el host.Element, props P) *Scope[C, P] {
	clearElement(el)
	scope := newScope[C, P](a.sched, nil)
	scope.mountInPlace(a.factory, el, nil, nil, nil, props)
	return scope
}

func clearElement(el host.Element) {
	for child := el.FirstChild(); child != nil; child = el.FirstChild() {
		if err := el.RemoveChild(child); err != nil {
			// Avoid spinning on a child the host refuses to remove.
			return
		}
	}
}
