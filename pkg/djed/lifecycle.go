package djed

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/scheduler"
	"github.com/vango-dev/djed/pkg/vdom"
)

// componentState is the live state of a mounted component.
type componentState[C Component[P], P any] struct {
	parentEl    host.Element
	nextSibling *vdom.NodeRef
	component   C

	// placeholder holds the component's position until the first render.
	placeholder vdom.VNode
	lastRoot    vdom.VNode
	// newRoot is a computed view waiting for its render runnable.
	newRoot     vdom.VNode
	hasRendered bool

	pendingUpdates []*updateRunnable[C, P]
}

type updateKind uint8

const (
	updateFirst updateKind = iota
	updateMessage
	updateBatch
	updateProperties
)

func (k updateKind) String() string {
	switch k {
	case updateFirst:
		return "first"
	case updateMessage:
		return "message"
	case updateBatch:
		return "batch"
	case updateProperties:
		return "properties"
	default:
		return "unknown"
	}
}

type componentUpdate[P any] struct {
	kind        updateKind
	msgs        []any
	props       P
	nextSibling *vdom.NodeRef
}

type createRunnable[C Component[P], P any] struct {
	scope       *Scope[C, P]
	factory     Factory[C, P]
	parentEl    host.Element
	nextSibling *vdom.NodeRef
	placeholder vdom.VNode
	props       P
}

func (r *createRunnable[C, P]) Run() {
	if r.scope.destroyed {
		if r.placeholder != nil {
			r.placeholder.Detach(r.scope, r.parentEl)
		}
		r.scope.nodeRef.Set(nil)
		return
	}
	r.scope.state = &componentState[C, P]{
		parentEl:    r.parentEl,
		nextSibling: r.nextSibling,
		placeholder: r.placeholder,
		component:   r.factory(r.props, r.scope),
	}
	r.scope.logger.Debug("component created")
}

type updateRunnable[C Component[P], P any] struct {
	scope  *Scope[C, P]
	update *componentUpdate[P]
}

func (r *updateRunnable[C, P]) Run() {
	s := r.scope
	state := s.state
	if state == nil {
		if r.update.kind != updateFirst {
			s.logger.Debug("update for destroyed component ignored", "update", r.update.kind.String())
		}
		return
	}
	// Updates wait for a pending render. Until the first render they also
	// wait for the first update, which may still be queued behind them when
	// the factory sent messages to its own scope.
	if state.newRoot != nil || (!state.hasRendered && r.update.kind != updateFirst) {
		state.pendingUpdates = append(state.pendingUpdates, r)
		return
	}

	var shouldRender bool
	switch r.update.kind {
	case updateFirst:
		shouldRender = true
	case updateMessage, updateBatch:
		u, ok := any(state.component).(Updater)
		if !ok {
			s.logger.Warn("message sent to component without Update", "messages", len(r.update.msgs))
			return
		}
		for _, msg := range r.update.msgs {
			if u.Update(msg) {
				shouldRender = true
			}
		}
	case updateProperties:
		state.nextSibling = r.update.nextSibling
		shouldRender = state.component.Change(r.update.props)
	}
	if !shouldRender {
		return
	}

	root := state.component.View()
	if root == nil {
		// A component always occupies a position in its parent.
		root = vdom.NewList()
	}
	state.newRoot = root
	s.sched.PushComponent(scheduler.KindRender, &renderRunnable[C, P]{
		scope:       s,
		firstRender: r.update.kind == updateFirst,
	})
}

type renderRunnable[C Component[P], P any] struct {
	scope       *Scope[C, P]
	firstRender bool
}

func (r *renderRunnable[C, P]) Run() {
	s := r.scope
	state := s.state
	if state == nil {
		return
	}
	if !r.firstRender && !state.hasRendered {
		state.newRoot = nil
		return
	}
	newRoot := state.newRoot
	if newRoot == nil {
		return
	}
	state.newRoot = nil

	_, span := s.sched.Tracer().Start(context.Background(), "component.render")
	span.SetAttributes(
		attribute.String("djed.component", typeName[C]()),
		attribute.Bool("djed.first_render", r.firstRender),
	)
	defer func() {
		if rec := recover(); rec != nil {
			span.SetStatus(codes.Error, fmt.Sprint(rec))
			span.End()
			panic(rec)
		}
		span.End()
	}()

	ancestor := state.lastRoot
	if ancestor == nil {
		ancestor = state.placeholder
		state.placeholder = nil
	}
	ref := newRoot.Apply(s, state.parentEl, state.nextSibling, ancestor)
	s.nodeRef.Link(ref)
	state.lastRoot = newRoot

	if hook, ok := any(state.component).(RenderedHook); ok {
		hook.Rendered(r.firstRender)
	}
	state.hasRendered = true

	pending := state.pendingUpdates
	state.pendingUpdates = nil
	for _, u := range pending {
		s.sched.PushComponent(scheduler.KindUpdate, u)
	}
}

type destroyRunnable[C Component[P], P any] struct {
	scope *Scope[C, P]
}

func (r *destroyRunnable[C, P]) Run() {
	s := r.scope
	state := s.state
	if state == nil {
		return
	}
	s.state = nil

	if d, ok := any(state.component).(Destroyer); ok {
		d.Destroy()
	}
	switch {
	case state.lastRoot != nil:
		state.lastRoot.Detach(s, state.parentEl)
	case state.placeholder != nil:
		// Destroyed before the first render.
		state.placeholder.Detach(s, state.parentEl)
	}
	s.nodeRef.Set(nil)
	s.logger.Debug("component destroyed")
}
