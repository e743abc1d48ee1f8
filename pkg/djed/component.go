package djed

import (
	"reflect"

	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/vdom"
)

// Component is the behavior of a mounted component with properties P.
type Component[P any] interface {
	// Change receives new properties from the parent and reports whether
	// the component should render again.
	Change(props P) bool
	// View describes the component's current UI.
	View() vdom.VNode
}

// Updater is implemented by components that handle messages.
type Updater interface {
	// Update applies msg and reports whether the component should render.
	Update(msg any) bool
}

// RenderedHook is implemented by components that act after their view was
// applied to the live tree.
type RenderedHook interface {
	Rendered(firstRender bool)
}

// Destroyer is implemented by components that release resources when they
// are removed.
type Destroyer interface {
	Destroy()
}

// Factory builds a component from its properties and scope.
type Factory[C Component[P], P any] func(props P, scope *Scope[C, P]) C

// Child returns a virtual node that mounts a C with props, or updates the
// existing C at the same position. ref, when non-nil, follows the child's
// first live node.
func Child[C Component[P], P any](factory Factory[C, P], props P, ref *vdom.NodeRef, key string) *vdom.VComp {
	return vdom.NewComp(reflect.TypeFor[C](), &mountable[C, P]{factory: factory, props: props}, ref, key)
}

// mountable carries a component's properties until it is applied.
type mountable[C Component[P], P any] struct {
	factory Factory[C, P]
	props   P
}

func (m *mountable[C, P]) Copy() vdom.Mountable {
	return &mountable[C, P]{factory: m.factory, props: m.props}
}

func (m *mountable[C, P]) Mount(ref *vdom.NodeRef, parent vdom.Scope, parentEl host.Element, nextSibling *vdom.NodeRef) vdom.Scoped {
	if parent == nil || parent.Scheduler() == nil {
		panic(newError("E208", reflect.TypeFor[C]().String()))
	}
	scope := newScope[C, P](parent.Scheduler(), parent)
	var placeholder vdom.VNode
	if node := ref.Get(); node != nil {
		placeholder = vdom.NewRef(node)
	}
	scope.mountInPlace(m.factory, parentEl, nextSibling, placeholder, ref, m.props)
	return scope
}

func (m *mountable[C, P]) Reuse(scoped vdom.Scoped, nextSibling *vdom.NodeRef) {
	scope := scoped.(*Scope[C, P])
	scope.update(&componentUpdate[P]{kind: updateProperties, props: m.props, nextSibling: nextSibling})
}
