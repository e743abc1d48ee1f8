package vdom

import (
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/djed/internal/errors"
	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/host/memory"
	"github.com/vango-dev/djed/pkg/metrics"
	"github.com/vango-dev/djed/pkg/scheduler"
)

type testScope struct {
	sched *scheduler.Scheduler
}

func (s *testScope) Scheduler() *scheduler.Scheduler { return s.sched }
func (s *testScope) Parent() Scope                   { return nil }

// fixture is a document with a mounted root element and an instrumented
// scope.
type fixture struct {
	doc   *memory.Document
	root  *memory.Element
	scope *testScope
	reg   *prometheus.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := prometheus.NewRegistry()
	sched := scheduler.New(scheduler.WithMetrics(metrics.New(metrics.WithRegistry(reg))))
	doc := memory.NewDocument()
	return &fixture{
		doc:   doc,
		root:  doc.NewElement("main"),
		scope: &testScope{sched: sched},
		reg:   reg,
	}
}

// apply renders node against ancestor into the root and returns the
// mutations it caused.
func (f *fixture) apply(node, ancestor VNode) []memory.Mutation {
	f.doc.ResetJournal()
	node.Apply(f.scope, f.root, NewNodeRef(), ancestor)
	return f.doc.Journal()
}

// counter sums a counter family, optionally restricted to one label value.
func (f *fixture) counter(t *testing.T, name, label string) float64 {
	t.Helper()
	families, err := f.reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if label != "" {
				match := false
				for _, lp := range m.GetLabel() {
					if lp.GetValue() == label {
						match = true
					}
				}
				if !match {
					continue
				}
			}
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}

// markup serializes a memory subtree compactly for assertions.
func markup(n host.Node) string {
	switch v := n.(type) {
	case *memory.Text:
		return v.Data()
	case *memory.Element:
		s := "<" + v.TagName()
		attrs := v.Attributes()
		for _, name := range v.AttributeNames() {
			s += " " + name + "=" + attrs[name]
		}
		s += ">"
		for _, c := range v.Children() {
			s += markup(c)
		}
		return s + "</" + v.TagName() + ">"
	}
	return "?"
}

func children(el *memory.Element) string {
	s := ""
	for _, c := range el.Children() {
		s += markup(c)
	}
	return s
}

func expectPanicCode(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %s", code)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if got := errors.Code(err); got != code {
			t.Fatalf("panic code = %q, want %q (%v)", got, code, err)
		}
	}()
	fn()
}

// fakeScoped is a mounted component stand-in.
type fakeScoped struct {
	ref       *NodeRef
	destroyed int
	reused    []*NodeRef
}

func (s *fakeScoped) Destroy()          { s.destroyed++ }
func (s *fakeScoped) RootVNode() VNode  { return nil }
func (s *fakeScoped) NodeRef() *NodeRef { return s.ref }

// fakeProps mounts fakeScoped instances and records the calls it gets.
type fakeProps struct {
	mounted *fakeScoped
	copies  int
}

func (p *fakeProps) Copy() Mountable {
	p.copies++
	return &fakeProps{}
}

func (p *fakeProps) Mount(ref *NodeRef, parent Scope, parentEl host.Element, next *NodeRef) Scoped {
	p.mounted = &fakeScoped{ref: ref}
	return p.mounted
}

func (p *fakeProps) Reuse(scope Scoped, next *NodeRef) {
	s := scope.(*fakeScoped)
	s.reused = append(s.reused, next)
}

func typeOf[T any]() reflect.Type { return reflect.TypeFor[T]() }
