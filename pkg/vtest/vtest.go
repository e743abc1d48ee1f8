package vtest

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/djed/pkg/djed"
	"github.com/vango-dev/djed/pkg/host/memory"
	"github.com/vango-dev/djed/pkg/metrics"
	"github.com/vango-dev/djed/pkg/render"
	"github.com/vango-dev/djed/pkg/scheduler"
)

// Harness is a mounted component with its document and scheduler.
type Harness[C djed.Component[P], P any] struct {
	t testing.TB

	Doc       *memory.Document
	Root      *memory.Element
	Scheduler *scheduler.Scheduler
	Scope     *djed.Scope[C, P]
	// Registry holds the harness's metrics.
	Registry *prometheus.Registry
}

// Mount renders a component built by factory with props into a fresh
// document. The first render has completed when Mount returns.
func Mount[C djed.Component[P], P any](t testing.TB, factory djed.Factory[C, P], props P) *Harness[C, P] {
	t.Helper()
	reg := prometheus.NewRegistry()
	sched := scheduler.New(scheduler.WithMetrics(metrics.New(metrics.WithRegistry(reg))))
	doc := memory.NewDocument()
	root := doc.NewElement("body")
	scope := djed.NewApp(sched, factory).MountToElement(root, props)
	return &Harness[C, P]{
		t:         t,
		Doc:       doc,
		Root:      root,
		Scheduler: sched,
		Scope:     scope,
		Registry:  reg,
	}
}

// Component returns the mounted component and fails the test if it was
// destroyed.
func (h *Harness[C, P]) Component() C {
	h.t.Helper()
	c, ok := h.Scope.Component()
	if !ok {
		h.t.Fatal("component is not mounted")
	}
	return c
}

// HTML renders the root's content, including live form state.
func (h *Harness[C, P]) HTML() string {
	html, err := render.NewRenderer(render.Config{LiveState: true, SkipRoot: true}).RenderToString(h.Root)
	if err != nil {
		h.t.Fatalf("render: %v", err)
	}
	return html
}

// Send delivers msg to the component.
func (h *Harness[C, P]) Send(msg any) {
	h.Scope.Send(msg)
}

// Journal returns the mutations recorded since the last reset.
func (h *Harness[C, P]) Journal() []memory.Mutation {
	return h.Doc.Journal()
}

// ResetJournal clears the mutation journal.
func (h *Harness[C, P]) ResetJournal() {
	h.Doc.ResetJournal()
}

// Destroy tears the component down.
func (h *Harness[C, P]) Destroy() {
	h.Scope.Destroy()
}

// ExpectContains asserts that the rendered output contains expected.
func (h *Harness[C, P]) ExpectContains(expected string) {
	h.t.Helper()
	html := h.HTML()
	if !strings.Contains(html, expected) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain
// unexpected.
func (h *Harness[C, P]) ExpectNotContains(unexpected string) {
	h.t.Helper()
	html := h.HTML()
	if strings.Contains(html, unexpected) {
		h.t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the output contains a tag.
func (h *Harness[C, P]) ExpectElement(tag string) {
	h.t.Helper()
	if h.Find(tag) == nil {
		h.t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(h.HTML(), 500))
	}
}

// ExpectAttribute asserts that some element carries attr=value.
func (h *Harness[C, P]) ExpectAttribute(attr, value string) {
	h.t.Helper()
	found := walk(h.Root, func(el *memory.Element) bool {
		v, ok := el.Attribute(attr)
		return ok && v == value
	})
	if found == nil {
		h.t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(h.HTML(), 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
