package djed

import (
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/host/memory"
	"github.com/vango-dev/djed/pkg/scheduler"
)

// recordingTracer remembers the names of started spans.
type recordingTracer struct {
	embedded.Tracer
	names []string
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.names = append(r.names, name)
	return noop.NewTracerProvider().Tracer("test").Start(ctx, name, opts...)
}

func (r *recordingTracer) count(name string) int {
	n := 0
	for _, s := range r.names {
		if s == name {
			n++
		}
	}
	return n
}

type env struct {
	doc    *memory.Document
	root   *memory.Element
	sched  *scheduler.Scheduler
	tracer *recordingTracer
}

func newEnv(t *testing.T) *env {
	t.Helper()
	tracer := &recordingTracer{}
	doc := memory.NewDocument()
	return &env{
		doc:    doc,
		root:   doc.NewElement("body"),
		sched:  scheduler.New(scheduler.WithTracer(tracer)),
		tracer: tracer,
	}
}

func markup(n host.Node) string {
	switch v := n.(type) {
	case *memory.Text:
		return v.Data()
	case *memory.Element:
		var sb strings.Builder
		sb.WriteString("<" + v.TagName())
		attrs := v.Attributes()
		for _, name := range v.AttributeNames() {
			sb.WriteString(" " + name + "=" + attrs[name])
		}
		sb.WriteString(">")
		for _, c := range v.Children() {
			sb.WriteString(markup(c))
		}
		sb.WriteString("</" + v.TagName() + ">")
		return sb.String()
	}
	return "?"
}

func (e *env) html() string {
	var sb strings.Builder
	for _, c := range e.root.Children() {
		sb.WriteString(markup(c))
	}
	return sb.String()
}

// events is a shared lifecycle log.
type events []string

func (e *events) add(s string) { *e = append(*e, s) }

func (e *events) String() string { return strings.Join(*e, ",") }
