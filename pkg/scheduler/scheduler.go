package scheduler

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/djed/pkg/metrics"
)

const defaultTracerName = "djed/scheduler"

// Runnable is a deferred unit of work.
type Runnable interface {
	Run()
}

// RunnableFunc adapts a function to Runnable.
type RunnableFunc func()

// Run implements Runnable.
func (f RunnableFunc) Run() { f() }

// Kind selects the component queue a runnable is pushed to.
type Kind uint8

const (
	KindDestroy Kind = iota
	KindCreate
	KindUpdate
	KindRender
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindDestroy:
		return "destroy"
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// queueMain labels runnables pushed with Push.
const queueMain = "main"

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger shared by the scheduler and everything
// scheduled on it.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records runnable counts and durations in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Scheduler) {
		s.metrics = c
	}
}

// WithTracer sets the tracer used for drain spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Scheduler) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// Scheduler orders lifecycle runnables. Create one per execution context
// and pass it to every scope.
type Scheduler struct {
	// running guards against nested run loops.
	running bool

	destroy fifo
	create  fifo
	update  fifo
	render  lifo
	main    fifo

	logger  *slog.Logger
	log     *slog.Logger
	metrics *metrics.Collector
	tracer  trace.Tracer
}

// New creates an empty scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		logger: slog.Default(),
		tracer: otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.logger.With("component", "scheduler")
	return s
}

// Logger returns the shared logger. Callers add their own component
// attribute.
func (s *Scheduler) Logger() *slog.Logger {
	return s.logger
}

// Tracer returns the tracer for spans of scheduled work.
func (s *Scheduler) Tracer() trace.Tracer {
	return s.tracer
}

// Metrics returns the collector, which may be nil.
func (s *Scheduler) Metrics() *metrics.Collector {
	return s.metrics
}

// PushComponent enqueues r into the queue for kind and starts the loop.
func (s *Scheduler) PushComponent(kind Kind, r Runnable) {
	switch kind {
	case KindDestroy:
		s.destroy.push(task{r, kind.String()})
	case KindCreate:
		s.create.push(task{r, kind.String()})
	case KindUpdate:
		s.update.push(task{r, kind.String()})
	case KindRender:
		s.render.push(task{r, kind.String()})
	default:
		s.log.Error("unknown runnable kind, pushing to main queue", "kind", uint8(kind))
		s.main.push(task{r, queueMain})
	}
	s.Start()
}

// Push enqueues a non-component runnable and starts the loop.
func (s *Scheduler) Push(r Runnable) {
	s.main.push(task{r, queueMain})
	s.Start()
}

// Running reports whether a run loop is active.
func (s *Scheduler) Running() bool {
	return s.running
}

// Pending returns the number of queued runnables.
func (s *Scheduler) Pending() int {
	return s.destroy.len() + s.create.len() + s.update.len() + s.render.len() + s.main.len()
}

// Start drains every queue unless a run loop is already active, in which
// case it returns immediately and the active loop picks up new work.
// A panicking runnable aborts the loop; the lock is released and the panic
// propagates to the caller.
func (s *Scheduler) Start() {
	if s.running {
		s.metrics.RecordReentrantStart()
		return
	}
	s.running = true
	defer func() { s.running = false }()

	_, span := s.tracer.Start(context.Background(), "scheduler.drain")
	defer span.End()

	executed := 0
	for {
		t, ok := s.next()
		if !ok {
			break
		}
		start := time.Now()
		t.r.Run()
		s.metrics.RecordRunnable(t.queue, time.Since(start))
		executed++
	}

	span.SetAttributes(attribute.Int("djed.runnables", executed))
	s.metrics.RecordDrain()
	if executed > 0 {
		s.log.Debug("scheduler drained", "runnables", executed)
	}
}

// next pops the highest-priority runnable.
func (s *Scheduler) next() (task, bool) {
	if t, ok := s.destroy.pop(); ok {
		return t, true
	}
	if t, ok := s.create.pop(); ok {
		return t, true
	}
	if t, ok := s.update.pop(); ok {
		return t, true
	}
	if t, ok := s.render.pop(); ok {
		return t, true
	}
	return s.main.pop()
}
