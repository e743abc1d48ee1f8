// Package metrics exposes Prometheus instrumentation for the scheduler and
// the reconciler.
//
// A Collector is created explicitly and handed to the scheduler with
// scheduler.WithMetrics. Every recorder is safe to call on a nil *Collector,
// which is how instrumentation is disabled.
//
// Metrics collected:
//   - djed_runnables_total: Counter of executed runnables by queue
//   - djed_runnable_duration_seconds: Histogram of runnable execution time by queue
//   - djed_drains_total: Counter of scheduler run loops
//   - djed_reentrant_starts_total: Counter of Start calls that found the loop active
//   - djed_patches_total: Counter of attribute-like patches applied by op
//   - djed_host_errors_total: Counter of rejected host mutations by op
//   - djed_nodes_created_total: Counter of live nodes created by kind
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "djed").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for runnable duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "djed",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the registered metrics.
type Collector struct {
	runnablesTotal   *prometheus.CounterVec
	runnableDuration *prometheus.HistogramVec
	drainsTotal      prometheus.Counter
	reentrantStarts  prometheus.Counter
	patchesTotal     *prometheus.CounterVec
	hostErrors       *prometheus.CounterVec
	nodesCreated     *prometheus.CounterVec
}

// New registers the metrics with the configured registry.
// It panics if the metrics are already registered there.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		runnablesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "runnables_total",
			Help:        "Total number of scheduler runnables executed",
			ConstLabels: config.ConstLabels,
		}, []string{"queue"}),

		runnableDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "runnable_duration_seconds",
			Help:        "Runnable execution time in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"queue"}),

		drainsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "drains_total",
			Help:        "Total number of scheduler run loops",
			ConstLabels: config.ConstLabels,
		}),

		reentrantStarts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reentrant_starts_total",
			Help:        "Start calls that returned because a run loop was already active",
			ConstLabels: config.ConstLabels,
		}),

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of attribute, value and kind patches applied",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		hostErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "host_errors_total",
			Help:        "Host mutations rejected and skipped",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		nodesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_created_total",
			Help:        "Live nodes created by the reconciler",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}
}

// RecordRunnable records one executed runnable from the named queue.
func (c *Collector) RecordRunnable(queue string, d time.Duration) {
	if c == nil {
		return
	}
	c.runnablesTotal.WithLabelValues(queue).Inc()
	c.runnableDuration.WithLabelValues(queue).Observe(d.Seconds())
}

// RecordDrain records one run loop.
func (c *Collector) RecordDrain() {
	if c == nil {
		return
	}
	c.drainsTotal.Inc()
}

// RecordReentrantStart records a Start call that found the loop active.
func (c *Collector) RecordReentrantStart() {
	if c == nil {
		return
	}
	c.reentrantStarts.Inc()
}

// RecordPatch records one applied patch.
func (c *Collector) RecordPatch(op string) {
	if c == nil {
		return
	}
	c.patchesTotal.WithLabelValues(op).Inc()
}

// RecordHostError records one rejected host mutation.
func (c *Collector) RecordHostError(op string) {
	if c == nil {
		return
	}
	c.hostErrors.WithLabelValues(op).Inc()
}

// RecordNodeCreated records one live node created by the reconciler.
func (c *Collector) RecordNodeCreated(kind string) {
	if c == nil {
		return
	}
	c.nodesCreated.WithLabelValues(kind).Inc()
}
