package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/taskcall/taskcall/ext"
	"github.com/taskcall/taskcall/task"
)

// Compile-time interface checks.
var (
	_ ext.Extension      = (*MetricsExtension)(nil)
	_ ext.TaskRegistered = (*MetricsExtension)(nil)
	_ ext.CallStarted    = (*MetricsExtension)(nil)
	_ ext.CallCompleted  = (*MetricsExtension)(nil)
	_ ext.CallFailed     = (*MetricsExtension)(nil)
	_ ext.ParseFailed    = (*MetricsExtension)(nil)
	_ ext.TaskNotFound   = (*MetricsExtension)(nil)
)

// MetricsExtension records dispatch lifecycle metrics via Prometheus.
// Register it as a taskcall extension to automatically track registered
// tasks, per-task call counts and outcomes, call durations, parse
// failures, and lookup misses.
type MetricsExtension struct {
	TasksRegistered prometheus.Counter
	CallsStarted    *prometheus.CounterVec
	CallsCompleted  *prometheus.CounterVec
	CallsFailed     *prometheus.CounterVec
	CallDuration    prometheus.Histogram
	ParseFailures   prometheus.Counter
	TasksNotFound   prometheus.Counter
}

// NewMetricsExtension creates a MetricsExtension registered on the default
// Prometheus registerer.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMetricsExtensionWithRegisterer creates a MetricsExtension with the
// provided registerer. Use prometheus.NewRegistry() in tests to avoid
// duplicate registration on the global registry.
func NewMetricsExtensionWithRegisterer(reg prometheus.Registerer) *MetricsExtension {
	m := &MetricsExtension{
		TasksRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskcall_tasks_registered_total",
			Help: "Total number of task registrations.",
		}),
		CallsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskcall_calls_started_total",
			Help: "Total number of dispatched calls by task.",
		}, []string{"task"}),
		CallsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskcall_calls_completed_total",
			Help: "Total number of successful calls by task.",
		}, []string{"task"}),
		CallsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskcall_calls_failed_total",
			Help: "Total number of failed calls by task.",
		}, []string{"task"}),
		CallDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskcall_call_duration_seconds",
			Help:    "Duration of completed calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskcall_parse_failures_total",
			Help: "Total number of invocation strings that failed to parse.",
		}),
		TasksNotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskcall_tasks_not_found_total",
			Help: "Total number of lookups for unregistered task names.",
		}),
	}

	reg.MustRegister(
		m.TasksRegistered,
		m.CallsStarted,
		m.CallsCompleted,
		m.CallsFailed,
		m.CallDuration,
		m.ParseFailures,
		m.TasksNotFound,
	)

	return m
}

// Name implements ext.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnTaskRegistered implements ext.TaskRegistered.
func (m *MetricsExtension) OnTaskRegistered(_ context.Context, _ task.Descriptor) error {
	m.TasksRegistered.Inc()
	return nil
}

// OnCallStarted implements ext.CallStarted.
func (m *MetricsExtension) OnCallStarted(_ context.Context, c *task.Call) error {
	m.CallsStarted.WithLabelValues(c.Name).Inc()
	return nil
}

// OnCallCompleted implements ext.CallCompleted.
func (m *MetricsExtension) OnCallCompleted(_ context.Context, c *task.Call, elapsed time.Duration) error {
	m.CallsCompleted.WithLabelValues(c.Name).Inc()
	m.CallDuration.Observe(elapsed.Seconds())
	return nil
}

// OnCallFailed implements ext.CallFailed.
func (m *MetricsExtension) OnCallFailed(_ context.Context, c *task.Call, _ error) error {
	m.CallsFailed.WithLabelValues(c.Name).Inc()
	return nil
}

// OnParseFailed implements ext.ParseFailed.
func (m *MetricsExtension) OnParseFailed(_ context.Context, _ string, _ error) error {
	m.ParseFailures.Inc()
	return nil
}

// OnTaskNotFound implements ext.TaskNotFound.
func (m *MetricsExtension) OnTaskNotFound(_ context.Context, _ string) error {
	m.TasksNotFound.Inc()
	return nil
}
