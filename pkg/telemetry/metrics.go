package telemetry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/net/html/atom"

	domerrors "github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
)

// MetricsConfig configures the Prometheus collector.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "domkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collector.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "domkit",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the build metrics. Each Collector registers its metrics
// once, so create one per registry.
type Collector struct {
	builds      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	errors      *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
}

// NewCollector creates and registers the build metrics.
func NewCollector(opts ...MetricsOption) *Collector {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		builds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "builds_total",
			Help:        "Total number of top-level element builds",
			ConstLabels: config.ConstLabels,
		}, []string{"tag", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_duration_seconds",
			Help:        "Element build duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"tag"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_errors_total",
			Help:        "Total number of failed builds by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"tag", "code"}),

		diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "diagnostics_total",
			Help:        "Total number of unrecognized spec keys",
			ConstLabels: config.ConstLabels,
		}, []string{"tag", "key"}),
	}
}

// Metrics creates a collector on the configured registry and returns its
// middleware.
func Metrics(opts ...MetricsOption) build.Middleware {
	return NewCollector(opts...).Middleware()
}

// Middleware times and counts every top-level build.
func (c *Collector) Middleware() build.Middleware {
	return func(next build.BuildFunc) build.BuildFunc {
		return func(ctx context.Context, tag string, spec build.Spec) (build.Result, error) {
			label := knownName(tag)
			start := time.Now()

			res, err := next(ctx, tag, spec)

			c.duration.WithLabelValues(label).Observe(time.Since(start).Seconds())
			status := "ok"
			if err != nil {
				status = "error"
				c.errors.WithLabelValues(label, errorCode(err)).Inc()
			}
			c.builds.WithLabelValues(label, status).Inc()
			return res, err
		}
	}
}

// Reporter returns a reporter that counts diagnostics and forwards them
// to next. A nil next only counts.
func (c *Collector) Reporter(next build.Reporter) build.Reporter {
	return &CountingReporter{counter: c.diagnostics, next: next}
}

// CountingReporter counts diagnostics by tag and key.
type CountingReporter struct {
	counter *prometheus.CounterVec
	next    build.Reporter
}

// Report implements build.Reporter.
func (r *CountingReporter) Report(d build.Diagnostic) {
	r.counter.WithLabelValues(knownName(d.Tag), knownName(d.Key)).Inc()
	if r.next != nil {
		r.next.Report(d)
	}
}

// OtherLabel replaces tag and key label values that are not HTML names.
const OtherLabel = "other"

// knownName lower-cases s and keeps it when it is an HTML tag or
// attribute name. Tags and keys come from spec files and request bodies,
// so anything else collapses into OtherLabel.
func knownName(s string) string {
	s = strings.ToLower(s)
	if atom.Lookup([]byte(s)) == 0 {
		return OtherLabel
	}
	return s
}

// errorCode returns the registered code of err, keeping label cardinality
// bounded.
func errorCode(err error) string {
	var de *domerrors.DomError
	if errors.As(err, &de) && de.Code != "" {
		return de.Code
	}
	return "unknown"
}
