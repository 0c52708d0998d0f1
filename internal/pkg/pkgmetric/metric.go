package pkgmetric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Render modes observed by RenderDuration.
const (
	ModePage    = "page"
	ModeRegions = "regions"
)

// Config configures the metrics.
type Config struct {
	// Namespace prefixes every metric name (default: "corpuseditor").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the registry metrics are registered on and gathered from.
	// Default: a new prometheus.Registry
	Registry *prometheus.Registry
}

// Option configures the metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics records page navigations and rendering.
type Metrics struct {
	registry       *prometheus.Registry
	navigations    *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
}

// New registers the metrics.
func New(opts ...Option) *Metrics {
	cfg := Config{
		Namespace: "corpuseditor",
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		registry: cfg.Registry,

		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "navigations_total",
			Help:      "Total number of page navigations by route, controller and redirect",
		}, []string{"route", "controller", "redirected"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Page and region rendering duration in seconds",
			Buckets:   cfg.Buckets,
		}, []string{"route", "mode"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "render_errors_total",
			Help:      "Total number of failed page renders by route",
		}, []string{"route"}),
	}
}

// Navigation counts a resolved navigation.
func (m *Metrics) Navigation(route, controller string, redirected bool) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(route, controller, strconv.FormatBool(redirected)).Inc()
}

// RenderDuration observes how long rendering a route took.
func (m *Metrics) RenderDuration(route, mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(route, mode).Observe(d.Seconds())
}

// RenderError counts a failed render.
func (m *Metrics) RenderError(route string) {
	if m == nil {
		return
	}
	m.renderErrors.WithLabelValues(route).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
