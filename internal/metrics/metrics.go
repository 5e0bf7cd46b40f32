package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the docsite Prometheus collectors on an isolated registry,
// so tests and multiple servers in one process don't collide.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal          *prometheus.CounterVec
	RequestDurationSeconds *prometheus.HistogramVec

	RendersTotal          *prometheus.CounterVec
	RenderDurationSeconds *prometheus.HistogramVec

	CacheLookupsTotal *prometheus.CounterVec
	CachePurgesTotal  prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docsite_http_requests_total",
				Help: "HTTP requests by route pattern, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		RequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docsite_http_request_duration_seconds",
				Help:    "HTTP request latency by route pattern.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		RendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docsite_renders_total",
				Help: "Page renders by kind and result.",
			},
			[]string{"kind", "result"},
		),
		RenderDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docsite_render_duration_seconds",
				Help:    "Page render latency by kind.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"kind"},
		),
		CacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docsite_cache_lookups_total",
				Help: "Rendered page cache lookups by result (hit or miss).",
			},
			[]string{"result"},
		),
		CachePurgesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docsite_cache_purges_total",
				Help: "Number of full cache purges.",
			},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDurationSeconds,
		m.RendersTotal,
		m.RenderDurationSeconds,
		m.CacheLookupsTotal,
		m.CachePurgesTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
