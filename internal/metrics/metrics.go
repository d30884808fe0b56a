package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	store      *prometheus.HistogramVec
	requests   *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rummi",
			Name:      "operations_total",
			Help:      "Tournament operations by name and result.",
		}, []string{"operation", "result"}),
		store: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rummi",
			Name:      "store_duration_seconds",
			Help:      "Latency of tournament store calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend", "method"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rummi",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
	}
	registry.MustRegister(
		m.operations,
		m.store,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Operation counts one tournament operation. result is "ok" or an error class.
func (m *Metrics) Operation(name, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(name, result).Inc()
}

func (m *Metrics) ObserveStore(backend, method string, d time.Duration) {
	if m == nil {
		return
	}
	m.store.WithLabelValues(backend, method).Observe(d.Seconds())
}

func (m *Metrics) Request(method, route, code string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, code).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
