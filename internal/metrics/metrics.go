// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP request metrics. The registerer is injected so
// tests can use their own registry.
type Collector struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pitchside_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status_code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pitchside_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requests, c.latency)
	return c
}

// RecordRequest counts a completed request and observes its latency.
func (c *Collector) RecordRequest(method string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.latency.Observe(duration.Seconds())
}

// Handler returns the Prometheus exposition endpoint for the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
