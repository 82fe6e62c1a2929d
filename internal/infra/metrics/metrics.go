// Package metrics exposes Prometheus collectors for the HTTP surface, the
// cache and the search provider.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"shopcompare/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shopcompare"

type Metrics struct {
	gatherer prometheus.Gatherer

	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	providerFallback *prometheus.CounterVec
	dealsRefreshed   prometheus.Counter
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Cache lookups by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),
		providerFallback: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_fallbacks_total",
				Help:      "Requests answered with a degraded result after a provider failure",
			},
			[]string{"resource"},
		),
		dealsRefreshed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deals_refreshed_total",
				Help:      "Deals written by refreshes",
			},
		),
		providerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_requests_total",
				Help:      "Outbound search provider requests",
			},
			[]string{"code", "method"},
		),
		providerLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Outbound search provider latency",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 15},
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(
		m.requestCounter,
		m.requestLatency,
		m.cacheLookups,
		m.providerFallback,
		m.dealsRefreshed,
		m.providerRequests,
		m.providerLatency,
	)
	return m
}

var _ shared.CacheObserver = (*Metrics)(nil)

func (m *Metrics) CacheLookup(resource string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(resource, outcome).Inc()
}

func (m *Metrics) DealsRefreshed(count int) {
	m.dealsRefreshed.Add(float64(count))
}

func (m *Metrics) ProviderFallback(resource string) {
	m.providerFallback.WithLabelValues(resource).Inc()
}

// InstrumentProvider wraps the transport used for search provider calls.
func (m *Metrics) InstrumentProvider(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(m.providerRequests,
		promhttp.InstrumentRoundTripperDuration(m.providerLatency, next))
}

// Middleware records every request under its route template, so /api/products/:id
// is one series.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestCounter.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Noop satisfies shared.CacheObserver where metrics are not wired.
type Noop struct{}

func (Noop) CacheLookup(string, bool) {}
func (Noop) DealsRefreshed(int)       {}
func (Noop) ProviderFallback(string)  {}
