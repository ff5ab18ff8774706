package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the collectors of one Server on its own registry.
type metrics struct {
	registry   *prometheus.Registry
	searches   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	expansions *prometheus.HistogramVec
	streams    prometheus.Gauge
	cacheHits  prometheus.Counter
	throttled  prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	f := promauto.With(reg)

	return &metrics{
		registry: reg,
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathviz_searches_total",
			Help: "Served searches by algorithm, endpoint, outcome and source (computed or cache)",
		}, []string{"algorithm", "endpoint", "outcome", "source"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathviz_search_duration_seconds",
			Help:    "Wall time of computed searches in seconds, excluding stream delays and cache hits",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"algorithm"}),
		expansions: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathviz_search_expansions",
			Help:    "Vertices expanded per computed search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"algorithm"}),
		streams: f.NewGauge(prometheus.GaugeOpts{
			Name: "pathviz_active_streams",
			Help: "Open websocket search streams",
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "pathviz_search_cache_hits_total",
			Help: "Searches answered from the result cache",
		}),
		throttled: f.NewCounter(prometheus.CounterOpts{
			Name: "pathviz_requests_throttled_total",
			Help: "API requests rejected by the rate limiter",
		}),
	}
}
