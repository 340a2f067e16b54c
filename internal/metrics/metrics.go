package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auralis_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auralis_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	TurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auralis_turns_total",
			Help: "Chat turns by outcome (ok, error, rejected).",
		},
		[]string{"outcome"},
	)

	NormalizerFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auralis_normalizer_fallbacks_total",
			Help: "Generation outputs replaced by the fallback record.",
		},
	)

	MemoryWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auralis_memory_writes_total",
			Help: "Episodic memory writes by result.",
		},
		[]string{"result"},
	)

	ContextFetchFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auralis_context_fetch_failures_total",
			Help: "Context reads that degraded to defaults, by source.",
		},
		[]string{"source"},
	)

	SessionsEvictedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auralis_sessions_evicted_total",
			Help: "Chat sessions dropped for idleness or by the session cap.",
		},
	)
	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auralis_generation_duration_seconds",
			Help:    "Latency of the generation call.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		TurnsTotal,
		NormalizerFallbacksTotal,
		MemoryWritesTotal,
		ContextFetchFailuresTotal,
		SessionsEvictedTotal,
		GenerationDuration,
	)
}
