// Package metrics provides Prometheus instrumentation for the API.
//
// Wire it up once when the router is assembled:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", metrics.Handler().ServeHTTP)
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks request latency by method, path, and status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cropconnect",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cropconnect",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks requests currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cropconnect",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// PredictionCacheHits / PredictionCacheMisses track how often an AI
	// price prediction was served from Redis.
	PredictionCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropconnect",
		Subsystem: "advisor",
		Name:      "prediction_cache_hits_total",
		Help:      "Price predictions served from cache.",
	})
	PredictionCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropconnect",
		Subsystem: "advisor",
		Name:      "prediction_cache_misses_total",
		Help:      "Price predictions computed fresh.",
	})
)

// DefaultRegistry is the registry all API metrics live in.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		PredictionCacheHits,
		PredictionCacheMisses,
	)
}

// responseRecorder captures the status code for labelling.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration, total, and in-flight metrics per request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.status)
			RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).
				Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		})
	}
}

// Handler serves the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
}
