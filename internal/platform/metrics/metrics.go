package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gamevault",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamevault",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gamevault",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	bridgeInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamevault",
			Subsystem: "bridge",
			Name:      "invocations_total",
			Help:      "Total number of bridge operation invocations.",
		},
		[]string{"operation", "outcome"},
	)

	bridgeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gamevault",
			Subsystem: "bridge",
			Name:      "invocation_duration_seconds",
			Help:      "Duration of bridge operation invocations.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~16s
		},
		[]string{"operation"},
	)

	steamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamevault",
			Subsystem: "steam",
			Name:      "requests_total",
			Help:      "Total number of upstream Steam requests.",
		},
		[]string{"endpoint", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		bridgeInvocations,
		bridgeDuration,
		steamRequests,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// RecordBridgeInvocation records one bridge call. outcome is "ok" or an error code.
func RecordBridgeInvocation(operation, outcome string, duration time.Duration) {
	if operation == "" {
		operation = "unknown"
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	bridgeInvocations.WithLabelValues(operation, outcome).Inc()
	bridgeDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordSteamRequest(endpoint string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	steamRequests.WithLabelValues(endpoint, outcome).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// canonicalPath keeps label cardinality bounded: ids are collapsed to ":id".
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for i, p := range parts {
		if looksLikeID(p) {
			parts[i] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}

func looksLikeID(segment string) bool {
	if _, err := strconv.ParseInt(segment, 10, 64); err == nil {
		return true
	}
	return len(segment) == 36 && strings.Count(segment, "-") == 4
}
