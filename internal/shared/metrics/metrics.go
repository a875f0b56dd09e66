package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Completion API calls, labelled by provider and outcome
	LLMRequestsTotal   *prometheus.CounterVec
	LLMRequestDuration *prometheus.HistogramVec

	StoreOperationsTotal *prometheus.CounterVec

	ChatTurnsTotal *prometheus.CounterVec
)

func init() {
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ezcare",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ezcare",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ezcare",
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Total completion API calls",
		},
		[]string{"provider", "status"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ezcare",
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Completion API latency in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	StoreOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ezcare",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total store operations",
		},
		[]string{"backend", "operation", "table", "status"},
	)

	ChatTurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ezcare",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Chat turns by script branch",
		},
		[]string{"branch"},
	)

	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(LLMRequestsTotal)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(StoreOperationsTotal)
	prometheus.MustRegister(ChatTurnsTotal)
}

func RecordHTTPRequest(method, route, status string, durationSec float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSec)
}

func RecordLLMRequest(provider string, err error, durationSec float64) {
	if provider == "" {
		provider = "unknown"
	}
	LLMRequestsTotal.WithLabelValues(provider, statusLabel(err)).Inc()
	LLMRequestDuration.WithLabelValues(provider).Observe(durationSec)
}

func RecordStoreOperation(backend, operation, table string, err error) {
	StoreOperationsTotal.WithLabelValues(backend, operation, table, statusLabel(err)).Inc()
}

func RecordChatTurn(branch string) {
	ChatTurnsTotal.WithLabelValues(branch).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
