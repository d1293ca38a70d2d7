// Package metrics holds the Prometheus collectors for the gateway.
// Collectors are package-level; RegisterMetrics exposes them on a registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	obserrors "github.com/emomoto/auto-recruiter/internal/observability/errors"
)

// Result labels.
const (
	ResultSuccess         = "success"
	ResultFailure         = "failure"
	ResultError           = "error"
	ResultAuthenticated   = "authenticated"
	ResultUnauthenticated = "unauthenticated"
)

const namespace = "recruiter"

// LoginAttempts counts POST /login outcomes.
var LoginAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Login attempts by result (success, failure, error).",
	},
	[]string{"result"},
)

// SessionResolutions counts Gate decisions on protected requests.
var SessionResolutions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Session resolutions by result (authenticated, unauthenticated, error).",
	},
	[]string{"result"},
)

// SessionsSwept counts expired sessions removed by the background sweeper.
var SessionsSwept = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_swept_total",
		Help:      "Expired in-memory sessions removed by the sweeper.",
	},
)

// ServerFaults counts internal errors by component and innermost error type.
var ServerFaults = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "server_faults_total",
		Help:      "Internal errors by component and error class.",
	},
	[]string{"component", "error_class"},
)

// RealtimeConnections is the number of currently connected realtime clients.
var RealtimeConnections = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "realtime",
		Name:      "connections",
		Help:      "Currently connected realtime clients.",
	},
)

// RealtimeDisconnects counts realtime disconnections by reason.
var RealtimeDisconnects = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "realtime",
		Name:      "disconnects_total",
		Help:      "Realtime disconnections by reason.",
	},
	[]string{"reason"},
)

// RealtimeEvents counts server-to-client events by name and outcome (sent, dropped).
var RealtimeEvents = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "realtime",
		Name:      "events_total",
		Help:      "Realtime events by name and outcome.",
	},
	[]string{"event", "outcome"},
)

// HTTPRequestDuration observes request latency by method, route pattern and status.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// RegisterMetrics registers every gateway collector with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		LoginAttempts,
		SessionResolutions,
		SessionsSwept,
		ServerFaults,
		RealtimeConnections,
		RealtimeDisconnects,
		RealtimeEvents,
		HTTPRequestDuration,
	)
}

// RecordLogin increments the login counter.
func RecordLogin(result string) {
	LoginAttempts.WithLabelValues(result).Inc()
}

// RecordResolution increments the session resolution counter.
func RecordResolution(result string) {
	SessionResolutions.WithLabelValues(result).Inc()
}

// RecordFault increments the fault counter, classifying err by its innermost type.
func RecordFault(component string, err error) {
	ServerFaults.WithLabelValues(component, obserrors.Classify(err)).Inc()
}

// RecordHTTPRequest observes one finished request.
func RecordHTTPRequest(method, route, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
