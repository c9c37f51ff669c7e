package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catchup_http_requests_total",
			Help: "Total HTTP requests handled by the gateway",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catchup_http_request_duration_seconds",
			Help:    "Gateway HTTP request duration",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	// Tool metrics
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catchup_tool_calls_total",
			Help: "Total tool invocations",
		},
		[]string{"tool", "status"}, // status: "ok" or "error"
	)

	ToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catchup_tool_call_duration_seconds",
			Help:    "Tool invocation duration, including upstream calls",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"tool"},
	)

	// Upstream chat API metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catchup_upstream_requests_total",
			Help: "Total requests issued to the chat workspace API",
		},
		[]string{"op", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catchup_upstream_request_duration_seconds",
			Help:    "Chat workspace API request latency",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"op"},
	)

	// Aggregation metrics
	SpacesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catchup_spaces_scanned_total",
			Help: "Total spaces scanned by unread-conversation aggregation",
		},
	)

	SpaceScanFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catchup_space_scan_failures_total",
			Help: "Total spaces skipped during aggregation because of errors",
		},
	)

	CredentialReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catchup_credential_reloads_total",
			Help: "Total successful credential file reloads",
		},
	)
)
