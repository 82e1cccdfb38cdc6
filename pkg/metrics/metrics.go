package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend operations
const (
	OpProcess = "process"
	OpExport  = "export"
	OpChat    = "chat"
	OpHealth  = "health"
)

var (
	// BackendCallsTotal counts backend calls.
	// Labels: operation (process/export/chat/health), outcome (success/error)
	BackendCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workspace_backend_calls_total",
			Help: "Total number of calls to the minutes backend by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// BackendCallDuration observes backend latency in seconds
	BackendCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workspace_backend_call_duration_seconds",
			Help:    "Backend call duration in seconds by operation",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"operation"},
	)

	// UploadBytes observes the size of selected recordings
	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "workspace_upload_bytes",
			Help:    "Size of recordings selected in workspaces",
			Buckets: prometheus.ExponentialBuckets(1<<20, 2, 10),
		},
	)

	// ItemEditsTotal counts manual list edits.
	// Labels: kind (discussion/action), action (add/delete)
	ItemEditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workspace_item_edits_total",
			Help: "Total number of manual edits to discussion points and action items",
		},
		[]string{"kind", "action"},
	)

	// BackendReady reports backend reachability (0=unreachable, 1=reachable)
	BackendReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "workspace_backend_ready",
			Help: "Backend reachability as seen by the last health probe",
		},
	)
)

// RecordBackendCall records the outcome and latency of one backend call
func RecordBackendCall(operation string, started time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	BackendCallsTotal.WithLabelValues(operation, outcome).Inc()
	BackendCallDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// RecordItemEdit records a manual add or delete
func RecordItemEdit(kind, action string) {
	ItemEditsTotal.WithLabelValues(kind, action).Inc()
}

// SetBackendReady sets the backend reachability gauge
func SetBackendReady(ready bool) {
	if ready {
		BackendReady.Set(1)
	} else {
		BackendReady.Set(0)
	}
}
