// Package metrics registers the Prometheus collectors for the aggregator
// and the relay.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	SourceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodwell_source_requests_total",
			Help: "Content source calls by outcome",
		},
		[]string{"source", "outcome"},
	)

	SourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodwell_source_duration_seconds",
			Help:    "Duration of content source calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodwell_refresh_total",
			Help: "Recommendation refreshes by trigger",
		},
		[]string{"trigger"},
	)

	StaleResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodwell_stale_results_total",
			Help: "Source results discarded because a newer refresh had started",
		},
		[]string{"source"},
	)

	DroppedJobs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodwell_refresh_jobs_dropped_total",
			Help: "Refresh jobs dropped because the worker queue was full",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodwell_active_sessions",
			Help: "Sessions held by the session registry",
		},
	)

	RelayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodwell_relay_requests_total",
			Help: "Relay search requests by response status",
		},
		[]string{"status"},
	)
)

// RecordSource records one content source call.
func RecordSource(source string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	SourceRequests.WithLabelValues(source, outcome).Inc()
	SourceDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

func RecordRelay(status int) {
	RelayRequests.WithLabelValues(strconv.Itoa(status)).Inc()
}
