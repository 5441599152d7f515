// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datastore_reads_total",
			Help: "Total number of key-value store reads",
		},
		[]string{"outcome"}, // hit, miss, corrupt
	)

	StoreWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datastore_writes_total",
			Help: "Total number of key-value store writes",
		},
		[]string{"outcome"}, // ok, quota_exceeded, error
	)

	DefaultsFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datastore_defaults_fetches_total",
			Help: "Total number of static default document fetches",
		},
		[]string{"document", "outcome"}, // profile/jobs, ok/fallback
	)

	DefaultsFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "datastore_defaults_fetch_duration_seconds",
			Help: "Duration of static default document fetches in seconds",
		},
		[]string{"document"},
	)
)
