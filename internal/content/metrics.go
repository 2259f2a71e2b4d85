package content

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes recorded in FetchTotal.
const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

var (
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_content_fetch_total",
		Help: "Content store fetches by category and outcome",
	}, []string{"category", "outcome"})

	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_content_fetch_duration_seconds",
		Help:    "Content store fetch latency by category",
		Buckets: prometheus.DefBuckets,
	}, []string{"category"})
)

func observeFetch(category, outcome string, start time.Time) {
	FetchTotal.WithLabelValues(category, outcome).Inc()
	FetchDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
}
