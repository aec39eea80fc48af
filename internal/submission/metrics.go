package submission

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Submissions partitioned by terminal outcome
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_submissions_total",
			Help: "Total number of waitlist submissions by outcome",
		},
		[]string{"outcome"},
	)

	// Time spent dispatching to the webhook
	dispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "waitlist_dispatch_duration_seconds",
			Help:    "Webhook dispatch latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
