package generate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generation_requests_submitted_total",
		Help: "Generation requests accepted into the queue.",
	})
	requestsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generation_requests_completed_total",
		Help: "Generation requests that produced a question set.",
	})
	requestsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generation_requests_failed_total",
		Help: "Generation requests that ended in failure.",
	})
	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "generation_duration_seconds",
		Help:    "Wall time of the full generation pipeline per request.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)
