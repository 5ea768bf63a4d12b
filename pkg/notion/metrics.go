package notion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notive_notion_requests_total",
		Help: "Upstream content API requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notive_notion_request_duration_seconds",
		Help:    "Upstream content API latency by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
