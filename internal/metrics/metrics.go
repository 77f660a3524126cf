// Package metrics holds the Prometheus collectors for the summary client and the feed.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WikiRequestsTotal counts summary requests by language and result.
	WikiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikiscroll_wiki_requests_total",
			Help: "Total number of random summary requests",
		},
		[]string{"lang", "result"},
	)

	// WikiRequestDuration measures summary request latency in seconds.
	WikiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wikiscroll_wiki_request_duration_seconds",
			Help:    "Random summary request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"lang"},
	)

	// FeedBatchesTotal counts finished batches by result (ok, error, stale).
	FeedBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikiscroll_feed_batches_total",
			Help: "Total number of feed batches by result",
		},
		[]string{"result"},
	)

	// FeedDuplicatesDropped counts summaries discarded because their ID was already listed.
	FeedDuplicatesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wikiscroll_feed_duplicates_dropped_total",
			Help: "Total number of fetched summaries dropped as duplicates",
		},
	)

	// FeedItems tracks the current length of the feed list.
	FeedItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wikiscroll_feed_items",
			Help: "Number of summaries currently in the feed",
		},
	)
)

// RecordWikiRequest records the outcome and latency of one summary request.
func RecordWikiRequest(lang string, success bool, d time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	WikiRequestsTotal.WithLabelValues(lang, result).Inc()
	WikiRequestDuration.WithLabelValues(lang).Observe(d.Seconds())
}

// RecordBatch records a finished batch.
func RecordBatch(result string) {
	FeedBatchesTotal.WithLabelValues(result).Inc()
}
