// Package metrics exposes process wide prometheus collectors
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PagesFetched counts pages pulled from the remote indexer, by record kind
	PagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintpulse_source_pages_fetched_total",
		Help: "Total pages fetched from the indexer, labelled by record kind.",
	}, []string{"kind"})

	// RecordsFetched counts records accumulated from the remote indexer
	RecordsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintpulse_source_records_fetched_total",
		Help: "Total records accumulated from the indexer, labelled by record kind.",
	}, []string{"kind"})

	// FetchErrors counts page fetches that terminated a paging loop
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintpulse_source_fetch_errors_total",
		Help: "Total fetch errors that cut a paging loop short, labelled by record kind.",
	}, []string{"kind"})

	// AggregationDuration observes one full bucketing pass
	AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mintpulse_aggregation_duration_seconds",
		Help:    "Wall time of one aggregation pass from fetched records to series.",
		Buckets: prometheus.DefBuckets,
	})
)
