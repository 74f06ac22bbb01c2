package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// legacyFallbacks counts listing requests where the legacy store failed
	// and results degraded to native-only content.
	legacyFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogfolio_legacy_store_fallbacks_total",
		Help: "Listing requests that fell back to native-only results after a legacy store failure.",
	})

	// enrichmentFailures counts reads that returned records with null
	// userInfo after an identity lookup failure.
	enrichmentFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogfolio_enrichment_failures_total",
		Help: "Reads that degraded to null userInfo after an identity lookup failure.",
	})
)
