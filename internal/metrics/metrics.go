package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SearchRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mallmap_search_requests_total",
		Help: "Total number of mall list requests with a non-empty query",
	})
	SearchEmptyResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mallmap_search_empty_results_total",
		Help: "Total number of searches that matched no mall",
	})
	DetailNotFoundTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mallmap_detail_not_found_total",
		Help: "Total number of detail lookups for unknown ids",
	})
	ClicksRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mallmap_clicks_recorded_total",
		Help: "Total clicks accepted for tracking",
	})
	ClicksSuppressedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mallmap_clicks_suppressed_total",
		Help: "Total clicks ignored by the cooldown window",
	})
	ClicksPersistedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mallmap_clicks_persisted_total",
		Help: "Total click events written to the database",
	})
	ClickBatchFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mallmap_click_batch_failures_total",
		Help: "Total click batches dropped after exhausting retries",
	})
	CatalogReloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mallmap_catalog_reloads_total",
		Help: "Catalog reload attempts by status",
	}, []string{"status"})
	CatalogMalls = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mallmap_catalog_malls",
		Help: "Number of malls in the active catalog snapshot",
	})
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchEmptyResultsTotal)
	prometheus.MustRegister(DetailNotFoundTotal)
	prometheus.MustRegister(ClicksRecordedTotal)
	prometheus.MustRegister(ClicksSuppressedTotal)
	prometheus.MustRegister(ClicksPersistedTotal)
	prometheus.MustRegister(ClickBatchFailuresTotal)
	prometheus.MustRegister(CatalogReloadsTotal)
	prometheus.MustRegister(CatalogMalls)
}
