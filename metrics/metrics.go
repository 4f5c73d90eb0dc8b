package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airdrop_checks_total",
		Help: "Number of eligibility checks by address scheme and result",
	}, []string{"scheme", "result"})

	datasetState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "airdrop_dataset_state",
		Help: "Dataset loader state, 1 for the current state",
	}, []string{"state"})

	datasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "airdrop_dataset_records",
		Help: "Number of allocation records loaded",
	})

	datasetAliases = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "airdrop_dataset_aliases",
		Help: "Number of address aliases loaded",
	})

	loadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "airdrop_dataset_load_duration_seconds",
		Help:    "Time spent fetching and parsing the dataset documents",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airdrop_rate_limited_total",
		Help: "Number of check requests rejected by the rate limiter",
	})
)

var loaderStates = []string{"uninitialized", "loading", "ready", "failed"}

// RecordCheck count one eligibility check
func RecordCheck(scheme, result string) {
	if scheme == "" {
		scheme = "none"
	}
	checksTotal.WithLabelValues(scheme, result).Inc()
}

// SetDatasetState mark the current loader state
func SetDatasetState(state string) {
	for _, s := range loaderStates {
		if s == state {
			datasetState.WithLabelValues(s).Set(1)
		} else {
			datasetState.WithLabelValues(s).Set(0)
		}
	}
}

// SetDatasetSize record loaded dataset sizes
func SetDatasetSize(records, aliases int) {
	datasetRecords.Set(float64(records))
	datasetAliases.Set(float64(aliases))
}

// ObserveLoad record one load attempt
func ObserveLoad(duration time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	loadDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordRateLimited count one rejected request
func RecordRateLimited() {
	rateLimited.Inc()
}

// Handler prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}
