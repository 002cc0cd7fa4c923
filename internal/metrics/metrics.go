// Package metrics defines Prometheus metrics for carwatch.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carwatch"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Scoring metrics.
var (
	ScoringListingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scoring_listings_total",
		Help:      "Total number of listings processed by scoring runs, by outcome.",
	}, []string{"outcome"}) // scored, insufficient, invalid, failed

	ScoringRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_run_duration_seconds",
		Help:      "Duration of scoring runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ScoringDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_distribution",
		Help:      "Distribution of computed deal scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})

	CohortLevelUsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scoring_cohort_level_total",
		Help:      "Total number of scores by the cohort fallback level used.",
	}, []string{"level"})
)

// Ingestion metrics.
var (
	UpsertListingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upsert_listings_total",
		Help:      "Total number of listing upserts, by result.",
	}, []string{"result"}) // inserted, updated

	DeactivatedListingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deactivated_listings_total",
		Help:      "Total number of listings marked inactive.",
	})
)

// Health gauges.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the process is live.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the database is reachable.",
	})
)

// Scheduler gauges, unix timestamps of the next planned run per job.
var (
	SchedulerNextScoringTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_scoring_timestamp",
		Help:      "Unix timestamp of the next scheduled scoring run.",
	})

	SchedulerNextDeactivateTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_deactivate_timestamp",
		Help:      "Unix timestamp of the next scheduled deactivation run.",
	})
)
