// Package metrics defines Prometheus metrics for dealradar.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealradar"

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

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the liveness probe is passing (1) or failing (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the readiness probe is passing (1) or failing (0).",
	})
)

// Ingestion metrics.
var (
	MessagesProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_processed_total",
		Help:      "Total number of inbound promotional messages processed.",
	})

	MessageFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "message_failures_total",
		Help:      "Total number of messages that failed processing.",
	})

	CandidatesExtractedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_extracted_total",
		Help:      "Total number of candidate deals extracted from messages.",
	})

	DuplicatesSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicates_skipped_total",
		Help:      "Total number of candidates dropped as duplicates.",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of scheduled source sweeps in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Verification metrics.
var (
	VerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_total",
		Help:      "Total verification attempts by terminal recommendation.",
	}, []string{"recommendation"})

	DealsPersistedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deals_persisted_total",
		Help:      "Total number of deals written to the catalog.",
	})

	DealsDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deals_dropped_total",
		Help:      "Total number of candidates dropped before persistence, by reason.",
	}, []string{"reason"})
)

// Scoring metrics.
var (
	ScoringDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_distribution",
		Help:      "Distribution of computed deal scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})
)

// Official fetch metrics.
var (
	FetchCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_calls_total",
		Help:      "Total cumulative official product page fetches.",
	})

	FetchDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fetch_daily_usage",
		Help:      "Current daily fetch count within the rolling 24-hour window.",
	})

	FetchDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_daily_limit_hits_total",
		Help:      "Total number of times the daily fetch limit was reached.",
	})
)

// Cleanup metrics.
var (
	ExpiredDealsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expired_deals_deleted_total",
		Help:      "Total number of expired deals removed by cleanup.",
	})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of deal notifications sent.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)
