package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Sync Metrics
var (
	LogsSynced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLogsSynced,
			Help: HelpTextLogsSynced,
		},
	)

	LogsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLogsFailed,
			Help: HelpTextLogsFailed,
		},
	)

	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncRuns,
			Help: HelpTextSyncRuns,
		},
		[]string{LabelResult},
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSyncDuration,
			Help:    HelpTextSyncDuration,
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Raid Metrics
var (
	DamageDealt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDamageDealt,
			Help: HelpTextDamageDealt,
		},
		[]string{LabelDistrict},
	)

	RaidsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRaidsCompleted,
			Help: HelpTextRaidsCompleted,
		},
		[]string{LabelDistrict},
	)

	RewardsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsIssued,
			Help: HelpTextRewardsIssued,
		},
		[]string{LabelType},
	)
)
