package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Sync metric names
const (
	MetricNameLogsSynced   = "delivery_logs_synced_total"
	MetricNameLogsFailed   = "delivery_logs_failed_total"
	MetricNameSyncRuns     = "sync_runs_total"
	MetricNameSyncDuration = "sync_run_duration_seconds"
)

// Raid metric names
const (
	MetricNameDamageDealt    = "raid_damage_dealt_total"
	MetricNameRaidsCompleted = "raids_completed_total"
	MetricNameRewardsIssued  = "raid_rewards_issued_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Sync metric help text
const (
	HelpTextLogsSynced   = "Total number of delivery log rows synced"
	HelpTextLogsFailed   = "Total number of delivery log rows that failed validation or persistence"
	HelpTextSyncRuns     = "Total number of sync runs by result"
	HelpTextSyncDuration = "Sync run duration in seconds"
)

// Raid metric help text
const (
	HelpTextDamageDealt    = "Total boss HP deducted across all raids"
	HelpTextRaidsCompleted = "Total number of boss raids driven to completion"
	HelpTextRewardsIssued  = "Total number of raid rewards issued"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelDistrict = "district"
	LabelResult   = "result"
	LabelType     = "type"
)

// Label values for sync run results
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
