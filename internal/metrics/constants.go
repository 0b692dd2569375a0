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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameBlocksOpened   = "blocks_opened_total"
	MetricNameItemsGranted   = "items_granted_total"
	MetricNameItemsForfeited = "items_forfeited_total"
	MetricNameItemsSold      = "items_sold_total"
	MetricNameItemsBought    = "items_bought_total"
	MetricNameConversions    = "conversions_total"
	MetricNameRebirths       = "rebirths_total"
	MetricNameMoneyEarned    = "money_earned_total"
	MetricNameMoneySpent     = "money_spent_total"
	MetricNamePlayerBalance  = "player_balance"
	MetricNameIncomeRate     = "income_per_second"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextBlocksOpened   = "Total number of lucky blocks opened"
	HelpTextItemsGranted   = "Total number of items granted to storage"
	HelpTextItemsForfeited = "Total number of items lost to a full storage"
	HelpTextItemsSold      = "Total number of items sold"
	HelpTextItemsBought    = "Total number of shop purchases"
	HelpTextConversions    = "Total number of completed conversions"
	HelpTextRebirths       = "Total number of completed rebirths"
	HelpTextMoneyEarned    = "Total money credited to the player"
	HelpTextMoneySpent     = "Total money debited from the player"
	HelpTextPlayerBalance  = "Current player balance"
	HelpTextIncomeRate     = "Current passive income per second"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTier   = "tier"
	LabelRarity = "rarity"
	LabelItem   = "item"
	LabelKind   = "kind"
	LabelSource = "source"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload decode failed"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
