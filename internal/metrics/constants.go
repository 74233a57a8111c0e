package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names (internal health server)
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Bot metric names
const (
	MetricNameCommandsTotal           = "discord_commands_total"
	MetricNameResolutionsTotal        = "recnet_resolutions_total"
	MetricNameUpstreamRequestDuration = "recnet_upstream_request_duration_seconds"
	MetricNameFieldsExtractedTotal    = "recnet_fields_extracted_total"
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

// Bot metric help text
const (
	HelpTextCommandsTotal           = "Total number of slash commands received"
	HelpTextResolutionsTotal        = "Total number of username resolutions by outcome"
	HelpTextUpstreamRequestDuration = "Latency of rec.net requests in seconds"
	HelpTextFieldsExtractedTotal    = "Total number of fields scraped from user pages"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelOutcome = "outcome"
	LabelSource  = "source"
	LabelField   = "field"
)

// Upstream source label values
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// StatusError is the status label used when no HTTP response was received
const StatusError = "error"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UpstreamLatencyBuckets covers rec.net calls up to the 20s fallback timeout
var UpstreamLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20}
