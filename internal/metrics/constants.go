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

// Review metric names
const (
	MetricNameReviewsProcessed = "reviews_processed_total"
	MetricNameStreakResets     = "streak_resets_total"
	MetricNameRewardsGranted   = "rewards_granted_total"
)

// Garden metric names
const (
	MetricNameItemsPlaced     = "items_placed_total"
	MetricNameItemsWatered    = "items_watered_total"
	MetricNameItemsRemoved    = "items_removed_total"
	MetricNameItemsEvolved    = "items_evolved_total"
	MetricNameItemsDied       = "items_died_total"
	MetricNameSunlightApplied = "sunlight_applied_total"
)

// Shop metric names
const (
	MetricNameItemsBought    = "items_bought_total"
	MetricNameThemesUnlocked = "themes_unlocked_total"
	MetricNameCoinsSpent     = "coins_spent_total"
)

// Persistence metric names
const (
	MetricNameStateSaves         = "state_saves_total"
	MetricNameStateLoadFallbacks = "state_load_fallbacks_total"
	MetricNameStateMigrations    = "state_migrations_total"
)

// Metric label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelKind    = "kind"
	LabelTheme   = "theme"
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

// Review metric help text
const (
	HelpTextReviewsProcessed = "Total number of review outcome events processed"
	HelpTextStreakResets     = "Total number of streak resets caused by incorrect answers"
	HelpTextRewardsGranted   = "Total number of streak reward grants by resource kind"
)

// Garden metric help text
const (
	HelpTextItemsPlaced     = "Total number of items placed on the grid"
	HelpTextItemsWatered    = "Total number of watering actions"
	HelpTextItemsRemoved    = "Total number of items removed from the grid"
	HelpTextItemsEvolved    = "Total number of seed transmutations"
	HelpTextItemsDied       = "Total number of items marked dead"
	HelpTextSunlightApplied = "Total number of sunlight applications"
)

// Shop metric help text
const (
	HelpTextItemsBought    = "Total number of shop purchases by resource kind"
	HelpTextThemesUnlocked = "Total number of theme unlocks"
	HelpTextCoinsSpent     = "Total coins spent in the shop"
)

// Persistence metric help text
const (
	HelpTextStateSaves         = "Total number of state document saves"
	HelpTextStateLoadFallbacks = "Total number of loads that fell back to the default state"
	HelpTextStateMigrations    = "Total number of schema migration steps applied"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
