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

// Review Metrics
var (
	ReviewsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReviewsProcessed,
			Help: HelpTextReviewsProcessed,
		},
		[]string{LabelOutcome},
	)

	StreakResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreakResets,
			Help: HelpTextStreakResets,
		},
	)

	RewardsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsGranted,
			Help: HelpTextRewardsGranted,
		},
		[]string{LabelKind},
	)
)

// Garden Metrics
var (
	ItemsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPlaced,
			Help: HelpTextItemsPlaced,
		},
		[]string{LabelKind},
	)

	ItemsWatered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsWatered,
			Help: HelpTextItemsWatered,
		},
	)

	ItemsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
		[]string{LabelKind},
	)

	ItemsEvolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEvolved,
			Help: HelpTextItemsEvolved,
		},
		[]string{LabelKind},
	)

	ItemsDied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDied,
			Help: HelpTextItemsDied,
		},
		[]string{LabelKind},
	)

	SunlightApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSunlightApplied,
			Help: HelpTextSunlightApplied,
		},
	)
)

// Shop Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelKind},
	)

	ThemesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameThemesUnlocked,
			Help: HelpTextThemesUnlocked,
		},
		[]string{LabelTheme},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)
)

// Persistence Metrics
var (
	StateSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStateSaves,
			Help: HelpTextStateSaves,
		},
	)

	StateLoadFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStateLoadFallbacks,
			Help: HelpTextStateLoadFallbacks,
		},
	)

	StateMigrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStateMigrations,
			Help: HelpTextStateMigrations,
		},
	)
)
