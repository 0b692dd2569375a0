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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	BlocksOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBlocksOpened,
			Help: HelpTextBlocksOpened,
		},
		[]string{LabelTier},
	)

	ItemsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGranted,
			Help: HelpTextItemsGranted,
		},
		[]string{LabelRarity, LabelSource},
	)

	ItemsForfeited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsForfeited,
			Help: HelpTextItemsForfeited,
		},
		[]string{LabelRarity},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	Conversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConversions,
			Help: HelpTextConversions,
		},
		[]string{LabelKind},
	)

	Rebirths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRebirths,
			Help: HelpTextRebirths,
		},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	PlayerBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayerBalance,
			Help: HelpTextPlayerBalance,
		},
	)

	IncomeRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameIncomeRate,
			Help: HelpTextIncomeRate,
		},
	)
)
