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

// Economy Metrics
var (
	ItemsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCollected,
			Help: HelpTextItemsCollected,
		},
		[]string{LabelRarity, LabelSource},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	CoinsMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsMinted,
			Help: HelpTextCoinsMinted,
		},
	)

	CoinsFromSales = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsFromSales,
			Help: HelpTextCoinsFromSales,
		},
	)

	MarketplaceVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketplaceVolume,
			Help: HelpTextMarketplaceVolume,
		},
	)

	Listings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameListings,
			Help: HelpTextListings,
		},
		[]string{LabelOutcome},
	)

	Trades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTrades,
			Help: HelpTextTrades,
		},
		[]string{LabelStatus},
	)

	AutoclickersPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutoclickersPurchased,
			Help: HelpTextAutoclickersPurchased,
		},
		[]string{LabelAutoclicker},
	)

	AutoclickerTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutoclickerTicks,
			Help: HelpTextAutoclickerTicks,
		},
		[]string{LabelResult},
	)
)
