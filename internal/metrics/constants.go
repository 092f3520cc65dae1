package metrics

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

// Economy metric names
const (
	MetricNameItemsCollected        = "items_collected_total"
	MetricNameItemsSold             = "items_sold_total"
	MetricNameCoinsMinted           = "coins_minted_total"
	MetricNameCoinsFromSales        = "coins_from_sales_total"
	MetricNameMarketplaceVolume     = "marketplace_volume_coins_total"
	MetricNameListings              = "marketplace_listings_total"
	MetricNameTrades                = "trades_total"
	MetricNameAutoclickersPurchased = "autoclickers_purchased_total"
	MetricNameAutoclickerTicks      = "autoclicker_ticks_total"
)

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

// Economy metric help text
const (
	HelpTextItemsCollected        = "Total number of items minted, by rarity and source"
	HelpTextItemsSold             = "Total number of items sold back for coins"
	HelpTextCoinsMinted           = "Total coins minted as collection rewards"
	HelpTextCoinsFromSales        = "Total coins paid out for sold items"
	HelpTextMarketplaceVolume     = "Total coins exchanged through marketplace purchases"
	HelpTextListings              = "Marketplace listing transitions, by outcome"
	HelpTextTrades                = "Trade offer transitions, by status"
	HelpTextAutoclickersPurchased = "Total autoclickers purchased"
	HelpTextAutoclickerTicks      = "Autoclicker production jobs, by result"
)

// Label names
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelItem        = "item"
	LabelRarity      = "rarity"
	LabelSource      = "source"
	LabelOutcome     = "outcome"
	LabelAutoclicker = "autoclicker"
	LabelResult      = "result"
)

// Listing outcomes
const (
	OutcomeCreated   = "created"
	OutcomeSold      = "sold"
	OutcomeCancelled = "cancelled"
)

// Autoclicker tick results
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// PathUnmatched labels requests that did not match any route
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload could not be decoded"
)
