package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitClicker_Go/internal/event"
)

func TestEventMetricsCollector_ItemCollected(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	before := testutil.ToFloat64(ItemsCollected.WithLabelValues("legendary", "click"))
	mintedBefore := testutil.ToFloat64(CoinsMinted)

	err := bus.Publish(context.Background(), event.New(event.ItemCollected, event.ItemCollectedPayloadV1{
		PlayerID: "p1", ItemID: "dragon-fruit", Rarity: "legendary", Coins: 10, Source: "click",
	}))

	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(ItemsCollected.WithLabelValues("legendary", "click")))
	assert.Equal(t, mintedBefore+10, testutil.ToFloat64(CoinsMinted))
}

func TestEventMetricsCollector_ListingSold(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	volumeBefore := testutil.ToFloat64(MarketplaceVolume)
	soldBefore := testutil.ToFloat64(Listings.WithLabelValues(OutcomeSold))

	require.NoError(t, bus.Publish(context.Background(), event.New(event.ListingSold, event.ListingPayloadV1{
		ListingID: "l1", ItemID: "apple", Quantity: 5, Total: 40,
	})))

	assert.Equal(t, volumeBefore+40, testutil.ToFloat64(MarketplaceVolume))
	assert.Equal(t, soldBefore+1, testutil.ToFloat64(Listings.WithLabelValues(OutcomeSold)))
}

func TestEventMetricsCollector_MapPayload(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(Trades.WithLabelValues("rejected"))

	err := collector.HandleEvent(context.Background(), event.New(event.TradeResolved, map[string]interface{}{
		"trade_id": "t1",
		"status":   "rejected",
	}))

	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(Trades.WithLabelValues("rejected")))
}

func TestEventMetricsCollector_BadPayloadCountsError(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.ItemSold)))

	err := collector.HandleEvent(context.Background(), event.New(event.ItemSold, "not a payload"))

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.ItemSold))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/marketplace/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/marketplace/{id}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/marketplace/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/marketplace/{id}", "418")))
}

func TestMiddleware_NoRouteContext(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "200"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "200")))
}
