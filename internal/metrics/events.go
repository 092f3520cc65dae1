package metrics

import (
	"context"

	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// EventMetricsCollector subscribes to economy events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all economy event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemCollected,
		event.ItemSold,
		event.ListingCreated,
		event.ListingSold,
		event.ListingCancelled,
		event.TradeOffered,
		event.TradeResolved,
		event.AutoclickerPurchased,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ItemCollected:
		var p event.ItemCollectedPayloadV1
		if p, err = event.DecodePayload[event.ItemCollectedPayloadV1](evt.Payload); err == nil {
			ItemsCollected.WithLabelValues(p.Rarity, p.Source).Inc()
			CoinsMinted.Add(float64(p.Coins))
		}

	case event.ItemSold:
		var p event.ItemSoldPayloadV1
		if p, err = event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
			CoinsFromSales.Add(float64(p.Coins))
		}

	case event.ListingCreated:
		Listings.WithLabelValues(OutcomeCreated).Inc()

	case event.ListingSold:
		var p event.ListingPayloadV1
		if p, err = event.DecodePayload[event.ListingPayloadV1](evt.Payload); err == nil {
			Listings.WithLabelValues(OutcomeSold).Inc()
			MarketplaceVolume.Add(float64(p.Total))
		}

	case event.ListingCancelled:
		Listings.WithLabelValues(OutcomeCancelled).Inc()

	case event.TradeOffered, event.TradeResolved:
		var p event.TradePayloadV1
		if p, err = event.DecodePayload[event.TradePayloadV1](evt.Payload); err == nil {
			Trades.WithLabelValues(p.Status).Inc()
		}

	case event.AutoclickerPurchased:
		var p event.AutoclickerPurchasedPayloadV1
		if p, err = event.DecodePayload[event.AutoclickerPurchasedPayloadV1](evt.Payload); err == nil {
			AutoclickersPurchased.WithLabelValues(p.AutoclickerID).Inc()
		}
	}

	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	}
	return nil
}
