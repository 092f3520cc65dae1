// Package event is an in-process publish/subscribe bus for committed economy changes.
// Events are published only after the transaction that caused them has committed.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"`
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Economy event types
const (
	ItemCollected        Type = "item.collected"
	ItemSold             Type = "item.sold"
	ListingCreated       Type = "listing.created"
	ListingSold          Type = "listing.sold"
	ListingCancelled     Type = "listing.cancelled"
	TradeOffered         Type = "trade.offered"
	TradeResolved        Type = "trade.resolved"
	AutoclickerPurchased Type = "autoclicker.purchased"
)

// ItemCollectedPayloadV1 is published for each minted item, by click or autoclicker
type ItemCollectedPayloadV1 struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
	Rarity   string `json:"rarity"`
	Coins    int    `json:"coins"`
	Source   string `json:"source"`
}

// ItemSoldPayloadV1 is published when items are sold back for coins
type ItemSoldPayloadV1 struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Coins    int    `json:"coins"`
}

// ListingPayloadV1 describes a listing lifecycle change
type ListingPayloadV1 struct {
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerID   string `json:"buyer_id,omitempty"`
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Total     int    `json:"total"`
}

// TradePayloadV1 describes a trade offer lifecycle change
type TradePayloadV1 struct {
	TradeID    string `json:"trade_id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Status     string `json:"status"`
}

// AutoclickerPurchasedPayloadV1 is published when a player buys an autoclicker
type AutoclickerPurchasedPayloadV1 struct {
	PlayerID      string `json:"player_id"`
	AutoclickerID string `json:"autoclicker_id"`
	Price         int    `json:"price"`
	Owned         int    `json:"owned"`
}

// New wraps a payload in a versioned event
func New(eventType Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
