package domain

import "time"

// TradeStatus is the lifecycle state of a trade offer
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusRejected  TradeStatus = "rejected"
	TradeStatusCancelled TradeStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed
func (s TradeStatus) IsTerminal() bool {
	return s != TradeStatusPending
}

// TradeTerms are the two legs of an item-for-item exchange
type TradeTerms struct {
	SenderItemID     string `json:"sender_item_id"`
	SenderQuantity   int    `json:"sender_quantity"`
	ReceiverItemID   string `json:"receiver_item_id"`
	ReceiverQuantity int    `json:"receiver_quantity"`
}

// TradeOffer is a peer-to-peer proposal. Nothing is escrowed at creation;
// both sides are re-validated when the receiver accepts.
type TradeOffer struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	TradeTerms
	Status      TradeStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	RespondedAt *time.Time  `json:"responded_at,omitempty"`
}
