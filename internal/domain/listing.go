package domain

import "time"

// Listing is an open marketplace offer. The listed quantity is held in escrow:
// it was debited from the seller's holding when the listing was created.
type Listing struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"seller_id"`
	ItemID       string    `json:"item_id"`
	Quantity     int       `json:"quantity"`
	PricePerUnit int       `json:"price_per_unit"`
	CreatedAt    time.Time `json:"created_at"`
}

// TotalPrice is the number of coins a buyer pays for the whole listing
func (l Listing) TotalPrice() int {
	return l.Quantity * l.PricePerUnit
}
