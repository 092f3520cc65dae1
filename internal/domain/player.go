package domain

import "time"

// Player is a registered participant in the economy
type Player struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Balance             int       `json:"balance"`
	TotalItemsCollected int       `json:"total_items_collected"`
	CreatedAt           time.Time `json:"created_at"`

	// LastProducedAt is where autoclicker production was last settled.
	// Nil until the player first owns an autoclicker.
	LastProducedAt *time.Time `json:"last_produced_at,omitempty"`
}

// ItemHolding is the quantity of one item owned by one player.
// Holdings are never persisted at zero.
type ItemHolding struct {
	PlayerID      string    `json:"player_id"`
	ItemID        string    `json:"item_id"`
	Quantity      int       `json:"quantity"`
	FirstObtained time.Time `json:"first_obtained"`
}
