package domain

import "time"

// Autoclicker is a purchasable catalog entry that produces clicks over time
type Autoclicker struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Emoji       string `json:"emoji" yaml:"emoji"`
	Price       int    `json:"price" yaml:"price"`
	Rate        int    `json:"clicks_per_second" yaml:"clicks_per_second"`
}

// PlayerAutoclicker is the number of autoclickers of one type a player owns
type PlayerAutoclicker struct {
	PlayerID      string    `json:"player_id"`
	AutoclickerID string    `json:"autoclicker_id"`
	Quantity      int       `json:"quantity"`
	PurchasedAt   time.Time `json:"purchased_at"`
}
