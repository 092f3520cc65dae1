package domain

import "time"

// Economy policy constants
const (
	// MintReward is the flat coin payout for every collected item, independent of rarity.
	MintReward = 10

	// MaxTransactionQuantity bounds the quantity of a single sell, listing or trade leg.
	MaxTransactionQuantity = 10000

	// MaxPricePerUnit bounds listing prices so quantity*price always fits in an int64.
	MaxPricePerUnit = 1_000_000

	// MaxClicksPerTick caps autoclicker production for one player in one tick.
	MaxClicksPerTick = 1000

	// MaxProductionBacklog bounds how far back one settlement reaches.
	// Production older than this is forfeited.
	MaxProductionBacklog = 10 * time.Minute
)

// Player constraints
const (
	MinUsernameLength = 1
	MaxUsernameLength = 32
)
