package repository

import (
	"context"
	"time"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// Economy defines the interface for ledger persistence.
// Read methods run outside any transaction and see committed state only.
type Economy interface {
	BeginTx(ctx context.Context) (EconomyTx, error)

	GetInventory(ctx context.Context, playerID string) ([]domain.ItemHolding, error)
	GetListings(ctx context.Context) ([]domain.Listing, error)
	GetTradeOffers(ctx context.Context, playerID string) ([]domain.TradeOffer, error)
	GetPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error)
	GetAutoclickerOwners(ctx context.Context) ([]string, error)
}

// EconomyTx defines the interface for ledger transactions.
//
// Every mutating method is a single conditional statement. Methods returning
// a bool report whether the condition held; false means nothing was written.
// Methods returning a pointer return nil when no row matched.
type EconomyTx interface {
	Tx

	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	RecordCollected(ctx context.Context, playerID string, items, coins int) error
	// AdvanceProduction moves the player's production clock from prev to next.
	// A nil prev matches a clock that was never started.
	AdvanceProduction(ctx context.Context, playerID string, prev *time.Time, next time.Time) (bool, error)

	CreditBalance(ctx context.Context, playerID string, amount int) error
	DebitBalance(ctx context.Context, playerID string, amount int) (bool, error)

	CreditHolding(ctx context.Context, playerID, itemID string, quantity int, at time.Time) (*domain.ItemHolding, error)
	DebitHolding(ctx context.Context, playerID, itemID string, quantity int) (bool, error)

	InsertListing(ctx context.Context, listing *domain.Listing) error
	DeleteListing(ctx context.Context, listingID string) (*domain.Listing, error)

	InsertTradeOffer(ctx context.Context, offer *domain.TradeOffer) error
	GetTradeOffer(ctx context.Context, offerID string) (*domain.TradeOffer, error)
	ResolveTradeOffer(ctx context.Context, offerID string, status domain.TradeStatus, at time.Time) (*domain.TradeOffer, error)

	CreditAutoclicker(ctx context.Context, playerID, autoclickerID string, quantity int, at time.Time) (*domain.PlayerAutoclicker, error)
	GetPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error)
}
