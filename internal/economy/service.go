// Package economy implements every coin and item moving operation.
//
// Each operation runs as exactly one ledger transaction. Every mutating step is
// a conditional statement evaluated by the store together with the write, so two
// racing callers can never both observe the pre-conflict state and succeed.
// Any failed precondition returns before Commit and the deferred rollback
// discards everything the transaction did, including an earlier claim.
package economy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FruitClicker_Go/internal/catalog"
	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/repository"
	"github.com/osse101/FruitClicker_Go/internal/reward"
)

// CollectResult is the outcome of a single click
type CollectResult struct {
	Item    domain.CatalogItem  `json:"item"`
	Holding *domain.ItemHolding `json:"holding"`
	Coins   int                 `json:"coins"`
}

// ProductionResult is the outcome of one autoclicker tick for a player
type ProductionResult struct {
	Clicks  int      `json:"clicks"`
	ItemIDs []string `json:"item_ids"`
	Coins   int      `json:"coins"`
}

// SellResult contains the result of a sell operation
type SellResult struct {
	ItemID      string `json:"item_id"`
	Quantity    int    `json:"quantity"`
	CoinsEarned int    `json:"coins_earned"`
}

// PurchaseResult summarizes a marketplace purchase
type PurchaseResult struct {
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	TotalPaid int    `json:"total_paid"`
}

// Service defines the interface for economy operations
type Service interface {
	CreditItem(ctx context.Context, playerID, itemID string) (*domain.ItemHolding, error)
	Collect(ctx context.Context, playerID string) (*CollectResult, error)
	ProcessAutoclickers(ctx context.Context, playerID string) (*ProductionResult, error)
	SellItem(ctx context.Context, playerID, itemID string, quantity int) (*SellResult, error)

	CreateListing(ctx context.Context, sellerID, itemID string, quantity, pricePerUnit int) (*domain.Listing, error)
	CancelListing(ctx context.Context, listingID, requesterID string) error
	BuyListing(ctx context.Context, buyerID, listingID string) (*PurchaseResult, error)

	PurchaseAutoclicker(ctx context.Context, playerID, autoclickerID string) (*domain.PlayerAutoclicker, error)

	CreateTradeOffer(ctx context.Context, senderID, receiverID string, terms domain.TradeTerms) (*domain.TradeOffer, error)
	AcceptTradeOffer(ctx context.Context, tradeID, receiverID string) error
	RejectTradeOffer(ctx context.Context, tradeID, receiverID string) error
	CancelTradeOffer(ctx context.Context, tradeID, senderID string) error

	ListInventory(ctx context.Context, playerID string) ([]domain.ItemHolding, error)
	ListListings(ctx context.Context) ([]domain.Listing, error)
	ListTradeOffers(ctx context.Context, playerID string) ([]domain.TradeOffer, error)
	ListPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error)
	AutoclickerOwners(ctx context.Context) ([]string, error)
	CatalogItems() []domain.CatalogItem
	CatalogAutoclickers() []domain.Autoclicker
	DropChance(itemID string) float64
}

type service struct {
	repo      repository.Economy
	catalog   *catalog.Catalog
	generator *reward.Generator
	bus       event.Bus
	now       func() time.Time
	newID     func() string
}

// NewService creates a new economy service. bus may be nil.
func NewService(repo repository.Economy, cat *catalog.Catalog, gen *reward.Generator, bus event.Bus) Service {
	return &service{
		repo:      repo,
		catalog:   cat,
		generator: gen,
		bus:       bus,
		now:       defaultNow,
		newID:     uuid.NewString,
	}
}

// defaultNow truncates to milliseconds, the resolution both backends persist
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// publish sends committed-state notifications. Failures never undo the commit.
func (s *service) publish(ctx context.Context, evts ...event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range evts {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

func (s *service) beginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgStoreFailure, "step", "begin", "error", err)
		return nil, wrapStore(ErrMsgBeginTransactionFailed, err)
	}
	return tx, nil
}

func (s *service) commit(ctx context.Context, tx repository.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgStoreFailure, "step", "commit", "error", err)
		return wrapStore(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

func (s *service) CatalogItems() []domain.CatalogItem {
	return s.catalog.Items()
}

func (s *service) CatalogAutoclickers() []domain.Autoclicker {
	return s.catalog.Autoclickers()
}

// DropChance is the probability that one click yields itemID
func (s *service) DropChance(itemID string) float64 {
	return s.generator.Probability(itemID)
}
