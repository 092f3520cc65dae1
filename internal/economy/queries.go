package economy

import (
	"context"
	"fmt"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// Read models run outside any transaction and see committed state only

func (s *service) ListInventory(ctx context.Context, playerID string) ([]domain.ItemHolding, error) {
	holdings, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, readFailed("inventory", err)
	}
	return holdings, nil
}

func (s *service) ListListings(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.repo.GetListings(ctx)
	if err != nil {
		return nil, readFailed("listings", err)
	}
	return listings, nil
}

func (s *service) ListTradeOffers(ctx context.Context, playerID string) ([]domain.TradeOffer, error) {
	offers, err := s.repo.GetTradeOffers(ctx, playerID)
	if err != nil {
		return nil, readFailed("trade offers", err)
	}
	return offers, nil
}

func (s *service) ListPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error) {
	owned, err := s.repo.GetPlayerAutoclickers(ctx, playerID)
	if err != nil {
		return nil, readFailed("autoclickers", err)
	}
	return owned, nil
}

// AutoclickerOwners lists players that own at least one autoclicker
func (s *service) AutoclickerOwners(ctx context.Context) ([]string, error) {
	owners, err := s.repo.GetAutoclickerOwners(ctx)
	if err != nil {
		return nil, readFailed("autoclicker owners", err)
	}
	return owners, nil
}

func readFailed(what string, err error) error {
	return fmt.Errorf(ErrMsgReadModelFailed, what, classify(err))
}
