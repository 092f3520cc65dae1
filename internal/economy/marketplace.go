package economy

import (
	"context"
	"fmt"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// CreateListing moves quantity from the seller's holding into a new listing.
// The escrowed items are not visible in the holding until the listing resolves.
func (s *service) CreateListing(ctx context.Context, sellerID, itemID string, quantity, pricePerUnit int) (*domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateListingCalled, "player_id", sellerID, "item", itemID, "quantity", quantity, "price", pricePerUnit)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(pricePerUnit); err != nil {
		return nil, err
	}
	item, err := s.lookupItem(itemID)
	if err != nil {
		return nil, err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	debited, err := tx.DebitHolding(ctx, sellerID, item.ID, quantity)
	if err != nil {
		return nil, wrapStore(ErrMsgDebitHoldingFailed, err)
	}
	if !debited {
		return nil, fmt.Errorf(ErrMsgListShortFmt, quantity, item.ID, domain.ErrInsufficientInventory)
	}

	listing := &domain.Listing{
		ID:           s.newID(),
		SellerID:     sellerID,
		ItemID:       item.ID,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		CreatedAt:    s.now(),
	}
	if err := tx.InsertListing(ctx, listing); err != nil {
		return nil, wrapStore(ErrMsgInsertListingFailed, err)
	}

	if err := s.commit(ctx, tx); err != nil {
		return nil, err
	}

	s.publish(ctx, listingEvent(event.ListingCreated, listing, ""))

	log.Info(LogMsgListingCreated, "listing_id", listing.ID, "player_id", sellerID)
	return listing, nil
}

// CancelListing returns escrowed items to the seller.
// Ownership is checked on the row returned by the claiming delete, so a
// concurrent buy cannot slip in between check and delete.
func (s *service) CancelListing(ctx context.Context, listingID, requesterID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCancelListingCalled, "listing_id", listingID, "player_id", requesterID)

	if err := requireID("listing id", listingID); err != nil {
		return err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.DeleteListing(ctx, listingID)
	if err != nil {
		return wrapStore(ErrMsgDeleteListingFailed, err)
	}
	if listing == nil {
		return domain.ErrListingNotFound
	}
	if listing.SellerID != requesterID {
		return fmt.Errorf(ErrMsgNotSellerFmt, domain.ErrMsgNotListingSeller, domain.ErrForbidden)
	}

	if _, err := tx.CreditHolding(ctx, listing.SellerID, listing.ItemID, listing.Quantity, s.now()); err != nil {
		return wrapStore(ErrMsgCreditHoldingFailed, err)
	}

	if err := s.commit(ctx, tx); err != nil {
		return err
	}

	s.publish(ctx, listingEvent(event.ListingCancelled, listing, ""))

	log.Info(LogMsgListingCancelled, "listing_id", listingID)
	return nil
}

// BuyListing claims a listing by deleting it, then pays the seller.
// If the buyer cannot pay, the rollback restores the listing.
func (s *service) BuyListing(ctx context.Context, buyerID, listingID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyListingCalled, "listing_id", listingID, "player_id", buyerID)

	if err := requireID("listing id", listingID); err != nil {
		return nil, err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.DeleteListing(ctx, listingID)
	if err != nil {
		return nil, wrapStore(ErrMsgDeleteListingFailed, err)
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}
	if listing.SellerID == buyerID {
		return nil, fmt.Errorf(ErrMsgSelfPurchaseFmt, domain.ErrMsgSelfPurchase, domain.ErrForbidden)
	}

	total := listing.TotalPrice()
	if err := s.debit(ctx, tx, buyerID, total, ErrMsgBuyListingShortFmt); err != nil {
		return nil, err
	}
	if err := tx.CreditBalance(ctx, listing.SellerID, total); err != nil {
		return nil, wrapStore(ErrMsgCreditBalanceFailed, err)
	}
	if _, err := tx.CreditHolding(ctx, buyerID, listing.ItemID, listing.Quantity, s.now()); err != nil {
		return nil, wrapStore(ErrMsgCreditHoldingFailed, err)
	}

	if err := s.commit(ctx, tx); err != nil {
		return nil, err
	}

	s.publish(ctx, listingEvent(event.ListingSold, listing, buyerID))

	log.Info(LogMsgListingBought, "listing_id", listingID, "player_id", buyerID, "total", total)
	return &PurchaseResult{
		ListingID: listing.ID,
		SellerID:  listing.SellerID,
		ItemID:    listing.ItemID,
		Quantity:  listing.Quantity,
		TotalPaid: total,
	}, nil
}

// debit takes coins conditionally. A missed condition on an unknown player is NotFound, not a funds failure.
func (s *service) debit(ctx context.Context, tx repository.EconomyTx, playerID string, amount int, shortFmt string) error {
	ok, err := tx.DebitBalance(ctx, playerID, amount)
	if err != nil {
		return wrapStore(ErrMsgDebitBalanceFailed, err)
	}
	if ok {
		return nil
	}
	if _, err := tx.GetPlayer(ctx, playerID); err != nil {
		return wrapStore(ErrMsgGetPlayerFailed, err)
	}
	return fmt.Errorf(shortFmt, amount, domain.ErrInsufficientFunds)
}

func listingEvent(t event.Type, l *domain.Listing, buyerID string) event.Event {
	return event.New(t, event.ListingPayloadV1{
		ListingID: l.ID,
		SellerID:  l.SellerID,
		BuyerID:   buyerID,
		ItemID:    l.ItemID,
		Quantity:  l.Quantity,
		Total:     l.TotalPrice(),
	})
}
