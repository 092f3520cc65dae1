package economy

import (
	"context"
	"fmt"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// SellItem converts items into coins at the fixed price of their rarity.
// The items leave the system; the coins are minted.
func (s *service) SellItem(ctx context.Context, playerID, itemID string, quantity int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, "player_id", playerID, "item", itemID, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
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

	debited, err := tx.DebitHolding(ctx, playerID, item.ID, quantity)
	if err != nil {
		return nil, wrapStore(ErrMsgDebitHoldingFailed, err)
	}
	if !debited {
		return nil, fmt.Errorf(ErrMsgSellShortFmt, quantity, item.ID, domain.ErrInsufficientQuantity)
	}

	price, _ := s.catalog.SellPrice(item.ID)
	earned := quantity * price
	if err := tx.CreditBalance(ctx, playerID, earned); err != nil {
		return nil, wrapStore(ErrMsgCreditBalanceFailed, err)
	}

	if err := s.commit(ctx, tx); err != nil {
		return nil, err
	}

	s.publish(ctx, event.New(event.ItemSold, event.ItemSoldPayloadV1{
		PlayerID: playerID,
		ItemID:   item.ID,
		Quantity: quantity,
		Coins:    earned,
	}))

	log.Info(LogMsgItemSold, "player_id", playerID, "item", item.ID, "quantity", quantity, "coins", earned)
	return &SellResult{ItemID: item.ID, Quantity: quantity, CoinsEarned: earned}, nil
}
