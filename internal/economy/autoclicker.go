package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// PurchaseAutoclicker charges the catalog price on every purchase, first or repeat.
// Production owed so far is settled first, at the old rate.
func (s *service) PurchaseAutoclicker(ctx context.Context, playerID, autoclickerID string) (*domain.PlayerAutoclicker, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseAutoclickerCalled, "player_id", playerID, "autoclicker", autoclickerID)

	def, ok := s.catalog.Autoclicker(autoclickerID)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownAutoclickerFmt, autoclickerID, domain.ErrAutoclickerNotFound)
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	// A concurrent tick that won the clock has already settled the interval
	drawn, err := s.produce(ctx, tx, playerID)
	if err != nil && !errors.Is(err, errClockMoved) {
		return nil, err
	}

	if err := s.debit(ctx, tx, playerID, def.Price, ErrMsgAutoclickerCostFmt); err != nil {
		return nil, err
	}

	owned, err := tx.CreditAutoclicker(ctx, playerID, def.ID, 1, s.now())
	if err != nil {
		return nil, wrapStore(ErrMsgCreditAutoclickerFailed, err)
	}

	if err := s.commit(ctx, tx); err != nil {
		return nil, err
	}

	s.publishProduced(ctx, playerID, drawn)
	s.publish(ctx, event.New(event.AutoclickerPurchased, event.AutoclickerPurchasedPayloadV1{
		PlayerID:      playerID,
		AutoclickerID: def.ID,
		Price:         def.Price,
		Owned:         owned.Quantity,
	}))

	log.Info(LogMsgAutoclickerPurchased, "player_id", playerID, "autoclicker", def.ID, "owned", owned.Quantity)
	return owned, nil
}
