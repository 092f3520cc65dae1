package economy

import (
	"context"
	"fmt"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// CreateTradeOffer records a pending item-for-item proposal. Nothing is escrowed;
// both legs are re-validated at accept time.
func (s *service) CreateTradeOffer(ctx context.Context, senderID, receiverID string, terms domain.TradeTerms) (*domain.TradeOffer, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateTradeCalled, "player_id", senderID, "receiver_id", receiverID)

	if err := requireID("receiver id", receiverID); err != nil {
		return nil, err
	}
	if senderID == receiverID {
		return nil, fmt.Errorf(ErrMsgSelfTradeFmt, domain.ErrMsgSelfTrade, domain.ErrInvalidInput)
	}
	if err := validateQuantity(terms.SenderQuantity); err != nil {
		return nil, err
	}
	if err := validateQuantity(terms.ReceiverQuantity); err != nil {
		return nil, err
	}
	if _, err := s.lookupItem(terms.SenderItemID); err != nil {
		return nil, err
	}
	if _, err := s.lookupItem(terms.ReceiverItemID); err != nil {
		return nil, err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	for _, id := range []string{senderID, receiverID} {
		if _, err := tx.GetPlayer(ctx, id); err != nil {
			return nil, wrapStore(ErrMsgGetPlayerFailed, err)
		}
	}

	offer := &domain.TradeOffer{
		ID:         s.newID(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		TradeTerms: terms,
		Status:     domain.TradeStatusPending,
		CreatedAt:  s.now(),
	}
	if err := tx.InsertTradeOffer(ctx, offer); err != nil {
		return nil, wrapStore(ErrMsgInsertTradeFailed, err)
	}

	if err := s.commit(ctx, tx); err != nil {
		return nil, err
	}

	s.publish(ctx, tradeEvent(event.TradeOffered, offer))

	log.Info(LogMsgTradeCreated, "trade_id", offer.ID)
	return offer, nil
}

// AcceptTradeOffer claims the offer first, then swaps both legs.
// A receiver mismatch or a short leg rolls the claim back so the offer stays pending.
func (s *service) AcceptTradeOffer(ctx context.Context, tradeID, receiverID string) error {
	return s.respond(ctx, tradeID, receiverID, domain.TradeStatusAccepted, receiverOnly, s.swapLegs)
}

// RejectTradeOffer closes a pending offer without moving anything
func (s *service) RejectTradeOffer(ctx context.Context, tradeID, receiverID string) error {
	return s.respond(ctx, tradeID, receiverID, domain.TradeStatusRejected, receiverOnly, nil)
}

// CancelTradeOffer lets the sender withdraw a pending offer
func (s *service) CancelTradeOffer(ctx context.Context, tradeID, senderID string) error {
	return s.respond(ctx, tradeID, senderID, domain.TradeStatusCancelled, senderOnly, nil)
}

type authorizeFunc func(offer *domain.TradeOffer, actorID string) error

type applyFunc func(ctx context.Context, tx repository.EconomyTx, offer *domain.TradeOffer) error

func receiverOnly(offer *domain.TradeOffer, actorID string) error {
	if offer.ReceiverID != actorID {
		return fmt.Errorf(ErrMsgNotReceiverFmt, domain.ErrMsgNotTradeReceiver, domain.ErrForbidden)
	}
	return nil
}

func senderOnly(offer *domain.TradeOffer, actorID string) error {
	if offer.SenderID != actorID {
		return fmt.Errorf(ErrMsgNotSenderFmt, domain.ErrMsgNotTradeSender, domain.ErrForbidden)
	}
	return nil
}

func (s *service) respond(ctx context.Context, tradeID, actorID string, status domain.TradeStatus, authorize authorizeFunc, apply applyFunc) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRespondTradeCalled, "trade_id", tradeID, "player_id", actorID, "status", status)

	if err := requireID("trade id", tradeID); err != nil {
		return err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	offer, err := tx.ResolveTradeOffer(ctx, tradeID, status, s.now())
	if err != nil {
		return wrapStore(ErrMsgResolveTradeFailed, err)
	}
	if offer == nil {
		return s.claimMissed(ctx, tx, tradeID, actorID, authorize)
	}
	if err := authorize(offer, actorID); err != nil {
		return err
	}
	if apply != nil {
		if err := apply(ctx, tx, offer); err != nil {
			return err
		}
	}

	if err := s.commit(ctx, tx); err != nil {
		return err
	}

	s.publish(ctx, tradeEvent(event.TradeResolved, offer))

	log.Info(LogMsgTradeResolved, "trade_id", tradeID, "status", offer.Status)
	return nil
}

// claimMissed tells an absent offer apart from one a racer already resolved
func (s *service) claimMissed(ctx context.Context, tx repository.EconomyTx, tradeID, actorID string, authorize authorizeFunc) error {
	offer, err := tx.GetTradeOffer(ctx, tradeID)
	if err != nil {
		return wrapStore(ErrMsgGetTradeFailed, err)
	}
	if offer == nil {
		return domain.ErrTradeNotFound
	}
	if err := authorize(offer, actorID); err != nil {
		return err
	}
	return domain.ErrAlreadyResolved
}

type tradeLeg struct {
	from, to string
	itemID   string
	quantity int
	shortMsg string
}

// swapLegs debits both sides before crediting either. Debits run in player id
// order so two accepts touching the same pair of players lock rows consistently.
func (s *service) swapLegs(ctx context.Context, tx repository.EconomyTx, offer *domain.TradeOffer) error {
	legs := []tradeLeg{
		{from: offer.SenderID, to: offer.ReceiverID, itemID: offer.SenderItemID, quantity: offer.SenderQuantity, shortMsg: domain.ErrMsgSenderInsufficient},
		{from: offer.ReceiverID, to: offer.SenderID, itemID: offer.ReceiverItemID, quantity: offer.ReceiverQuantity, shortMsg: domain.ErrMsgReceiverShort},
	}
	if legs[1].from < legs[0].from {
		legs[0], legs[1] = legs[1], legs[0]
	}

	for _, leg := range legs {
		ok, err := tx.DebitHolding(ctx, leg.from, leg.itemID, leg.quantity)
		if err != nil {
			return wrapStore(ErrMsgDebitHoldingFailed, err)
		}
		if !ok {
			return fmt.Errorf(ErrMsgTradeSideShortFmt, leg.shortMsg, domain.ErrInsufficientQuantity)
		}
	}

	at := s.now()
	for _, leg := range legs {
		if _, err := tx.CreditHolding(ctx, leg.to, leg.itemID, leg.quantity, at); err != nil {
			return wrapStore(ErrMsgCreditHoldingFailed, err)
		}
	}
	return nil
}

func tradeEvent(t event.Type, offer *domain.TradeOffer) event.Event {
	return event.New(t, event.TradePayloadV1{
		TradeID:    offer.ID,
		SenderID:   offer.SenderID,
		ReceiverID: offer.ReceiverID,
		Status:     string(offer.Status),
	})
}
