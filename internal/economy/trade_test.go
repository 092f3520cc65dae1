package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
)

func appleForBanana() domain.TradeTerms {
	return domain.TradeTerms{
		SenderItemID:     "apple",
		SenderQuantity:   1,
		ReceiverItemID:   "banana",
		ReceiverQuantity: 1,
	}
}

func TestTrade_AcceptSwapsItems(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createPlayer(t, "alice", 0)
	b := env.createPlayer(t, "bob", 0)
	env.give(t, a, "apple", 1)
	env.give(t, b, "banana", 1)

	offer, err := env.svc.CreateTradeOffer(ctx, a, b, appleForBanana())
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusPending, offer.Status)

	// ACT
	err = env.svc.AcceptTradeOffer(ctx, offer.ID, b)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 1, env.quantity(t, a, "banana"))
	assert.Equal(t, 0, env.quantity(t, a, "apple"))
	assert.Equal(t, 1, env.quantity(t, b, "apple"))
	assert.Equal(t, 0, env.quantity(t, b, "banana"))
	assert.Equal(t, domain.TradeStatusAccepted, env.tradeStatus(t, a, offer.ID))

	resolved := env.events.ofType(event.TradeResolved)
	require.Len(t, resolved, 1)
	assert.Equal(t, "accepted", resolved[0].Payload.(event.TradePayloadV1).Status)

	// Re-accepting loses the claim
	err = env.svc.AcceptTradeOffer(ctx, offer.ID, b)
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	assert.Equal(t, 1, env.quantity(t, b, "apple"))
}

func TestTrade_AcceptByNonReceiverStaysPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createPlayer(t, "alice", 0)
	b := env.createPlayer(t, "bob", 0)
	env.give(t, a, "apple", 1)
	env.give(t, b, "banana", 1)
	offer, err := env.svc.CreateTradeOffer(ctx, a, b, appleForBanana())
	require.NoError(t, err)

	err = env.svc.AcceptTradeOffer(ctx, offer.ID, a)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, domain.TradeStatusPending, env.tradeStatus(t, a, offer.ID))
	assert.Equal(t, 1, env.quantity(t, a, "apple"))
}

func TestTrade_AcceptWithShortLegStaysPending(t *testing.T) {
	tests := []struct {
		name    string
		giveA   int
		giveB   int
		wantMsg string
	}{
		{"sender short", 0, 1, domain.ErrMsgSenderInsufficient},
		{"receiver short", 1, 0, domain.ErrMsgReceiverShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			env := newTestEnv(t)
			ctx := context.Background()
			a := env.createPlayer(t, "alice", 0)
			b := env.createPlayer(t, "bob", 0)
			if tt.giveA > 0 {
				env.give(t, a, "apple", tt.giveA)
			}
			if tt.giveB > 0 {
				env.give(t, b, "banana", tt.giveB)
			}
			offer, err := env.svc.CreateTradeOffer(ctx, a, b, appleForBanana())
			require.NoError(t, err)

			// ACT
			err = env.svc.AcceptTradeOffer(ctx, offer.ID, b)

			// ASSERT
			assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, domain.TradeStatusPending, env.tradeStatus(t, a, offer.ID))
			assert.Equal(t, tt.giveA, env.quantity(t, a, "apple"))
			assert.Equal(t, tt.giveB, env.quantity(t, b, "banana"))
		})
	}
}

func TestTrade_Reject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createPlayer(t, "alice", 0)
	b := env.createPlayer(t, "bob", 0)
	offer, err := env.svc.CreateTradeOffer(ctx, a, b, appleForBanana())
	require.NoError(t, err)

	assert.ErrorIs(t, env.svc.RejectTradeOffer(ctx, offer.ID, a), domain.ErrForbidden)
	require.NoError(t, env.svc.RejectTradeOffer(ctx, offer.ID, b))
	assert.Equal(t, domain.TradeStatusRejected, env.tradeStatus(t, b, offer.ID))

	assert.ErrorIs(t, env.svc.RejectTradeOffer(ctx, offer.ID, b), domain.ErrAlreadyResolved)
	assert.ErrorIs(t, env.svc.AcceptTradeOffer(ctx, offer.ID, b), domain.ErrAlreadyResolved)
}

func TestTrade_CancelBySenderOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createPlayer(t, "alice", 0)
	b := env.createPlayer(t, "bob", 0)
	offer, err := env.svc.CreateTradeOffer(ctx, a, b, appleForBanana())
	require.NoError(t, err)

	assert.ErrorIs(t, env.svc.CancelTradeOffer(ctx, offer.ID, b), domain.ErrForbidden)
	assert.Equal(t, domain.TradeStatusPending, env.tradeStatus(t, a, offer.ID))

	require.NoError(t, env.svc.CancelTradeOffer(ctx, offer.ID, a))
	assert.Equal(t, domain.TradeStatusCancelled, env.tradeStatus(t, a, offer.ID))
}

func TestTrade_ResolvedOfferForbiddenToStrangers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createPlayer(t, "alice", 0)
	b := env.createPlayer(t, "bob", 0)
	c := env.createPlayer(t, "carol", 0)
	offer, err := env.svc.CreateTradeOffer(ctx, a, b, appleForBanana())
	require.NoError(t, err)
	require.NoError(t, env.svc.RejectTradeOffer(ctx, offer.ID, b))

	assert.ErrorIs(t, env.svc.AcceptTradeOffer(ctx, offer.ID, c), domain.ErrForbidden)
}

func TestTrade_NotFound(t *testing.T) {
	env := newTestEnv(t)
	b := env.createPlayer(t, "bob", 0)

	err := env.svc.AcceptTradeOffer(context.Background(), "missing", b)

	assert.ErrorIs(t, err, domain.ErrTradeNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTradeOffer_Validation(t *testing.T) {
	env := newTestEnv(t)
	a := env.createPlayer(t, "alice", 0)
	b := env.createPlayer(t, "bob", 0)

	zeroQty := appleForBanana()
	zeroQty.ReceiverQuantity = 0
	unknownItem := appleForBanana()
	unknownItem.SenderItemID = "durian"

	tests := []struct {
		name     string
		sender   string
		receiver string
		terms    domain.TradeTerms
		wantErr  error
	}{
		{"self trade", a, a, appleForBanana(), domain.ErrInvalidInput},
		{"missing receiver", a, "", appleForBanana(), domain.ErrInvalidInput},
		{"zero quantity", a, b, zeroQty, domain.ErrInvalidInput},
		{"unknown item", a, b, unknownItem, domain.ErrItemNotFound},
		{"unknown receiver", a, "ghost", appleForBanana(), domain.ErrPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.CreateTradeOffer(context.Background(), tt.sender, tt.receiver, tt.terms)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	offers, err := env.svc.ListTradeOffers(context.Background(), a)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestCreateTradeOffer_DoesNotEscrow(t *testing.T) {
	env := newTestEnv(t)
	a := env.createPlayer(t, "alice", 0)
	b := env.createPlayer(t, "bob", 0)
	env.give(t, a, "apple", 1)

	_, err := env.svc.CreateTradeOffer(context.Background(), a, b, appleForBanana())

	require.NoError(t, err)
	assert.Equal(t, 1, env.quantity(t, a, "apple"))
	assert.Len(t, env.events.ofType(event.TradeOffered), 1)
}
