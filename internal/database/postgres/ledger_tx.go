package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// LedgerTx implements repository.EconomyTx
type LedgerTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, wrapTxClosed(err))
	}
	return nil
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	return wrapTxClosed(t.tx.Rollback(ctx))
}

// GetPlayer reads a player inside the transaction
func (t *LedgerTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, playerID)
}

// RecordCollected bumps the collected counter and pays the mint reward
func (t *LedgerTx) RecordCollected(ctx context.Context, playerID string, items, coins int) error {
	if !validID(playerID) {
		return domain.ErrPlayerNotFound
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE players
		SET total_items_collected = total_items_collected + $2,
		    balance = balance + $3
		WHERE player_id = $1`, playerID, items, coins)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordCollected, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// CreditBalance adds coins unconditionally
func (t *LedgerTx) CreditBalance(ctx context.Context, playerID string, amount int) error {
	if !validID(playerID) {
		return domain.ErrPlayerNotFound
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE players SET balance = balance + $2 WHERE player_id = $1`, playerID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// DebitBalance subtracts coins only if the balance covers the amount
func (t *LedgerTx) DebitBalance(ctx context.Context, playerID string, amount int) (bool, error) {
	if !validID(playerID) {
		return false, nil
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE players SET balance = balance - $2
		WHERE player_id = $1 AND balance >= $2`, playerID, amount)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreditHolding upserts a holding, adding quantity to any existing row
func (t *LedgerTx) CreditHolding(ctx context.Context, playerID, itemID string, quantity int, at time.Time) (*domain.ItemHolding, error) {
	if !validID(playerID) {
		return nil, domain.ErrPlayerNotFound
	}
	h, err := scanHolding(t.tx.QueryRow(ctx, `
		INSERT INTO item_holdings (player_id, item_id, quantity, first_obtained)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, item_id)
		DO UPDATE SET quantity = item_holdings.quantity + EXCLUDED.quantity
		RETURNING `+holdingColumns, playerID, itemID, quantity, at))
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreditHolding, err)
	}
	return h, nil
}

// DebitHolding subtracts quantity only if the holding covers it, deleting the row at zero
func (t *LedgerTx) DebitHolding(ctx context.Context, playerID, itemID string, quantity int) (bool, error) {
	if !validID(playerID) {
		return false, nil
	}

	var remaining int
	err := t.tx.QueryRow(ctx, `
		UPDATE item_holdings SET quantity = quantity - $3
		WHERE player_id = $1 AND item_id = $2 AND quantity >= $3
		RETURNING quantity`, playerID, itemID, quantity).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToDebitHolding, err)
	}

	if remaining == 0 {
		// The row is locked by the update above
		if _, err := t.tx.Exec(ctx,
			`DELETE FROM item_holdings WHERE player_id = $1 AND item_id = $2 AND quantity = 0`,
			playerID, itemID); err != nil {
			return false, fmt.Errorf("%s: %w", ErrMsgFailedToPurgeEmptyItem, err)
		}
	}
	return true, nil
}

// InsertListing stores a new listing
func (t *LedgerTx) InsertListing(ctx context.Context, listing *domain.Listing) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO listings (listing_id, seller_id, item_id, quantity, price_per_unit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		listing.ID, listing.SellerID, listing.ItemID, listing.Quantity, listing.PricePerUnit, listing.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
			return domain.ErrPlayerNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertListing, err)
	}
	return nil
}

// DeleteListing claims a listing by deleting it. Returns nil if it was already gone.
func (t *LedgerTx) DeleteListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	if !validID(listingID) {
		return nil, nil
	}
	l, err := scanListing(t.tx.QueryRow(ctx,
		`DELETE FROM listings WHERE listing_id = $1 RETURNING `+listingColumns, listingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteListing, err)
	}
	return l, nil
}

// InsertTradeOffer stores a new pending offer
func (t *LedgerTx) InsertTradeOffer(ctx context.Context, offer *domain.TradeOffer) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO trade_offers (trade_id, sender_id, receiver_id,
			sender_item_id, sender_quantity, receiver_item_id, receiver_quantity,
			status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		offer.ID, offer.SenderID, offer.ReceiverID,
		offer.SenderItemID, offer.SenderQuantity, offer.ReceiverItemID, offer.ReceiverQuantity,
		string(offer.Status), offer.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
			return domain.ErrPlayerNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTrade, err)
	}
	return nil
}

// GetTradeOffer reads an offer. Returns nil if it does not exist.
func (t *LedgerTx) GetTradeOffer(ctx context.Context, offerID string) (*domain.TradeOffer, error) {
	if !validID(offerID) {
		return nil, nil
	}
	offer, err := scanTrade(t.tx.QueryRow(ctx,
		`SELECT `+tradeColumns+` FROM trade_offers WHERE trade_id = $1`, offerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTrade, err)
	}
	return offer, nil
}

// ResolveTradeOffer moves a pending offer to status. Returns nil if the offer
// does not exist or is no longer pending.
func (t *LedgerTx) ResolveTradeOffer(ctx context.Context, offerID string, status domain.TradeStatus, at time.Time) (*domain.TradeOffer, error) {
	if !validID(offerID) {
		return nil, nil
	}
	offer, err := scanTrade(t.tx.QueryRow(ctx, `
		UPDATE trade_offers SET status = $2, responded_at = $3
		WHERE trade_id = $1 AND status = 'pending'
		RETURNING `+tradeColumns, offerID, string(status), at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResolveTrade, err)
	}
	return offer, nil
}

// AdvanceProduction moves last_produced_at forward only if it still reads prev
func (t *LedgerTx) AdvanceProduction(ctx context.Context, playerID string, prev *time.Time, next time.Time) (bool, error) {
	if !validID(playerID) {
		return false, nil
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE players SET last_produced_at = $2
		WHERE player_id = $1 AND last_produced_at IS NOT DISTINCT FROM $3`, playerID, next, prev)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToAdvanceProduction, err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreditAutoclicker upserts an autoclicker holding
func (t *LedgerTx) CreditAutoclicker(ctx context.Context, playerID, autoclickerID string, quantity int, at time.Time) (*domain.PlayerAutoclicker, error) {
	if !validID(playerID) {
		return nil, domain.ErrPlayerNotFound
	}
	a, err := scanAutoclicker(t.tx.QueryRow(ctx, `
		INSERT INTO player_autoclickers (player_id, autoclicker_id, quantity, purchased_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, autoclicker_id)
		DO UPDATE SET quantity = player_autoclickers.quantity + EXCLUDED.quantity
		RETURNING `+autoclickerColumns, playerID, autoclickerID, quantity, at))
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreditAutoclicker, err)
	}
	return a, nil
}

// GetPlayerAutoclickers reads a player's autoclickers inside the transaction
func (t *LedgerTx) GetPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error) {
	if !validID(playerID) {
		return []domain.PlayerAutoclicker{}, nil
	}
	return queryAutoclickers(ctx, t.tx, playerID)
}
