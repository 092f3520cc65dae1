package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// LedgerTx implements repository.EconomyTx
type LedgerTx struct {
	tx *sql.Tx
}

// Commit commits the transaction
func (t *LedgerTx) Commit(_ context.Context) error {
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			err = domain.ErrTxClosed
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(_ context.Context) error {
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}

// GetPlayer reads a player inside the transaction
func (t *LedgerTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	p, err := getPlayer(ctx, t.tx, playerID)
	if err != nil && !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, err
}

// RecordCollected bumps the collected counter and pays the mint reward
func (t *LedgerTx) RecordCollected(ctx context.Context, playerID string, items, coins int) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE players
		SET total_items_collected = total_items_collected + ?,
		    balance = balance + ?
		WHERE player_id = ?`, items, coins, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordCollected, err)
	}
	return requireRow(res, domain.ErrPlayerNotFound)
}

// CreditBalance adds coins unconditionally
func (t *LedgerTx) CreditBalance(ctx context.Context, playerID string, amount int) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE players SET balance = balance + ? WHERE player_id = ?`, amount, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	return requireRow(res, domain.ErrPlayerNotFound)
}

// DebitBalance subtracts coins only if the balance covers the amount
func (t *LedgerTx) DebitBalance(ctx context.Context, playerID string, amount int) (bool, error) {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE players SET balance = balance - ?
		WHERE player_id = ? AND balance >= ?`, amount, playerID, amount)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	return affectedOne(res)
}

// CreditHolding upserts a holding, adding quantity to any existing row
func (t *LedgerTx) CreditHolding(ctx context.Context, playerID, itemID string, quantity int, at time.Time) (*domain.ItemHolding, error) {
	h, err := scanHolding(t.tx.QueryRowContext(ctx, `
		INSERT INTO item_holdings (player_id, item_id, quantity, first_obtained)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (player_id, item_id)
		DO UPDATE SET quantity = item_holdings.quantity + excluded.quantity
		RETURNING `+holdingColumns, playerID, itemID, quantity, toMillis(at)))
	if err != nil {
		if constraintCode(err) == sqlite3.ErrConstraintForeignKey {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreditHolding, err)
	}
	return h, nil
}

// DebitHolding subtracts quantity only if the holding covers it, deleting the row at zero
func (t *LedgerTx) DebitHolding(ctx context.Context, playerID, itemID string, quantity int) (bool, error) {
	var remaining int
	err := t.tx.QueryRowContext(ctx, `
		UPDATE item_holdings SET quantity = quantity - ?
		WHERE player_id = ? AND item_id = ? AND quantity >= ?
		RETURNING quantity`, quantity, playerID, itemID, quantity).Scan(&remaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToDebitHolding, err)
	}

	if remaining == 0 {
		if _, err := t.tx.ExecContext(ctx,
			`DELETE FROM item_holdings WHERE player_id = ? AND item_id = ? AND quantity = 0`,
			playerID, itemID); err != nil {
			return false, fmt.Errorf("%s: %w", ErrMsgFailedToPurgeEmptyItem, err)
		}
	}
	return true, nil
}

// InsertListing stores a new listing
func (t *LedgerTx) InsertListing(ctx context.Context, listing *domain.Listing) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO listings (listing_id, seller_id, item_id, quantity, price_per_unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		listing.ID, listing.SellerID, listing.ItemID, listing.Quantity, listing.PricePerUnit, toMillis(listing.CreatedAt))
	if err != nil {
		if constraintCode(err) == sqlite3.ErrConstraintForeignKey {
			return domain.ErrPlayerNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertListing, err)
	}
	return nil
}

// DeleteListing claims a listing by deleting it. Returns nil if it was already gone.
func (t *LedgerTx) DeleteListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	l, err := scanListing(t.tx.QueryRowContext(ctx,
		`DELETE FROM listings WHERE listing_id = ? RETURNING `+listingColumns, listingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteListing, err)
	}
	return l, nil
}

// InsertTradeOffer stores a new pending offer
func (t *LedgerTx) InsertTradeOffer(ctx context.Context, offer *domain.TradeOffer) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO trade_offers (trade_id, sender_id, receiver_id,
			sender_item_id, sender_quantity, receiver_item_id, receiver_quantity,
			status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		offer.ID, offer.SenderID, offer.ReceiverID,
		offer.SenderItemID, offer.SenderQuantity, offer.ReceiverItemID, offer.ReceiverQuantity,
		string(offer.Status), toMillis(offer.CreatedAt))
	if err != nil {
		if constraintCode(err) == sqlite3.ErrConstraintForeignKey {
			return domain.ErrPlayerNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTrade, err)
	}
	return nil
}

// GetTradeOffer reads an offer. Returns nil if it does not exist.
func (t *LedgerTx) GetTradeOffer(ctx context.Context, offerID string) (*domain.TradeOffer, error) {
	offer, err := scanTrade(t.tx.QueryRowContext(ctx,
		`SELECT `+tradeColumns+` FROM trade_offers WHERE trade_id = ?`, offerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTrade, err)
	}
	return offer, nil
}

// ResolveTradeOffer moves a pending offer to status. Returns nil if the offer
// does not exist or is no longer pending.
func (t *LedgerTx) ResolveTradeOffer(ctx context.Context, offerID string, status domain.TradeStatus, at time.Time) (*domain.TradeOffer, error) {
	offer, err := scanTrade(t.tx.QueryRowContext(ctx, `
		UPDATE trade_offers SET status = ?, responded_at = ?
		WHERE trade_id = ? AND status = 'pending'
		RETURNING `+tradeColumns, string(status), toMillis(at), offerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResolveTrade, err)
	}
	return offer, nil
}

// AdvanceProduction moves last_produced_at forward only if it still reads prev
func (t *LedgerTx) AdvanceProduction(ctx context.Context, playerID string, prev *time.Time, next time.Time) (bool, error) {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE players SET last_produced_at = ?
		WHERE player_id = ? AND last_produced_at IS ?`, toMillis(next), playerID, nullMillis(prev))
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToAdvanceProduction, err)
	}
	return affectedOne(res)
}

// CreditAutoclicker upserts an autoclicker holding
func (t *LedgerTx) CreditAutoclicker(ctx context.Context, playerID, autoclickerID string, quantity int, at time.Time) (*domain.PlayerAutoclicker, error) {
	a, err := scanAutoclicker(t.tx.QueryRowContext(ctx, `
		INSERT INTO player_autoclickers (player_id, autoclicker_id, quantity, purchased_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (player_id, autoclicker_id)
		DO UPDATE SET quantity = player_autoclickers.quantity + excluded.quantity
		RETURNING `+autoclickerColumns, playerID, autoclickerID, quantity, toMillis(at)))
	if err != nil {
		if constraintCode(err) == sqlite3.ErrConstraintForeignKey {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreditAutoclicker, err)
	}
	return a, nil
}

// GetPlayerAutoclickers reads a player's autoclickers inside the transaction
func (t *LedgerTx) GetPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error) {
	owned, err := queryAutoclickers(ctx, t.tx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAutoclickers, err)
	}
	return owned, nil
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func requireRow(res sql.Result, notFound error) error {
	ok, err := affectedOne(res)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
