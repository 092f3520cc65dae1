// Package postgres implements the shared ledger backend on PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// Ledger implements repository.Ledger for PostgreSQL
type Ledger struct {
	db *pgxpool.Pool
}

// NewLedger creates a new Ledger over an open pool
func NewLedger(db *pgxpool.Pool) *Ledger {
	return &Ledger{db: db}
}

// Ping checks connectivity
func (l *Ledger) Ping(ctx context.Context) error {
	return l.db.Ping(ctx)
}

// Close releases the pool
func (l *Ledger) Close() error {
	l.db.Close()
	return nil
}

// BeginTx starts a new transaction
func (l *Ledger) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &LedgerTx{tx: tx}, nil
}

// GetInventory returns a player's holdings ordered by item id
func (l *Ledger) GetInventory(ctx context.Context, playerID string) ([]domain.ItemHolding, error) {
	if !validID(playerID) {
		return []domain.ItemHolding{}, nil
	}
	return queryHoldings(ctx, l.db, playerID)
}

// GetListings returns every open listing, newest first
func (l *Ledger) GetListings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := l.db.Query(ctx,
		`SELECT `+listingColumns+` FROM listings ORDER BY created_at DESC, listing_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryListings, err)
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryListings, err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryListings, err)
	}
	return listings, nil
}

// GetTradeOffers returns offers the player sent or received, newest first
func (l *Ledger) GetTradeOffers(ctx context.Context, playerID string) ([]domain.TradeOffer, error) {
	if !validID(playerID) {
		return []domain.TradeOffer{}, nil
	}

	rows, err := l.db.Query(ctx, `
		SELECT `+tradeColumns+`
		FROM trade_offers
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC, trade_id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTrades, err)
	}
	defer rows.Close()

	offers := []domain.TradeOffer{}
	for rows.Next() {
		offer, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTrades, err)
		}
		offers = append(offers, *offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTrades, err)
	}
	return offers, nil
}

// GetPlayerAutoclickers returns the autoclickers a player owns
func (l *Ledger) GetPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error) {
	if !validID(playerID) {
		return []domain.PlayerAutoclicker{}, nil
	}
	return queryAutoclickers(ctx, l.db, playerID)
}

// GetAutoclickerOwners returns the ids of every player owning at least one autoclicker
func (l *Ledger) GetAutoclickerOwners(ctx context.Context) ([]string, error) {
	rows, err := l.db.Query(ctx,
		`SELECT DISTINCT player_id FROM player_autoclickers ORDER BY player_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryClickerOwners, err)
	}

	owners, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryClickerOwners, err)
	}
	return owners, nil
}

func queryHoldings(ctx context.Context, q querier, playerID string) ([]domain.ItemHolding, error) {
	rows, err := q.Query(ctx,
		`SELECT `+holdingColumns+` FROM item_holdings WHERE player_id = $1 ORDER BY item_id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	holdings := []domain.ItemHolding{}
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		holdings = append(holdings, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return holdings, nil
}

func queryAutoclickers(ctx context.Context, q querier, playerID string) ([]domain.PlayerAutoclicker, error) {
	rows, err := q.Query(ctx,
		`SELECT `+autoclickerColumns+` FROM player_autoclickers WHERE player_id = $1 ORDER BY autoclicker_id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAutoclickers, err)
	}
	defer rows.Close()

	owned := []domain.PlayerAutoclicker{}
	for rows.Next() {
		a, err := scanAutoclicker(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAutoclickers, err)
		}
		owned = append(owned, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAutoclickers, err)
	}
	return owned, nil
}
