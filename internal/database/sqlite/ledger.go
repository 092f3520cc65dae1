package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// BeginTx starts a new transaction. Callers must only use the returned
// transaction until it ends: the store holds a single connection.
func (s *Store) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &LedgerTx{tx: tx}, nil
}

// CreatePlayer inserts a new player row
func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (player_id, username, balance, total_items_collected, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		player.ID, player.Username, player.Balance, player.TotalItemsCollected, toMillis(player.CreatedAt))
	if err != nil {
		if constraintCode(err) == sqlite3.ErrConstraintUnique {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

// GetPlayer returns a committed player row
func (s *Store) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	p, err := getPlayer(ctx, s.db, playerID)
	if err != nil && !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, err
}

// GetPlayerByUsername looks a player up by exact username
func (s *Store) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	p, err := scanPlayer(s.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE username = ?`, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, nil
}

// GetInventory returns a player's holdings ordered by item id
func (s *Store) GetInventory(ctx context.Context, playerID string) ([]domain.ItemHolding, error) {
	holdings, err := queryHoldings(ctx, s.db, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return holdings, nil
}

// GetListings returns every open listing, newest first
func (s *Store) GetListings(ctx context.Context) ([]domain.Listing, error) {
	listings, err := queryListings(ctx, s.db, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryListings, err)
	}
	return listings, nil
}

// GetTradeOffers returns offers the player sent or received, newest first
func (s *Store) GetTradeOffers(ctx context.Context, playerID string) ([]domain.TradeOffer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trade_offers
		WHERE sender_id = ? OR receiver_id = ?
		ORDER BY created_at DESC, trade_id`, playerID, playerID)
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
func (s *Store) GetPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error) {
	owned, err := queryAutoclickers(ctx, s.db, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAutoclickers, err)
	}
	return owned, nil
}

// GetAutoclickerOwners returns the ids of every player owning at least one autoclicker
func (s *Store) GetAutoclickerOwners(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT player_id FROM player_autoclickers ORDER BY player_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOwners, err)
	}
	defer rows.Close()

	owners := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOwners, err)
		}
		owners = append(owners, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOwners, err)
	}
	return owners, nil
}
