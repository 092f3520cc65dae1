package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// CreatePlayer inserts a new player row
func (l *Ledger) CreatePlayer(ctx context.Context, player *domain.Player) error {
	_, err := l.db.Exec(ctx, `
		INSERT INTO players (player_id, username, balance, total_items_collected, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		player.ID, player.Username, player.Balance, player.TotalItemsCollected, player.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

// GetPlayer returns a committed player row
func (l *Ledger) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, l.db, playerID)
}

// GetPlayerByUsername looks a player up by exact username
func (l *Ledger) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	p, err := scanPlayer(l.db.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, nil
}

func getPlayer(ctx context.Context, q querier, playerID string) (*domain.Player, error) {
	if !validID(playerID) {
		return nil, domain.ErrPlayerNotFound
	}
	p, err := scanPlayer(q.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE player_id = $1`, playerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, nil
}
