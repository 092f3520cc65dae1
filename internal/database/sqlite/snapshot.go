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

// ExportPlayer reads one player's state in a single read transaction
func (s *Store) ExportPlayer(ctx context.Context, playerID string) (*domain.PlayerSnapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // nothing to keep

	player, err := getPlayer(ctx, tx, playerID)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToExport, err)
	}

	holdings, err := queryHoldings(ctx, tx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToExport, err)
	}
	owned, err := queryAutoclickers(ctx, tx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToExport, err)
	}
	listings, err := queryListings(ctx, tx, "WHERE seller_id = ?", playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToExport, err)
	}

	return &domain.PlayerSnapshot{
		Version:      domain.SnapshotVersion,
		ExportedAt:   time.Now().UTC(),
		Player:       *player,
		Holdings:     holdings,
		Autoclickers: owned,
		Listings:     listings,
	}, nil
}

// ImportPlayer replaces one player's state with the snapshot contents.
// Trade offers are left alone; acceptance re-validates both sides anyway.
func (s *Store) ImportPlayer(ctx context.Context, snap *domain.PlayerSnapshot) error {
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	p := snap.Player
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO players (player_id, username, balance, total_items_collected, created_at, last_produced_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (player_id) DO UPDATE SET
			username = excluded.username,
			balance = excluded.balance,
			total_items_collected = excluded.total_items_collected,
			created_at = excluded.created_at,
			last_produced_at = excluded.last_produced_at`,
		p.ID, p.Username, p.Balance, p.TotalItemsCollected, toMillis(p.CreatedAt), nullMillis(p.LastProducedAt)); err != nil {
		if constraintCode(err) == sqlite3.ErrConstraintUnique {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToImport, err)
	}

	if err := clearPlayerState(ctx, tx, p.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToImport, err)
	}

	for _, h := range snap.Holdings {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO item_holdings (player_id, item_id, quantity, first_obtained)
			VALUES (?, ?, ?, ?)`, p.ID, h.ItemID, h.Quantity, toMillis(h.FirstObtained)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToImport, err)
		}
	}
	for _, a := range snap.Autoclickers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player_autoclickers (player_id, autoclicker_id, quantity, purchased_at)
			VALUES (?, ?, ?, ?)`, p.ID, a.AutoclickerID, a.Quantity, toMillis(a.PurchasedAt)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToImport, err)
		}
	}
	for _, l := range snap.Listings {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO listings (listing_id, seller_id, item_id, quantity, price_per_unit, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			l.ID, p.ID, l.ItemID, l.Quantity, l.PricePerUnit, toMillis(l.CreatedAt)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToImport, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// ResetPlayer zeroes a player's balance and counters and removes every holding and listing
func (s *Store) ResetPlayer(ctx context.Context, playerID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx,
		`UPDATE players SET balance = 0, total_items_collected = 0, last_produced_at = NULL WHERE player_id = ?`, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReset, err)
	}
	if err := requireRow(res, domain.ErrPlayerNotFound); err != nil {
		return err
	}

	if err := clearPlayerState(ctx, tx, playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReset, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func clearPlayerState(ctx context.Context, tx *sql.Tx, playerID string) error {
	for _, stmt := range []string{
		`DELETE FROM item_holdings WHERE player_id = ?`,
		`DELETE FROM player_autoclickers WHERE player_id = ?`,
		`DELETE FROM listings WHERE seller_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, playerID); err != nil {
			return err
		}
	}
	return nil
}

func validateSnapshot(snap *domain.PlayerSnapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: empty snapshot", domain.ErrInvalidInput)
	}
	if snap.Version != domain.SnapshotVersion {
		return fmt.Errorf("%w: unsupported snapshot version %d", domain.ErrInvalidInput, snap.Version)
	}
	if snap.Player.ID == "" || snap.Player.Username == "" {
		return fmt.Errorf("%w: snapshot has no player", domain.ErrInvalidInput)
	}
	if snap.Player.Balance < 0 {
		return fmt.Errorf("%w: negative balance", domain.ErrInvalidInput)
	}
	for _, h := range snap.Holdings {
		if h.Quantity <= 0 {
			return fmt.Errorf("%w: holding %s has non-positive quantity", domain.ErrInvalidInput, h.ItemID)
		}
	}
	for _, a := range snap.Autoclickers {
		if a.Quantity <= 0 {
			return fmt.Errorf("%w: autoclicker %s has non-positive quantity", domain.ErrInvalidInput, a.AutoclickerID)
		}
	}
	for _, l := range snap.Listings {
		if l.Quantity <= 0 || l.PricePerUnit <= 0 {
			return fmt.Errorf("%w: listing %s is malformed", domain.ErrInvalidInput, l.ID)
		}
	}
	return nil
}
