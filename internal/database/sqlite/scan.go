package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

const (
	playerColumns      = "player_id, username, balance, total_items_collected, created_at, last_produced_at"
	holdingColumns     = "player_id, item_id, quantity, first_obtained"
	listingColumns     = "listing_id, seller_id, item_id, quantity, price_per_unit, created_at"
	tradeColumns       = "trade_id, sender_id, receiver_id, sender_item_id, sender_quantity, receiver_item_id, receiver_quantity, status, created_at, responded_at"
	autoclickerColumns = "player_id, autoclicker_id, quantity, purchased_at"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func constraintCode(err error) sqlite3.ErrNoExtended {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode
	}
	return 0
}

func scanPlayer(row scanner) (*domain.Player, error) {
	var p domain.Player
	var created int64
	var produced sql.NullInt64
	if err := row.Scan(&p.ID, &p.Username, &p.Balance, &p.TotalItemsCollected, &created, &produced); err != nil {
		return nil, err
	}
	p.CreatedAt = fromMillis(created)
	if produced.Valid {
		at := fromMillis(produced.Int64)
		p.LastProducedAt = &at
	}
	return &p, nil
}

func scanHolding(row scanner) (*domain.ItemHolding, error) {
	var h domain.ItemHolding
	var first int64
	if err := row.Scan(&h.PlayerID, &h.ItemID, &h.Quantity, &first); err != nil {
		return nil, err
	}
	h.FirstObtained = fromMillis(first)
	return &h, nil
}

func scanListing(row scanner) (*domain.Listing, error) {
	var l domain.Listing
	var created int64
	if err := row.Scan(&l.ID, &l.SellerID, &l.ItemID, &l.Quantity, &l.PricePerUnit, &created); err != nil {
		return nil, err
	}
	l.CreatedAt = fromMillis(created)
	return &l, nil
}

func scanTrade(row scanner) (*domain.TradeOffer, error) {
	var t domain.TradeOffer
	var status string
	var created int64
	var responded sql.NullInt64
	err := row.Scan(&t.ID, &t.SenderID, &t.ReceiverID,
		&t.SenderItemID, &t.SenderQuantity, &t.ReceiverItemID, &t.ReceiverQuantity,
		&status, &created, &responded)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TradeStatus(status)
	t.CreatedAt = fromMillis(created)
	if responded.Valid {
		at := fromMillis(responded.Int64)
		t.RespondedAt = &at
	}
	return &t, nil
}

func scanAutoclicker(row scanner) (*domain.PlayerAutoclicker, error) {
	var a domain.PlayerAutoclicker
	var purchased int64
	if err := row.Scan(&a.PlayerID, &a.AutoclickerID, &a.Quantity, &purchased); err != nil {
		return nil, err
	}
	a.PurchasedAt = fromMillis(purchased)
	return &a, nil
}

func queryHoldings(ctx context.Context, q querier, playerID string) ([]domain.ItemHolding, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+holdingColumns+` FROM item_holdings WHERE player_id = ? ORDER BY item_id`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holdings := []domain.ItemHolding{}
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, *h)
	}
	return holdings, rows.Err()
}

func queryAutoclickers(ctx context.Context, q querier, playerID string) ([]domain.PlayerAutoclicker, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+autoclickerColumns+` FROM player_autoclickers WHERE player_id = ? ORDER BY autoclicker_id`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owned := []domain.PlayerAutoclicker{}
	for rows.Next() {
		a, err := scanAutoclicker(rows)
		if err != nil {
			return nil, err
		}
		owned = append(owned, *a)
	}
	return owned, rows.Err()
}

func queryListings(ctx context.Context, q querier, where string, args ...any) ([]domain.Listing, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+listingColumns+` FROM listings `+where+` ORDER BY created_at DESC, listing_id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

func getPlayer(ctx context.Context, q querier, playerID string) (*domain.Player, error) {
	p, err := scanPlayer(q.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE player_id = ?`, playerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}
