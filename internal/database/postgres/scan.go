package postgres

import (
	"github.com/osse101/FruitClicker_Go/internal/domain"
)

const (
	playerColumns      = "player_id, username, balance, total_items_collected, created_at, last_produced_at"
	holdingColumns     = "player_id, item_id, quantity, first_obtained"
	listingColumns     = "listing_id, seller_id, item_id, quantity, price_per_unit, created_at"
	tradeColumns       = "trade_id, sender_id, receiver_id, sender_item_id, sender_quantity, receiver_item_id, receiver_quantity, status, created_at, responded_at"
	autoclickerColumns = "player_id, autoclicker_id, quantity, purchased_at"
)

func scanPlayer(row scanner) (*domain.Player, error) {
	var p domain.Player
	if err := row.Scan(&p.ID, &p.Username, &p.Balance, &p.TotalItemsCollected, &p.CreatedAt, &p.LastProducedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanHolding(row scanner) (*domain.ItemHolding, error) {
	var h domain.ItemHolding
	if err := row.Scan(&h.PlayerID, &h.ItemID, &h.Quantity, &h.FirstObtained); err != nil {
		return nil, err
	}
	return &h, nil
}

func scanListing(row scanner) (*domain.Listing, error) {
	var l domain.Listing
	if err := row.Scan(&l.ID, &l.SellerID, &l.ItemID, &l.Quantity, &l.PricePerUnit, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanTrade(row scanner) (*domain.TradeOffer, error) {
	var t domain.TradeOffer
	var status string
	err := row.Scan(&t.ID, &t.SenderID, &t.ReceiverID,
		&t.SenderItemID, &t.SenderQuantity, &t.ReceiverItemID, &t.ReceiverQuantity,
		&status, &t.CreatedAt, &t.RespondedAt)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TradeStatus(status)
	return &t, nil
}

func scanAutoclicker(row scanner) (*domain.PlayerAutoclicker, error) {
	var a domain.PlayerAutoclicker
	if err := row.Scan(&a.PlayerID, &a.AutoclickerID, &a.Quantity, &a.PurchasedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
