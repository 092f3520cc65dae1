package handler

import (
	"context"
	"net/http"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/economy"
	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// CreateTradeRequest proposes an item-for-item exchange to another player
type CreateTradeRequest struct {
	ReceiverID       string `json:"receiver_id" validate:"required"`
	SenderItemID     string `json:"sender_item_id" validate:"required"`
	SenderQuantity   int    `json:"sender_quantity" validate:"min=1,max=10000"`
	ReceiverItemID   string `json:"receiver_item_id" validate:"required"`
	ReceiverQuantity int    `json:"receiver_quantity" validate:"min=1,max=10000"`
}

// HandleListTrades returns offers the acting player sent or received
// @Summary List trades
// @Description Offers the acting player sent or received
// @Tags trades
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Success 200 {array} domain.TradeOffer
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trades [get]
// @Security ApiKeyAuth
func HandleListTrades(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		offers, err := svc.ListTradeOffers(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpListTrades, err)
			return
		}
		respondJSON(w, http.StatusOK, offers)
	}
}

// HandleCreateTrade records a pending offer. Nothing is escrowed.
// @Summary Create trade offer
// @Description Propose an item-for-item exchange to another player
// @Tags trades
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param request body CreateTradeRequest true "Trade terms"
// @Success 201 {object} domain.TradeOffer
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown item or player"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trades [post]
// @Security ApiKeyAuth
func HandleCreateTrade(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		var req CreateTradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateTrade); err != nil {
			return
		}

		offer, err := svc.CreateTradeOffer(r.Context(), playerID, req.ReceiverID, domain.TradeTerms{
			SenderItemID:     req.SenderItemID,
			SenderQuantity:   req.SenderQuantity,
			ReceiverItemID:   req.ReceiverItemID,
			ReceiverQuantity: req.ReceiverQuantity,
		})
		if err != nil {
			respondServiceError(w, r, OpCreateTrade, err)
			return
		}

		logger.FromContext(r.Context()).Info("Trade offered", "trade_id", offer.ID)
		respondJSON(w, http.StatusCreated, offer)
	}
}

type tradeAction func(ctx context.Context, tradeID, actorID string) error

// HandleAcceptTrade completes a pending offer for its receiver
// @Summary Accept trade offer
// @Description Swap both legs of a pending offer; receiver only
// @Tags trades
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param id path string true "Trade ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "A side no longer holds its items"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not the receiver"
// @Failure 404 {object} ErrorResponse "Trade not found"
// @Failure 409 {object} ErrorResponse "Already resolved"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trades/{id}/accept [post]
// @Security ApiKeyAuth
func HandleAcceptTrade(svc economy.Service) http.HandlerFunc {
	return handleTradeAction(svc.AcceptTradeOffer, OpAcceptTrade, MsgTradeAccepted)
}

// HandleRejectTrade declines a pending offer for its receiver
// @Summary Reject trade offer
// @Description Close a pending offer without moving anything; receiver only
// @Tags trades
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param id path string true "Trade ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not the receiver"
// @Failure 404 {object} ErrorResponse "Trade not found"
// @Failure 409 {object} ErrorResponse "Already resolved"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trades/{id}/reject [post]
// @Security ApiKeyAuth
func HandleRejectTrade(svc economy.Service) http.HandlerFunc {
	return handleTradeAction(svc.RejectTradeOffer, OpRejectTrade, MsgTradeRejected)
}

// HandleCancelTrade withdraws a pending offer for its sender
// @Summary Cancel trade offer
// @Description Withdraw a pending offer; sender only
// @Tags trades
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param id path string true "Trade ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not the sender"
// @Failure 404 {object} ErrorResponse "Trade not found"
// @Failure 409 {object} ErrorResponse "Already resolved"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trades/{id}/cancel [post]
// @Security ApiKeyAuth
func HandleCancelTrade(svc economy.Service) http.HandlerFunc {
	return handleTradeAction(svc.CancelTradeOffer, OpCancelTrade, MsgTradeCancelled)
}

func handleTradeAction(action tradeAction, opName, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		tradeID, ok := pathID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		if err := action(r.Context(), tradeID, playerID); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: successMsg})
	}
}
