package handler

import (
	"net/http"

	"github.com/osse101/FruitClicker_Go/internal/economy"
	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// SellItemRequest sells items back to the house at the rarity price
type SellItemRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleSellItem handles selling items for coins
// @Summary Sell item
// @Description Sell items back to the house at the price of their rarity
// @Tags economy
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param request body SellItemRequest true "Sell details"
// @Success 200 {object} economy.SellResult
// @Failure 400 {object} ErrorResponse "Invalid input or insufficient items"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown item"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/sell [post]
// @Security ApiKeyAuth
func HandleSellItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSellItem); err != nil {
			return
		}

		res, err := svc.SellItem(r.Context(), playerID, req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, OpSellItem, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item sold",
			"item_id", res.ItemID,
			"quantity", res.Quantity,
			"coins", res.CoinsEarned)
		respondJSON(w, http.StatusOK, res)
	}
}
