package handler

import (
	"net/http"

	"github.com/osse101/FruitClicker_Go/internal/economy"
)

// HandleClick draws one item for the acting player and credits it
// @Summary Click
// @Description Draw one random item for the acting player and pay the mint reward
// @Tags collect
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Success 200 {object} economy.CollectResult
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/click [post]
// @Security ApiKeyAuth
func HandleClick(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		res, err := svc.Collect(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpClick, err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleAutoclickerTick runs one production tick for the acting player on demand.
// The background scheduler does the same for every owner.
// @Summary Settle autoclicker production
// @Description Mint what the acting player's autoclickers earned since the last settlement
// @Tags autoclickers
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Success 200 {object} economy.ProductionResult
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/autoclickers/tick [post]
// @Security ApiKeyAuth
func HandleAutoclickerTick(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		res, err := svc.ProcessAutoclickers(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpAutoclickerTick, err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}
