package handler

import (
	"net/http"

	"github.com/osse101/FruitClicker_Go/internal/economy"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/player"
)

// RegisterPlayerRequest represents the request to create a player
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,username"`
}

// HandleRegisterPlayer creates a player with an empty balance
// @Summary Register player
// @Description Create a player with an empty balance
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Player details"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players [post]
// @Security ApiKeyAuth
func HandleRegisterPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRegisterPlayer); err != nil {
			return
		}

		p, err := svc.RegisterPlayer(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, OpRegisterPlayer, err)
			return
		}

		logger.FromContext(r.Context()).Info("Player registered", "player_id", p.ID)
		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleGetPlayer returns the acting player's balance and counters
// @Summary Get player
// @Description Balance and counters of the acting player
// @Tags players
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Success 200 {object} domain.Player
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/me [get]
// @Security ApiKeyAuth
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		p, err := svc.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpGetPlayer, err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetInventory lists the acting player's item holdings
// @Summary Get inventory
// @Description Item holdings of the acting player
// @Tags players
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Success 200 {array} domain.ItemHolding
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/me/inventory [get]
// @Security ApiKeyAuth
func HandleGetInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		items, err := svc.ListInventory(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpGetInventory, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Inventory retrieved", "count", len(items))
		respondJSON(w, http.StatusOK, items)
	}
}
