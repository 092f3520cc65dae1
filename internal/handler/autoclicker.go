package handler

import (
	"net/http"

	"github.com/osse101/FruitClicker_Go/internal/economy"
)

// HandleListAutoclickers returns the autoclicker catalog
// @Summary List autoclickers
// @Description Every autoclicker definition with its price and clicks per second
// @Tags autoclickers
// @Produce json
// @Success 200 {array} domain.Autoclicker
// @Router /api/v1/autoclickers [get]
// @Security ApiKeyAuth
func HandleListAutoclickers(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CatalogAutoclickers())
	}
}

// HandleListPlayerAutoclickers returns the acting player's autoclicker holdings
// @Summary List owned autoclickers
// @Description Autoclickers owned by the acting player
// @Tags autoclickers
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Success 200 {array} domain.PlayerAutoclicker
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/me/autoclickers [get]
// @Security ApiKeyAuth
func HandleListPlayerAutoclickers(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		owned, err := svc.ListPlayerAutoclickers(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpListAutoclickers, err)
			return
		}
		respondJSON(w, http.StatusOK, owned)
	}
}

// HandleBuyAutoclicker charges the catalog price for one more autoclicker
// @Summary Buy autoclicker
// @Description Charge the catalog price and add one autoclicker. Production owed so far is settled first.
// @Tags autoclickers
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param id path string true "Autoclicker ID"
// @Success 200 {object} domain.PlayerAutoclicker
// @Failure 400 {object} ErrorResponse "Insufficient funds"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown autoclicker or player"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/autoclickers/{id}/buy [post]
// @Security ApiKeyAuth
func HandleBuyAutoclicker(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		autoclickerID, ok := pathID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		holding, err := svc.PurchaseAutoclicker(r.Context(), playerID, autoclickerID)
		if err != nil {
			respondServiceError(w, r, OpBuyAutoclicker, err)
			return
		}
		respondJSON(w, http.StatusOK, holding)
	}
}
