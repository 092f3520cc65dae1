package handler

import (
	"net/http"

	"github.com/osse101/FruitClicker_Go/internal/economy"
	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// CreateListingRequest puts items up for sale. The quantity is escrowed immediately.
type CreateListingRequest struct {
	ItemID       string `json:"item_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"min=1,max=10000"`
	PricePerUnit int    `json:"price_per_unit" validate:"min=1,max=1000000"`
}

// HandleListListings returns every open listing, newest first
// @Summary List listings
// @Description Every open marketplace listing, newest first
// @Tags marketplace
// @Produce json
// @Success 200 {array} domain.Listing
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/marketplace [get]
// @Security ApiKeyAuth
func HandleListListings(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.ListListings(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListListings, err)
			return
		}
		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleCreateListing escrows the seller's items into a new listing
// @Summary Create listing
// @Description Escrow the seller's items into a new listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param request body CreateListingRequest true "Listing details"
// @Success 201 {object} domain.Listing
// @Failure 400 {object} ErrorResponse "Invalid input or insufficient items"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown item"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/marketplace [post]
// @Security ApiKeyAuth
func HandleCreateListing(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		var req CreateListingRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateListing); err != nil {
			return
		}

		listing, err := svc.CreateListing(r.Context(), playerID, req.ItemID, req.Quantity, req.PricePerUnit)
		if err != nil {
			respondServiceError(w, r, OpCreateListing, err)
			return
		}

		logger.FromContext(r.Context()).Info("Listing created", "listing_id", listing.ID)
		respondJSON(w, http.StatusCreated, listing)
	}
}

// HandleBuyListing buys a whole listing
// @Summary Buy listing
// @Description Buy a whole listing; the price moves from buyer to seller
// @Tags marketplace
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param id path string true "Listing ID"
// @Success 200 {object} economy.PurchaseResult
// @Failure 400 {object} ErrorResponse "Insufficient funds"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Own listing"
// @Failure 404 {object} ErrorResponse "Listing not found or already sold"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/marketplace/{id}/buy [post]
// @Security ApiKeyAuth
func HandleBuyListing(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		listingID, ok := pathID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		res, err := svc.BuyListing(r.Context(), playerID, listingID)
		if err != nil {
			respondServiceError(w, r, OpBuyListing, err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleCancelListing withdraws a listing and returns the escrow to its seller
// @Summary Cancel listing
// @Description Withdraw a listing and return the escrow to its seller
// @Tags marketplace
// @Produce json
// @Param X-Player-ID header string true "Acting player ID"
// @Param id path string true "Listing ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not the seller"
// @Failure 404 {object} ErrorResponse "Listing not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/marketplace/{id} [delete]
// @Security ApiKeyAuth
func HandleCancelListing(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerID(w, r)
		if !ok {
			return
		}
		listingID, ok := pathID(w, r)
		if !ok {
			return
		}
		r = withPlayer(r, playerID)

		if err := svc.CancelListing(r.Context(), listingID, playerID); err != nil {
			respondServiceError(w, r, OpCancelListing, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgListingCancelled})
	}
}
