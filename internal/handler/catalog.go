package handler

import (
	"net/http"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/economy"
)

// CatalogEntry is a catalog item with its derived sell price and per-click drop chance
type CatalogEntry struct {
	domain.CatalogItem
	SellPrice  int     `json:"sell_price"`
	DropChance float64 `json:"drop_chance"`
}

// CatalogResponse is the full static catalog
type CatalogResponse struct {
	Items        []CatalogEntry       `json:"items"`
	Autoclickers []domain.Autoclicker `json:"autoclickers"`
}

// HandleGetCatalog returns every item and autoclicker definition
// @Summary Get catalog
// @Description Every item with its sell price and drop chance, and every autoclicker
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
// @Security ApiKeyAuth
func HandleGetCatalog(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.CatalogItems()
		entries := make([]CatalogEntry, len(items))
		for i, it := range items {
			entries[i] = CatalogEntry{
				CatalogItem: it,
				SellPrice:   it.Rarity.SellPrice(),
				DropChance:  svc.DropChance(it.ID),
			}
		}
		respondJSON(w, http.StatusOK, CatalogResponse{
			Items:        entries,
			Autoclickers: svc.CatalogAutoclickers(),
		})
	}
}
