package domain

// Rarity is the tier of a catalog item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists all tiers from most to least common
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// sellPrices is the fixed per-unit sell-for-coins price of each tier
var sellPrices = map[Rarity]int{
	RarityCommon:    5,
	RarityUncommon:  15,
	RarityRare:      50,
	RarityEpic:      200,
	RarityLegendary: 1000,
}

// Valid reports whether r is a known tier
func (r Rarity) Valid() bool {
	_, ok := sellPrices[r]
	return ok
}

// SellPrice returns the per-unit price paid when an item of this tier is sold.
// Unknown tiers return 0.
func (r Rarity) SellPrice() int {
	return sellPrices[r]
}

// CatalogItem is a static item definition drawn by the reward generator
type CatalogItem struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Emoji  string  `json:"emoji" yaml:"emoji"`
	Rarity Rarity  `json:"rarity" yaml:"rarity"`
	Weight float64 `json:"weight" yaml:"weight"`
}
