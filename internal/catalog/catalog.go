// Package catalog holds the static reward and autoclicker tables.
// The tables are loaded once from embedded YAML and never mutated.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Sentinel errors for catalog validation
var (
	ErrInvalidConfig = errors.New("invalid catalog configuration")
	ErrDuplicateID   = errors.New("duplicate catalog id")
)

// Config is the YAML shape of the catalog file
type Config struct {
	Version      string               `yaml:"version"`
	Items        []domain.CatalogItem `yaml:"items"`
	Autoclickers []domain.Autoclicker `yaml:"autoclickers"`
}

// Catalog is an immutable lookup structure over items and autoclickers.
// Item order is the file order and is the order the generator walks.
type Catalog struct {
	items        []domain.CatalogItem
	itemIndex    map[string]int
	clickers     []domain.Autoclicker
	clickerIndex map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog parsed from the embedded table.
// The embedded table is valid by construction, so a parse failure panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(cfg.Items, cfg.Autoclickers)
}

// New validates the given definitions and builds a Catalog.
// Items without a display name get one derived from their id.
func New(items []domain.CatalogItem, clickers []domain.Autoclicker) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: catalog has no items", ErrInvalidConfig)
	}

	titler := cases.Title(language.English)
	c := &Catalog{
		items:        make([]domain.CatalogItem, 0, len(items)),
		itemIndex:    make(map[string]int, len(items)),
		clickers:     make([]domain.Autoclicker, 0, len(clickers)),
		clickerIndex: make(map[string]int, len(clickers)),
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: item with empty id", ErrInvalidConfig)
		}
		if _, exists := c.itemIndex[item.ID]; exists {
			return nil, fmt.Errorf("%w: item %s", ErrDuplicateID, item.ID)
		}
		if !item.Rarity.Valid() {
			return nil, fmt.Errorf("%w: item %s has unknown rarity %q", ErrInvalidConfig, item.ID, item.Rarity)
		}
		if !(item.Weight > 0) {
			return nil, fmt.Errorf("%w: item %s must have a positive weight", ErrInvalidConfig, item.ID)
		}
		if item.Name == "" {
			item.Name = titler.String(strings.ReplaceAll(item.ID, "-", " "))
		}
		c.itemIndex[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	for _, ac := range clickers {
		if ac.ID == "" {
			return nil, fmt.Errorf("%w: autoclicker with empty id", ErrInvalidConfig)
		}
		if _, exists := c.clickerIndex[ac.ID]; exists {
			return nil, fmt.Errorf("%w: autoclicker %s", ErrDuplicateID, ac.ID)
		}
		if ac.Price <= 0 || ac.Rate <= 0 {
			return nil, fmt.Errorf("%w: autoclicker %s needs positive price and rate", ErrInvalidConfig, ac.ID)
		}
		c.clickerIndex[ac.ID] = len(c.clickers)
		c.clickers = append(c.clickers, ac)
	}

	return c, nil
}

// Items returns a copy of all item definitions in draw order
func (c *Catalog) Items() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Item looks up an item definition by id
func (c *Catalog) Item(id string) (domain.CatalogItem, bool) {
	idx, ok := c.itemIndex[id]
	if !ok {
		return domain.CatalogItem{}, false
	}
	return c.items[idx], true
}

// SellPrice returns the per-unit sell price of an item
func (c *Catalog) SellPrice(itemID string) (int, bool) {
	item, ok := c.Item(itemID)
	if !ok {
		return 0, false
	}
	return item.Rarity.SellPrice(), true
}

// Autoclickers returns a copy of all autoclicker definitions
func (c *Catalog) Autoclickers() []domain.Autoclicker {
	out := make([]domain.Autoclicker, len(c.clickers))
	copy(out, c.clickers)
	return out
}

// Autoclicker looks up an autoclicker definition by id
func (c *Catalog) Autoclicker(id string) (domain.Autoclicker, bool) {
	idx, ok := c.clickerIndex[id]
	if !ok {
		return domain.Autoclicker{}, false
	}
	return c.clickers[idx], true
}
