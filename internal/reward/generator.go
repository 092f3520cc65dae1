// Package reward draws catalog items proportionally to their weights.
package reward

import (
	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/utils"
)

// Generator performs weighted draws over a fixed item table.
// It is read-only after construction and safe for concurrent use
// as long as the random source is.
type Generator struct {
	items []domain.CatalogItem
	total float64
	rnd   func() float64
}

// Option configures a Generator
type Option func(*Generator)

// WithRandomSource replaces the default [0,1) source. Tests use this to make draws repeatable.
func WithRandomSource(rnd func() float64) Option {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

// NewGenerator builds a generator over items in the given order.
// Items must be non-empty with positive weights, which the catalog guarantees.
func NewGenerator(items []domain.CatalogItem, opts ...Option) *Generator {
	g := &Generator{
		items: make([]domain.CatalogItem, len(items)),
		rnd:   utils.RandomFloat,
	}
	copy(g.items, items)
	for _, item := range g.items {
		g.total += item.Weight
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Draw returns one item. The chance of each item is its weight over the total weight.
func (g *Generator) Draw() domain.CatalogItem {
	r := g.rnd() * g.total

	var cumulative float64
	for i := range g.items {
		cumulative += g.items[i].Weight
		if cumulative >= r {
			return g.items[i]
		}
	}

	// Rounding can leave r just above the final cumulative sum
	return g.items[len(g.items)-1]
}

// DrawN returns n independent draws
func (g *Generator) DrawN(n int) []domain.CatalogItem {
	if n <= 0 {
		return nil
	}
	out := make([]domain.CatalogItem, n)
	for i := range out {
		out[i] = g.Draw()
	}
	return out
}

// Probability returns the chance of drawing itemID, or 0 if it is not in the table
func (g *Generator) Probability(itemID string) float64 {
	for _, item := range g.items {
		if item.ID == itemID {
			return item.Weight / g.total
		}
	}
	return 0
}
