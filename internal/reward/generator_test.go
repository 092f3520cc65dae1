package reward

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitClicker_Go/internal/catalog"
	"github.com/osse101/FruitClicker_Go/internal/domain"
)

func twoItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: "a", Rarity: domain.RarityCommon, Weight: 90},
		{ID: "b", Rarity: domain.RarityRare, Weight: 10},
	}
}

func fixed(v float64) func() float64 {
	return func() float64 { return v }
}

func TestDraw_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		want string
	}{
		{"zero picks first", 0, "a"},
		{"inside first band", 0.5, "a"},
		{"exact cumulative edge stays on first", 0.9, "a"},
		{"just past first band", 0.9000001, "b"},
		{"top of range", 0.999999, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(twoItems(), WithRandomSource(fixed(tt.r)))
			assert.Equal(t, tt.want, g.Draw().ID)
		})
	}
}

func TestDraw_FallsBackToLastEntry(t *testing.T) {
	// A source returning >= 1 simulates rounding that overshoots the cumulative sum
	g := NewGenerator(twoItems(), WithRandomSource(fixed(1.5)))
	assert.Equal(t, "b", g.Draw().ID)
}

func TestDraw_SingleItem(t *testing.T) {
	items := []domain.CatalogItem{{ID: "only", Rarity: domain.RarityEpic, Weight: 0.01}}
	g := NewGenerator(items)

	for i := 0; i < 100; i++ {
		assert.Equal(t, "only", g.Draw().ID)
	}
}

func TestDraw_Distribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping distribution test in short mode")
	}

	// ARRANGE
	src := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test source
	g := NewGenerator(twoItems(), WithRandomSource(src.Float64))
	const draws = 1_000_000

	// ACT
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		counts[g.Draw().ID]++
	}

	// ASSERT
	assert.InDelta(t, 0.90, float64(counts["a"])/draws, 0.01)
	assert.InDelta(t, 0.10, float64(counts["b"])/draws, 0.01)
}

func TestDraw_CatalogDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping distribution test in short mode")
	}

	items := catalog.Default().Items()
	src := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic test source
	g := NewGenerator(items, WithRandomSource(src.Float64))
	const draws = 500_000

	byRarity := make(map[domain.Rarity]int)
	for i := 0; i < draws; i++ {
		byRarity[g.Draw().Rarity]++
	}

	expected := make(map[domain.Rarity]float64)
	for _, item := range items {
		expected[item.Rarity] += item.Weight / g.total
	}
	for rarity, p := range expected {
		assert.InDelta(t, p, float64(byRarity[rarity])/draws, 0.01, "rarity %s", rarity)
	}
}

func TestDrawN(t *testing.T) {
	g := NewGenerator(twoItems(), WithRandomSource(fixed(0)))

	assert.Nil(t, g.DrawN(0))
	assert.Nil(t, g.DrawN(-3))

	drawn := g.DrawN(5)
	require.Len(t, drawn, 5)
	for _, item := range drawn {
		assert.Equal(t, "a", item.ID)
	}
}

func TestProbability(t *testing.T) {
	g := NewGenerator(twoItems())

	assert.InDelta(t, 0.9, g.Probability("a"), 1e-9)
	assert.InDelta(t, 0.1, g.Probability("b"), 1e-9)
	assert.Zero(t, g.Probability("missing"))
	assert.InDelta(t, 100.0, g.total, 1e-9)
}

func TestNewGenerator_CopiesItems(t *testing.T) {
	items := twoItems()
	g := NewGenerator(items, WithRandomSource(fixed(0)))

	items[0].ID = "mutated"
	assert.Equal(t, "a", g.Draw().ID)
}

func TestDraw_ConcurrentUse(t *testing.T) {
	g := NewGenerator(catalog.Default().Items())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				item := g.Draw()
				assert.NotEmpty(t, item.ID)
			}
		}()
	}
	wg.Wait()
}
