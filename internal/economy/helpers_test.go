package economy

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitClicker_Go/internal/catalog"
	"github.com/osse101/FruitClicker_Go/internal/database/sqlite"
	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/reward"
)

var testClock = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		[]domain.CatalogItem{
			{ID: "apple", Rarity: domain.RarityCommon, Weight: 60},
			{ID: "banana", Rarity: domain.RarityUncommon, Weight: 25},
			{ID: "grapes", Rarity: domain.RarityRare, Weight: 10},
			{ID: "pineapple", Rarity: domain.RarityEpic, Weight: 4},
			{ID: "dragon-fruit", Rarity: domain.RarityLegendary, Weight: 1},
		},
		[]domain.Autoclicker{
			{ID: "auto-1", Name: "Helper", Price: 100, Rate: 1},
			{ID: "auto-2", Name: "Farmer", Price: 500, Rate: 3},
		},
	)
	require.NoError(t, err)
	return cat
}

// eventRecorder captures every published economy event
type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// fakeClock is a settable service clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	svc    *service
	store  *sqlite.Store
	events *eventRecorder
	clock  *fakeClock
}

// newTestEnv wires a service to a fresh SQLite ledger.
// Draws always return the first catalog item.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "economy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cat := testCatalog(t)
	gen := reward.NewGenerator(cat.Items(), reward.WithRandomSource(func() float64 { return 0 }))

	bus := event.NewMemoryBus()
	rec := &eventRecorder{}
	for _, typ := range []event.Type{
		event.ItemCollected, event.ItemSold,
		event.ListingCreated, event.ListingSold, event.ListingCancelled,
		event.TradeOffered, event.TradeResolved, event.AutoclickerPurchased,
	} {
		bus.Subscribe(typ, rec.handle)
	}

	clock := &fakeClock{now: testClock}
	svc := NewService(store, cat, gen, bus).(*service)
	svc.now = clock.Now
	return &testEnv{svc: svc, store: store, events: rec, clock: clock}
}

func (e *testEnv) createPlayer(t *testing.T, username string, balance int) string {
	t.Helper()
	p := &domain.Player{
		ID:        uuid.NewString(),
		Username:  username,
		Balance:   balance,
		CreatedAt: testClock,
	}
	require.NoError(t, e.store.CreatePlayer(context.Background(), p))
	return p.ID
}

// give credits items straight through the ledger, without the mint reward
func (e *testEnv) give(t *testing.T, playerID, itemID string, quantity int) {
	t.Helper()
	ctx := context.Background()
	tx, err := e.store.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.CreditHolding(ctx, playerID, itemID, quantity, testClock)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
}

func (e *testEnv) quantity(t *testing.T, playerID, itemID string) int {
	t.Helper()
	holdings, err := e.store.GetInventory(context.Background(), playerID)
	require.NoError(t, err)
	for _, h := range holdings {
		if h.ItemID == itemID {
			return h.Quantity
		}
	}
	return 0
}

func (e *testEnv) balance(t *testing.T, playerID string) int {
	t.Helper()
	p, err := e.store.GetPlayer(context.Background(), playerID)
	require.NoError(t, err)
	return p.Balance
}

func (e *testEnv) listingCount(t *testing.T) int {
	t.Helper()
	listings, err := e.store.GetListings(context.Background())
	require.NoError(t, err)
	return len(listings)
}

func (e *testEnv) tradeStatus(t *testing.T, playerID, tradeID string) domain.TradeStatus {
	t.Helper()
	offers, err := e.store.GetTradeOffers(context.Background(), playerID)
	require.NoError(t, err)
	for _, o := range offers {
		if o.ID == tradeID {
			return o.Status
		}
	}
	t.Fatalf("trade %s not found", tradeID)
	return ""
}
