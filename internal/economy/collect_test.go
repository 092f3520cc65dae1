package economy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
)

func TestCreditItem_CreatesThenIncrements(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "clicker", 0)

	// ACT
	first, err := env.svc.CreditItem(ctx, p, "banana")
	require.NoError(t, err)
	second, err := env.svc.CreditItem(ctx, p, "banana")
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, 2*domain.MintReward, env.balance(t, p))

	player, err := env.store.GetPlayer(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 2, player.TotalItemsCollected)
}

func TestCreditItem_MintRewardIgnoresRarity(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayer(t, "clicker", 0)

	_, err := env.svc.CreditItem(context.Background(), p, "dragon-fruit")

	require.NoError(t, err)
	assert.Equal(t, domain.MintReward, env.balance(t, p))
}

func TestCreditItem_NotFound(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayer(t, "clicker", 0)

	_, err := env.svc.CreditItem(context.Background(), p, "durian")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = env.svc.CreditItem(context.Background(), "missing-player", "apple")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollect_DrawsAndCredits(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t)
	p := env.createPlayer(t, "clicker", 0)

	// ACT
	result, err := env.svc.Collect(context.Background(), p)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "apple", result.Item.ID)
	assert.Equal(t, 1, result.Holding.Quantity)
	assert.Equal(t, domain.MintReward, result.Coins)

	collected := env.events.ofType(event.ItemCollected)
	require.Len(t, collected, 1)
	payload := collected[0].Payload.(event.ItemCollectedPayloadV1)
	assert.Equal(t, SourceClick, payload.Source)
	assert.Equal(t, "common", payload.Rarity)
}

func TestProcessAutoclickers_ProducesRateTimesQuantityPerSecond(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "idle", 1100)
	_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-1")
	require.NoError(t, err)
	_, err = env.svc.PurchaseAutoclicker(ctx, p, "auto-2")
	require.NoError(t, err)
	_, err = env.svc.PurchaseAutoclicker(ctx, p, "auto-2")
	require.NoError(t, err)
	require.Equal(t, 0, env.balance(t, p))

	// ACT
	env.clock.Advance(2 * time.Second)
	result, err := env.svc.ProcessAutoclickers(ctx, p)

	// ASSERT: (1*1 + 3*2) per second, for two seconds
	require.NoError(t, err)
	assert.Equal(t, 14, result.Clicks)
	assert.Len(t, result.ItemIDs, 14)
	assert.Equal(t, 14*domain.MintReward, result.Coins)
	assert.Equal(t, 14, env.quantity(t, p, "apple"))
	assert.Equal(t, 14*domain.MintReward, env.balance(t, p))
	assert.Len(t, env.events.ofType(event.ItemCollected), 14)
}

func TestProcessAutoclickers_BackToBackTicksShareOneInterval(t *testing.T) {
	// ARRANGE: ten Farmers make 30 clicks a second
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "farmer", 5000)
	for i := 0; i < 10; i++ {
		_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-2")
		require.NoError(t, err)
	}
	env.clock.Advance(time.Second)

	// ACT
	total := 0
	for i := 0; i < 40; i++ {
		result, err := env.svc.ProcessAutoclickers(ctx, p)
		require.NoError(t, err)
		total += result.Clicks
	}

	// ASSERT
	assert.Equal(t, 30, total)
	assert.Equal(t, 30, env.quantity(t, p, "apple"))
	assert.Equal(t, 30*domain.MintReward, env.balance(t, p))
}

func TestProcessAutoclickers_ConcurrentTicksShareOneInterval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "farmer", 5000)
	for i := 0; i < 10; i++ {
		_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-2")
		require.NoError(t, err)
	}
	env.clock.Advance(time.Second)

	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := env.svc.ProcessAutoclickers(ctx, p)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			total += result.Clicks
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, total)
	assert.Equal(t, 30, env.quantity(t, p, "apple"))
}

func TestProcessAutoclickers_NothingBeforeTimePasses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "eager", 500)
	_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-2")
	require.NoError(t, err)

	result, err := env.svc.ProcessAutoclickers(ctx, p)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Clicks)
	assert.Equal(t, 0, env.quantity(t, p, "apple"))
}

func TestProcessAutoclickers_FractionsCarryOver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "slow", 100)
	_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-1")
	require.NoError(t, err)

	tests := []struct {
		advance time.Duration
		want    int
	}{
		{1500 * time.Millisecond, 1},
		{400 * time.Millisecond, 0},
		{100 * time.Millisecond, 1},
		{999 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		env.clock.Advance(tt.advance)
		result, err := env.svc.ProcessAutoclickers(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.Clicks, "after %s", tt.advance)
	}
	assert.Equal(t, 2, env.quantity(t, p, "apple"))
}

func TestProcessAutoclickers_BacklogIsBounded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "away", 100)
	_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-1")
	require.NoError(t, err)

	env.clock.Advance(time.Hour)
	result, err := env.svc.ProcessAutoclickers(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int(domain.MaxProductionBacklog/time.Second), result.Clicks)

	result, err = env.svc.ProcessAutoclickers(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Clicks)
}

func TestProcessAutoclickers_CappedClicksStayOwed(t *testing.T) {
	// ARRANGE: 30 clicks a second for a minute is 1800 clicks
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "farmer", 5000)
	for i := 0; i < 10; i++ {
		_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-2")
		require.NoError(t, err)
	}
	env.clock.Advance(time.Minute)

	// ACT
	first, err := env.svc.ProcessAutoclickers(ctx, p)
	require.NoError(t, err)
	second, err := env.svc.ProcessAutoclickers(ctx, p)
	require.NoError(t, err)

	// ASSERT: the cap consumes 33.334s; the remaining 26.666s is 799 clicks
	assert.Equal(t, domain.MaxClicksPerTick, first.Clicks)
	assert.Equal(t, 799, second.Clicks)
}

func TestPurchaseAutoclicker_SettlesAtOldRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createPlayer(t, "upgrader", 600)
	_, err := env.svc.PurchaseAutoclicker(ctx, p, "auto-1")
	require.NoError(t, err)
	env.clock.Advance(2 * time.Second)

	_, err = env.svc.PurchaseAutoclicker(ctx, p, "auto-2")
	require.NoError(t, err)
	result, err := env.svc.ProcessAutoclickers(ctx, p)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Clicks)
	assert.Equal(t, 2, env.quantity(t, p, "apple"))
	assert.Equal(t, 600-100+2*domain.MintReward-500, env.balance(t, p))
	assert.Len(t, env.events.ofType(event.ItemCollected), 2)
}

func TestProcessAutoclickers_LostClockRaceMintsNothing(t *testing.T) {
	// ARRANGE
	repo := &MockRepository{}
	tx := &MockTx{}
	last := testClock.Add(-time.Second)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetPlayer", mock.Anything, "p1").Return(&domain.Player{ID: "p1", LastProducedAt: &last}, nil)
	tx.On("GetPlayerAutoclickers", mock.Anything, "p1").
		Return([]domain.PlayerAutoclicker{{PlayerID: "p1", AutoclickerID: "auto-2", Quantity: 10}}, nil)
	tx.On("AdvanceProduction", mock.Anything, "p1", &last, testClock).Return(false, nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	svc := newMockService(t, repo)

	// ACT
	result, err := svc.ProcessAutoclickers(context.Background(), "p1")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 0, result.Clicks)
	tx.AssertNotCalled(t, "CreditHolding", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "RecordCollected", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestProcessAutoclickers_NoneOwned(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayer(t, "idle", 0)

	result, err := env.svc.ProcessAutoclickers(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Clicks)
	assert.Empty(t, result.ItemIDs)
	assert.Equal(t, 0, env.balance(t, p))
}

func TestProcessAutoclickers_UnknownPlayer(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ProcessAutoclickers(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestClicksFor_SkipsUnknownAutoclickers(t *testing.T) {
	env := newTestEnv(t)

	clicks := env.svc.clicksFor([]domain.PlayerAutoclicker{
		{AutoclickerID: "auto-2", Quantity: 4},
		{AutoclickerID: "retired", Quantity: 10},
	})

	assert.Equal(t, 12, clicks)
}
