package economy

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// CreditItem mints one unit of itemID to the player and pays the flat mint reward
func (s *service) CreditItem(ctx context.Context, playerID, itemID string) (*domain.ItemHolding, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreditItemCalled, "player_id", playerID, "item", itemID)

	item, err := s.lookupItem(itemID)
	if err != nil {
		return nil, err
	}

	holding, err := s.mint(ctx, playerID, item, SourceClick)
	if err != nil {
		return nil, err
	}
	return holding, nil
}

// Collect performs one click: draw an item and credit it in one transaction
func (s *service) Collect(ctx context.Context, playerID string) (*CollectResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCollectCalled, "player_id", playerID)

	item := s.generator.Draw()
	holding, err := s.mint(ctx, playerID, item, SourceClick)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemCollected, "player_id", playerID, "item", item.ID, "rarity", item.Rarity)
	return &CollectResult{Item: item, Holding: holding, Coins: domain.MintReward}, nil
}

func (s *service) mint(ctx context.Context, playerID string, item domain.CatalogItem, source string) (*domain.ItemHolding, error) {
	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	holding, err := tx.CreditHolding(ctx, playerID, item.ID, 1, s.now())
	if err != nil {
		return nil, wrapStore(ErrMsgCreditHoldingFailed, err)
	}
	if err := tx.RecordCollected(ctx, playerID, 1, domain.MintReward); err != nil {
		return nil, wrapStore(ErrMsgRecordCollectedFailed, err)
	}

	if err := s.commit(ctx, tx); err != nil {
		return nil, err
	}

	s.publish(ctx, collectedEvent(playerID, item, source))
	return holding, nil
}

// ProcessAutoclickers settles autoclicker production since the player's
// production clock. clicks = floor(sum(rate * quantity) * elapsed seconds),
// capped per call; uncounted fractions of a click stay on the clock.
func (s *service) ProcessAutoclickers(ctx context.Context, playerID string) (*ProductionResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgProcessAutoclickersCalled, "player_id", playerID)

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	drawn, err := s.produce(ctx, tx, playerID)
	if errors.Is(err, errClockMoved) {
		return &ProductionResult{ItemIDs: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, tx); err != nil {
		return nil, err
	}
	s.publishProduced(ctx, playerID, drawn)

	result := &ProductionResult{
		Clicks:  len(drawn),
		ItemIDs: make([]string, 0, len(drawn)),
		Coins:   len(drawn) * domain.MintReward,
	}
	for _, item := range drawn {
		result.ItemIDs = append(result.ItemIDs, item.ID)
	}
	if result.Clicks > 0 {
		log.Info(LogMsgAutoclickersProduced, "player_id", playerID, "clicks", result.Clicks, "coins", result.Coins)
	}
	return result, nil
}

// produce claims the interval since the player's production clock and credits
// what it earned inside tx. The clock moves with a compare-and-swap, so two
// transactions reading the same clock cannot both mint for it.
func (s *service) produce(ctx context.Context, tx repository.EconomyTx, playerID string) ([]domain.CatalogItem, error) {
	log := logger.FromContext(ctx)

	p, err := tx.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, wrapStore(ErrMsgGetPlayerFailed, err)
	}
	owned, err := tx.GetPlayerAutoclickers(ctx, playerID)
	if err != nil {
		return nil, wrapStore(ErrMsgGetAutoclickersFailed, err)
	}

	now := s.now()
	perSecond := s.clicksFor(owned)

	// Nothing accrues before the first autoclicker, so the clock just starts
	if p.LastProducedAt == nil || perSecond == 0 {
		return nil, s.advanceClock(ctx, tx, playerID, p.LastProducedAt, now)
	}

	start := *p.LastProducedAt
	elapsed := now.Sub(start)
	if elapsed <= 0 {
		return nil, nil
	}
	if elapsed > domain.MaxProductionBacklog {
		log.Warn(LogMsgBacklogForfeited, "player_id", playerID, "elapsed", elapsed, "limit", domain.MaxProductionBacklog)
		start = now.Add(-domain.MaxProductionBacklog)
		elapsed = domain.MaxProductionBacklog
	}

	clicks := int(int64(perSecond) * elapsed.Milliseconds() / 1000)
	if clicks > domain.MaxClicksPerTick {
		log.Warn(LogMsgClicksCapped, "player_id", playerID, "clicks", clicks, "cap", domain.MaxClicksPerTick)
		clicks = domain.MaxClicksPerTick
	}
	if clicks == 0 {
		return nil, nil
	}

	// Consume only the time the counted clicks took; the remainder carries over
	consumedMs := (int64(clicks)*1000 + int64(perSecond) - 1) / int64(perSecond)
	next := start.Add(time.Duration(consumedMs) * time.Millisecond)
	if err := s.advanceClock(ctx, tx, playerID, p.LastProducedAt, next); err != nil {
		return nil, err
	}

	drawn := s.generator.DrawN(clicks)
	counts := make(map[string]int, len(drawn))
	for _, item := range drawn {
		counts[item.ID]++
	}

	// Credit in a stable order so concurrent ticks lock rows the same way
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := tx.CreditHolding(ctx, playerID, id, counts[id], now); err != nil {
			return nil, wrapStore(ErrMsgCreditHoldingFailed, err)
		}
	}
	if err := tx.RecordCollected(ctx, playerID, clicks, clicks*domain.MintReward); err != nil {
		return nil, wrapStore(ErrMsgRecordCollectedFailed, err)
	}
	return drawn, nil
}

// errClockMoved means a concurrent transaction settled the same interval first
var errClockMoved = errors.New("production clock moved concurrently")

// advanceClock fails with errClockMoved when another transaction moved the clock first
func (s *service) advanceClock(ctx context.Context, tx repository.EconomyTx, playerID string, prev *time.Time, next time.Time) error {
	ok, err := tx.AdvanceProduction(ctx, playerID, prev, next)
	if err != nil {
		return wrapStore(ErrMsgAdvanceProductionFailed, err)
	}
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgProductionClaimed, "player_id", playerID)
		return errClockMoved
	}
	return nil
}

func (s *service) publishProduced(ctx context.Context, playerID string, drawn []domain.CatalogItem) {
	if len(drawn) == 0 {
		return
	}
	evts := make([]event.Event, 0, len(drawn))
	for _, item := range drawn {
		evts = append(evts, collectedEvent(playerID, item, SourceAutoclicker))
	}
	s.publish(ctx, evts...)
}

// clicksFor ignores holdings whose autoclicker is no longer in the catalog
func (s *service) clicksFor(owned []domain.PlayerAutoclicker) int {
	clicks := 0
	for _, pa := range owned {
		def, ok := s.catalog.Autoclicker(pa.AutoclickerID)
		if !ok {
			continue
		}
		clicks += def.Rate * pa.Quantity
	}
	return clicks
}

func collectedEvent(playerID string, item domain.CatalogItem, source string) event.Event {
	return event.New(event.ItemCollected, event.ItemCollectedPayloadV1{
		PlayerID: playerID,
		ItemID:   item.ID,
		Rarity:   string(item.Rarity),
		Coins:    domain.MintReward,
		Source:   source,
	})
}
