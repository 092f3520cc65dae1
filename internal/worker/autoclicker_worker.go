package worker

import (
	"context"
	"fmt"

	"github.com/osse101/FruitClicker_Go/internal/economy"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/metrics"
)

// Producer runs autoclicker production. economy.Service satisfies it.
type Producer interface {
	AutoclickerOwners(ctx context.Context) ([]string, error)
	ProcessAutoclickers(ctx context.Context, playerID string) (*economy.ProductionResult, error)
}

// AutoclickerTick fans one production job per owning player out onto the pool
type AutoclickerTick struct {
	producer Producer
	pool     *Pool
}

// NewAutoclickerTick creates the scheduled tick job
func NewAutoclickerTick(producer Producer, pool *Pool) *AutoclickerTick {
	return &AutoclickerTick{producer: producer, pool: pool}
}

// Process lists owners and enqueues their production. Players whose job does
// not fit in the queue are skipped until the next tick.
func (t *AutoclickerTick) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	owners, err := t.producer.AutoclickerOwners(ctx)
	if err != nil {
		log.Error(LogMsgTickOwnersFailed, "error", err)
		return fmt.Errorf("autoclicker tick: %w", err)
	}
	log.Debug(LogMsgTickStarted, "owners", len(owners))

	for _, playerID := range owners {
		if !t.pool.TryEnqueue(&ProductionJob{producer: t.producer, playerID: playerID}) {
			log.Warn(LogMsgQueueFull, "player_id", playerID)
			metrics.AutoclickerTicks.WithLabelValues(metrics.ResultSkipped).Inc()
		}
	}
	return nil
}

// ProductionJob runs one player's production tick
type ProductionJob struct {
	producer Producer
	playerID string
}

// Process runs the production transaction for the player
func (j *ProductionJob) Process(ctx context.Context) error {
	ctx = logger.WithPlayerID(ctx, j.playerID)
	if _, err := j.producer.ProcessAutoclickers(ctx, j.playerID); err != nil {
		metrics.AutoclickerTicks.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("%s: %w", LogMsgProductionFailed, err)
	}
	metrics.AutoclickerTicks.WithLabelValues(metrics.ResultOK).Inc()
	return nil
}
