package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/metrics"
	"github.com/osse101/FruitClicker_Go/internal/player"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus      event.Bus
	PlayerService player.Service
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (economy counters)
// - Player cache invalidator (drops stale balances after a commit)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	player.NewCacheInvalidator(deps.PlayerService).Register(deps.EventBus)
	slog.Info(LogMsgCacheInvalidatorRegistered)

	return nil
}
