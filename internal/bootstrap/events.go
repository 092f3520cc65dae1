package bootstrap

import (
	"log/slog"

	"github.com/osse101/FruitClicker_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus. Events are published
// only after a ledger transaction commits, so subscribers never see rolled back state.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
