package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FruitClicker_Go/internal/catalog"
	"github.com/osse101/FruitClicker_Go/internal/config"
	"github.com/osse101/FruitClicker_Go/internal/economy"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/player"
	"github.com/osse101/FruitClicker_Go/internal/repository"
	"github.com/osse101/FruitClicker_Go/internal/reward"
	"github.com/osse101/FruitClicker_Go/internal/scheduler"
	"github.com/osse101/FruitClicker_Go/internal/worker"
)

// Application holds every long-lived component of a running process
type Application struct {
	Config    *config.Config
	Ledger    repository.Ledger
	EventBus  event.Bus
	Catalog   *catalog.Catalog
	Economy   economy.Service
	Players   player.Service
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// NewApplication opens the configured ledger and wires the services on top of it.
// Workers are created but not started; call StartWorkers for a serving process.
func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	ledger, err := OpenLedger(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewApplicationWithLedger(cfg, ledger)
}

// NewApplicationWithLedger wires the services on an already opened ledger
func NewApplicationWithLedger(cfg *config.Config, ledger repository.Ledger) (*Application, error) {
	cat := catalog.Default()
	bus := InitializeEventSystem()

	players := player.NewService(ledger, cfg.PlayerCacheSize, cfg.PlayerCacheTTL)
	econ := economy.NewService(ledger, cat, reward.NewGenerator(cat.Items()), bus)

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:      bus,
		PlayerService: players,
	}); err != nil {
		return nil, err
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerCount*WorkerQueueMultiplier)

	return &Application{
		Config:    cfg,
		Ledger:    ledger,
		EventBus:  bus,
		Catalog:   cat,
		Economy:   econ,
		Players:   players,
		Pool:      pool,
		Scheduler: scheduler.New(pool),
	}, nil
}

// StartWorkers starts the worker pool and schedules autoclicker production.
// Returns false when production is disabled by a zero tick interval.
func (a *Application) StartWorkers() bool {
	a.Pool.Start()

	tick := worker.NewAutoclickerTick(a.Economy, a.Pool)
	if !a.Scheduler.Schedule(JobNameAutoclickerTick, a.Config.AutoclickerTick, tick) {
		slog.Info(LogMsgAutoclickerDisabled)
		return false
	}
	slog.Info(LogMsgAutoclickerScheduled, "interval", a.Config.AutoclickerTick, "workers", a.Config.WorkerCount)
	return true
}
