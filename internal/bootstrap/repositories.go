package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FruitClicker_Go/internal/config"
	"github.com/osse101/FruitClicker_Go/internal/database"
	"github.com/osse101/FruitClicker_Go/internal/database/postgres"
	"github.com/osse101/FruitClicker_Go/internal/database/sqlite"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// OpenLedger opens the storage backend selected by STORAGE_BACKEND.
// The postgres backend is migrated to the latest schema before it is returned;
// the sqlite backend applies its embedded schema on open.
func OpenLedger(ctx context.Context, cfg *config.Config) (repository.Ledger, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		return openPostgres(ctx, cfg)
	case config.StorageBackendSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		slog.Info(LogMsgLedgerOpened, "backend", cfg.StorageBackend, "path", cfg.SQLitePath)
		return store, nil
	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.StorageBackend)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Ledger, error) {
	ctx, cancel := context.WithTimeout(ctx, DBConnectTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPostgres, err)
	}
	if _, err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgLedgerOpened, "backend", cfg.StorageBackend, "host", cfg.DBHost, "db", cfg.DBName)
	return postgres.NewLedger(pool), nil
}

// Snapshotter returns the save-file capability of a ledger, if it has one
func Snapshotter(ledger repository.Ledger, backend string) (repository.Snapshotter, error) {
	snap, ok := ledger.(repository.Snapshotter)
	if !ok {
		return nil, fmt.Errorf(ErrMsgSnapshotUnsupported, backend)
	}
	return snap, nil
}
