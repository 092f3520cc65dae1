package bootstrap

import "time"

// =============================================================================
// Database Pool Configuration
// =============================================================================

const (
	// DBMaxConnIdleTime is how long an idle pooled connection is kept
	DBMaxConnIdleTime = 5 * time.Minute

	// DBMaxConnLifetime caps the age of any pooled connection
	DBMaxConnLifetime = time.Hour

	// DBConnectTimeout bounds the initial connect and migration
	DBConnectTimeout = 30 * time.Second
)

// =============================================================================
// Worker Configuration
// =============================================================================

const (
	// WorkerQueueMultiplier sizes the job queue relative to the worker count
	WorkerQueueMultiplier = 64

	// JobNameAutoclickerTick names the scheduled production job in logs
	JobNameAutoclickerTick = "autoclicker_tick"
)

// Log messages for startup
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingFruitClicker = "Starting FruitClicker"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgLedgerOpened         = "Ledger store opened"
	LogMsgAutoclickerScheduled = "Autoclicker production scheduled"
	LogMsgAutoclickerDisabled  = "Autoclicker production disabled"
)

// Error messages for startup
const (
	ErrMsgUnknownBackend      = "unknown storage backend %q"
	ErrMsgFailedOpenPostgres  = "failed to open postgres ledger"
	ErrMsgFailedMigrate       = "failed to migrate postgres ledger"
	ErrMsgFailedOpenSQLite    = "failed to open sqlite ledger"
	ErrMsgSnapshotUnsupported = "storage backend %q does not support save files"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgCacheInvalidatorRegistered = "Player cache invalidator registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingWorkers      = "Stopping autoclicker workers..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgLedgerCloseFailed    = "Ledger close failed"
)
