package config

import "time"

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendSQLite   = "sqlite"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultStorageBackend  = StorageBackendPostgres
	DefaultDBMaxConns      = 10
	DefaultSQLitePath      = "fruitclicker.db"
	DefaultAutoclickerTick = time.Second
	DefaultWorkerCount     = 4
	DefaultClickRateLimit  = 20.0
	DefaultClickRateBurst  = 40
	DefaultPlayerCacheSize = 1024
	DefaultPlayerCacheTTL  = 30 * time.Second
)
