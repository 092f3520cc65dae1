package player

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Second
)

// CacheSchemaVersion is bumped whenever the cached Player shape changes
const CacheSchemaVersion = "1.1"

// Log messages
const (
	LogMsgRegisterPlayerCalled = "RegisterPlayer called"
	LogMsgPlayerRegistered     = "Player registered"
	LogMsgCacheInvalidated     = "Player cache invalidated"
	LogMsgStaleFillSkipped     = "Skipped caching player invalidated during read"
)

// Error formats
const (
	ErrMsgCreatePlayerFailed = "failed to create player: %w"
	ErrMsgGetPlayerFailed    = "failed to get player: %w"
	ErrMsgInvalidUsernameFmt = "%s: %w"
)
