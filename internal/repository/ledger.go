package repository

import "context"

// Ledger is a complete storage backend
type Ledger interface {
	Economy
	Player
	Ping(ctx context.Context) error
	Close() error
}
