package repository

import (
	"context"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// Snapshotter is implemented by backends that support offline save files
type Snapshotter interface {
	ExportPlayer(ctx context.Context, playerID string) (*domain.PlayerSnapshot, error)
	ImportPlayer(ctx context.Context, snapshot *domain.PlayerSnapshot) error
	ResetPlayer(ctx context.Context, playerID string) error
}
