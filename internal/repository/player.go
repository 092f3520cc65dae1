package repository

import (
	"context"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// Player defines the interface for player registry persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
}
