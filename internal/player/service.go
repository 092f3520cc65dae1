// Package player is the registry of economy participants.
package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/repository"
)

// Service defines player registry operations
type Service interface {
	RegisterPlayer(ctx context.Context, username string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	Invalidate(playerID string)
}

type service struct {
	repo  repository.Player
	cache *playerCache
	now   func() time.Time
	newID func() string
}

// NewService creates a player service with a profile cache of the given size and TTL.
// Non-positive values fall back to the defaults.
func NewService(repo repository.Player, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newPlayerCache(cacheSize, cacheTTL),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID: uuid.NewString,
	}
}

func (s *service) RegisterPlayer(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterPlayerCalled, "username", username)

	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < domain.MinUsernameLength || n > domain.MaxUsernameLength {
		return nil, fmt.Errorf(ErrMsgInvalidUsernameFmt, domain.ErrMsgInvalidUsername, domain.ErrInvalidInput)
	}

	p := &domain.Player{
		ID:        s.newID(),
		Username:  username,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf(ErrMsgCreatePlayerFailed, errors.Join(domain.ErrInternal, err))
	}

	s.cache.Set(p)
	log.Info(LogMsgPlayerRegistered, "player_id", p.ID)
	return p, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	if p, ok := s.cache.Get(playerID); ok {
		return p, nil
	}

	gen := s.cache.Generation(playerID)
	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, wrapLookup(err)
	}
	if !s.cache.SetIfUnchanged(p, gen) {
		logger.FromContext(ctx).Debug(LogMsgStaleFillSkipped, "player_id", playerID)
	}
	return p, nil
}

// GetPlayerByUsername bypasses the cache, which is keyed by id
func (s *service) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	p, err := s.repo.GetPlayerByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, wrapLookup(err)
	}
	return p, nil
}

func (s *service) Invalidate(playerID string) {
	s.cache.Invalidate(playerID)
}

func wrapLookup(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf(ErrMsgGetPlayerFailed, errors.Join(domain.ErrInternal, err))
}

// CacheInvalidator drops cached profiles whenever a committed economy change touches them
type CacheInvalidator struct {
	players Service
}

// NewCacheInvalidator creates an invalidator for the given service
func NewCacheInvalidator(players Service) *CacheInvalidator {
	return &CacheInvalidator{players: players}
}

// Register subscribes to every event that can change a balance or counter
func (c *CacheInvalidator) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.ItemCollected,
		event.ItemSold,
		event.ListingSold,
		event.AutoclickerPurchased,
	} {
		bus.Subscribe(t, c.HandleEvent)
	}
}

// HandleEvent invalidates every player named in the payload
func (c *CacheInvalidator) HandleEvent(ctx context.Context, evt event.Event) error {
	ids, err := playerIDs(evt)
	if err != nil {
		return err
	}
	for _, id := range ids {
		c.players.Invalidate(id)
	}
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated, "type", evt.Type, "players", len(ids))
	return nil
}

func playerIDs(evt event.Event) ([]string, error) {
	switch evt.Type {
	case event.ItemCollected:
		p, err := event.DecodePayload[event.ItemCollectedPayloadV1](evt.Payload)
		return []string{p.PlayerID}, err
	case event.ItemSold:
		p, err := event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload)
		return []string{p.PlayerID}, err
	case event.ListingSold:
		p, err := event.DecodePayload[event.ListingPayloadV1](evt.Payload)
		return []string{p.SellerID, p.BuyerID}, err
	case event.AutoclickerPurchased:
		p, err := event.DecodePayload[event.AutoclickerPurchasedPayloadV1](evt.Payload)
		return []string{p.PlayerID}, err
	}
	return nil, nil
}
