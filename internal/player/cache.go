package player

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

type cachedPlayerEntry struct {
	Version  string
	Player   domain.Player
	CachedAt time.Time
}

// generationStripes bounds the invalidation counters; ids sharing a stripe
// only cost each other a skipped fill.
const generationStripes = 256

// playerCache is an expiring LRU of player profiles keyed by player id.
// Entries are copies, so callers can never mutate cached state.
//
// A fill read from the store before an invalidation must not land after it,
// so every invalidation bumps a generation and fills carry the generation
// they started under.
type playerCache struct {
	lru *expirable.LRU[string, *cachedPlayerEntry]

	mu   sync.Mutex
	gens [generationStripes]uint64
}

func newPlayerCache(size int, ttl time.Duration) *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
	}
}

// Get returns a cached copy, dropping entries written under an older schema
func (c *playerCache) Get(playerID string) (*domain.Player, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}
	p := entry.Player
	return &p, true
}

func (c *playerCache) Set(p *domain.Player) {
	c.lru.Add(p.ID, &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		Player:   *p,
		CachedAt: time.Now(),
	})
}

// Generation is taken before reading the store for a later SetIfUnchanged
func (c *playerCache) Generation(playerID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[stripe(playerID)]
}

// SetIfUnchanged caches p unless playerID was invalidated since gen was taken
func (c *playerCache) SetIfUnchanged(p *domain.Player, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[stripe(p.ID)] != gen {
		return false
	}
	c.Set(p)
	return true
}

func (c *playerCache) Invalidate(playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[stripe(playerID)]++
	c.lru.Remove(playerID)
}

func (c *playerCache) Len() int {
	return c.lru.Len()
}

func stripe(playerID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(playerID))
	return h.Sum32() % generationStripes
}
