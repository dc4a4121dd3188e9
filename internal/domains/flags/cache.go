package flags

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"caminodevida-backend/pkg/logger"
)

// snapshot is one complete fetch for a cache key. Snapshots are immutable
// once stored; a refresh swaps the whole entry, so readers always see the
// latest complete fetch, never a partial one.
type snapshot struct {
	flags     []FeatureFlag
	fetchedAt time.Time
}

// Cache is a read-through cache in front of the flag store. Entries are
// stored without expiry: only their validity expires, so a stale snapshot
// stays available to serve when a refresh fails. Concurrent refreshes of
// the same key race benignly (last writer wins).
type Cache struct {
	repo  Repository
	ttl   time.Duration
	store *gocache.Cache

	// now is swappable in tests.
	now func() time.Time
}

// NewCache builds a flag cache with the given TTL in seconds (the
// FLAGS_CACHE_TTL setting; 300 by default).
func NewCache(repo Repository, ttlSeconds int) *Cache {
	if ttlSeconds <= 0 {
		ttlSeconds = 300
	}
	return &Cache{
		repo:  repo,
		ttl:   time.Duration(ttlSeconds) * time.Second,
		store: gocache.New(gocache.NoExpiration, 0),
		now:   time.Now,
	}
}

// GetFlags returns the flags visible to countryCode (global rows plus
// country-specific overrides). Within the TTL the cached snapshot is
// returned unchanged; past it, the store is queried and the snapshot
// swapped. On query failure the previous snapshot is served even if
// stale, and the built-in defaults only when nothing was ever cached.
func (c *Cache) GetFlags(ctx context.Context, countryCode string) Result {
	key := CacheKey(countryCode)

	var cached *snapshot
	if v, found := c.store.Get(key); found {
		s := v.(snapshot)
		cached = &s
		if c.now().Sub(s.fetchedAt) < c.ttl {
			return Result{Flags: s.flags}
		}
	}

	fetched, err := c.repo.FetchFlags(ctx, countryFor(key))
	if err != nil {
		logger.Error("flags: store query failed for key "+key, err)
		if cached != nil {
			return Result{Flags: cached.flags, Stale: true}
		}
		return Result{Flags: DefaultFlags, Degraded: true}
	}

	c.store.Set(key, snapshot{flags: fetched, fetchedAt: c.now()}, gocache.NoExpiration)
	return Result{Flags: fetched}
}

// IsEnabled resolves a single flag for a country: an exact country row
// wins over the global row; with neither present the flag is off.
func (c *Cache) IsEnabled(ctx context.Context, key, countryCode string) bool {
	res := c.GetFlags(ctx, countryCode)

	code := strings.ToUpper(strings.TrimSpace(countryCode))
	var global *FeatureFlag
	for i := range res.Flags {
		f := &res.Flags[i]
		if f.Key != key {
			continue
		}
		if !f.IsGlobal() && code != "" && strings.EqualFold(*f.CountryCode, code) {
			return f.Enabled
		}
		if f.IsGlobal() {
			global = f
		}
	}
	if global != nil {
		return global.Enabled
	}
	return false
}

// Clear drops the cached snapshot for one country, or every snapshot when
// countryCode is empty.
func (c *Cache) Clear(countryCode string) {
	if strings.TrimSpace(countryCode) == "" {
		c.store.Flush()
		return
	}
	c.store.Delete(CacheKey(countryCode))
}

// countryFor converts a cache key back into the repository argument.
func countryFor(key string) string {
	if key == GlobalCacheKey {
		return ""
	}
	return key
}
