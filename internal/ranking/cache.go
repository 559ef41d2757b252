package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

const (
	// DefaultCacheTTL bounds how long a standings read can lag the ledger.
	DefaultCacheTTL = time.Minute

	// DefaultCacheSize covers every concurrently-viewed raid comfortably.
	DefaultCacheSize = 128
)

type cacheKey struct {
	raidID int64
	limit  int
}

// CachedReader serves ranking reads through an expiring LRU so the public
// leaderboard endpoint doesn't hammer the store on every poll.
type CachedReader struct {
	rankingRepo repository.Ranking
	cache       *expirable.LRU[cacheKey, []domain.RaidRanking]
}

// NewCachedReader creates a caching reader over the ranking repository.
func NewCachedReader(rankingRepo repository.Ranking, size int, ttl time.Duration) *CachedReader {
	return &CachedReader{
		rankingRepo: rankingRepo,
		cache:       expirable.NewLRU[cacheKey, []domain.RaidRanking](size, nil, ttl),
	}
}

// GetByRaid returns standings for a raid, cached per (raid, limit).
func (c *CachedReader) GetByRaid(ctx context.Context, raidID int64, limit int) ([]domain.RaidRanking, error) {
	key := cacheKey{raidID: raidID, limit: limit}
	if rankings, ok := c.cache.Get(key); ok {
		return rankings, nil
	}

	rankings, err := c.rankingRepo.GetByRaid(ctx, raidID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load rankings: %w", err)
	}
	c.cache.Add(key, rankings)
	return rankings, nil
}

// Invalidate drops all cached entries. Called after a rebuild so fresh
// standings show up immediately instead of after TTL expiry.
func (c *CachedReader) Invalidate() {
	c.cache.Purge()
}
