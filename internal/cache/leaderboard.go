package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cinehub/internal/scoring"

	"github.com/redis/go-redis/v9"
)

const versionKey = "leaderboard:version"

// LeaderboardCache keeps assembled leaderboard snapshots in Redis.
// Snapshots are keyed by filter plus a version counter; invalidation
// bumps the counter so stale snapshots simply expire instead of being
// hunted down key by key. Correctness never depends on the cache: a miss
// recomputes everything from a fresh read.
type LeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewLeaderboardCache connects to Redis using a redis:// URL the same way
// the rest of the config does.
func NewLeaderboardCache(redisURL, password string, ttl time.Duration) (*LeaderboardCache, error) {
	addr := strings.TrimPrefix(redisURL, "redis://")
	addr = strings.TrimPrefix(addr, "rediss://")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &LeaderboardCache{rdb: rdb, ttl: ttl}, nil
}

// Get returns a cached snapshot for the filter key, or false on any miss
// or error. Cache errors are never surfaced; the caller recomputes.
func (c *LeaderboardCache) Get(ctx context.Context, filterKey string) ([]scoring.LeaderboardRow, bool) {
	key, err := c.snapshotKey(ctx, filterKey)
	if err != nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var rows []scoring.LeaderboardRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

// Set stores a snapshot under the current version.
func (c *LeaderboardCache) Set(ctx context.Context, filterKey string, rows []scoring.LeaderboardRow) {
	key, err := c.snapshotKey(ctx, filterKey)
	if err != nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}

// InvalidateLeaderboard bumps the version counter. Every write path that
// changes any rating calls this; old snapshots become unreachable and age
// out via TTL.
func (c *LeaderboardCache) InvalidateLeaderboard(ctx context.Context) error {
	return c.rdb.Incr(ctx, versionKey).Err()
}

// Close releases the underlying Redis connection.
func (c *LeaderboardCache) Close() error {
	return c.rdb.Close()
}

func (c *LeaderboardCache) snapshotKey(ctx context.Context, filterKey string) (string, error) {
	version, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("leaderboard:v%d:%s", version, filterKey), nil
}
