// Package cache keeps recent snapshots in Redis so repeated filter applies
// within one dashboard session do not refetch all five collections.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/waffyhq/waffy-dashboard/internal/source"
)

type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

func key(userKey string) string {
	return "waffy:snapshot:" + userKey
}

// Get returns the cached snapshot for a user. Any Redis failure counts as a
// miss; the caller falls back to a direct fetch.
func (c *SnapshotCache) Get(ctx context.Context, userKey string) (source.Snapshot, bool) {
	var snap source.Snapshot
	if c == nil || c.rdb == nil {
		return snap, false
	}

	raw, err := c.rdb.Get(ctx, key(userKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("snapshot cache get failed: %v", err)
		}
		return snap, false
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Printf("snapshot cache decode failed: %v", err)
		return snap, false
	}
	return snap, true
}

func (c *SnapshotCache) Set(ctx context.Context, userKey string, snap source.Snapshot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		log.Printf("snapshot cache encode failed: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, key(userKey), raw, c.ttl).Err(); err != nil {
		log.Printf("snapshot cache set failed: %v", err)
	}
}

// Invalidate drops a user's snapshot, used after an order status write so the
// next load reflects it.
func (c *SnapshotCache) Invalidate(ctx context.Context, userKey string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(userKey)).Err(); err != nil {
		log.Printf("snapshot cache invalidate failed: %v", err)
	}
}
