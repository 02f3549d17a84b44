package redis

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker suppresses repeated notification deliveries backed by Redis.
// Key format: notify:<user_id>:<fnv64(message)>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this (user, message) pair was delivered within
// the dedup TTL.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID, message string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, message)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records a delivery (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID, message string) error {
	return d.client.Set(ctx, d.key(userID, message), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID, message string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(message))
	return fmt.Sprintf("notify:%s:%x", userID, h.Sum64())
}
