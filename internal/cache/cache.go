// Package cache provides an optional Redis-backed cache for availability
// responses. A nil *AvailabilityCache is safe to use and caches nothing.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache stores slot lists keyed by barber, date and duration.
type AvailabilityCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// New creates a cache over the given Redis client. Returns nil when the
// client is nil or the TTL is non-positive, disabling caching.
func New(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &AvailabilityCache{redis: client, ttl: ttl}
}

func slotsKey(barberID, date string, duration int) string {
	return fmt.Sprintf("slots:%s:%s:%d", barberID, date, duration)
}

// GetSlots returns the cached slot list and whether it was present.
func (c *AvailabilityCache) GetSlots(ctx context.Context, barberID, date string, duration int) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, slotsKey(barberID, date, duration)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// SetSlots stores a slot list with the configured TTL. Failures are
// ignored; the cache is best-effort.
func (c *AvailabilityCache) SetSlots(ctx context.Context, barberID, date string, duration int, slots []string) {
	if c == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, slotsKey(barberID, date, duration), data, c.ttl).Err()
}

// InvalidateBarberDate drops every cached slot list for the barber and
// date, regardless of duration. Called after bookings and rule changes.
func (c *AvailabilityCache) InvalidateBarberDate(ctx context.Context, barberID, date string) {
	if c == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:%s:*", barberID, date)
	iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		_ = c.redis.Del(ctx, iter.Val()).Err()
	}
}

// InvalidateAll drops every cached slot list. Used for shop-wide rule
// changes where the affected barbers are not known.
func (c *AvailabilityCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.redis.Scan(ctx, 0, "slots:*", 100).Iterator()
	for iter.Next(ctx) {
		_ = c.redis.Del(ctx, iter.Val()).Err()
	}
}
