package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"ticketo/internal/models"
)

const eventsKey = "ticketo:events"

// EventCache is an optional read cache for the event catalog. A nil
// *EventCache is valid and disables caching entirely, so the catalog service
// never has to branch on configuration.
type EventCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	return &EventCache{Client: client, TTL: ttl}
}

// GetEvents returns the cached catalog and whether the cache was hit. Any
// redis failure counts as a miss; the store stays the source of truth.
func (c *EventCache) GetEvents(ctx context.Context) ([]models.Event, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, eventsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var events []models.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false
	}
	return events, true
}

func (c *EventCache) SetEvents(ctx context.Context, events []models.Event) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return
	}
	c.Client.Set(ctx, eventsKey, raw, c.TTL)
}

// Invalidate drops the cached catalog. Called after every catalog write.
func (c *EventCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.Client.Del(ctx, eventsKey)
}
