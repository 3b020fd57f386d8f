package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/google/uuid"
)

type commodityEntry = cache.Entry[models.Commodity]

// commodityCache keeps commodity:<id> entries versioned. Fills and writes go
// through SetIfNewer, so a fill read before a write can never replace what
// the write stored, and deletes leave a tombstone instead of an empty key.
type commodityCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// lookup reports a tombstone as a hit with a nil record.
func (c commodityCache) lookup(ctx context.Context, id uuid.UUID) (*models.Commodity, bool) {
	var entry commodityEntry

	hit, err := c.cache.Get(ctx, cache.Key(cache.CommodityKeyPrefix, id), &entry)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Commodity cache read failed", slog.String("error", err.Error()))
		return nil, false
	}

	if !hit {
		return nil, false
	}

	return entry.Value, true
}

func (c commodityCache) store(ctx context.Context, commodity *models.Commodity) {
	c.put(ctx, commodity.ID, cache.NewEntry(commodity, commodity.Version))
}

func (c commodityCache) bury(ctx context.Context, ids ...uuid.UUID) {
	for _, id := range ids {
		c.put(ctx, id, cache.Tombstone[models.Commodity]())
	}
}

func (c commodityCache) put(ctx context.Context, id uuid.UUID, entry commodityEntry) {
	_, err := c.cache.SetIfNewer(ctx, cache.Key(cache.CommodityKeyPrefix, id), entry, entry.Version, c.ttl)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Commodity cache write failed",
			slog.String("commodityId", id.String()),
			slog.String("error", err.Error()))
	}
}
