package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

// Кэширование результатов резолва

func (c *CacheAdapter) GetAvailability(ctx context.Context, spaceID uuid.UUID, date json_types.Date) (domain.Availability, bool) {
	c.availabilityCache.mu.RLock()
	defer c.availabilityCache.mu.RUnlock()

	key := availabilityCacheKey{SpaceID: spaceID, Date: date.Value}

	entry, exists := c.availabilityCache.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.availability.get.miss", out.LogFields{
			"spaceId": spaceID,
			"date":    date,
		})
		return domain.Availability{}, false
	}

	// Запись старше TTL равнозначна промаху
	if time.Since(entry.StoredAt) > c.availabilityCache.ttl {
		c.logger.Debug("cache.availability.get.expired", out.LogFields{
			"spaceId":  spaceID,
			"date":     date,
			"storedAt": entry.StoredAt,
		})
		return domain.Availability{}, false
	}

	c.logger.Debug("cache.availability.get.hit", out.LogFields{
		"spaceId":    spaceID,
		"date":       date,
		"slotsCount": len(entry.Availability.Slots),
	})

	return entry.Availability, true
}

func (c *CacheAdapter) StoreAvailability(ctx context.Context, spaceID uuid.UUID, date json_types.Date, availability domain.Availability) {
	c.availabilityCache.mu.Lock()
	defer c.availabilityCache.mu.Unlock()

	c.logger.Debug("cache.availability.store", out.LogFields{
		"spaceId":    spaceID,
		"date":       date,
		"slotsCount": len(availability.Slots),
	})

	key := availabilityCacheKey{SpaceID: spaceID, Date: date.Value}

	c.availabilityCache.cache.Add(key, &availabilityCacheEntry{
		Availability: availability,
		StoredAt:     time.Now(),
	})
}

// InvalidateSpace выбрасывает все даты одного пространства
func (c *CacheAdapter) InvalidateSpace(ctx context.Context, spaceID uuid.UUID) {
	c.availabilityCache.mu.Lock()
	defer c.availabilityCache.mu.Unlock()

	removed := 0
	for _, key := range c.availabilityCache.cache.Keys() {
		if key.SpaceID == spaceID {
			c.availabilityCache.cache.Remove(key)
			removed++
		}
	}

	c.logger.Debug("cache.availability.invalidate_space", out.LogFields{
		"spaceId": spaceID,
		"removed": removed,
	})
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.availabilityCache.mu.Lock()
	defer c.availabilityCache.mu.Unlock()

	c.availabilityCache.cache.Purge()

	c.logger.Debug("cache.availability.invalidate_all", out.LogFields{})
}
