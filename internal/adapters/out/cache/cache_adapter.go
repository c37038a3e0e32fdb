package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/space-booking-slots-resolver/internal/config"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

// Ключ кэша - пара (пространство, дата)
type availabilityCacheKey struct {
	SpaceID uuid.UUID
	Date    string
}

type availabilityCacheEntry struct {
	Availability domain.Availability
	StoredAt     time.Time
}

type availabilityCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[availabilityCacheKey, *availabilityCacheEntry]
	ttl   time.Duration
}

type CacheAdapter struct {
	availabilityCache *availabilityCache
	logger            out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruAvailabilityCache, err := lru.New[availabilityCacheKey, *availabilityCacheEntry](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.availability.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &CacheAdapter{
		availabilityCache: &availabilityCache{
			cache: lruAvailabilityCache,
			ttl:   time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
		},
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}
