package availability_service

import (
	"context"

	"github.com/google/uuid"
)

// Кэширование результатов резолва

func (s *AvailabilityService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}

func (s *AvailabilityService) InvalidateSpaceCache(ctx context.Context, spaceID uuid.UUID) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateSpace(ctx, spaceID)

	return nil
}

func (s *AvailabilityService) InvalidateAllCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateAll(ctx)

	return nil
}
