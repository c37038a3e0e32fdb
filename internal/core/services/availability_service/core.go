package availability_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/config"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/services/slot_formatter"
)

type AvailabilityService struct {
	storePort out.ConfigStorePort
	cachePort out.CachePort
	logger    out.LoggerPort
	cfg       *config.Config
}

func NewAvailabilityService(
	storePort out.ConfigStorePort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		storePort: storePort,
		cachePort: cachePort,
		cfg:       cfg,
		logger:    logger.WithModule("AvailabilityService"),
	}
}

func (s *AvailabilityService) ResolveSlots(ctx context.Context, spaceID uuid.UUID, date json_types.Date) (domain.Availability, error) {
	s.logger.Info("slots.resolve.started", out.LogFields{
		"spaceId": spaceID,
		"date":    date,
	})

	// Проверяем кэш только если он включен
	if s.cacheEnabled() {
		if availability, exists := s.cachePort.GetAvailability(ctx, spaceID, date); exists {
			s.logger.Debug("slots.resolve.cache.hit", out.LogFields{
				"spaceId":    spaceID,
				"date":       date,
				"slotsCount": len(availability.Slots),
			})
			return availability, nil
		}

		s.logger.Debug("slots.resolve.cache.miss", out.LogFields{
			"spaceId": spaceID,
			"date":    date,
		})
	}

	empty := domain.Availability{Slots: []domain.ResolvedSlot{}}

	hours, isSpecificDate, err := s.candidateHours(ctx, spaceID, date)
	if err != nil {
		return empty, err
	}

	// Пустой набор кандидатов - это штатное "доступности нет",
	// дефолтное окно не синтезируем
	if len(hours) == 0 {
		return empty, nil
	}

	blockedSlots, err := s.storePort.GetBlockedSlots(ctx, spaceID)
	if err != nil {
		s.logger.Error("slots.resolve.blocked.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		// Без списка исключений отдавать кандидатов нельзя,
		// иначе можно показать занятый слот как свободный
		return empty, fmt.Errorf("slots.resolve.blocked.fetch_failed: %w", err)
	}

	freeHours := filterBlockedHours(hours, blockedSlots, date)

	slots := make([]domain.ResolvedSlot, 0, len(freeHours))
	for _, hour := range freeHours {
		slot, err := slot_formatter.Format(hour)
		if err != nil {
			// Часы уже провалидированы на границе адаптера,
			// сюда попадать не должны
			s.logger.Warn("slots.resolve.format.invalid_hour", out.LogFields{
				"spaceId": spaceID,
				"hour":    hour,
			})
			continue
		}
		slots = append(slots, slot)
	}

	availability := domain.Availability{
		Slots:          SlotSlice(slots).quickSort(),
		IsSpecificDate: isSpecificDate,
	}

	// Сохраняем в кэш только если он включен
	if s.cacheEnabled() {
		s.cachePort.StoreAvailability(ctx, spaceID, date, availability)
	}

	s.logger.Info("slots.resolve.completed", out.LogFields{
		"spaceId":        spaceID,
		"date":           date,
		"slotsCount":     len(availability.Slots),
		"isSpecificDate": availability.IsSpecificDate,
	})

	return availability, nil
}
