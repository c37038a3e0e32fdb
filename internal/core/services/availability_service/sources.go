package availability_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

// slotSource - один источник часов доступности
type slotSource struct {
	name           string
	isSpecificDate bool
	fetch          func(ctx context.Context) (domain.HoursByWeekday, error)
}

// Приоритет источников задан порядком в списке, а не условиями в коде:
// оверрайд на дату полностью заменяет недельный шаблон, слияния нет
func (s *AvailabilityService) slotSources(spaceID uuid.UUID, date json_types.Date) []slotSource {
	return []slotSource{
		{
			name:           "date_override",
			isSpecificDate: true,
			fetch: func(ctx context.Context) (domain.HoursByWeekday, error) {
				return s.storePort.GetDateOverride(ctx, spaceID, date)
			},
		},
		{
			name: "weekly_template",
			fetch: func(ctx context.Context) (domain.HoursByWeekday, error) {
				return s.storePort.GetWeeklyTemplate(ctx, spaceID)
			},
		},
	}
}

// candidateHours перебирает источники по порядку, побеждает первый непустой.
// Сбой источника не прерывает перебор: пробуем следующий.
// Если ни один источник не дал часов и хотя бы один падал,
// пустой результат нельзя отличить от "доступности нет" - возвращаем ошибку.
func (s *AvailabilityService) candidateHours(ctx context.Context, spaceID uuid.UUID, date json_types.Date) ([]int, bool, error) {
	weekday := date.Weekday()

	var lastErr error
	for _, source := range s.slotSources(spaceID, date) {
		hoursByWeekday, err := source.fetch(ctx)
		if err != nil {
			s.logger.Warn("slots.resolve.source.fetch_failed", out.LogFields{
				"spaceId": spaceID,
				"date":    date,
				"source":  source.name,
				"error":   err.Error(),
			})
			lastErr = err
			continue
		}

		hours := hoursByWeekday[weekday]
		if len(hours) > 0 {
			s.logger.Debug("slots.resolve.source.selected", out.LogFields{
				"spaceId":    spaceID,
				"date":       date,
				"source":     source.name,
				"hoursCount": len(hours),
			})
			return hours, source.isSpecificDate, nil
		}
	}

	if lastErr != nil {
		return nil, false, fmt.Errorf("slots.resolve.sources.unavailable: %w", lastErr)
	}

	return nil, false, nil
}
