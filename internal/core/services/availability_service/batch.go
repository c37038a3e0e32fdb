package availability_service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

// ResolveBatchSlots резолвит несколько дат одного пространства параллельно.
// Сбой по одной дате не прерывает остальные: каждая запись несет свой флаг,
// чтобы клиент отличал "доступности нет" от "не смогли спросить".
func (s *AvailabilityService) ResolveBatchSlots(ctx context.Context, spaceID uuid.UUID, dates []json_types.Date) []domain.BatchResolveEntry {
	entries := make([]domain.BatchResolveEntry, len(dates))

	var wg sync.WaitGroup
	for i, date := range dates {
		wg.Add(1)
		go func(i int, date json_types.Date) {
			defer wg.Done()

			// Каждая горутина пишет только в свой элемент слайса
			availability, err := s.ResolveSlots(ctx, spaceID, date)
			entries[i] = domain.BatchResolveEntry{
				Date:          date,
				Availability:  availability,
				ResolveFailed: err != nil,
			}
		}(i, date)
	}
	wg.Wait()

	return entries
}
