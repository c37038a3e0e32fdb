package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

type AvailabilityUseCase interface {
	// Резолв слотов для одного пространства и одной даты
	ResolveSlots(ctx context.Context, spaceID uuid.UUID, date json_types.Date) (domain.Availability, error)

	// Резолв слотов для нескольких дат одного пространства
	ResolveBatchSlots(ctx context.Context, spaceID uuid.UUID, dates []json_types.Date) []domain.BatchResolveEntry

	// Инвалидация кэша при изменении конфигурации доступности
	InvalidateSpaceCache(ctx context.Context, spaceID uuid.UUID) error
	InvalidateAllCache(ctx context.Context) error
}
