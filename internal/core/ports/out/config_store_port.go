package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

type ConfigStorePort interface {
	// Чтение конфигурации доступности
	GetDateOverride(ctx context.Context, spaceID uuid.UUID, date json_types.Date) (domain.HoursByWeekday, error)
	GetWeeklyTemplate(ctx context.Context, spaceID uuid.UUID) (domain.HoursByWeekday, error)
	GetBlockedSlots(ctx context.Context, spaceID uuid.UUID) ([]domain.BlockedSlot, error)

	// Мутации списка заблокированных слотов
	AddBlockedSlot(ctx context.Context, spaceID uuid.UUID, slot domain.BlockedSlot) error
	RemoveBlockedSlot(ctx context.Context, spaceID uuid.UUID, slot domain.BlockedSlot) error
}
