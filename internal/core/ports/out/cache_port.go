package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

type CachePort interface {
	// Кэширование результатов резолва по (пространство, дата)
	GetAvailability(ctx context.Context, spaceID uuid.UUID, date json_types.Date) (domain.Availability, bool)
	StoreAvailability(ctx context.Context, spaceID uuid.UUID, date json_types.Date, availability domain.Availability)

	// Инвалидация при изменении конфигурации или переносе события
	InvalidateSpace(ctx context.Context, spaceID uuid.UUID)
	InvalidateAll(ctx context.Context)
}
