package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
)

type ReassignmentUseCase interface {
	// Перенос события на другой час: блокировка нового слота и
	// освобождение старого одной транзакцией на пространство
	OnEventRescheduled(ctx context.Context, spaceID uuid.UUID, oldSlot domain.SlotRef, newSlot domain.SlotRef) (domain.ReassignmentResult, error)
}
