package reassignment_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/in"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

type ReassignmentService struct {
	storePort    out.ConfigStorePort
	availability in.AvailabilityUseCase
	logger       out.LoggerPort
	locks        *spaceLocks
}

func NewReassignmentService(
	storePort out.ConfigStorePort,
	availability in.AvailabilityUseCase,
	logger out.LoggerPort,
) *ReassignmentService {
	return &ReassignmentService{
		storePort:    storePort,
		availability: availability,
		logger:       logger.WithModule("ReassignmentService"),
		locks:        newSpaceLocks(),
	}
}

// OnEventRescheduled переносит блокировку слота при изменении часа события.
// Блокировка нового часа и освобождение старого - одна транзакция под
// мьютексом пространства. Оповещение оператора - только диагностика сбоя,
// а не основной механизм.
func (s *ReassignmentService) OnEventRescheduled(ctx context.Context, spaceID uuid.UUID, oldSlot domain.SlotRef, newSlot domain.SlotRef) (domain.ReassignmentResult, error) {
	if oldSlot.Hour == newSlot.Hour {
		s.logger.Debug("reassign.no_change", out.LogFields{
			"spaceId": spaceID,
			"hour":    oldSlot.Hour,
		})
		return domain.ReassignmentResult{}, nil
	}

	lock := s.locks.forSpace(spaceID)
	lock.Lock()
	defer lock.Unlock()

	s.logger.Info("reassign.started", out.LogFields{
		"spaceId":      spaceID,
		"oldHour":      oldSlot.Hour,
		"oldDayOfWeek": oldSlot.DayOfWeek,
		"newHour":      newSlot.Hour,
		"newDayOfWeek": newSlot.DayOfWeek,
	})

	result := domain.ReassignmentResult{Changed: true}

	// Сначала занимаем новый слот, чтобы никто не успел забронировать его
	newBlock := domain.NewRecurringBlockedSlot(newSlot.Hour, newSlot.DayOfWeek)
	if err := s.storePort.AddBlockedSlot(ctx, spaceID, newBlock); err != nil {
		s.logger.Error("reassign.block_new_failed", out.LogFields{
			"spaceId": spaceID,
			"newHour": newSlot.Hour,
			"error":   err.Error(),
		})
		s.notifyManualFollowup(spaceID, oldSlot, newSlot, result)
		return result, fmt.Errorf("reassign.block_new_failed: %w", domain.ErrReassignmentConflict)
	}
	result.NewSlotBlocked = true

	oldBlock := domain.NewRecurringBlockedSlot(oldSlot.Hour, oldSlot.DayOfWeek)
	if err := s.storePort.RemoveBlockedSlot(ctx, spaceID, oldBlock); err != nil {
		s.logger.Error("reassign.release_old_failed", out.LogFields{
			"spaceId": spaceID,
			"oldHour": oldSlot.Hour,
			"error":   err.Error(),
		})
		// Новый слот уже заблокирован: флаги честно отражают частичный
		// результат, решение о повторе остается за оператором
		s.notifyManualFollowup(spaceID, oldSlot, newSlot, result)
		_ = s.availability.InvalidateSpaceCache(ctx, spaceID)
		return result, fmt.Errorf("reassign.release_old_failed: %w", domain.ErrReassignmentConflict)
	}
	result.OldSlotReleased = true

	_ = s.availability.InvalidateSpaceCache(ctx, spaceID)

	s.logger.Info("reassign.completed", out.LogFields{
		"spaceId": spaceID,
		"oldHour": oldSlot.Hour,
		"newHour": newSlot.Hour,
	})

	return result, nil
}

func (s *ReassignmentService) notifyManualFollowup(spaceID uuid.UUID, oldSlot domain.SlotRef, newSlot domain.SlotRef, result domain.ReassignmentResult) {
	s.logger.Warn("reassign.manual_followup_required", out.LogFields{
		"spaceId":         spaceID,
		"oldHour":         oldSlot.Hour,
		"oldDayOfWeek":    oldSlot.DayOfWeek,
		"newHour":         newSlot.Hour,
		"newDayOfWeek":    newSlot.DayOfWeek,
		"newSlotBlocked":  result.NewSlotBlocked,
		"oldSlotReleased": result.OldSlotReleased,
	})
}
