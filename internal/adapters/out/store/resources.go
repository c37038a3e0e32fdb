package store

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

// Сырые ответы стора. Часы могут прийти числами или строками,
// приведение к валидным целым происходит только здесь - дальше
// по резолверу ходят уже проверенные значения.

type availabilityResource struct {
	Availability map[string][]json_types.Hour `json:"availability"`
}

type blockedSlotResource struct {
	Hour        json_types.Hour  `json:"hour"`
	IsRecurring bool             `json:"isRecurring"`
	DayOfWeek   *int             `json:"dayOfWeek"`
	Date        *json_types.Date `json:"date"`
}

type blockedSlotsResource struct {
	BlockedSlots []blockedSlotResource `json:"blockedSlots"`
}

// hoursByWeekdayFromResource приводит сырую доступность к проверенной.
// Единичные битые записи отбрасываются и не прерывают обработку остальных.
func (a *StoreAdapter) hoursByWeekdayFromResource(resource availabilityResource) domain.HoursByWeekday {
	hoursByWeekday := make(domain.HoursByWeekday, len(resource.Availability))

	for rawWeekday, rawHours := range resource.Availability {
		weekday, err := strconv.Atoi(rawWeekday)
		if err != nil || weekday < 0 || weekday > 6 {
			a.logger.Warn("store.availability.invalid_weekday", out.LogFields{
				"weekday": rawWeekday,
			})
			continue
		}

		hours := json_types.CoerceHours(rawHours)
		if len(hours) == 0 {
			continue
		}

		hoursByWeekday[weekday] = hours
	}

	return hoursByWeekday
}

func (a *StoreAdapter) blockedSlotsFromResource(spaceID uuid.UUID, resource blockedSlotsResource) []domain.BlockedSlot {
	blockedSlots := make([]domain.BlockedSlot, 0, len(resource.BlockedSlots))

	for _, raw := range resource.BlockedSlots {
		hour, ok := raw.Hour.Int()
		if !ok {
			a.logger.Warn("store.blocked.invalid_hour", out.LogFields{
				"spaceId": spaceID,
			})
			continue
		}

		// Повторяющееся исключение обязано нести день недели, разовое - дату
		if raw.IsRecurring && raw.DayOfWeek == nil {
			a.logger.Warn("store.blocked.missing_day_of_week", out.LogFields{
				"spaceId": spaceID,
				"hour":    hour,
			})
			continue
		}
		// Невалидная дата декодируется в пустое значение, а не в ошибку,
		// для разового исключения это равнозначно отсутствию даты
		if !raw.IsRecurring && (raw.Date == nil || raw.Date.Value == "") {
			a.logger.Warn("store.blocked.missing_date", out.LogFields{
				"spaceId": spaceID,
				"hour":    hour,
			})
			continue
		}

		if raw.IsRecurring {
			blockedSlots = append(blockedSlots, domain.NewRecurringBlockedSlot(hour, *raw.DayOfWeek))
		} else {
			blockedSlots = append(blockedSlots, domain.NewDateBlockedSlot(hour, *raw.Date))
		}
	}

	return blockedSlots
}
