package availability_service

import (
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

// filterBlockedHours убирает из кандидатов часы, попавшие под исключения
func filterBlockedHours(hours []int, blockedSlots []domain.BlockedSlot, date json_types.Date) []int {
	weekday := date.Weekday()

	freeHours := make([]int, 0, len(hours))
	for _, hour := range hours {
		if !isHourBlocked(hour, weekday, date, blockedSlots) {
			freeHours = append(freeHours, hour)
		}
	}

	return freeHours
}

func isHourBlocked(hour int, weekday int, date json_types.Date, blockedSlots []domain.BlockedSlot) bool {
	for _, blocked := range blockedSlots {
		if blocked.Matches(hour, weekday, date) {
			return true
		}
	}

	return false
}
