package slot_formatter

import (
	"fmt"

	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
)

// Format превращает целый час в одночасовое окно для бронирования.
// Слоты всегда ровно один час, частичных и многочасовых окон в модели нет.
func Format(hour int) (domain.ResolvedSlot, error) {
	if hour < 0 || hour > 23 {
		return domain.ResolvedSlot{}, fmt.Errorf("format hour %d: %w", hour, domain.ErrInvalidHour)
	}

	endHour := (hour + 1) % 24

	return domain.ResolvedSlot{
		Hour:        hour,
		StartTime:   fmt.Sprintf("%02d:00:00", hour),
		EndTime:     fmt.Sprintf("%02d:00:00", endHour),
		Duration:    1,
		DisplayTime: displayTime(hour),
	}, nil
}

// displayTime - 12-часовой формат с AM/PM.
// Часы 0 и 12 отображаются как "12:00 AM" и "12:00 PM".
func displayTime(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:00 %s", display, period)
}
