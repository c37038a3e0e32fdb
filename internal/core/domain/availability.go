package domain

import (
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

// HoursByWeekday - провалидированные часы доступности по дням недели.
// Значения уже приведены к целым в диапазоне [0, 23] на границе адаптера.
type HoursByWeekday map[int][]int

// WeekdayTemplate - повторяющаяся недельная доступность пространства
type WeekdayTemplate struct {
	DayOfWeek int   `json:"dayOfWeek"`
	Hours     []int `json:"hours"`
}

// DateOverride - доступность на конкретную дату.
// Непустой оверрайд полностью заменяет недельный шаблон на эту дату, без слияния.
type DateOverride struct {
	Date  json_types.Date `json:"date"`
	Hours []int           `json:"hours"`
}

// BlockedSlot - исключение, убирающее час из доступности.
// Заполнено ровно одно из полей DayOfWeek/Date, в соответствии с IsRecurring.
type BlockedSlot struct {
	Hour        int              `json:"hour"`
	IsRecurring bool             `json:"isRecurring"`
	DayOfWeek   *int             `json:"dayOfWeek,omitempty"`
	Date        *json_types.Date `json:"date,omitempty"`
}

func NewRecurringBlockedSlot(hour int, dayOfWeek int) BlockedSlot {
	return BlockedSlot{
		Hour:        hour,
		IsRecurring: true,
		DayOfWeek:   &dayOfWeek,
	}
}

func NewDateBlockedSlot(hour int, date json_types.Date) BlockedSlot {
	return BlockedSlot{
		Hour: hour,
		Date: &date,
	}
}

// Matches проверяет, убирает ли исключение час hour на дату date.
// Повторяющееся исключение сравнивается по дню недели, разовое - по точной дате.
func (b BlockedSlot) Matches(hour int, weekday int, date json_types.Date) bool {
	if b.Hour != hour {
		return false
	}

	if b.IsRecurring {
		return b.DayOfWeek != nil && *b.DayOfWeek == weekday
	}

	return b.Date != nil && b.Date.Equal(date)
}
