package domain

import (
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

// ResolvedSlot - одночасовое окно для бронирования.
// Вычисляется на каждый запрос заново и никогда не сохраняется.
type ResolvedSlot struct {
	Hour        int    `json:"hour"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Duration    int    `json:"duration"`
	DisplayTime string `json:"displayTime"`
}

// Availability - результат резолва слотов для одного пространства и одной даты.
// IsSpecificDate показывает, что часы пришли из оверрайда на дату, а не из недельного шаблона.
type Availability struct {
	Slots          []ResolvedSlot `json:"slots"`
	IsSpecificDate bool           `json:"isSpecificDate"`
}

// BatchResolveEntry - результат резолва одной даты в пакетном запросе.
// Пустой список слотов и ResolveFailed=true означает "не смогли спросить",
// а не "доступности нет" - клиент обязан различать эти случаи.
type BatchResolveEntry struct {
	Date          json_types.Date `json:"date"`
	Availability  Availability    `json:"availability"`
	ResolveFailed bool            `json:"resolveFailed"`
}
