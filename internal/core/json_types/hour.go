package json_types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Hour - значение часа из конфигурации доступности.
// Источник может прислать как число (10), так и строку ("10").
// Некорректное значение не ломает декодирование всего списка,
// оно помечается невалидным и отбрасывается на границе адаптера.
type Hour struct {
	Value int
	Valid bool
}

func (h *Hour) UnmarshalJSON(data []byte) error {
	str := strings.TrimSpace(strings.Trim(string(data), `"`))

	parsed, err := strconv.Atoi(str)
	if err != nil {
		*h = Hour{}
		return nil
	}

	*h = Hour{Value: parsed, Valid: true}
	return nil
}

func (h Hour) MarshalJSON() ([]byte, error) {
	if !h.Valid {
		return json.Marshal(nil)
	}

	return json.Marshal(h.Value)
}

// Int возвращает час, если он валиден и попадает в диапазон [0, 23]
func (h Hour) Int() (int, bool) {
	if !h.Valid || h.Value < 0 || h.Value > 23 {
		return 0, false
	}

	return h.Value, true
}

// CoerceHours - единственная точка приведения "сырых" часов к валидным целым.
// Невалидные и выходящие за диапазон значения отбрасываются, дубликаты схлопываются,
// порядок первых вхождений сохраняется.
func CoerceHours(raw []Hour) []int {
	seen := make(map[int]struct{}, len(raw))
	hours := make([]int, 0, len(raw))

	for _, rawHour := range raw {
		hour, ok := rawHour.Int()
		if !ok {
			continue
		}
		if _, exists := seen[hour]; exists {
			continue
		}
		seen[hour] = struct{}{}
		hours = append(hours, hour)
	}

	return hours
}
