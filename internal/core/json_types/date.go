package json_types

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/suchimauz/space-booking-slots-resolver/internal/utils"
)

// Date - календарная дата в формате YYYY-MM-DD.
// Сравнения дат на этом уровне строго строковые, без нормализации таймзон:
// клиент сам отвечает за то, что дата указана в локальном календаре пространства.
type Date struct {
	Value string
	Time  time.Time
}

func NewDate(str string) (Date, error) {
	parsed, err := utils.ParseDate(str)
	if err != nil {
		return Date{}, err
	}

	return Date{Value: str, Time: parsed}, nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	// Не строка или невалидная дата не ломает декодирование всего списка,
	// пустая запись отбрасывается на границе адаптера
	str, err := strconv.Unquote(string(data))
	if err != nil {
		*d = Date{}
		return nil
	}

	parsed, err := NewDate(str)
	if err != nil {
		*d = Date{}
		return nil
	}

	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value)
}

func (d Date) String() string {
	return d.Value
}

// Weekday возвращает день недели даты, 0 - воскресенье ... 6 - суббота
func (d Date) Weekday() int {
	return utils.Weekday(d.Time)
}

// Equal - строковое сравнение дат
func (d Date) Equal(other Date) bool {
	return d.Value == other.Value
}
