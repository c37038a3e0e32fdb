package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate парсит дату строго в формате YYYY-MM-DD, без времени и таймзоны.
// Другие форматы на границе интерфейса не принимаются.
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(DateLayout, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
	}

	return parsedDate, nil
}

// Weekday возвращает день недели, 0 - воскресенье ... 6 - суббота
func Weekday(t time.Time) int {
	return int(t.Weekday())
}
