package json_types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		date, err := NewDate("2024-06-10")

		assert.NoError(t, err)
		assert.Equal(t, "2024-06-10", date.Value)
		// 10 июня 2024 - понедельник
		assert.Equal(t, 1, date.Weekday())
	})

	t.Run("Sunday Is Zero", func(t *testing.T) {
		date, err := NewDate("2024-06-09")

		assert.NoError(t, err)
		assert.Equal(t, 0, date.Weekday())
	})

	t.Run("Rejects Other Formats", func(t *testing.T) {
		_, err := NewDate("10-06-2024")
		assert.Error(t, err)

		_, err = NewDate("2024-06-10T12:00:00")
		assert.Error(t, err)

		_, err = NewDate("")
		assert.Error(t, err)
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("Unmarshal", func(t *testing.T) {
		var date Date
		err := json.Unmarshal([]byte(`"2024-06-10"`), &date)

		assert.NoError(t, err)
		assert.Equal(t, "2024-06-10", date.Value)
	})

	t.Run("Marshal", func(t *testing.T) {
		date, err := NewDate("2024-06-10")
		assert.NoError(t, err)

		data, err := json.Marshal(date)
		assert.NoError(t, err)
		assert.Equal(t, `"2024-06-10"`, string(data))
	})

	t.Run("Garbage Does Not Abort Decoding", func(t *testing.T) {
		// Дата может прийти не строкой, битая запись
		// декодируется в пустое значение, как невалидный час
		for _, raw := range []string{`5`, `""`, `"2024/06/10"`, `null`, `true`} {
			var date Date
			err := json.Unmarshal([]byte(raw), &date)

			assert.NoError(t, err, raw)
			assert.Empty(t, date.Value, raw)
		}
	})

	t.Run("Garbage Date Inside A Record", func(t *testing.T) {
		var record struct {
			Hour int   `json:"hour"`
			Date *Date `json:"date"`
		}
		err := json.Unmarshal([]byte(`{"hour": 10, "date": 5}`), &record)

		assert.NoError(t, err)
		assert.Equal(t, 10, record.Hour)
		assert.Empty(t, record.Date.Value)
	})
}

func TestDateEqual(t *testing.T) {
	first, _ := NewDate("2024-06-10")
	second, _ := NewDate("2024-06-10")
	third, _ := NewDate("2024-06-11")

	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(third))
}
