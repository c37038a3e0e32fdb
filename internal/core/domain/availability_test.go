package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
)

func mustDate(t *testing.T, str string) json_types.Date {
	t.Helper()

	date, err := json_types.NewDate(str)
	assert.NoError(t, err)
	return date
}

func TestBlockedSlotMatches(t *testing.T) {
	monday := mustDate(t, "2024-06-10")
	nextMonday := mustDate(t, "2024-06-17")
	tuesday := mustDate(t, "2024-06-11")

	t.Run("Recurring Matches By Weekday", func(t *testing.T) {
		blocked := NewRecurringBlockedSlot(11, 1)

		assert.True(t, blocked.Matches(11, 1, monday))
		assert.True(t, blocked.Matches(11, 1, nextMonday))
		assert.False(t, blocked.Matches(11, 2, tuesday))
		assert.False(t, blocked.Matches(10, 1, monday))
	})

	t.Run("One Off Matches By Exact Date", func(t *testing.T) {
		blocked := NewDateBlockedSlot(11, monday)

		assert.True(t, blocked.Matches(11, 1, monday))
		// Тот же день недели, другая дата
		assert.False(t, blocked.Matches(11, 1, nextMonday))
		assert.False(t, blocked.Matches(10, 1, monday))
	})

	t.Run("Incomplete Slot Never Matches", func(t *testing.T) {
		assert.False(t, BlockedSlot{Hour: 11, IsRecurring: true}.Matches(11, 1, monday))
		assert.False(t, BlockedSlot{Hour: 11}.Matches(11, 1, monday))
	})
}
