package json_types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourUnmarshalJSON(t *testing.T) {
	t.Run("Number", func(t *testing.T) {
		var hours []Hour
		err := json.Unmarshal([]byte(`[10, 23]`), &hours)

		assert.NoError(t, err)
		assert.Equal(t, []Hour{{Value: 10, Valid: true}, {Value: 23, Valid: true}}, hours)
	})

	t.Run("String", func(t *testing.T) {
		var hours []Hour
		err := json.Unmarshal([]byte(`["10", " 11 "]`), &hours)

		assert.NoError(t, err)
		assert.Equal(t, []Hour{{Value: 10, Valid: true}, {Value: 11, Valid: true}}, hours)
	})

	t.Run("Garbage Does Not Abort The Batch", func(t *testing.T) {
		var hours []Hour
		err := json.Unmarshal([]byte(`[10, "abc", null, 14]`), &hours)

		assert.NoError(t, err)
		assert.True(t, hours[0].Valid)
		assert.False(t, hours[1].Valid)
		assert.False(t, hours[2].Valid)
		assert.True(t, hours[3].Valid)
	})
}

func TestHourInt(t *testing.T) {
	t.Run("Valid Range", func(t *testing.T) {
		hour, ok := Hour{Value: 0, Valid: true}.Int()
		assert.True(t, ok)
		assert.Equal(t, 0, hour)

		hour, ok = Hour{Value: 23, Valid: true}.Int()
		assert.True(t, ok)
		assert.Equal(t, 23, hour)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, ok := Hour{Value: -1, Valid: true}.Int()
		assert.False(t, ok)

		_, ok = Hour{Value: 24, Valid: true}.Int()
		assert.False(t, ok)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, ok := Hour{}.Int()
		assert.False(t, ok)
	})
}

func TestCoerceHours(t *testing.T) {
	t.Run("Drops Invalid And Deduplicates", func(t *testing.T) {
		var raw []Hour
		err := json.Unmarshal([]byte(`[10, "11", "abc", 25, -1, "10"]`), &raw)

		assert.NoError(t, err)
		assert.Equal(t, []int{10, 11}, CoerceHours(raw))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, CoerceHours(nil))
	})
}
