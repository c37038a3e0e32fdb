package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/space-booking-slots-resolver/internal/config"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields)       {}
func (l nopLogger) Info(event string, fields out.LogFields)        {}
func (l nopLogger) Warn(event string, fields out.LogFields)        {}
func (l nopLogger) Error(event string, fields out.LogFields)       {}
func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newTestAdapter(serverURL string) *StoreAdapter {
	cfg := &config.Config{}
	cfg.Store.URL = serverURL
	cfg.Store.Username = "resolver"
	cfg.Store.Password = "resolver"
	cfg.Store.TimeoutSeconds = 5
	return NewStoreAdapter(cfg, nopLogger{})
}

func mustDate(t *testing.T, str string) json_types.Date {
	t.Helper()

	date, err := json_types.NewDate(str)
	assert.NoError(t, err)
	return date
}

func TestGetWeeklyTemplate(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()

	t.Run("Coerces String And Number Hours", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Space/"+spaceID.String()+"/availability/template", r.URL.Path)

			username, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "resolver", username)
			assert.Equal(t, "resolver", password)

			w.Write([]byte(`{"availability": {"1": [10, "11", "abc"], "2": ["25"], "x": [9]}}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		hoursByWeekday, err := adapter.GetWeeklyTemplate(ctx, spaceID)

		assert.NoError(t, err)
		// Невалидные часы и дни недели отброшены, день 2 остался без часов
		assert.Equal(t, domain.HoursByWeekday{1: {10, 11}}, hoursByWeekday)
	})

	t.Run("Not Found Means No Template", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		hoursByWeekday, err := adapter.GetWeeklyTemplate(ctx, spaceID)

		assert.NoError(t, err)
		assert.Empty(t, hoursByWeekday)
	})

	t.Run("Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		_, err := adapter.GetWeeklyTemplate(ctx, spaceID)

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("Unreachable Store", func(t *testing.T) {
		adapter := newTestAdapter("http://127.0.0.1:1")
		_, err := adapter.GetWeeklyTemplate(ctx, spaceID)

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestGetDateOverride(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()

	t.Run("Passes Date As Query Param", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2024-06-10", r.URL.Query().Get("date"))
			w.Write([]byte(`{"availability": {"1": [9]}}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		hoursByWeekday, err := adapter.GetDateOverride(ctx, spaceID, mustDate(t, "2024-06-10"))

		assert.NoError(t, err)
		assert.Equal(t, domain.HoursByWeekday{1: {9}}, hoursByWeekday)
	})

	t.Run("Not Found Means No Override", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		hoursByWeekday, err := adapter.GetDateOverride(ctx, spaceID, mustDate(t, "2024-06-10"))

		assert.NoError(t, err)
		assert.Empty(t, hoursByWeekday)
	})
}

func TestGetBlockedSlots(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()

	t.Run("Drops Inconsistent Records", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"blockedSlots": [
				{"hour": 11, "isRecurring": true, "dayOfWeek": 1},
				{"hour": "14", "isRecurring": false, "date": "2024-06-10"},
				{"hour": 10, "isRecurring": true},
				{"hour": 10, "isRecurring": false},
				{"hour": 10, "isRecurring": false, "date": 5},
				{"hour": 10, "isRecurring": false, "date": "10-06-2024"},
				{"hour": "abc", "isRecurring": true, "dayOfWeek": 2}
			]}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		blockedSlots, err := adapter.GetBlockedSlots(ctx, spaceID)

		assert.NoError(t, err)
		assert.Len(t, blockedSlots, 2)

		assert.True(t, blockedSlots[0].IsRecurring)
		assert.Equal(t, 11, blockedSlots[0].Hour)
		assert.Equal(t, 1, *blockedSlots[0].DayOfWeek)

		assert.False(t, blockedSlots[1].IsRecurring)
		assert.Equal(t, 14, blockedSlots[1].Hour)
		assert.Equal(t, "2024-06-10", blockedSlots[1].Date.Value)
	})

	t.Run("Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		_, err := adapter.GetBlockedSlots(ctx, spaceID)

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestMutateBlockedSlot(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()

	t.Run("Add And Remove Use The Same Endpoint", func(t *testing.T) {
		var methods []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Space/"+spaceID.String()+"/availability/blocked", r.URL.Path)
			methods = append(methods, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		slot := domain.NewRecurringBlockedSlot(15, 1)

		assert.NoError(t, adapter.AddBlockedSlot(ctx, spaceID, slot))
		assert.NoError(t, adapter.RemoveBlockedSlot(ctx, spaceID, slot))
		assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, methods)
	})

	t.Run("Conflict Status Is A Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		err := adapter.AddBlockedSlot(ctx, spaceID, domain.NewRecurringBlockedSlot(15, 1))

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
