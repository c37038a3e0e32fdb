package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/space-booking-slots-resolver/internal/config"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

// StoreAdapter - HTTP-клиент стора конфигурации доступности.
// Таймаут клиента ограничивает каждый запрос: зависший стор для резолвера
// равнозначен упавшему и уводит его на фолбэк-источник.
type StoreAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewStoreAdapter(cfg *config.Config, logger out.LoggerPort) *StoreAdapter {
	return &StoreAdapter{
		client:   &http.Client{Timeout: time.Duration(cfg.Store.TimeoutSeconds) * time.Second},
		baseURL:  cfg.Store.URL,
		username: cfg.Store.Username,
		password: cfg.Store.Password,
		logger:   logger,
	}
}

func (a *StoreAdapter) GetDateOverride(ctx context.Context, spaceID uuid.UUID, date json_types.Date) (domain.HoursByWeekday, error) {
	a.logger.Info("store.override.fetch", out.LogFields{
		"spaceId": spaceID,
		"date":    date,
	})

	url := fmt.Sprintf("%s/Space/%s/availability/override", a.baseURL, spaceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("store.override.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.override.fetch_failed: %w", domain.ErrStoreUnavailable)
	}

	query := nurl.Values{}
	query.Add("date", date.Value)
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("store.override.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.override.fetch_failed: %w", domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	// Отсутствие оверрайда на дату - штатный случай, а не сбой
	if resp.StatusCode == http.StatusNotFound {
		a.logger.Debug("store.override.not_found", out.LogFields{
			"spaceId": spaceID,
			"date":    date,
		})
		return domain.HoursByWeekday{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("store.override.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("store.override.fetch_failed: unexpected status code %d: %w", resp.StatusCode, domain.ErrStoreUnavailable)
	}

	var resource availabilityResource
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		a.logger.Error("store.override.decode_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.override.decode_failed: %w", domain.ErrStoreUnavailable)
	}

	hoursByWeekday := a.hoursByWeekdayFromResource(resource)

	a.logger.Debug("store.override.fetch_success", out.LogFields{
		"spaceId":       spaceID,
		"date":          date,
		"weekdaysCount": len(hoursByWeekday),
	})

	return hoursByWeekday, nil
}

func (a *StoreAdapter) GetWeeklyTemplate(ctx context.Context, spaceID uuid.UUID) (domain.HoursByWeekday, error) {
	a.logger.Info("store.template.fetch", out.LogFields{
		"spaceId": spaceID,
	})

	url := fmt.Sprintf("%s/Space/%s/availability/template", a.baseURL, spaceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("store.template.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.template.fetch_failed: %w", domain.ErrStoreUnavailable)
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("store.template.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.template.fetch_failed: %w", domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		a.logger.Debug("store.template.not_found", out.LogFields{
			"spaceId": spaceID,
		})
		return domain.HoursByWeekday{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("store.template.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("store.template.fetch_failed: unexpected status code %d: %w", resp.StatusCode, domain.ErrStoreUnavailable)
	}

	var resource availabilityResource
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		a.logger.Error("store.template.decode_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.template.decode_failed: %w", domain.ErrStoreUnavailable)
	}

	hoursByWeekday := a.hoursByWeekdayFromResource(resource)

	a.logger.Debug("store.template.fetch_success", out.LogFields{
		"spaceId":       spaceID,
		"weekdaysCount": len(hoursByWeekday),
	})

	return hoursByWeekday, nil
}

func (a *StoreAdapter) GetBlockedSlots(ctx context.Context, spaceID uuid.UUID) ([]domain.BlockedSlot, error) {
	a.logger.Info("store.blocked.fetch", out.LogFields{
		"spaceId": spaceID,
	})

	url := fmt.Sprintf("%s/Space/%s/availability/blocked", a.baseURL, spaceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("store.blocked.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.blocked.fetch_failed: %w", domain.ErrStoreUnavailable)
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("store.blocked.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.blocked.fetch_failed: %w", domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("store.blocked.fetch_failed", out.LogFields{
			"spaceId": spaceID,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("store.blocked.fetch_failed: unexpected status code %d: %w", resp.StatusCode, domain.ErrStoreUnavailable)
	}

	var resource blockedSlotsResource
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		a.logger.Error("store.blocked.decode_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("store.blocked.decode_failed: %w", domain.ErrStoreUnavailable)
	}

	blockedSlots := a.blockedSlotsFromResource(spaceID, resource)

	a.logger.Debug("store.blocked.fetch_success", out.LogFields{
		"spaceId": spaceID,
		"count":   len(blockedSlots),
	})

	return blockedSlots, nil
}

func (a *StoreAdapter) AddBlockedSlot(ctx context.Context, spaceID uuid.UUID, slot domain.BlockedSlot) error {
	return a.mutateBlockedSlot(ctx, http.MethodPost, "store.blocked.add", spaceID, slot)
}

func (a *StoreAdapter) RemoveBlockedSlot(ctx context.Context, spaceID uuid.UUID, slot domain.BlockedSlot) error {
	return a.mutateBlockedSlot(ctx, http.MethodDelete, "store.blocked.remove", spaceID, slot)
}

// Добавление и удаление исключения - одинаковый запрос, отличается только методом.
// Стор идентифицирует исключение по значению (hour, isRecurring, dayOfWeek|date).
func (a *StoreAdapter) mutateBlockedSlot(ctx context.Context, method string, event string, spaceID uuid.UUID, slot domain.BlockedSlot) error {
	a.logger.Info(event, out.LogFields{
		"spaceId":     spaceID,
		"hour":        slot.Hour,
		"isRecurring": slot.IsRecurring,
	})

	body, err := json.Marshal(slot)
	if err != nil {
		a.logger.Error(event+"_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%s_failed: %w", event, domain.ErrStoreUnavailable)
	}

	url := fmt.Sprintf("%s/Space/%s/availability/blocked", a.baseURL, spaceID)
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		a.logger.Error(event+"_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%s_failed: %w", event, domain.ErrStoreUnavailable)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error(event+"_failed", out.LogFields{
			"spaceId": spaceID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%s_failed: %w", event, domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		a.logger.Error(event+"_failed", out.LogFields{
			"spaceId": spaceID,
			"status":  resp.StatusCode,
		})
		return fmt.Errorf("%s_failed: unexpected status code %d: %w", event, resp.StatusCode, domain.ErrStoreUnavailable)
	}

	return nil
}
