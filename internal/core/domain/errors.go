package domain

import "errors"

var (
	// ErrInvalidHour - час вне диапазона [0, 23]
	ErrInvalidHour = errors.New("hour is out of range")

	// ErrStoreUnavailable - запрос к стору конфигурации упал или не уложился в таймаут
	ErrStoreUnavailable = errors.New("configuration store unavailable")

	// ErrReassignmentConflict - шаг мутации переноса не завершился атомарно
	ErrReassignmentConflict = errors.New("reassignment did not complete atomically")
)
