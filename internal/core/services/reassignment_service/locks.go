package reassignment_service

import (
	"sync"

	"github.com/google/uuid"
)

// spaceLocks - мьютекс на каждое пространство.
// Мутации заблокированных слотов одного пространства строго последовательны,
// иначе два переноса могут одновременно увидеть слот свободным и оба его занять.
type spaceLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newSpaceLocks() *spaceLocks {
	return &spaceLocks{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (l *spaceLocks) forSpace(spaceID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, exists := l.locks[spaceID]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[spaceID] = lock
	}

	return lock
}
