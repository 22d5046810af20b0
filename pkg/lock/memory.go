package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	token  string
	expiry time.Time
}

// MemoryLock is a process-wide lock registry. Suitable when a single process
// handles all webhook deliveries; use RedisLock when reconciliation runs
// across multiple processes.
//
// Each entry carries an expiry so a holder that crashed mid-operation cannot
// wedge its key forever, and a token so a holder that outlived its TTL
// cannot release the entry of whoever re-acquired the key.
type MemoryLock struct {
	mu      sync.Mutex
	held    map[string]memoryEntry
	holdTTL time.Duration
	now     func() time.Time
}

// NewMemoryLock creates a registry whose entries expire after holdTTL.
func NewMemoryLock(holdTTL time.Duration) *MemoryLock {
	return &MemoryLock{
		held:    make(map[string]memoryEntry),
		holdTTL: holdTTL,
		now:     time.Now,
	}
}

func (l *MemoryLock) TryAcquire(_ context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.held[key]; ok && l.now().Before(entry.expiry) {
		return "", false, nil
	}

	token := uuid.NewString()
	l.held[key] = memoryEntry{token: token, expiry: l.now().Add(l.holdTTL)}
	return token, true, nil
}

func (l *MemoryLock) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.held[key]; ok && entry.token == token {
		delete(l.held, key)
	}
	return nil
}
