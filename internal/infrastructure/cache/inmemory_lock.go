package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lockEntry struct {
	token     string
	expiresAt time.Time
}

// InMemoryLocker implements Locker inside one process.
// It is suitable for single-instance deployments and testing.
type InMemoryLocker struct {
	mu      sync.Mutex
	entries map[string]lockEntry
	now     func() time.Time
}

// NewInMemoryLocker creates an in-memory locker
func NewInMemoryLocker() *InMemoryLocker {
	return &InMemoryLocker{
		entries: make(map[string]lockEntry),
		now:     time.Now,
	}
}

// Obtain takes the lock unless a live holder owns it
func (l *InMemoryLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[key]; ok && l.now().Before(e.expiresAt) {
		return nil, ErrLockNotObtained
	}
	token := uuid.NewString()
	l.entries[key] = lockEntry{token: token, expiresAt: l.now().Add(ttl)}
	return &inMemoryLock{locker: l, key: key, token: token}, nil
}

// Held reports whether a live lock exists for key
func (l *InMemoryLocker) Held(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	return ok && l.now().Before(e.expiresAt)
}

func (l *InMemoryLocker) release(key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	// a lock that expired and was taken over belongs to the new holder
	if e, ok := l.entries[key]; ok && e.token == token {
		delete(l.entries, key)
	}
}

type inMemoryLock struct {
	locker *InMemoryLocker
	key    string
	token  string
}

func (l *inMemoryLock) Release(ctx context.Context) error {
	l.locker.release(l.key, l.token)
	return nil
}

var _ Locker = (*InMemoryLocker)(nil)
