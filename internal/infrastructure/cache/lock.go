package cache

import (
	"context"
	"errors"
	"time"
)

// ErrLockNotObtained is returned when another holder owns the key
var ErrLockNotObtained = errors.New("lock not obtained")

// Lock is a held lock
type Lock interface {
	Release(ctx context.Context) error
}

// Locker hands out exclusive, expiring locks by key
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}
