package contracts

import (
	"context"
	"time"
)

// LockerService hands out expiring locks. A lock is released only by the holder of
// the value TryLock returned.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
