package locker

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type heldLock struct {
	value     string
	expiresAt time.Time
}

// memoryLockService is the single-replica stand-in used when Redis is not configured.
type memoryLockService struct {
	mu    sync.Mutex
	locks map[string]heldLock
	now   func() time.Time
}

func NewMemoryLockService() contracts.LockerService {
	return &memoryLockService{
		locks: make(map[string]heldLock),
		now:   time.Now,
	}
}

func (s *memoryLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if held, ok := s.locks[key]; ok && now.Before(held.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = heldLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (s *memoryLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.locks[key]
	if !ok || !s.now().Before(held.expiresAt) {
		delete(s.locks, key)
		return nil
	}
	if held.value != lockValue {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock not owned by this client"))
	}
	delete(s.locks, key)
	return nil
}
