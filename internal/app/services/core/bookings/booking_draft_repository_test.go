package bookings

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisRepository struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(raw)
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	return true, f.Set(ctx, key, value, exp)
}

func (f *fakeRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	current, ok := f.values[key]
	if !ok {
		return true, nil
	}
	if current != string(raw) {
		return false, nil
	}
	delete(f.values, key)
	return true, nil
}

func TestBookingDraftRedisRepository(t *testing.T) {
	redis := newFakeRedisRepository()
	repository := NewBookingDraftRedisRepository(redis)
	ctx := context.Background()

	draft := &models.BookingDraft{ID: "draft-1", State: models.BookingSnapshot{SelectedDate: "2024-05-06"}}
	require.NoError(t, repository.Save(ctx, draft, 30*time.Minute))

	t.Run("Uses Prefixed Key With TTL", func(t *testing.T) {
		key := constvars.RedisKeyPrefixBookingDraft + "draft-1"
		assert.Contains(t, redis.values, key)
		assert.Equal(t, 30*time.Minute, redis.ttls[key])
	})

	t.Run("Round Trips Draft", func(t *testing.T) {
		found, err := repository.FindByID(ctx, "draft-1")
		require.NoError(t, err)
		assert.Equal(t, "2024-05-06", found.State.SelectedDate)
	})

	t.Run("Missing Draft Is Not Found", func(t *testing.T) {
		_, err := repository.FindByID(ctx, "missing")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestBookingDraftMemoryRepository(t *testing.T) {
	now := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
	repository := NewBookingDraftMemoryRepository().(*bookingDraftMemoryRepository)
	repository.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repository.Save(ctx, &models.BookingDraft{ID: "draft-1"}, time.Minute))

	t.Run("Found Before Expiry", func(t *testing.T) {
		_, err := repository.FindByID(ctx, "draft-1")
		assert.NoError(t, err)
	})

	t.Run("Gone After Expiry", func(t *testing.T) {
		now = now.Add(time.Minute)
		_, err := repository.FindByID(ctx, "draft-1")
		assert.Error(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repository.Save(ctx, &models.BookingDraft{ID: "draft-2"}, time.Minute))
		require.NoError(t, repository.Delete(ctx, "draft-2"))
		_, err := repository.FindByID(ctx, "draft-2")
		assert.Error(t, err)
	})
}
