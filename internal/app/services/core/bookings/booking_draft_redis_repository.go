package bookings

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
)

var errDraftNotFound = errors.New("booking draft does not exist or has expired")

type bookingDraftRedisRepository struct {
	RedisRepository contracts.RedisRepository
}

func NewBookingDraftRedisRepository(redisRepository contracts.RedisRepository) contracts.BookingDraftRepository {
	return &bookingDraftRedisRepository{RedisRepository: redisRepository}
}

func (r *bookingDraftRedisRepository) Save(ctx context.Context, draft *models.BookingDraft, ttl time.Duration) error {
	return r.RedisRepository.Set(ctx, draftKey(draft.ID), draft, ttl)
}

func (r *bookingDraftRedisRepository) FindByID(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	raw, err := r.RedisRepository.Get(ctx, draftKey(draftID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrNotFound(errDraftNotFound, "booking draft")
	}

	var draft models.BookingDraft
	err = json.Unmarshal([]byte(raw), &draft)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &draft, nil
}

func (r *bookingDraftRedisRepository) Delete(ctx context.Context, draftID string) error {
	return r.RedisRepository.Delete(ctx, draftKey(draftID))
}

func draftKey(draftID string) string {
	return constvars.RedisKeyPrefixBookingDraft + draftID
}
