package bookings

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"
)

type memoryDraft struct {
	draft     models.BookingDraft
	expiresAt time.Time
}

// bookingDraftMemoryRepository keeps drafts in process memory for deployments without Redis.
// Expired drafts are dropped lazily on access.
type bookingDraftMemoryRepository struct {
	mu     sync.Mutex
	drafts map[string]memoryDraft
	now    func() time.Time
}

func NewBookingDraftMemoryRepository() contracts.BookingDraftRepository {
	return &bookingDraftMemoryRepository{
		drafts: make(map[string]memoryDraft),
		now:    time.Now,
	}
}

func (r *bookingDraftMemoryRepository) Save(ctx context.Context, draft *models.BookingDraft, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *draft
	stored.State = cloneSnapshot(draft.State)
	r.drafts[draft.ID] = memoryDraft{draft: stored, expiresAt: r.now().Add(ttl)}
	r.pruneLocked()
	return nil
}

func (r *bookingDraftMemoryRepository) FindByID(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.drafts[draftID]
	if !ok || !r.now().Before(stored.expiresAt) {
		delete(r.drafts, draftID)
		return nil, exceptions.ErrNotFound(errDraftNotFound, "booking draft")
	}

	draft := stored.draft
	draft.State = cloneSnapshot(stored.draft.State)
	return &draft, nil
}

func (r *bookingDraftMemoryRepository) Delete(ctx context.Context, draftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, draftID)
	return nil
}

func (r *bookingDraftMemoryRepository) pruneLocked() {
	now := r.now()
	for id, stored := range r.drafts {
		if !now.Before(stored.expiresAt) {
			delete(r.drafts, id)
		}
	}
}
