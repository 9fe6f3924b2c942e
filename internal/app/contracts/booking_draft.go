package contracts

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/dto/requests"
	"context"
	"time"
)

type BookingDraftRepository interface {
	Save(ctx context.Context, draft *models.BookingDraft, ttl time.Duration) error
	FindByID(ctx context.Context, draftID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, draftID string) error
}

// BookingDraftUsecase drives a multi-step booking flow. The step methods work on the
// booking state scoped to ctx by the draft middleware.
type BookingDraftUsecase interface {
	CreateDraft(ctx context.Context) (*models.BookingDraft, error)
	FindDraft(ctx context.Context, draftID string) (*models.BookingDraft, error)
	SaveDraft(ctx context.Context, draftID string, snapshot models.BookingSnapshot) error
	GetDraftState(ctx context.Context) models.BookingSnapshot
	SelectAppointmentType(ctx context.Context, request *requests.SetDraftAppointmentTypeRequest) (models.BookingSnapshot, error)
	SelectDate(ctx context.Context, request *requests.SetDraftDateRequest) models.BookingSnapshot
	SelectTime(ctx context.Context, request *requests.SetDraftTimeRequest) models.BookingSnapshot
	SetContactDetails(ctx context.Context, request *requests.SetDraftContactRequest) models.BookingSnapshot
	ResetDraft(ctx context.Context) models.BookingSnapshot
	SubmitDraft(ctx context.Context) (*models.SchedulingResult[models.Appointment], error)
}
