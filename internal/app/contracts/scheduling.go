package contracts

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/dto/requests"
	"context"
)

type SchedulingUsecase interface {
	GetAppointmentTypes(ctx context.Context) (*models.SchedulingResult[[]models.AppointmentType], error)
	GetAvailableDates(ctx context.Context, query *requests.AvailableDatesQuery) (*models.SchedulingResult[[]models.AvailabilityDate], error)
	GetAvailableTimes(ctx context.Context, query *requests.AvailableTimesQuery) (*models.SchedulingResult[[]models.AvailabilityTime], error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.SchedulingResult[models.Appointment], error)
	GetUserAppointments(ctx context.Context, email string) (*models.SchedulingResult[[]models.Appointment], error)
	RescheduleAppointment(ctx context.Context, appointmentID int, datetime string) (*models.SchedulingResult[models.RescheduleResult], error)
	CancelAppointment(ctx context.Context, appointmentID int) (*models.SchedulingResult[models.CancelResult], error)
	GetBookingHistory(ctx context.Context, email string) ([]models.LedgerEntry, error)
}

// SchedulingProviderClient talks to the third-party scheduling provider. It returns
// provider failures as errors; absorbing them is the usecase's job.
type SchedulingProviderClient interface {
	FindAppointmentTypes(ctx context.Context) ([]models.AppointmentType, error)
	FindAvailableDates(ctx context.Context, appointmentTypeID int, month string) ([]models.AvailabilityDate, error)
	FindAvailableTimes(ctx context.Context, appointmentTypeID int, date string, calendarID *int) ([]models.AvailabilityTime, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error)
	FindAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error)
	RescheduleAppointment(ctx context.Context, appointmentID int, datetime string) (*models.RescheduleResult, error)
	CancelAppointment(ctx context.Context, appointmentID int) (*models.CancelResult, error)
}

type AppointmentLedgerRepository interface {
	Record(ctx context.Context, entry *models.LedgerEntry) error
	FindByEmail(ctx context.Context, email string) ([]models.LedgerEntry, error)
}

type SchedulingEventPublisher interface {
	Publish(ctx context.Context, event *models.SchedulingEvent) error
}
