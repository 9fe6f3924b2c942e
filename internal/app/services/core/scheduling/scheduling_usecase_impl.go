package scheduling

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type schedulingUsecase struct {
	ProviderClient   contracts.SchedulingProviderClient
	LedgerRepository contracts.AppointmentLedgerRepository
	EventPublisher   contracts.SchedulingEventPublisher
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
	location         *time.Location
	now              func() time.Time
}

// NewSchedulingUsecase wires the provider proxy. ledgerRepository and eventPublisher
// are optional and may be nil.
func NewSchedulingUsecase(
	providerClient contracts.SchedulingProviderClient,
	ledgerRepository contracts.AppointmentLedgerRepository,
	eventPublisher contracts.SchedulingEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SchedulingUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("schedulingUsecase unknown timezone, using UTC",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	return &schedulingUsecase{
		ProviderClient:   providerClient,
		LedgerRepository: ledgerRepository,
		EventPublisher:   eventPublisher,
		InternalConfig:   internalConfig,
		Log:              logger,
		location:         location,
		now:              time.Now,
	}
}

func (uc *schedulingUsecase) GetAppointmentTypes(ctx context.Context) (*models.SchedulingResult[[]models.AppointmentType], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.GetAppointmentTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentTypes, err := uc.ProviderClient.FindAppointmentTypes(ctx)
	if err != nil {
		reason := uc.logFallback(requestID, "schedulingUsecase.GetAppointmentTypes", err)
		return models.NewDegradedResult(fallbackAppointmentTypes(), reason), nil
	}

	uc.Log.Info("schedulingUsecase.GetAppointmentTypes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointmentTypes)),
	)
	return models.NewOKResult(appointmentTypes), nil
}

func (uc *schedulingUsecase) GetAvailableDates(ctx context.Context, query *requests.AvailableDatesQuery) (*models.SchedulingResult[[]models.AvailabilityDate], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.GetAvailableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, query.AppointmentTypeID),
		zap.String(constvars.LoggingMonthKey, query.Month),
	)

	dates, err := uc.ProviderClient.FindAvailableDates(ctx, query.AppointmentTypeID, query.Month)
	if err != nil {
		reason := uc.logFallback(requestID, "schedulingUsecase.GetAvailableDates", err)
		return models.NewDegradedResult(fallbackAvailableDates(uc.now().In(uc.location)), reason), nil
	}

	uc.Log.Info("schedulingUsecase.GetAvailableDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(dates)),
	)
	return models.NewOKResult(dates), nil
}

func (uc *schedulingUsecase) GetAvailableTimes(ctx context.Context, query *requests.AvailableTimesQuery) (*models.SchedulingResult[[]models.AvailabilityTime], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.GetAvailableTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, query.AppointmentTypeID),
		zap.String(constvars.LoggingDateKey, query.Date),
	)

	times, err := uc.ProviderClient.FindAvailableTimes(ctx, query.AppointmentTypeID, query.Date, query.CalendarID)
	if err != nil {
		reason := uc.logFallback(requestID, "schedulingUsecase.GetAvailableTimes", err)
		return models.NewDegradedResult(fallbackAvailableTimes(query.Date, uc.location), reason), nil
	}

	uc.Log.Info("schedulingUsecase.GetAvailableTimes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(times)),
	)
	return models.NewOKResult(times), nil
}

// CreateAppointment is the one operation that can fail: without the simulated bookings
// switch a provider failure is returned instead of a fabricated confirmation.
func (uc *schedulingUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.SchedulingResult[models.Appointment], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, request.AppointmentTypeID),
	)

	appointment, err := uc.ProviderClient.CreateAppointment(ctx, request)
	if err == nil {
		uc.recordLedger(ctx, appointment, constvars.LedgerOutcomeConfirmed, "")
		uc.publishEvent(ctx, constvars.SchedulingEventAppointmentBooked, appointment.ID, appointment.Email, appointment.Datetime, false)

		uc.Log.Info("schedulingUsecase.CreateAppointment succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return models.NewOKResult(*appointment), nil
	}

	if !uc.InternalConfig.Scheduling.AllowSimulatedBookings {
		uc.Log.Error("schedulingUsecase.CreateAppointment provider failed and simulated bookings are disabled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool(constvars.LoggingSimulatedBookingsKey, false),
			zap.Error(err),
		)
		return nil, exceptions.ErrSimulatedBookingsDisabled(err)
	}

	reason := uc.logFallback(requestID, "schedulingUsecase.CreateAppointment", err)
	simulated := fallbackAppointment(request)
	uc.recordLedger(ctx, &simulated, constvars.LedgerOutcomeSimulated, reason)
	uc.publishEvent(ctx, constvars.SchedulingEventAppointmentBooked, simulated.ID, simulated.Email, simulated.Datetime, true)

	uc.Log.Warn("schedulingUsecase.CreateAppointment returned a simulated booking",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, simulated.ID),
		zap.Bool(constvars.LoggingSimulatedBookingsKey, true),
	)
	return models.NewDegradedResult(simulated, reason), nil
}

func (uc *schedulingUsecase) GetUserAppointments(ctx context.Context, email string) (*models.SchedulingResult[[]models.Appointment], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.GetUserAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.ProviderClient.FindAppointmentsByEmail(ctx, email)
	if err != nil {
		reason := uc.logFallback(requestID, "schedulingUsecase.GetUserAppointments", err)
		return models.NewDegradedResult(fallbackUserAppointments(email, uc.now(), uc.location), reason), nil
	}

	uc.Log.Info("schedulingUsecase.GetUserAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	return models.NewOKResult(appointments), nil
}

func (uc *schedulingUsecase) RescheduleAppointment(ctx context.Context, appointmentID int, datetime string) (*models.SchedulingResult[models.RescheduleResult], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	result, err := uc.ProviderClient.RescheduleAppointment(ctx, appointmentID, datetime)
	if err != nil {
		reason := uc.logFallback(requestID, "schedulingUsecase.RescheduleAppointment", err)
		uc.publishEvent(ctx, constvars.SchedulingEventAppointmentRescheduled, appointmentID, "", datetime, true)
		return models.NewDegradedResult(models.RescheduleResult{ID: appointmentID, Datetime: datetime}, reason), nil
	}

	uc.publishEvent(ctx, constvars.SchedulingEventAppointmentRescheduled, result.ID, "", result.Datetime, false)
	uc.Log.Info("schedulingUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, result.ID),
	)
	return models.NewOKResult(*result), nil
}

func (uc *schedulingUsecase) CancelAppointment(ctx context.Context, appointmentID int) (*models.SchedulingResult[models.CancelResult], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	result, err := uc.ProviderClient.CancelAppointment(ctx, appointmentID)
	if err != nil {
		reason := uc.logFallback(requestID, "schedulingUsecase.CancelAppointment", err)
		uc.publishEvent(ctx, constvars.SchedulingEventAppointmentCanceled, appointmentID, "", "", true)
		return models.NewDegradedResult(models.CancelResult{ID: appointmentID, Canceled: true}, reason), nil
	}

	uc.publishEvent(ctx, constvars.SchedulingEventAppointmentCanceled, result.ID, "", "", false)
	uc.Log.Info("schedulingUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, result.ID),
	)
	return models.NewOKResult(*result), nil
}

func (uc *schedulingUsecase) GetBookingHistory(ctx context.Context, email string) ([]models.LedgerEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.GetBookingHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.LedgerRepository == nil {
		return []models.LedgerEntry{}, nil
	}

	entries, err := uc.LedgerRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("schedulingUsecase.GetBookingHistory error finding ledger entries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("schedulingUsecase.GetBookingHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(entries)),
	)
	return entries, nil
}

func (uc *schedulingUsecase) logFallback(requestID, operation string, err error) string {
	reason := degradedReason(err)
	uc.Log.Warn(operation+" provider call failed, serving fallback data",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDegradedReasonKey, reason),
		zap.Error(err),
	)
	return reason
}

func degradedReason(err error) string {
	if errors.Is(err, exceptions.ErrSchedulingCredentialsMissing) {
		return constvars.DegradedReasonMissingCredentials
	}
	return constvars.DegradedReasonProviderUnavailable
}

// recordLedger never fails the booking; the provider stays the source of truth.
func (uc *schedulingUsecase) recordLedger(ctx context.Context, appointment *models.Appointment, outcome, reason string) {
	if uc.LedgerRepository == nil {
		return
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	entry := &models.LedgerEntry{
		ProviderAppointmentID: appointment.ID,
		AppointmentTypeID:     appointment.AppointmentTypeID,
		Datetime:              appointment.Datetime,
		Email:                 appointment.Email,
		Outcome:               outcome,
		DegradedReason:        reason,
	}
	err := uc.LedgerRepository.Record(ctx, entry)
	if err != nil {
		uc.Log.Error("schedulingUsecase.recordLedger error recording entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLedgerOutcomeKey, outcome),
			zap.Error(err),
		)
	}
}

func (uc *schedulingUsecase) publishEvent(ctx context.Context, eventType string, appointmentID int, email, datetime string, degraded bool) {
	if uc.EventPublisher == nil {
		return
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event := &models.SchedulingEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		AppointmentID: appointmentID,
		Email:         email,
		Datetime:      datetime,
		Degraded:      degraded,
		OccurredAt:    uc.now().UTC(),
	}
	err := uc.EventPublisher.Publish(ctx, event)
	if err != nil {
		uc.Log.Error("schedulingUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
