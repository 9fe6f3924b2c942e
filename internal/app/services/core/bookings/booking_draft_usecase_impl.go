package bookings

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const submitDatetimeLayout = "2006-01-02T15:04:05-0700"

type bookingDraftUsecase struct {
	DraftRepository   contracts.BookingDraftRepository
	SchedulingUsecase contracts.SchedulingUsecase
	Locker            contracts.LockerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	location          *time.Location
}

func NewBookingDraftUsecase(
	draftRepository contracts.BookingDraftRepository,
	schedulingUsecase contracts.SchedulingUsecase,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingDraftUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		location = time.UTC
	}

	return &bookingDraftUsecase{
		DraftRepository:   draftRepository,
		SchedulingUsecase: schedulingUsecase,
		Locker:            locker,
		InternalConfig:    internalConfig,
		Log:               logger,
		location:          location,
	}
}

func (uc *bookingDraftUsecase) CreateDraft(ctx context.Context) (*models.BookingDraft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingDraftUsecase.CreateDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draft := &models.BookingDraft{ID: uuid.NewString()}
	err := uc.DraftRepository.Save(ctx, draft, uc.InternalConfig.Bookings.DraftTTL)
	if err != nil {
		uc.Log.Error("bookingDraftUsecase.CreateDraft error saving draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingDraftUsecase.CreateDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draft.ID),
	)
	return draft, nil
}

func (uc *bookingDraftUsecase) FindDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingDraftUsecase.FindDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	draft, err := uc.DraftRepository.FindByID(ctx, draftID)
	if err != nil {
		uc.Log.Error("bookingDraftUsecase.FindDraft error finding draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return nil, err
	}
	return draft, nil
}

// SaveDraft refreshes the draft TTL on every write.
func (uc *bookingDraftUsecase) SaveDraft(ctx context.Context, draftID string, snapshot models.BookingSnapshot) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.DraftRepository.Save(ctx, &models.BookingDraft{ID: draftID, State: snapshot}, uc.InternalConfig.Bookings.DraftTTL)
	if err != nil {
		uc.Log.Error("bookingDraftUsecase.SaveDraft error saving draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *bookingDraftUsecase) GetDraftState(ctx context.Context) models.BookingSnapshot {
	return FromContext(ctx).Snapshot()
}

func (uc *bookingDraftUsecase) SelectAppointmentType(ctx context.Context, request *requests.SetDraftAppointmentTypeRequest) (models.BookingSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingDraftUsecase.SelectAppointmentType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, request.AppointmentTypeID),
	)

	state := FromContext(ctx)

	appointmentTypes, err := uc.SchedulingUsecase.GetAppointmentTypes(ctx)
	if err != nil {
		return models.BookingSnapshot{}, err
	}

	for _, appointmentType := range appointmentTypes.Data {
		if appointmentType.ID == request.AppointmentTypeID {
			state.SetAppointmentType(appointmentType)
			return state.Snapshot(), nil
		}
	}

	uc.Log.Warn("bookingDraftUsecase.SelectAppointmentType unknown appointment type",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, request.AppointmentTypeID),
		zap.Bool(constvars.LoggingSuccessKey, false),
	)
	return models.BookingSnapshot{}, exceptions.ErrUnknownAppointmentType(nil, request.AppointmentTypeID)
}

func (uc *bookingDraftUsecase) SelectDate(ctx context.Context, request *requests.SetDraftDateRequest) models.BookingSnapshot {
	state := FromContext(ctx)
	state.SetDate(request.Date)
	return state.Snapshot()
}

func (uc *bookingDraftUsecase) SelectTime(ctx context.Context, request *requests.SetDraftTimeRequest) models.BookingSnapshot {
	state := FromContext(ctx)
	state.SetTime(request.Time)
	return state.Snapshot()
}

func (uc *bookingDraftUsecase) SetContactDetails(ctx context.Context, request *requests.SetDraftContactRequest) models.BookingSnapshot {
	state := FromContext(ctx)
	state.SetContactDetails(models.ContactDetails{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
		Notes:     request.Notes,
	})
	return state.Snapshot()
}

func (uc *bookingDraftUsecase) ResetDraft(ctx context.Context) models.BookingSnapshot {
	state := FromContext(ctx)
	state.Reset()
	return state.Snapshot()
}

// SubmitDraft books the selections held by the scoped state and resets it on success.
// The per-draft lock is held until the reset draft is stored, so a concurrent submit
// either sees the lock or finds the draft already reset.
func (uc *bookingDraftUsecase) SubmitDraft(ctx context.Context) (*models.SchedulingResult[models.Appointment], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	draftID, _ := ctx.Value(constvars.CONTEXT_BOOKING_DRAFT_ID_KEY).(string)
	uc.Log.Info("bookingDraftUsecase.SubmitDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	state := FromContext(ctx)
	request, err := uc.buildSubmitRequest(state.Snapshot())
	if err != nil {
		uc.Log.Warn("bookingDraftUsecase.SubmitDraft draft failed validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	lockKey := constvars.RedisKeyPrefixBookingSubmitLock + draftID
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, constvars.BookingSubmitLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("bookingDraftUsecase.SubmitDraft draft already being submitted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
		)
		return nil, exceptions.ErrBookingSubmitInProgress(nil, draftID)
	}
	defer func() {
		unlockErr := uc.Locker.Unlock(ctx, lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Error("bookingDraftUsecase.SubmitDraft error releasing submit lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDraftIDKey, draftID),
				zap.Error(unlockErr),
			)
		}
	}()

	// The scoped state was loaded before the lock; a submit that finished in between
	// has already reset the stored draft.
	stored, err := uc.DraftRepository.FindByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if missing := missingSelection(stored.State); missing != "" {
		uc.Log.Warn("bookingDraftUsecase.SubmitDraft draft already submitted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
		)
		return nil, exceptions.ErrBookingDraftIncomplete(nil, missing)
	}

	result, err := uc.SchedulingUsecase.CreateAppointment(ctx, request)
	if err != nil {
		return nil, err
	}

	state.Reset()
	err = uc.SaveDraft(ctx, draftID, state.Snapshot())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("bookingDraftUsecase.SubmitDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.Int(constvars.LoggingAppointmentIDKey, result.Data.ID),
	)
	return result, nil
}

func (uc *bookingDraftUsecase) buildSubmitRequest(snapshot models.BookingSnapshot) (*requests.CreateAppointmentRequest, error) {
	if missing := missingSelection(snapshot); missing != "" {
		return nil, exceptions.ErrBookingDraftIncomplete(nil, missing)
	}

	slot, err := time.ParseInLocation("2006-01-02 15:04", snapshot.SelectedDate+" "+snapshot.SelectedTime, uc.location)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	request := &requests.CreateAppointmentRequest{
		Datetime:          slot.Format(submitDatetimeLayout),
		AppointmentTypeID: snapshot.SelectedType.ID,
		FirstName:         snapshot.ContactDetails.FirstName,
		LastName:          snapshot.ContactDetails.LastName,
		Email:             snapshot.ContactDetails.Email,
		Phone:             snapshot.ContactDetails.Phone,
	}
	utils.SanitizeCreateAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

func missingSelection(snapshot models.BookingSnapshot) string {
	switch {
	case snapshot.SelectedType == nil:
		return "selectedType"
	case snapshot.SelectedDate == "":
		return "selectedDate"
	case snapshot.SelectedTime == "":
		return "selectedTime"
	case snapshot.ContactDetails.FirstName == "":
		return "contactDetails.firstName"
	case snapshot.ContactDetails.LastName == "":
		return "contactDetails.lastName"
	case snapshot.ContactDetails.Email == "":
		return "contactDetails.email"
	case snapshot.ContactDetails.Phone == "":
		return "contactDetails.phone"
	}
	return ""
}
