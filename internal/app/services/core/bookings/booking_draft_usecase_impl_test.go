package bookings

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/app/services/shared/locker"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSchedulingUsecase struct {
	mock.Mock
}

func (m *mockSchedulingUsecase) GetAppointmentTypes(ctx context.Context) (*models.SchedulingResult[[]models.AppointmentType], error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.AppointmentType])
	return result, args.Error(1)
}

func (m *mockSchedulingUsecase) GetAvailableDates(ctx context.Context, query *requests.AvailableDatesQuery) (*models.SchedulingResult[[]models.AvailabilityDate], error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.AvailabilityDate])
	return result, args.Error(1)
}

func (m *mockSchedulingUsecase) GetAvailableTimes(ctx context.Context, query *requests.AvailableTimesQuery) (*models.SchedulingResult[[]models.AvailabilityTime], error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.AvailabilityTime])
	return result, args.Error(1)
}

func (m *mockSchedulingUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.SchedulingResult[models.Appointment], error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.SchedulingResult[models.Appointment])
	return result, args.Error(1)
}

func (m *mockSchedulingUsecase) GetUserAppointments(ctx context.Context, email string) (*models.SchedulingResult[[]models.Appointment], error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.Appointment])
	return result, args.Error(1)
}

func (m *mockSchedulingUsecase) RescheduleAppointment(ctx context.Context, appointmentID int, datetime string) (*models.SchedulingResult[models.RescheduleResult], error) {
	args := m.Called(ctx, appointmentID, datetime)
	result, _ := args.Get(0).(*models.SchedulingResult[models.RescheduleResult])
	return result, args.Error(1)
}

func (m *mockSchedulingUsecase) CancelAppointment(ctx context.Context, appointmentID int) (*models.SchedulingResult[models.CancelResult], error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.SchedulingResult[models.CancelResult])
	return result, args.Error(1)
}

func (m *mockSchedulingUsecase) GetBookingHistory(ctx context.Context, email string) ([]models.LedgerEntry, error) {
	args := m.Called(ctx, email)
	entries, _ := args.Get(0).([]models.LedgerEntry)
	return entries, args.Error(1)
}

func newTestDraftUsecase(scheduling *mockSchedulingUsecase) *bookingDraftUsecase {
	cfg := &config.InternalConfig{
		App:      config.App{Timezone: "UTC"},
		Bookings: config.AppBookings{DraftTTL: 30 * time.Minute},
	}
	return NewBookingDraftUsecase(NewBookingDraftMemoryRepository(), scheduling, locker.NewMemoryLockService(), cfg, zap.NewNop()).(*bookingDraftUsecase)
}

func TestBookingDraftUsecase_CreateAndFind(t *testing.T) {
	uc := newTestDraftUsecase(new(mockSchedulingUsecase))
	ctx := context.Background()

	draft, err := uc.CreateDraft(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, draft.ID)

	require.NoError(t, uc.SaveDraft(ctx, draft.ID, models.BookingSnapshot{SelectedDate: "2024-05-06"}))

	found, err := uc.FindDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06", found.State.SelectedDate)
}

func TestBookingDraftUsecase_SelectAppointmentType(t *testing.T) {
	scheduling := new(mockSchedulingUsecase)
	scheduling.On("GetAppointmentTypes", mock.Anything).Return(
		models.NewOKResult([]models.AppointmentType{{ID: 1001, Name: "Primary Care Visit"}}), nil,
	)
	uc := newTestDraftUsecase(scheduling)

	t.Run("Known Type Is Stored", func(t *testing.T) {
		ctx := WithState(context.Background(), NewState())
		snapshot, err := uc.SelectAppointmentType(ctx, &requests.SetDraftAppointmentTypeRequest{AppointmentTypeID: 1001})
		require.NoError(t, err)
		require.NotNil(t, snapshot.SelectedType)
		assert.Equal(t, "Primary Care Visit", snapshot.SelectedType.Name)
	})

	t.Run("Unknown Type Is Rejected", func(t *testing.T) {
		ctx := WithState(context.Background(), NewState())
		_, err := uc.SelectAppointmentType(ctx, &requests.SetDraftAppointmentTypeRequest{AppointmentTypeID: 4})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Nil(t, FromContext(ctx).Snapshot().SelectedType)
	})

	t.Run("Outside Scope Panics", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrOutsideProvider, func() {
			uc.SelectDate(context.Background(), &requests.SetDraftDateRequest{Date: "2024-05-06"})
		})
	})
}

func TestBookingDraftUsecase_SubmitDraft(t *testing.T) {
	t.Run("Incomplete Draft", func(t *testing.T) {
		uc := newTestDraftUsecase(new(mockSchedulingUsecase))
		state := NewState()
		state.SetDate("2024-05-06")
		ctx := WithState(context.Background(), state)

		_, err := uc.SubmitDraft(ctx)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, "selectedType", customErr.Errors[0].Field)
	})

	t.Run("Invalid Contact Email", func(t *testing.T) {
		uc := newTestDraftUsecase(new(mockSchedulingUsecase))
		state := completeState()
		state.SetContactDetails(models.ContactDetails{FirstName: "Jane", LastName: "Doe", Email: "not-an-email", Phone: "555-123-4567"})
		ctx := WithState(context.Background(), state)

		_, err := uc.SubmitDraft(ctx)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Books And Resets", func(t *testing.T) {
		scheduling := new(mockSchedulingUsecase)
		scheduling.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(request *requests.CreateAppointmentRequest) bool {
			return request.Datetime == "2024-05-06T09:30:00+0000" && request.AppointmentTypeID == 1001 && request.Email == "jane@example.com"
		})).Return(models.NewOKResult(models.Appointment{ID: 77}), nil)

		uc := newTestDraftUsecase(scheduling)
		state := completeState()
		ctx := scopedSubmitContext(t, uc, state)

		result, err := uc.SubmitDraft(ctx)

		require.NoError(t, err)
		assert.Equal(t, 77, result.Data.ID)
		assert.Equal(t, models.BookingSnapshot{}, state.Snapshot(), "state should reset after booking")

		stored, err := uc.FindDraft(ctx, draftIDFrom(ctx))
		require.NoError(t, err)
		assert.Equal(t, models.BookingSnapshot{}, stored.State, "reset draft should be stored before the lock is released")
		scheduling.AssertExpectations(t)
	})

	t.Run("Already Submitted Draft Is Refused", func(t *testing.T) {
		scheduling := new(mockSchedulingUsecase)
		uc := newTestDraftUsecase(scheduling)
		ctx := scopedSubmitContext(t, uc, completeState())
		require.NoError(t, uc.SaveDraft(ctx, draftIDFrom(ctx), models.BookingSnapshot{}))

		_, err := uc.SubmitDraft(ctx)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		scheduling.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Failure Keeps Selections", func(t *testing.T) {
		scheduling := new(mockSchedulingUsecase)
		scheduling.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrSimulatedBookingsDisabled(errors.New("provider down")))

		uc := newTestDraftUsecase(scheduling)
		state := completeState()
		ctx := scopedSubmitContext(t, uc, state)

		_, err := uc.SubmitDraft(ctx)

		require.Error(t, err)
		assert.Equal(t, "2024-05-06", state.Snapshot().SelectedDate)
	})
}

func TestBookingDraftUsecase_SubmitDraftLock(t *testing.T) {
	scheduling := new(mockSchedulingUsecase)
	uc := newTestDraftUsecase(scheduling)
	ctx := scopedSubmitContext(t, uc, completeState())
	lockKey := constvars.RedisKeyPrefixBookingSubmitLock + draftIDFrom(ctx)

	t.Run("Concurrent Submit Is Refused", func(t *testing.T) {
		acquired, value, err := uc.Locker.TryLock(ctx, lockKey, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		_, err = uc.SubmitDraft(ctx)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		scheduling.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)

		require.NoError(t, uc.Locker.Unlock(ctx, lockKey, value))
	})

	t.Run("Lock Is Released After Submit", func(t *testing.T) {
		scheduling.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrSimulatedBookingsDisabled(errors.New("provider down"))).Once()

		_, err := uc.SubmitDraft(ctx)
		require.Error(t, err)

		acquired, _, err := uc.Locker.TryLock(ctx, lockKey, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})
}

func scopedSubmitContext(t *testing.T, uc *bookingDraftUsecase, state *State) context.Context {
	t.Helper()
	draft, err := uc.CreateDraft(context.Background())
	require.NoError(t, err)
	require.NoError(t, uc.SaveDraft(context.Background(), draft.ID, state.Snapshot()))

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_BOOKING_DRAFT_ID_KEY, draft.ID)
	return WithState(ctx, state)
}

func draftIDFrom(ctx context.Context) string {
	draftID, _ := ctx.Value(constvars.CONTEXT_BOOKING_DRAFT_ID_KEY).(string)
	return draftID
}

func completeState() *State {
	state := NewState()
	state.SetAppointmentType(models.AppointmentType{ID: 1001, Name: "Primary Care Visit"})
	state.SetDate("2024-05-06")
	state.SetTime("09:30")
	state.SetContactDetails(models.ContactDetails{FirstName: "Jane", LastName: "Doe", Email: "Jane@Example.com", Phone: "555-123-4567"})
	return state
}
