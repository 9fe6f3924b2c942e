package scheduling

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProviderClient struct {
	mock.Mock
}

func (m *mockProviderClient) FindAppointmentTypes(ctx context.Context) ([]models.AppointmentType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]models.AppointmentType)
	return types, args.Error(1)
}

func (m *mockProviderClient) FindAvailableDates(ctx context.Context, appointmentTypeID int, month string) ([]models.AvailabilityDate, error) {
	args := m.Called(ctx, appointmentTypeID, month)
	dates, _ := args.Get(0).([]models.AvailabilityDate)
	return dates, args.Error(1)
}

func (m *mockProviderClient) FindAvailableTimes(ctx context.Context, appointmentTypeID int, date string, calendarID *int) ([]models.AvailabilityTime, error) {
	args := m.Called(ctx, appointmentTypeID, date, calendarID)
	times, _ := args.Get(0).([]models.AvailabilityTime)
	return times, args.Error(1)
}

func (m *mockProviderClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *mockProviderClient) FindAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	args := m.Called(ctx, email)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *mockProviderClient) RescheduleAppointment(ctx context.Context, appointmentID int, datetime string) (*models.RescheduleResult, error) {
	args := m.Called(ctx, appointmentID, datetime)
	result, _ := args.Get(0).(*models.RescheduleResult)
	return result, args.Error(1)
}

func (m *mockProviderClient) CancelAppointment(ctx context.Context, appointmentID int) (*models.CancelResult, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.CancelResult)
	return result, args.Error(1)
}

type mockLedgerRepository struct {
	mock.Mock
}

func (m *mockLedgerRepository) Record(ctx context.Context, entry *models.LedgerEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLedgerRepository) FindByEmail(ctx context.Context, email string) ([]models.LedgerEntry, error) {
	args := m.Called(ctx, email)
	entries, _ := args.Get(0).([]models.LedgerEntry)
	return entries, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, event *models.SchedulingEvent) error {
	return m.Called(ctx, event).Error(0)
}

var errProviderDown = exceptions.ErrSendHTTPRequest(errors.New("dial tcp: connection refused"))

func newTestUsecase(provider *mockProviderClient, allowSimulated bool) *schedulingUsecase {
	cfg := &config.InternalConfig{
		App:        config.App{Timezone: "UTC"},
		Scheduling: config.AppScheduling{AllowSimulatedBookings: allowSimulated},
	}
	uc := NewSchedulingUsecase(provider, nil, nil, cfg, zap.NewNop()).(*schedulingUsecase)
	uc.now = func() time.Time {
		return time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func fakeCreateRequest() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		Datetime:          "2024-05-06T09:00:00-0400",
		AppointmentTypeID: 1002,
		FirstName:         gofakeit.FirstName(),
		LastName:          gofakeit.LastName(),
		Email:             strings.ToLower(gofakeit.Email()),
		Phone:             gofakeit.Phone(),
	}
}

func TestSchedulingUsecase_GetAppointmentTypes(t *testing.T) {
	t.Run("Provider Data Returned Verbatim", func(t *testing.T) {
		provider := new(mockProviderClient)
		providerTypes := []models.AppointmentType{{ID: 7, Name: "Dermatology"}}
		provider.On("FindAppointmentTypes", mock.Anything).Return(providerTypes, nil)

		result, err := newTestUsecase(provider, false).GetAppointmentTypes(context.Background())

		require.NoError(t, err)
		assert.False(t, result.IsDegraded())
		assert.Equal(t, providerTypes, result.Data)
	})

	t.Run("Unreachable Provider Serves Fallback Set", func(t *testing.T) {
		provider := new(mockProviderClient)
		provider.On("FindAppointmentTypes", mock.Anything).Return(nil, errProviderDown)

		result, err := newTestUsecase(provider, false).GetAppointmentTypes(context.Background())

		require.NoError(t, err, "provider failures should never reach the caller")
		assert.True(t, result.IsDegraded())
		assert.Equal(t, constvars.DegradedReasonProviderUnavailable, result.DegradedReason)
		assert.GreaterOrEqual(t, len(result.Data), 3, "fallback should offer at least three types")
	})

	t.Run("Missing Credentials Reason", func(t *testing.T) {
		provider := new(mockProviderClient)
		provider.On("FindAppointmentTypes", mock.Anything).
			Return(nil, exceptions.ErrSchedulingMissingCredentials(exceptions.ErrSchedulingCredentialsMissing))

		result, err := newTestUsecase(provider, false).GetAppointmentTypes(context.Background())

		require.NoError(t, err)
		assert.Equal(t, constvars.DegradedReasonMissingCredentials, result.DegradedReason)
	})
}

func TestSchedulingUsecase_AvailabilityFallback(t *testing.T) {
	provider := new(mockProviderClient)
	provider.On("FindAvailableDates", mock.Anything, 1001, "2024-05").Return(nil, errProviderDown)
	provider.On("FindAvailableTimes", mock.Anything, 1001, "2024-05-06", (*int)(nil)).Return(nil, errProviderDown)
	uc := newTestUsecase(provider, false)

	t.Run("Dates Skip Weekends", func(t *testing.T) {
		result, err := uc.GetAvailableDates(context.Background(), &requests.AvailableDatesQuery{Month: "2024-05", AppointmentTypeID: 1001})
		require.NoError(t, err)
		assert.True(t, result.IsDegraded())
		require.Len(t, result.Data, 10, "two weeks from a Friday hold ten weekdays")
		assert.Equal(t, "2024-05-06", result.Data[0].Date)
		for _, date := range result.Data {
			day, err := time.Parse(time.DateOnly, date.Date)
			require.NoError(t, err)
			assert.NotEqual(t, time.Saturday, day.Weekday())
			assert.NotEqual(t, time.Sunday, day.Weekday())
			assert.Equal(t, constvars.SchedulingFallbackSlotsPerDay, date.SlotsAvailable)
		}
	})

	t.Run("Times Are Fixed Slots", func(t *testing.T) {
		result, err := uc.GetAvailableTimes(context.Background(), &requests.AvailableTimesQuery{Date: "2024-05-06", AppointmentTypeID: 1001})
		require.NoError(t, err)
		assert.True(t, result.IsDegraded())
		require.Len(t, result.Data, 6)
		assert.Equal(t, "2024-05-06T09:00:00+0000", result.Data[0].Time)
		assert.Equal(t, "2024-05-06T15:00:00+0000", result.Data[5].Time)
	})
}

func TestSchedulingUsecase_CreateAppointment(t *testing.T) {
	t.Run("Confirmed Booking Is Recorded And Published", func(t *testing.T) {
		provider := new(mockProviderClient)
		ledger := new(mockLedgerRepository)
		publisher := new(mockEventPublisher)
		request := fakeCreateRequest()
		created := &models.Appointment{ID: 42, Email: request.Email, Datetime: request.Datetime, AppointmentTypeID: request.AppointmentTypeID}

		provider.On("CreateAppointment", mock.Anything, request).Return(created, nil)
		ledger.On("Record", mock.Anything, mock.MatchedBy(func(entry *models.LedgerEntry) bool {
			return entry.ProviderAppointmentID == 42 && entry.Outcome == constvars.LedgerOutcomeConfirmed
		})).Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *models.SchedulingEvent) bool {
			return event.Type == constvars.SchedulingEventAppointmentBooked && !event.Degraded
		})).Return(nil)

		uc := newTestUsecase(provider, false)
		uc.LedgerRepository = ledger
		uc.EventPublisher = publisher

		result, err := uc.CreateAppointment(context.Background(), request)

		require.NoError(t, err)
		assert.False(t, result.IsDegraded())
		assert.Equal(t, 42, result.Data.ID)
		ledger.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Simulated Bookings Disabled Surfaces Failure", func(t *testing.T) {
		provider := new(mockProviderClient)
		request := fakeCreateRequest()
		provider.On("CreateAppointment", mock.Anything, request).Return(nil, errProviderDown)

		result, err := newTestUsecase(provider, false).CreateAppointment(context.Background(), request)

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Simulated Booking Echoes Input", func(t *testing.T) {
		provider := new(mockProviderClient)
		request := fakeCreateRequest()
		provider.On("CreateAppointment", mock.Anything, request).Return(nil, errProviderDown)

		result, err := newTestUsecase(provider, true).CreateAppointment(context.Background(), request)

		require.NoError(t, err)
		assert.True(t, result.IsDegraded())
		assert.GreaterOrEqual(t, result.Data.ID, 900_000_000)
		assert.Equal(t, request.Email, result.Data.Email)
		assert.Equal(t, request.Datetime, result.Data.Datetime)
		assert.Equal(t, 20, result.Data.Duration, "duration should follow the fallback type")
		assert.True(t, strings.HasPrefix(result.Data.ConfirmationPage, constvars.SchedulingFallbackConfirmBaseUrl))
	})

	t.Run("Ledger Failure Does Not Fail Booking", func(t *testing.T) {
		provider := new(mockProviderClient)
		ledger := new(mockLedgerRepository)
		request := fakeCreateRequest()
		provider.On("CreateAppointment", mock.Anything, request).Return(&models.Appointment{ID: 9}, nil)
		ledger.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down"))

		uc := newTestUsecase(provider, false)
		uc.LedgerRepository = ledger

		result, err := uc.CreateAppointment(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, 9, result.Data.ID)
	})
}

func TestSchedulingUsecase_AppointmentFallbacks(t *testing.T) {
	provider := new(mockProviderClient)
	provider.On("FindAppointmentsByEmail", mock.Anything, "member@example.com").Return(nil, errProviderDown)
	provider.On("RescheduleAppointment", mock.Anything, 12, "2024-05-09T10:00:00-0400").Return(nil, errProviderDown)
	provider.On("CancelAppointment", mock.Anything, 12).Return(nil, errProviderDown)
	uc := newTestUsecase(provider, false)
	ctx := context.Background()

	t.Run("User Appointments", func(t *testing.T) {
		result, err := uc.GetUserAppointments(ctx, "member@example.com")
		require.NoError(t, err)
		assert.True(t, result.IsDegraded())
		require.Len(t, result.Data, 2)
		for _, appointment := range result.Data {
			assert.Equal(t, "member@example.com", appointment.Email)
		}
	})

	t.Run("Reschedule Echoes", func(t *testing.T) {
		result, err := uc.RescheduleAppointment(ctx, 12, "2024-05-09T10:00:00-0400")
		require.NoError(t, err)
		assert.True(t, result.IsDegraded())
		assert.Equal(t, models.RescheduleResult{ID: 12, Datetime: "2024-05-09T10:00:00-0400"}, result.Data)
	})

	t.Run("Cancel Echoes", func(t *testing.T) {
		result, err := uc.CancelAppointment(ctx, 12)
		require.NoError(t, err)
		assert.True(t, result.IsDegraded())
		assert.Equal(t, models.CancelResult{ID: 12, Canceled: true}, result.Data)
	})

	t.Run("History Without Ledger", func(t *testing.T) {
		entries, err := uc.GetBookingHistory(ctx, "member@example.com")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
