package routers

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/delivery/http/controllers"
	"benefits-portal-service/internal/app/delivery/http/middlewares"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/app/services/core/bookings"
	"benefits-portal-service/internal/app/services/core/terms"
	"benefits-portal-service/internal/app/services/shared/locker"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSchedulingUsecase struct {
	mock.Mock
}

func (m *MockSchedulingUsecase) GetAppointmentTypes(ctx context.Context) (*models.SchedulingResult[[]models.AppointmentType], error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.AppointmentType])
	return result, args.Error(1)
}

func (m *MockSchedulingUsecase) GetAvailableDates(ctx context.Context, query *requests.AvailableDatesQuery) (*models.SchedulingResult[[]models.AvailabilityDate], error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.AvailabilityDate])
	return result, args.Error(1)
}

func (m *MockSchedulingUsecase) GetAvailableTimes(ctx context.Context, query *requests.AvailableTimesQuery) (*models.SchedulingResult[[]models.AvailabilityTime], error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.AvailabilityTime])
	return result, args.Error(1)
}

func (m *MockSchedulingUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.SchedulingResult[models.Appointment], error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.SchedulingResult[models.Appointment])
	return result, args.Error(1)
}

func (m *MockSchedulingUsecase) GetUserAppointments(ctx context.Context, email string) (*models.SchedulingResult[[]models.Appointment], error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(*models.SchedulingResult[[]models.Appointment])
	return result, args.Error(1)
}

func (m *MockSchedulingUsecase) RescheduleAppointment(ctx context.Context, appointmentID int, datetime string) (*models.SchedulingResult[models.RescheduleResult], error) {
	args := m.Called(ctx, appointmentID, datetime)
	result, _ := args.Get(0).(*models.SchedulingResult[models.RescheduleResult])
	return result, args.Error(1)
}

func (m *MockSchedulingUsecase) CancelAppointment(ctx context.Context, appointmentID int) (*models.SchedulingResult[models.CancelResult], error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.SchedulingResult[models.CancelResult])
	return result, args.Error(1)
}

func (m *MockSchedulingUsecase) GetBookingHistory(ctx context.Context, email string) ([]models.LedgerEntry, error) {
	args := m.Called(ctx, email)
	entries, _ := args.Get(0).([]models.LedgerEntry)
	return entries, args.Error(1)
}

type stubTermsClient struct {
	calls int
}

func (s *stubTermsClient) SearchMedications(ctx context.Context, query string) ([]models.MedicationResult, error) {
	s.calls++
	return []models.MedicationResult{{Name: "ASPIRIN", Strengths: []string{"81 mg Tab"}}}, nil
}

func (s *stubTermsClient) SearchAllergies(ctx context.Context, query string) ([]models.TermResult, error) {
	s.calls++
	return []models.TermResult{}, nil
}

func (s *stubTermsClient) SearchConditions(ctx context.Context, query string) ([]models.TermResult, error) {
	s.calls++
	return []models.TermResult{}, nil
}

type errorBody struct {
	Success bool `json:"success"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// blockingDraftRepository holds the first save of a reset draft until release is closed.
type blockingDraftRepository struct {
	contracts.BookingDraftRepository
	mu      sync.Mutex
	armed   bool
	reached chan struct{}
	release chan struct{}
}

func newBlockingDraftRepository() *blockingDraftRepository {
	return &blockingDraftRepository{
		BookingDraftRepository: bookings.NewBookingDraftMemoryRepository(),
		reached:                make(chan struct{}),
		release:                make(chan struct{}),
	}
}

func (r *blockingDraftRepository) Save(ctx context.Context, draft *models.BookingDraft, ttl time.Duration) error {
	r.mu.Lock()
	block := r.armed && draft.State.SelectedType == nil
	if block {
		r.armed = false
	}
	r.mu.Unlock()

	if block {
		close(r.reached)
		<-r.release
	}
	return r.BookingDraftRepository.Save(ctx, draft, ttl)
}

func (r *blockingDraftRepository) arm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.armed = true
}

func newTestRouter(t *testing.T, schedulingUsecase *MockSchedulingUsecase, termsClient *stubTermsClient) *chi.Mux {
	t.Helper()
	return newTestRouterWithDrafts(t, schedulingUsecase, termsClient, bookings.NewBookingDraftMemoryRepository())
}

func newTestRouterWithDrafts(t *testing.T, schedulingUsecase *MockSchedulingUsecase, termsClient *stubTermsClient, draftRepository contracts.BookingDraftRepository) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                     "v1",
			EndpointPrefix:              "api",
			Timezone:                    "UTC",
			MaxRequests:                 1000,
			MaxBookingRequestsPerMinute: 1000,
			AllowedOrigins:              []string{"*"},
		},
		Bookings: config.AppBookings{DraftTTL: time.Minute},
	}

	draftUsecase := bookings.NewBookingDraftUsecase(draftRepository, schedulingUsecase, locker.NewMemoryLockService(), internalConfig, logger)
	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig, draftUsecase)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewareInstance,
		controllers.NewHealthController("v1", map[string]bool{"redis": false}),
		controllers.NewSchedulingController(logger, schedulingUsecase),
		controllers.NewBookingDraftController(logger, draftUsecase),
		controllers.NewTermsController(logger, terms.NewTermsUsecase(termsClient, logger)),
		nil,
		nil,
	)
	return router
}

func serve(router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func validAppointmentRequest() requests.CreateAppointmentRequest {
	return requests.CreateAppointmentRequest{
		Datetime:          "2024-05-06T09:30:00-0400",
		AppointmentTypeID: 1001,
		FirstName:         gofakeit.FirstName(),
		LastName:          gofakeit.LastName(),
		Email:             gofakeit.Email(),
		Phone:             "+1 555 010 2030",
	}
}

func TestSchedulingRouter_Availability(t *testing.T) {
	schedulingUsecase := new(MockSchedulingUsecase)
	router := newTestRouter(t, schedulingUsecase, &stubTermsClient{})

	t.Run("Invalid Month Is Rejected Before The Proxy", func(t *testing.T) {
		rr := serve(router, "GET", "/api/v1/scheduling/availability/dates?month=2024-13&appointmentTypeID=1001", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "month", body.Errors[0].Field)
		schedulingUsecase.AssertNotCalled(t, "GetAvailableDates", mock.Anything, mock.Anything)
	})

	t.Run("Non Numeric Appointment Type Is Rejected", func(t *testing.T) {
		rr := serve(router, "GET", "/api/v1/scheduling/availability/times?date=2024-05-06&appointmentTypeID=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Valid Query Returns Raw Array", func(t *testing.T) {
		dates := []models.AvailabilityDate{{Date: "2024-05-06", SlotsAvailable: 3}}
		schedulingUsecase.On("GetAvailableDates", mock.Anything, &requests.AvailableDatesQuery{Month: "2024-05", AppointmentTypeID: 1001}).
			Return(models.NewOKResult(dates), nil).Once()

		rr := serve(router, "GET", "/api/v1/scheduling/availability/dates?month=2024-05&appointmentTypeID=1001", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get(constvars.HeaderSchedulingDegraded))
		assert.JSONEq(t, `[{"date":"2024-05-06","slotsAvailable":3}]`, rr.Body.String())
	})
}

func TestSchedulingRouter_DegradedHeaders(t *testing.T) {
	schedulingUsecase := new(MockSchedulingUsecase)
	router := newTestRouter(t, schedulingUsecase, &stubTermsClient{})

	types := []models.AppointmentType{{ID: 1001, Name: "Primary Care Visit", DurationMinutes: 30, Price: decimal.Zero, CalendarIDs: []int{1}}}
	schedulingUsecase.On("GetAppointmentTypes", mock.Anything).
		Return(models.NewDegradedResult(types, constvars.DegradedReasonMissingCredentials), nil)

	rr := serve(router, "GET", "/api/v1/scheduling/appointment-types", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true", rr.Header().Get(constvars.HeaderSchedulingDegraded))
	assert.Equal(t, constvars.DegradedReasonMissingCredentials, rr.Header().Get(constvars.HeaderSchedulingDegradedReason))

	var decoded []models.AppointmentType
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	assert.Len(t, decoded, 1)
}

func TestSchedulingRouter_CreateAppointment(t *testing.T) {
	schedulingUsecase := new(MockSchedulingUsecase)
	router := newTestRouter(t, schedulingUsecase, &stubTermsClient{})

	t.Run("Invalid Email Is Rejected", func(t *testing.T) {
		request := validAppointmentRequest()
		request.Email = "not-an-email"

		rr := serve(router, "POST", "/api/v1/scheduling/appointments", request)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotEmpty(t, body.Errors)
		assert.Equal(t, "email", body.Errors[0].Field)
		schedulingUsecase.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON Is Rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/scheduling/appointments", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Valid Request Returns Created", func(t *testing.T) {
		request := validAppointmentRequest()
		appointment := models.Appointment{ID: 555, Datetime: request.Datetime, AppointmentTypeID: 1001, Email: request.Email}
		schedulingUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointmentRequest")).
			Return(models.NewOKResult(appointment), nil).Once()

		rr := serve(router, "POST", "/api/v1/scheduling/appointments", request)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var decoded models.Appointment
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
		assert.Equal(t, 555, decoded.ID)
	})
}

func TestSchedulingRouter_AppointmentIDs(t *testing.T) {
	schedulingUsecase := new(MockSchedulingUsecase)
	router := newTestRouter(t, schedulingUsecase, &stubTermsClient{})

	t.Run("Non Positive ID Is Rejected", func(t *testing.T) {
		rr := serve(router, "DELETE", "/api/v1/scheduling/appointments/0", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = serve(router, "PUT", "/api/v1/scheduling/appointments/abc", requests.RescheduleAppointmentRequest{Datetime: "2024-05-06T09:30:00Z"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Reschedule Requires Datetime", func(t *testing.T) {
		rr := serve(router, "PUT", "/api/v1/scheduling/appointments/42", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		schedulingUsecase.AssertNotCalled(t, "RescheduleAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cancel Returns Result", func(t *testing.T) {
		schedulingUsecase.On("CancelAppointment", mock.Anything, 42).
			Return(models.NewOKResult(models.CancelResult{ID: 42, Canceled: true}), nil).Once()

		rr := serve(router, "DELETE", "/api/v1/scheduling/appointments/42", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":42,"canceled":true}`, rr.Body.String())
	})

	t.Run("User Appointments Require Email", func(t *testing.T) {
		rr := serve(router, "GET", "/api/v1/scheduling/appointments", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("User Appointments Keep Caller Casing", func(t *testing.T) {
		schedulingUsecase.On("GetUserAppointments", mock.Anything, "Jane.Doe@Example.com").
			Return(models.NewOKResult([]models.Appointment{{ID: 7, Email: "Jane.Doe@Example.com"}}), nil).Once()

		rr := serve(router, "GET", "/api/v1/scheduling/appointments?email=%20Jane.Doe@Example.com%20", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		schedulingUsecase.AssertCalled(t, "GetUserAppointments", mock.Anything, "Jane.Doe@Example.com")
	})

	t.Run("Booking History Uses Lowercase Email", func(t *testing.T) {
		schedulingUsecase.On("GetBookingHistory", mock.Anything, "jane.doe@example.com").
			Return([]models.LedgerEntry{}, nil).Once()

		rr := serve(router, "GET", "/api/v1/scheduling/bookings/history?email=Jane.Doe@Example.com", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
		schedulingUsecase.AssertCalled(t, "GetBookingHistory", mock.Anything, "jane.doe@example.com")
	})
}

func TestBookingDraftRouter_Flow(t *testing.T) {
	schedulingUsecase := new(MockSchedulingUsecase)
	router := newTestRouter(t, schedulingUsecase, &stubTermsClient{})

	rr := serve(router, "POST", "/api/v1/scheduling/drafts", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var draft models.BookingDraft
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	require.NotEmpty(t, draft.ID)
	draftPath := "/api/v1/scheduling/drafts/" + draft.ID

	t.Run("Selections Persist Between Requests", func(t *testing.T) {
		rr := serve(router, "PUT", draftPath+"/date", requests.SetDraftDateRequest{Date: "2024-05-06"})
		require.Equal(t, http.StatusOK, rr.Code)

		rr = serve(router, "PUT", draftPath+"/time", requests.SetDraftTimeRequest{Time: "09:30"})
		require.Equal(t, http.StatusOK, rr.Code)

		rr = serve(router, "GET", draftPath, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var current models.BookingDraft
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &current))
		assert.Equal(t, draft.ID, current.ID)
		assert.Equal(t, "2024-05-06", current.State.SelectedDate)
		assert.Equal(t, "09:30", current.State.SelectedTime)
	})

	t.Run("Invalid Selection Leaves Draft Untouched", func(t *testing.T) {
		rr := serve(router, "PUT", draftPath+"/date", requests.SetDraftDateRequest{Date: "2024-02-30"})
		require.Equal(t, http.StatusBadRequest, rr.Code)

		rr = serve(router, "GET", draftPath, nil)
		var current models.BookingDraft
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &current))
		assert.Equal(t, "2024-05-06", current.State.SelectedDate)
	})

	t.Run("Incomplete Submit Is Unprocessable", func(t *testing.T) {
		rr := serve(router, "POST", draftPath+"/submit", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		schedulingUsecase.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Reset Clears Selections", func(t *testing.T) {
		rr := serve(router, "DELETE", draftPath, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = serve(router, "GET", draftPath, nil)
		var current models.BookingDraft
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &current))
		assert.Empty(t, current.State.SelectedDate)
		assert.Empty(t, current.State.SelectedTime)
	})

	t.Run("Unknown Draft Is Not Found", func(t *testing.T) {
		rr := serve(router, "GET", "/api/v1/scheduling/drafts/does-not-exist", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestBookingDraftRouter_DoubleSubmit(t *testing.T) {
	schedulingUsecase := new(MockSchedulingUsecase)
	draftRepository := newBlockingDraftRepository()
	router := newTestRouterWithDrafts(t, schedulingUsecase, &stubTermsClient{}, draftRepository)

	rr := serve(router, "POST", "/api/v1/scheduling/drafts", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	var draft models.BookingDraft
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	submitPath := "/api/v1/scheduling/drafts/" + draft.ID + "/submit"

	require.NoError(t, draftRepository.Save(context.Background(), &models.BookingDraft{
		ID: draft.ID,
		State: models.BookingSnapshot{
			SelectedType: &models.AppointmentType{ID: 1001, Name: "Primary Care Visit"},
			SelectedDate: "2024-05-06",
			SelectedTime: "09:30",
			ContactDetails: models.ContactDetails{
				FirstName: gofakeit.FirstName(),
				LastName:  gofakeit.LastName(),
				Email:     gofakeit.Email(),
				Phone:     "+1 555 010 2030",
			},
		},
	}, time.Minute))

	schedulingUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointmentRequest")).
		Return(models.NewOKResult(models.Appointment{ID: 900}), nil)

	draftRepository.arm()
	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		firstDone <- serve(router, "POST", submitPath, nil)
	}()

	select {
	case <-draftRepository.reached:
	case <-time.After(5 * time.Second):
		t.Fatal("first submit never reached the reset save")
	}

	second := serve(router, "POST", submitPath, nil)
	assert.Equal(t, http.StatusConflict, second.Code, "submit should be refused while the first one is still saving")

	close(draftRepository.release)
	first := <-firstDone
	assert.Equal(t, http.StatusCreated, first.Code)

	third := serve(router, "POST", submitPath, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, third.Code, "a submitted draft is reset")

	schedulingUsecase.AssertNumberOfCalls(t, "CreateAppointment", 1)
}

func TestTermsRouter_Search(t *testing.T) {
	termsClient := &stubTermsClient{}
	router := newTestRouter(t, new(MockSchedulingUsecase), termsClient)

	t.Run("Unknown Kind Is Rejected", func(t *testing.T) {
		rr := serve(router, "GET", "/api/v1/terms/procedures?q=knee", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Short Query Returns Empty Array", func(t *testing.T) {
		rr := serve(router, "GET", "/api/v1/terms/medications?q=as", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
		assert.Equal(t, 0, termsClient.calls)
	})

	t.Run("Medications Include Strengths", func(t *testing.T) {
		rr := serve(router, "GET", "/api/v1/terms/medications?q=aspirin", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"name":"ASPIRIN","strengths":["81 mg Tab"]}]`, rr.Body.String())
	})
}

func TestHealthRouter(t *testing.T) {
	router := newTestRouter(t, new(MockSchedulingUsecase), &stubTermsClient{})

	rr := serve(router, "GET", "/healthz", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}
