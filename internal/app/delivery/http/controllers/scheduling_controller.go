package controllers

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type SchedulingController struct {
	Log               *zap.Logger
	SchedulingUsecase contracts.SchedulingUsecase
}

func NewSchedulingController(logger *zap.Logger, schedulingUsecase contracts.SchedulingUsecase) *SchedulingController {
	return &SchedulingController{
		Log:               logger,
		SchedulingUsecase: schedulingUsecase,
	}
}

func (ctrl *SchedulingController) GetAppointmentTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.GetAppointmentTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := ctrl.SchedulingUsecase.GetAppointmentTypes(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	writeSchedulingResult(w, constvars.StatusOK, result)
}

func (ctrl *SchedulingController) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.GetAvailableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	appointmentTypeID, err := utils.ParsePositiveIntQuery(r, constvars.URLQueryParamAppointmentTypeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, queryParamError(err, constvars.URLQueryParamAppointmentTypeID))
		return
	}

	query := &requests.AvailableDatesQuery{
		Month:             utils.GetQueryString(r, constvars.URLQueryParamMonth),
		AppointmentTypeID: appointmentTypeID,
	}
	err = utils.ValidateStruct(query)
	if err != nil {
		ctrl.Log.Warn("SchedulingController.GetAvailableDates invalid query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.SchedulingUsecase.GetAvailableDates(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	writeSchedulingResult(w, constvars.StatusOK, result)
}

func (ctrl *SchedulingController) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.GetAvailableTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	appointmentTypeID, err := utils.ParsePositiveIntQuery(r, constvars.URLQueryParamAppointmentTypeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, queryParamError(err, constvars.URLQueryParamAppointmentTypeID))
		return
	}
	calendarID, err := utils.ParseOptionalPositiveIntQuery(r, constvars.URLQueryParamCalendarID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, queryParamError(err, constvars.URLQueryParamCalendarID))
		return
	}

	query := &requests.AvailableTimesQuery{
		Date:              utils.GetQueryString(r, constvars.URLQueryParamDate),
		AppointmentTypeID: appointmentTypeID,
		CalendarID:        calendarID,
	}
	err = utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.SchedulingUsecase.GetAvailableTimes(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	writeSchedulingResult(w, constvars.StatusOK, result)
}

func (ctrl *SchedulingController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointmentRequest)
	err := decodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Warn("SchedulingController.CreateAppointment invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.SchedulingUsecase.CreateAppointment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SchedulingController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, result.Data.ID),
	)
	writeSchedulingResult(w, constvars.StatusCreated, result)
}

func (ctrl *SchedulingController) GetUserAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.GetUserAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Provider lookups match the caller's casing; only the local ledger is keyed lowercase.
	query := &requests.UserAppointmentsQuery{Email: utils.GetQueryString(r, constvars.URLQueryParamEmail)}
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.SchedulingUsecase.GetUserAppointments(ctx, query.Email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	writeSchedulingResult(w, constvars.StatusOK, result)
}

func (ctrl *SchedulingController) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := utils.ParsePositiveIntParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.RescheduleAppointmentRequest)
	err = decodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.SchedulingUsecase.RescheduleAppointment(ctx, appointmentID, request.Datetime)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	writeSchedulingResult(w, constvars.StatusOK, result)
}

func (ctrl *SchedulingController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := utils.ParsePositiveIntParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	result, err := ctrl.SchedulingUsecase.CancelAppointment(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	writeSchedulingResult(w, constvars.StatusOK, result)
}

func (ctrl *SchedulingController) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SchedulingController.GetBookingHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := &requests.UserAppointmentsQuery{Email: strings.ToLower(utils.GetQueryString(r, constvars.URLQueryParamEmail))}
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	entries, err := ctrl.SchedulingUsecase.GetBookingHistory(ctx, query.Email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, entries)
}
