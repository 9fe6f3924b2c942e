package controllers

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// BookingDraftController serves the multi-step booking flow. Every route except
// CreateDraft runs inside middlewares.BookingDraftScope.
type BookingDraftController struct {
	Log                 *zap.Logger
	BookingDraftUsecase contracts.BookingDraftUsecase
}

func NewBookingDraftController(logger *zap.Logger, bookingDraftUsecase contracts.BookingDraftUsecase) *BookingDraftController {
	return &BookingDraftController{
		Log:                 logger,
		BookingDraftUsecase: bookingDraftUsecase,
	}
}

func (ctrl *BookingDraftController) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingDraftController.CreateDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draft, err := ctrl.BookingDraftUsecase.CreateDraft(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusCreated, draft)
}

func (ctrl *BookingDraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctrl.writeDraft(w, r, ctrl.BookingDraftUsecase.GetDraftState(ctx))
}

func (ctrl *BookingDraftController) SelectAppointmentType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingDraftController.SelectAppointmentType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SetDraftAppointmentTypeRequest)
	if !ctrl.bindAndValidate(w, r, request) {
		return
	}

	snapshot, err := ctrl.BookingDraftUsecase.SelectAppointmentType(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.writeDraft(w, r, snapshot)
}

func (ctrl *BookingDraftController) SelectDate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetDraftDateRequest)
	if !ctrl.bindAndValidate(w, r, request) {
		return
	}
	ctrl.writeDraft(w, r, ctrl.BookingDraftUsecase.SelectDate(r.Context(), request))
}

func (ctrl *BookingDraftController) SelectTime(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetDraftTimeRequest)
	if !ctrl.bindAndValidate(w, r, request) {
		return
	}
	ctrl.writeDraft(w, r, ctrl.BookingDraftUsecase.SelectTime(r.Context(), request))
}

func (ctrl *BookingDraftController) SetContactDetails(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetDraftContactRequest)
	err := decodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeDraftContactRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	ctrl.writeDraft(w, r, ctrl.BookingDraftUsecase.SetContactDetails(r.Context(), request))
}

func (ctrl *BookingDraftController) ResetDraft(w http.ResponseWriter, r *http.Request) {
	ctrl.writeDraft(w, r, ctrl.BookingDraftUsecase.ResetDraft(r.Context()))
}

func (ctrl *BookingDraftController) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingDraftController.SubmitDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := ctrl.BookingDraftUsecase.SubmitDraft(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	writeSchedulingResult(w, constvars.StatusCreated, result)
}

func (ctrl *BookingDraftController) bindAndValidate(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	err := decodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return false
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func (ctrl *BookingDraftController) writeDraft(w http.ResponseWriter, r *http.Request, snapshot models.BookingSnapshot) {
	draftID, _ := r.Context().Value(constvars.CONTEXT_BOOKING_DRAFT_ID_KEY).(string)
	utils.BuildJSONResponse(w, constvars.StatusOK, models.BookingDraft{ID: draftID, State: snapshot})
}
