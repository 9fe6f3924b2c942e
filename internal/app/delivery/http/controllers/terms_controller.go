package controllers

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TermsController struct {
	Log          *zap.Logger
	TermsUsecase contracts.MedicalTermsUsecase
}

func NewTermsController(logger *zap.Logger, termsUsecase contracts.MedicalTermsUsecase) *TermsController {
	return &TermsController{
		Log:          logger,
		TermsUsecase: termsUsecase,
	}
}

func (ctrl *TermsController) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query := &requests.MedicalTermsQuery{
		Kind:  chi.URLParam(r, constvars.URLParamTermKind),
		Query: utils.GetQueryString(r, constvars.URLQueryParamQuery),
	}
	ctrl.Log.Info("TermsController.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTermKindKey, query.Kind),
	)

	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	results, err := ctrl.TermsUsecase.Search(ctx, query.Kind, query.Query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, results)
}
