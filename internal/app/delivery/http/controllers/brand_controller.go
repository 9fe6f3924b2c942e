package controllers

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BrandController struct {
	Log                *zap.Logger
	BrandConfigUsecase contracts.BrandConfigUsecase
}

func NewBrandController(logger *zap.Logger, brandConfigUsecase contracts.BrandConfigUsecase) *BrandController {
	return &BrandController{
		Log:                logger,
		BrandConfigUsecase: brandConfigUsecase,
	}
}

func (ctrl *BrandController) GetBrandConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	slug := chi.URLParam(r, constvars.URLParamBrandSlug)
	ctrl.Log.Info("BrandController.GetBrandConfig called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBrandSlugKey, slug),
	)

	brand, err := ctrl.BrandConfigUsecase.GetBrandConfig(ctx, slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBrandConfigSuccessMessage, brand)
}
