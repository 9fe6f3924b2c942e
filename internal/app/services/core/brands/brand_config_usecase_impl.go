package brands

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var errBrandNotFound = errors.New("brand config does not exist")

type brandConfigUsecase struct {
	BrandConfigRepository contracts.BrandConfigRepository
	Log                   *zap.Logger
}

func NewBrandConfigUsecase(brandConfigRepository contracts.BrandConfigRepository, logger *zap.Logger) contracts.BrandConfigUsecase {
	return &brandConfigUsecase{
		BrandConfigRepository: brandConfigRepository,
		Log:                   logger,
	}
}

func (uc *brandConfigUsecase) GetBrandConfig(ctx context.Context, slug string) (*models.BrandConfig, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	slug = strings.ToLower(strings.TrimSpace(slug))
	uc.Log.Info("brandConfigUsecase.GetBrandConfig called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBrandSlugKey, slug),
	)

	brand, err := uc.BrandConfigRepository.FindBySlug(ctx, slug)
	if err != nil {
		uc.Log.Error("brandConfigUsecase.GetBrandConfig error from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if brand == nil {
		return nil, exceptions.ErrNotFound(errBrandNotFound, "brand config")
	}
	return brand, nil
}
