package middlewares

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	BookingDraftUsecase contracts.BookingDraftUsecase
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, bookingDraftUsecase contracts.BookingDraftUsecase) *Middlewares {
	return &Middlewares{
		Log:                 logger,
		InternalConfig:      internalConfig,
		BookingDraftUsecase: bookingDraftUsecase,
	}
}
