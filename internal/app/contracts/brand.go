package contracts

import (
	"benefits-portal-service/internal/app/models"
	"context"
)

type BrandConfigRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.BrandConfig, error)
}

type BrandConfigUsecase interface {
	GetBrandConfig(ctx context.Context, slug string) (*models.BrandConfig, error)
}
