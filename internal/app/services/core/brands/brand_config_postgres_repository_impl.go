package brands

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/queries"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type brandConfigPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

func NewBrandConfigPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.BrandConfigRepository {
	return &brandConfigPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

// FindBySlug returns nil without an error when no brand uses the slug.
func (r *brandConfigPostgresRepository) FindBySlug(ctx context.Context, slug string) (*models.BrandConfig, error) {
	var brand models.BrandConfig
	err := r.DB.QueryRow(ctx, queries.GetBrandConfigBySlug, slug).Scan(
		&brand.ID,
		&brand.Slug,
		&brand.DisplayName,
		&brand.PrimaryColor,
		&brand.LogoURL,
		&brand.SupportPhone,
		&brand.SupportEmail,
		&brand.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &brand, nil
}
