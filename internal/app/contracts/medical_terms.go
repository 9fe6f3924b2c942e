package contracts

import (
	"benefits-portal-service/internal/app/models"
	"context"
)

type MedicalTermsClient interface {
	SearchMedications(ctx context.Context, query string) ([]models.MedicationResult, error)
	SearchAllergies(ctx context.Context, query string) ([]models.TermResult, error)
	SearchConditions(ctx context.Context, query string) ([]models.TermResult, error)
}

type MedicalTermsUsecase interface {
	Search(ctx context.Context, kind, query string) (interface{}, error)
}
