package terms

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/app/services/shared/medicalterms"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

type termsUsecase struct {
	TermsClient contracts.MedicalTermsClient
	Log         *zap.Logger
}

func NewTermsUsecase(termsClient contracts.MedicalTermsClient, logger *zap.Logger) contracts.MedicalTermsUsecase {
	return &termsUsecase{
		TermsClient: termsClient,
		Log:         logger,
	}
}

// Search returns []models.MedicationResult for medications and []models.TermResult
// otherwise. Queries shorter than the minimum length never reach the upstream API.
func (uc *termsUsecase) Search(ctx context.Context, kind, query string) (interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("termsUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTermKindKey, kind),
		zap.String(constvars.LoggingTermQueryKey, query),
	)

	query = strings.TrimSpace(query)
	tooShort := len([]rune(query)) < constvars.MedicalTermsMinQueryLength

	var (
		results interface{}
		count   int
		err     error
	)
	switch kind {
	case constvars.MedicalTermKindMedications:
		if tooShort {
			return []models.MedicationResult{}, nil
		}
		var medications []models.MedicationResult
		medications, err = uc.TermsClient.SearchMedications(ctx, query)
		results, count = medications, len(medications)
	case constvars.MedicalTermKindAllergies:
		if tooShort {
			return []models.TermResult{}, nil
		}
		var allergies []models.TermResult
		allergies, err = uc.TermsClient.SearchAllergies(ctx, query)
		results, count = allergies, len(allergies)
	case constvars.MedicalTermKindConditions:
		if tooShort {
			return []models.TermResult{}, nil
		}
		var conditions []models.TermResult
		conditions, err = uc.TermsClient.SearchConditions(ctx, query)
		results, count = conditions, len(conditions)
	default:
		return nil, exceptions.ErrQueryParamValidation(nil, "kind", "must be one of medications, allergies, conditions")
	}

	if err != nil {
		uc.Log.Error("termsUsecase.Search error from terms client",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTermKindKey, kind),
			zap.Error(err),
		)
		return nil, mapLookupError(err)
	}

	uc.Log.Info("termsUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, count),
	)
	return results, nil
}

func mapLookupError(err error) error {
	var lookupErr *medicalterms.LookupError
	if errors.As(err, &lookupErr) {
		switch lookupErr.Kind {
		case medicalterms.KindTimeout:
			return exceptions.ErrMedicalTermsTimeout(err)
		case medicalterms.KindAPIStatus:
			return exceptions.ErrMedicalTermsAPIStatus(err, lookupErr.StatusCode)
		default:
			return exceptions.ErrMedicalTermsNetwork(err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrServerProcess(err)
}
