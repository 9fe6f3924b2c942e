package controllers

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/utils"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
)

// writeSchedulingResult writes the payload as-is and flags fallback data through
// response headers so the body shape never changes.
func writeSchedulingResult[T any](w http.ResponseWriter, code int, result *models.SchedulingResult[T]) {
	if result.IsDegraded() {
		w.Header().Set(constvars.HeaderSchedulingDegraded, constvars.HeaderValueDegraded)
		w.Header().Set(constvars.HeaderSchedulingDegradedReason, result.DegradedReason)
	}
	utils.BuildJSONResponse(w, code, result.Data)
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrFileTooLarge(err, maxBytesErr.Limit)
	}
	return exceptions.ErrCannotParseJSON(err)
}

func queryParamError(err error, name string) error {
	if errors.Is(err, utils.ErrMissingParam) {
		return exceptions.ErrQueryParamValidation(err, name, constvars.CustomValidationErrorMessages["required"])
	}
	return exceptions.ErrQueryParamValidation(err, name, "must be a positive integer")
}
