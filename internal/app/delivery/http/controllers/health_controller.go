package controllers

import (
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/responses"
	"benefits-portal-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	Version string
	Drivers map[string]bool
}

// NewHealthController takes which optional drivers were configured at startup.
func NewHealthController(version string, drivers map[string]bool) *HealthController {
	return &HealthController{
		Version: version,
		Drivers: drivers,
	}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.HealthResponse{
		Status:  constvars.HealthStatusOK,
		Version: ctrl.Version,
		Drivers: ctrl.Drivers,
	})
}
