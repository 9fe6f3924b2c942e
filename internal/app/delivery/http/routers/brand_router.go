package routers

import (
	"benefits-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBrandRoutes(router chi.Router, brandController *controllers.BrandController) {
	router.Get("/{slug}", brandController.GetBrandConfig)
}
