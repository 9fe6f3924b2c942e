package routers

import (
	"benefits-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTermsRoutes(router chi.Router, termsController *controllers.TermsController) {
	router.Get("/{kind}", termsController.Search)
}
