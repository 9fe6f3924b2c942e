package routers

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/delivery/http/controllers"
	"benefits-portal-service/internal/app/delivery/http/middlewares"
	"benefits-portal-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// SetupRoutes mounts every route. documentController and brandController are nil
// when their backing stores are not configured and their routes are skipped.
func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	schedulingController *controllers.SchedulingController,
	bookingDraftController *controllers.BookingDraftController,
	termsController *controllers.TermsController,
	documentController *controllers.DocumentController,
	brandController *controllers.BrandController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders: []string{
			constvars.HeaderXRequestID,
			constvars.HeaderSchedulingDegraded,
			constvars.HeaderSchedulingDegradedReason,
		},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	normalLimiter, bookingLimiter := middlewares.CreateRateLimiters()
	router.Use(normalLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestTimeout)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", healthController.Healthz)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/scheduling", func(r chi.Router) {
				attachSchedulingRoutes(r, bookingLimiter, schedulingController)

				r.Route("/drafts", func(r chi.Router) {
					attachBookingDraftRoutes(r, middlewares, bookingLimiter, bookingDraftController)
				})
			})

			r.Route("/terms", func(r chi.Router) {
				attachTermsRoutes(r, termsController)
			})

			if documentController != nil {
				r.Route("/documents", func(r chi.Router) {
					attachDocumentRoutes(r, documentController)
				})
			}

			if brandController != nil {
				r.Route("/brand-config", func(r chi.Router) {
					attachBrandRoutes(r, brandController)
				})
			}
		})
	})
}
