package routers

import (
	"benefits-portal-service/internal/app/delivery/http/controllers"
	"benefits-portal-service/internal/app/delivery/http/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachBookingDraftRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingLimiter func(http.Handler) http.Handler, bookingDraftController *controllers.BookingDraftController) {
	router.Post("/", bookingDraftController.CreateDraft)

	router.Route("/{draft_id}", func(r chi.Router) {
		r.Use(middlewares.BookingDraftScope)

		r.Get("/", bookingDraftController.GetDraft)
		r.Put("/type", bookingDraftController.SelectAppointmentType)
		r.Put("/date", bookingDraftController.SelectDate)
		r.Put("/time", bookingDraftController.SelectTime)
		r.Put("/contact", bookingDraftController.SetContactDetails)
		r.Delete("/", bookingDraftController.ResetDraft)
		r.With(bookingLimiter).Post("/submit", bookingDraftController.SubmitDraft)
	})
}
