package routers

import (
	"benefits-portal-service/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachSchedulingRoutes(router chi.Router, bookingLimiter func(http.Handler) http.Handler, schedulingController *controllers.SchedulingController) {
	router.Get("/appointment-types", schedulingController.GetAppointmentTypes)
	router.Get("/availability/dates", schedulingController.GetAvailableDates)
	router.Get("/availability/times", schedulingController.GetAvailableTimes)
	router.Get("/appointments", schedulingController.GetUserAppointments)
	router.Get("/bookings/history", schedulingController.GetBookingHistory)

	router.With(bookingLimiter).Post("/appointments", schedulingController.CreateAppointment)
	router.With(bookingLimiter).Put("/appointments/{appointment_id}", schedulingController.RescheduleAppointment)
	router.With(bookingLimiter).Delete("/appointments/{appointment_id}", schedulingController.CancelAppointment)
}
