package constvars

// Scheduling provider resource paths, relative to the provider base url.
const (
	SchedulingPathAppointmentTypes  = "/appointment-types"
	SchedulingPathAvailabilityDates = "/availability/dates"
	SchedulingPathAvailabilityTimes = "/availability/times"
	SchedulingPathAppointments      = "/appointments"
	SchedulingPathCancelSuffix      = "/cancel"
)

const (
	SchedulingFallbackSlotsPerDay    = 5
	SchedulingFallbackWindowDays     = 14
	SchedulingFallbackConfirmBaseUrl = "https://scheduling.example.invalid/confirmation/"
)

const (
	DegradedReasonProviderUnavailable = "provider_unavailable"
	DegradedReasonMissingCredentials  = "missing_credentials"
)

const (
	SchedulingEventAppointmentBooked      = "appointment.booked"
	SchedulingEventAppointmentRescheduled = "appointment.rescheduled"
	SchedulingEventAppointmentCanceled    = "appointment.canceled"
)

const (
	LedgerOutcomeConfirmed = "confirmed"
	LedgerOutcomeSimulated = "simulated"
)
