package requests

type AppointmentFormField struct {
	ID    int    `json:"id" validate:"required,gt=0"`
	Value string `json:"value" validate:"max=1000"`
}

type CreateAppointmentRequest struct {
	Datetime          string                 `json:"datetime" validate:"required,iso_datetime"`
	AppointmentTypeID int                    `json:"appointmentTypeID" validate:"required,gt=0"`
	FirstName         string                 `json:"firstName" validate:"required,max=100"`
	LastName          string                 `json:"lastName" validate:"required,max=100"`
	Email             string                 `json:"email" validate:"required,email"`
	Phone             string                 `json:"phone" validate:"required,phone_number"`
	Fields            []AppointmentFormField `json:"fields,omitempty" validate:"omitempty,dive"`
}

type RescheduleAppointmentRequest struct {
	Datetime string `json:"datetime" validate:"required,iso_datetime"`
}

type AvailableDatesQuery struct {
	Month             string `json:"month" validate:"required,month"`
	AppointmentTypeID int    `json:"appointmentTypeID" validate:"required,gt=0"`
}

type AvailableTimesQuery struct {
	Date              string `json:"date" validate:"required,date_only"`
	AppointmentTypeID int    `json:"appointmentTypeID" validate:"required,gt=0"`
	CalendarID        *int   `json:"calendarID" validate:"omitempty,gt=0"`
}

type UserAppointmentsQuery struct {
	Email string `json:"email" validate:"required,email"`
}
