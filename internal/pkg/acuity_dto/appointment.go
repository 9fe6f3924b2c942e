package acuity_dto

type FormField struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

type CreateAppointmentInput struct {
	Datetime          string      `json:"datetime"`
	AppointmentTypeID int         `json:"appointmentTypeID"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Fields            []FormField `json:"fields,omitempty"`
}

type RescheduleAppointmentInput struct {
	Datetime string `json:"datetime"`
}

type Appointment struct {
	ID                int         `json:"id"`
	Datetime          string      `json:"datetime"`
	AppointmentTypeID int         `json:"appointmentTypeID"`
	Duration          FlexInt     `json:"duration"`
	CalendarID        int         `json:"calendarID"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Canceled          bool        `json:"canceled"`
	ConfirmationPage  string      `json:"confirmationPage"`
	Forms             []FormGroup `json:"forms,omitempty"`
}

type FormGroup struct {
	ID     int `json:"id"`
	Values []struct {
		FieldID int    `json:"fieldID"`
		Value   string `json:"value"`
	} `json:"values"`
}

// ErrorBody is returned by the provider alongside non-2xx statuses.
type ErrorBody struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}
