package requests

type SetDraftAppointmentTypeRequest struct {
	AppointmentTypeID int `json:"appointmentTypeID" validate:"required,gt=0"`
}

type SetDraftDateRequest struct {
	Date string `json:"date" validate:"required,date_only"`
}

type SetDraftTimeRequest struct {
	Time string `json:"time" validate:"required,time_of_day"`
}

// SetDraftContactRequest is not validated field by field: contact details are
// checked when the draft is submitted.
type SetDraftContactRequest struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"max=254"`
	Phone     string `json:"phone" validate:"max=32"`
	Notes     string `json:"notes" validate:"max=2000"`
}
