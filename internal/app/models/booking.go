package models

type ContactDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes,omitempty"`
}

// BookingSnapshot is a copy of an in-progress booking flow. Empty strings and a
// nil SelectedType mean "not selected yet".
type BookingSnapshot struct {
	SelectedType   *AppointmentType `json:"selectedType"`
	SelectedDate   string           `json:"selectedDate"`
	SelectedTime   string           `json:"selectedTime"`
	ContactDetails ContactDetails   `json:"contactDetails"`
}

type BookingDraft struct {
	ID    string          `json:"id"`
	State BookingSnapshot `json:"state"`
}
