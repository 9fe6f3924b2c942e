package models

import "github.com/shopspring/decimal"

// AppointmentType is provider owned reference data. It is never mutated locally.
type AppointmentType struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	ColorHex        string          `json:"colorHex"`
	CalendarIDs     []int           `json:"calendarIds"`
}

type AvailabilityDate struct {
	Date           string `json:"date"`
	SlotsAvailable int    `json:"slotsAvailable"`
}

type AvailabilityTime struct {
	Time           string `json:"time"`
	SlotsAvailable int    `json:"slotsAvailable"`
}

type FormFieldValue struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// Appointment lives in the scheduling provider. Reads always go back to the provider.
type Appointment struct {
	ID                int              `json:"id"`
	Datetime          string           `json:"datetime"`
	AppointmentTypeID int              `json:"appointmentTypeID"`
	Duration          int              `json:"duration"`
	CalendarID        int              `json:"calendarId"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	Canceled          bool             `json:"canceled"`
	ConfirmationPage  string           `json:"confirmationPage,omitempty"`
	Fields            []FormFieldValue `json:"fields,omitempty"`
}

type RescheduleResult struct {
	ID       int    `json:"id"`
	Datetime string `json:"datetime"`
}

type CancelResult struct {
	ID       int  `json:"id"`
	Canceled bool `json:"canceled"`
}
