package models

import "time"

// LedgerEntry records what the portal told the member about a booking.
// The scheduling provider stays authoritative; the ledger is an audit trail.
type LedgerEntry struct {
	ID                    int64     `json:"id"`
	ProviderAppointmentID int       `json:"providerAppointmentId"`
	AppointmentTypeID     int       `json:"appointmentTypeID"`
	Datetime              string    `json:"datetime"`
	Email                 string    `json:"email"`
	Outcome               string    `json:"outcome"`
	DegradedReason        string    `json:"degradedReason,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}
