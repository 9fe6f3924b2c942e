package models

import "time"

type SchedulingEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	AppointmentID int       `json:"appointmentId"`
	Email         string    `json:"email,omitempty"`
	Datetime      string    `json:"datetime,omitempty"`
	Degraded      bool      `json:"degraded"`
	OccurredAt    time.Time `json:"occurredAt"`
}
