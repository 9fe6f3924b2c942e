package acuity_dto

// AvailabilityDate is one bookable day. The provider omits slotsAvailable on this
// endpoint, so a missing value decodes to nil.
type AvailabilityDate struct {
	Date           string `json:"date"`
	SlotsAvailable *int   `json:"slotsAvailable,omitempty"`
}

type AvailabilityTime struct {
	Time           string `json:"time"`
	SlotsAvailable int    `json:"slotsAvailable"`
}
