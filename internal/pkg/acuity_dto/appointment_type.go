package acuity_dto

type AppointmentType struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    FlexInt `json:"duration"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	CalendarIDs []int   `json:"calendarIDs"`
}
