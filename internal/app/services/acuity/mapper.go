package acuity

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/acuity_dto"
	"strings"

	"github.com/shopspring/decimal"
)

// parsePrice returns zero for a blank price. A price that is not a decimal also maps to
// zero alongside the parse error so the caller can report it.
func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func mapAppointmentType(item acuity_dto.AppointmentType, price decimal.Decimal) models.AppointmentType {
	calendarIDs := item.CalendarIDs
	if calendarIDs == nil {
		calendarIDs = []int{}
	}

	return models.AppointmentType{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		DurationMinutes: int(item.Duration),
		Price:           price,
		Category:        item.Category,
		ColorHex:        item.Color,
		CalendarIDs:     calendarIDs,
	}
}

func mapAvailabilityDate(item acuity_dto.AvailabilityDate) models.AvailabilityDate {
	slots := 1
	if item.SlotsAvailable != nil {
		slots = max(*item.SlotsAvailable, 0)
	}
	return models.AvailabilityDate{Date: item.Date, SlotsAvailable: slots}
}

func mapAppointment(item acuity_dto.Appointment) models.Appointment {
	appointment := models.Appointment{
		ID:                item.ID,
		Datetime:          item.Datetime,
		AppointmentTypeID: item.AppointmentTypeID,
		Duration:          int(item.Duration),
		CalendarID:        item.CalendarID,
		FirstName:         item.FirstName,
		LastName:          item.LastName,
		Email:             item.Email,
		Phone:             item.Phone,
		Canceled:          item.Canceled,
		ConfirmationPage:  item.ConfirmationPage,
	}
	for _, form := range item.Forms {
		for _, value := range form.Values {
			appointment.Fields = append(appointment.Fields, models.FormFieldValue{ID: value.FieldID, Value: value.Value})
		}
	}
	return appointment
}
