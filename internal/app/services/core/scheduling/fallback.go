package scheduling

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const providerTimeLayout = "2006-01-02T15:04:05-0700"

var fallbackSlotHours = []int{9, 10, 11, 13, 14, 15}

func fallbackAppointmentTypes() []models.AppointmentType {
	return []models.AppointmentType{
		{
			ID:              1001,
			Name:            "Primary Care Visit",
			Description:     "In-person visit with an in-network primary care provider.",
			DurationMinutes: 30,
			Price:           decimal.RequireFromString("0.00"),
			Category:        "Primary Care",
			ColorHex:        "#2563EB",
			CalendarIDs:     []int{1},
		},
		{
			ID:              1002,
			Name:            "Telehealth Consultation",
			Description:     "Video consultation for non-urgent questions and follow-ups.",
			DurationMinutes: 20,
			Price:           decimal.RequireFromString("25.00"),
			Category:        "Virtual Care",
			ColorHex:        "#10B981",
			CalendarIDs:     []int{1, 2},
		},
		{
			ID:              1003,
			Name:            "Behavioral Health Session",
			Description:     "Counseling session with a licensed behavioral health clinician.",
			DurationMinutes: 50,
			Price:           decimal.RequireFromString("40.00"),
			Category:        "Mental Health",
			ColorHex:        "#8B5CF6",
			CalendarIDs:     []int{3},
		},
		{
			ID:              1004,
			Name:            "Preventive Screening",
			Description:     "Covered preventive screening such as biometrics and labs.",
			DurationMinutes: 45,
			Price:           decimal.RequireFromString("0.00"),
			Category:        "Preventive",
			ColorHex:        "#F59E0B",
			CalendarIDs:     []int{2},
		},
	}
}

// fallbackAvailableDates ignores the requested month and offers the weekdays of the
// next two weeks.
func fallbackAvailableDates(now time.Time) []models.AvailabilityDate {
	weekdays := utils.UpcomingWeekdays(now, constvars.SchedulingFallbackWindowDays)
	dates := make([]models.AvailabilityDate, 0, len(weekdays))
	for _, day := range weekdays {
		dates = append(dates, models.AvailabilityDate{
			Date:           day.Format(time.DateOnly),
			SlotsAvailable: constvars.SchedulingFallbackSlotsPerDay,
		})
	}
	return dates
}

func fallbackAvailableTimes(date string, location *time.Location) []models.AvailabilityTime {
	day, err := time.ParseInLocation(time.DateOnly, date, location)
	if err != nil {
		return []models.AvailabilityTime{}
	}

	times := make([]models.AvailabilityTime, 0, len(fallbackSlotHours))
	for _, hour := range fallbackSlotHours {
		slot := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, location)
		times = append(times, models.AvailabilityTime{
			Time:           slot.Format(providerTimeLayout),
			SlotsAvailable: 1,
		})
	}
	return times
}

func fallbackAppointment(request *requests.CreateAppointmentRequest) models.Appointment {
	appointmentID := utils.GeneratePseudoAppointmentID()

	duration := 30
	for _, appointmentType := range fallbackAppointmentTypes() {
		if appointmentType.ID == request.AppointmentTypeID {
			duration = appointmentType.DurationMinutes
			break
		}
	}

	appointment := models.Appointment{
		ID:                appointmentID,
		Datetime:          request.Datetime,
		AppointmentTypeID: request.AppointmentTypeID,
		Duration:          duration,
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Email:             request.Email,
		Phone:             request.Phone,
		ConfirmationPage:  constvars.SchedulingFallbackConfirmBaseUrl + strconv.Itoa(appointmentID),
	}
	for _, field := range request.Fields {
		appointment.Fields = append(appointment.Fields, models.FormFieldValue{ID: field.ID, Value: field.Value})
	}
	return appointment
}

func fallbackUserAppointments(email string, now time.Time, location *time.Location) []models.Appointment {
	types := fallbackAppointmentTypes()
	weekdays := utils.UpcomingWeekdays(now.In(location), constvars.SchedulingFallbackWindowDays)

	appointments := make([]models.Appointment, 0, 2)
	for i, hour := range []int{10, 14} {
		day := weekdays[min(i*3, len(weekdays)-1)]
		slot := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, location)
		appointments = append(appointments, models.Appointment{
			ID:                utils.GeneratePseudoAppointmentID(),
			Datetime:          slot.Format(providerTimeLayout),
			AppointmentTypeID: types[i].ID,
			Duration:          types[i].DurationMinutes,
			CalendarID:        types[i].CalendarIDs[0],
			FirstName:         "Sample",
			LastName:          "Member",
			Email:             email,
		})
	}
	return appointments
}
