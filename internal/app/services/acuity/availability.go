package acuity

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/acuity_dto"
	"benefits-portal-service/internal/pkg/constvars"
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

func (c *acuityClient) FindAvailableDates(ctx context.Context, appointmentTypeID int, month string) ([]models.AvailabilityDate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("acuityClient.FindAvailableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, appointmentTypeID),
		zap.String(constvars.LoggingMonthKey, month),
	)

	query := url.Values{}
	query.Set(constvars.URLQueryParamMonth, month)
	query.Set(constvars.URLQueryParamAppointmentTypeID, strconv.Itoa(appointmentTypeID))

	var result []acuity_dto.AvailabilityDate
	err := c.do(ctx, constvars.MethodGet, constvars.SchedulingPathAvailabilityDates, query, nil, &result)
	if err != nil {
		return nil, err
	}

	dates := make([]models.AvailabilityDate, 0, len(result))
	for _, item := range result {
		dates = append(dates, mapAvailabilityDate(item))
	}

	c.Log.Info("acuityClient.FindAvailableDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(dates)),
	)
	return dates, nil
}

func (c *acuityClient) FindAvailableTimes(ctx context.Context, appointmentTypeID int, date string, calendarID *int) ([]models.AvailabilityTime, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("acuityClient.FindAvailableTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, appointmentTypeID),
		zap.String(constvars.LoggingDateKey, date),
	)

	query := url.Values{}
	query.Set(constvars.URLQueryParamDate, date)
	query.Set(constvars.URLQueryParamAppointmentTypeID, strconv.Itoa(appointmentTypeID))
	if calendarID != nil {
		query.Set(constvars.URLQueryParamCalendarID, strconv.Itoa(*calendarID))
	}

	var result []acuity_dto.AvailabilityTime
	err := c.do(ctx, constvars.MethodGet, constvars.SchedulingPathAvailabilityTimes, query, nil, &result)
	if err != nil {
		return nil, err
	}

	times := make([]models.AvailabilityTime, 0, len(result))
	for _, item := range result {
		times = append(times, models.AvailabilityTime{
			Time:           item.Time,
			SlotsAvailable: max(item.SlotsAvailable, 0),
		})
	}

	c.Log.Info("acuityClient.FindAvailableTimes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(times)),
	)
	return times, nil
}
