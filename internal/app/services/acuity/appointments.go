package acuity

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/acuity_dto"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

func (c *acuityClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("acuityClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentTypeIDKey, request.AppointmentTypeID),
	)

	input := acuity_dto.CreateAppointmentInput{
		Datetime:          request.Datetime,
		AppointmentTypeID: request.AppointmentTypeID,
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Email:             request.Email,
		Phone:             request.Phone,
	}
	for _, field := range request.Fields {
		input.Fields = append(input.Fields, acuity_dto.FormField{ID: field.ID, Value: field.Value})
	}

	var result acuity_dto.Appointment
	err := c.do(ctx, constvars.MethodPost, constvars.SchedulingPathAppointments, nil, input, &result)
	if err != nil {
		return nil, err
	}

	appointment := mapAppointment(result)
	c.Log.Info("acuityClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &appointment, nil
}

func (c *acuityClient) FindAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("acuityClient.FindAppointmentsByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.URLQueryParamEmail, email)

	var result []acuity_dto.Appointment
	err := c.do(ctx, constvars.MethodGet, constvars.SchedulingPathAppointments, query, nil, &result)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(result))
	for _, item := range result {
		appointments = append(appointments, mapAppointment(item))
	}

	c.Log.Info("acuityClient.FindAppointmentsByEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	return appointments, nil
}

func (c *acuityClient) RescheduleAppointment(ctx context.Context, appointmentID int, datetime string) (*models.RescheduleResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("acuityClient.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	path := constvars.SchedulingPathAppointments + "/" + strconv.Itoa(appointmentID)
	input := acuity_dto.RescheduleAppointmentInput{Datetime: datetime}

	var result acuity_dto.Appointment
	err := c.do(ctx, constvars.MethodPut, path, nil, input, &result)
	if err != nil {
		return nil, err
	}

	c.Log.Info("acuityClient.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, result.ID),
	)
	return &models.RescheduleResult{ID: result.ID, Datetime: result.Datetime}, nil
}

func (c *acuityClient) CancelAppointment(ctx context.Context, appointmentID int) (*models.CancelResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("acuityClient.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	path := constvars.SchedulingPathAppointments + "/" + strconv.Itoa(appointmentID) + constvars.SchedulingPathCancelSuffix

	var result acuity_dto.Appointment
	err := c.do(ctx, constvars.MethodPut, path, nil, struct{}{}, &result)
	if err != nil {
		return nil, err
	}

	c.Log.Info("acuityClient.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, result.ID),
	)
	return &models.CancelResult{ID: result.ID, Canceled: result.Canceled}, nil
}
