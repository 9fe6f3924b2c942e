package acuity

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/acuity_dto"
	"benefits-portal-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

func (c *acuityClient) FindAppointmentTypes(ctx context.Context) ([]models.AppointmentType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("acuityClient.FindAppointmentTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result []acuity_dto.AppointmentType
	err := c.do(ctx, constvars.MethodGet, constvars.SchedulingPathAppointmentTypes, nil, nil, &result)
	if err != nil {
		return nil, err
	}

	appointmentTypes := make([]models.AppointmentType, 0, len(result))
	for _, item := range result {
		price, err := parsePrice(item.Price)
		if err != nil {
			c.Log.Warn("acuityClient.FindAppointmentTypes unparseable price, using zero",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingAppointmentTypeIDKey, item.ID),
				zap.String(constvars.LoggingDataKey, item.Price),
				zap.Error(err),
			)
		}
		appointmentTypes = append(appointmentTypes, mapAppointmentType(item, price))
	}

	c.Log.Info("acuityClient.FindAppointmentTypes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointmentTypes)),
	)
	return appointmentTypes, nil
}
