package utils

import (
	"benefits-portal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateAppointmentRequest(request *requests.CreateAppointmentRequest) {
	request.Datetime = strings.TrimSpace(request.Datetime)
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
}

func SanitizeDraftContactRequest(request *requests.SetDraftContactRequest) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Notes = strings.TrimSpace(request.Notes)
}
