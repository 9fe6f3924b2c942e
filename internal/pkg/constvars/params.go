package constvars

const (
	URLParamAppointmentID = "appointment_id"
	URLParamDraftID       = "draft_id"
	URLParamTermKind      = "kind"
	URLParamDocumentID    = "document_id"
	URLParamBrandSlug     = "slug"
)

const (
	URLQueryParamMonth             = "month"
	URLQueryParamDate              = "date"
	URLQueryParamAppointmentTypeID = "appointmentTypeID"
	URLQueryParamCalendarID        = "calendarID"
	URLQueryParamEmail             = "email"
	URLQueryParamQuery             = "q"
	URLQueryParamMemberID          = "memberId"
)

const (
	FormFieldFile     = "file"
	FormFieldMemberID = "memberId"
	FormFieldCategory = "category"
)
