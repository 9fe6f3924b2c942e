package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"numeric":      "must be a number",
	"uuid":         "must be a valid UUID",
	"month":        "must be a valid month in YYYY-MM format",
	"date_only":    "must be a valid date in YYYY-MM-DD format",
	"time_of_day":  "must be a valid time in HH:MM format",
	"iso_datetime": "must be an ISO-8601 timestamp",
	"phone_number": "must be a valid phone number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request, please try again later"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond, please try again later"
	ErrClientValidationFailed              = "request validation failed"
	ErrClientResourceNotFound              = "requested resource not found"
	ErrClientSchedulingUnavailable         = "scheduling is temporarily unavailable, please try again later"
	ErrClientMedicalTermsUnavailable       = "medical terms lookup is temporarily unavailable"
	ErrClientMedicalTermsTimeout           = "medical terms lookup timed out, please try again"
	ErrClientBookingDraftIncomplete        = "booking is missing required selections"
	ErrClientFileTooLarge                  = "uploaded file is too large"
	ErrClientUnknownAppointmentType        = "selected appointment type is not offered"
	ErrClientBookingSubmitInProgress       = "this booking is already being submitted"
)

// Error messages for developers
const (
	ErrDevValidationFailed             = "validation failed"
	ErrDevInvalidInput                 = "invalid input"
	ErrDevURLParamIDValidationFailed   = "url param %s validation failed"
	ErrDevQueryParamValidationFailed   = "query param %s validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm     = "cannot parse multipart form"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevServerProcess                = "server failed to process request"
	ErrDevCreateHTTPRequest            = "failed to create HTTP request"
	ErrDevSendHTTPRequest              = "failed to send HTTP request"
	ErrDevResourceNotFound             = "%s not found"
	ErrDevSchedulingProviderStatus     = "scheduling provider responded with status %d on %s"
	ErrDevSchedulingProviderDecode     = "failed to decode scheduling provider response from %s"
	ErrDevSchedulingMissingCredentials = "scheduling provider credentials are not configured"
	ErrDevSchedulingProviderRateLimit  = "scheduling provider outbound limiter rejected the call"
	ErrDevSimulatedBookingsDisabled    = "scheduling provider unavailable and simulated bookings are disabled"
	ErrDevMedicalTermsNetwork          = "medical terms lookup network failure"
	ErrDevMedicalTermsTimeout          = "medical terms lookup timed out"
	ErrDevMedicalTermsAPIStatus        = "medical terms API responded with status %d"
	ErrDevBookingDraftIncomplete       = "booking draft missing %s"
	ErrDevDBFailedToFindData           = "failed to find data from database"
	ErrDevDBFailedToInsertData         = "failed to insert data into database"
	ErrDevDBFailedToIterateDataset     = "failed to iterate dataset from database"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data to redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevRedisUnlock                  = "failed to release redis lock"
	ErrDevBookingSubmitLocked          = "booking draft %s is locked by another submit"
	ErrDevMinioFailedToCreateObject    = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject   = "failed to presign object in bucket %s"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevFileTooLarge                 = "file exceeds maximum size of %d bytes"
	ErrDevUnknownAppointmentType       = "appointment type %d not found in provider type list"
)

const (
	ResponseUnknown = "unknown"
)
