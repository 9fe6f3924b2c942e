package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorTypeKey      = "error_type"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingUpstreamUrlKey       = "upstream_url"
	LoggingUpstreamStatusKey    = "upstream_status"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingAppointmentTypeIDKey = "appointment_type_id"
	LoggingMonthKey             = "month"
	LoggingDateKey              = "date"
	LoggingDegradedReasonKey    = "degraded_reason"
	LoggingDraftIDKey           = "draft_id"
	LoggingTermKindKey          = "term_kind"
	LoggingTermQueryKey         = "term_query"
	LoggingCacheHitKey          = "cache_hit"
	LoggingDocumentIDKey        = "document_id"
	LoggingMemberIDKey          = "member_id"
	LoggingBrandSlugKey         = "brand_slug"
	LoggingEventTypeKey         = "event_type"
	LoggingQueueNameKey         = "queue_name"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectNameKey        = "object_name"
	LoggingSimulatedBookingsKey = "simulated_bookings"
	LoggingLedgerOutcomeKey     = "ledger_outcome"

	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
