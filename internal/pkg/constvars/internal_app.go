package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_BOOKING_STATE_KEY        ContextKey = "booking_state"
	CONTEXT_BOOKING_DRAFT_ID_KEY     ContextKey = "booking_draft_id"
)

const (
	REQUEST_ID_PREFIX = "BNFT_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	RedisKeyPrefixBookingDraft      = "booking_draft:"
	RedisKeyPrefixBookingSubmitLock = "booking_submit_lock:"
)

// BookingSubmitLockTTL bounds how long a crashed submit can block a draft.
const BookingSubmitLockTTL = 30 * time.Second
