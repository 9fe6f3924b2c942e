package exceptions

import "errors"

var (
	ErrSchedulingCredentialsMissing = errors.New("scheduling provider user id or api key is empty")
	ErrSchedulingLimiterRejected    = errors.New("scheduling provider limiter wait failed")
)
