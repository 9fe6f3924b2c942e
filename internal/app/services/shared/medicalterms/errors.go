package medicalterms

import (
	"errors"
	"fmt"
)

type LookupErrorKind string

const (
	KindNetwork   LookupErrorKind = "network"
	KindTimeout   LookupErrorKind = "timeout"
	KindAPIStatus LookupErrorKind = "api_status"
)

// ErrSuperseded is returned to a lookup that was aborted because a newer lookup started
// on the same client.
var ErrSuperseded = errors.New("medical terms lookup superseded by a newer lookup")

// LookupError is the only error type the client returns for upstream failures.
// StatusCode is set for KindAPIStatus.
type LookupError struct {
	Kind       LookupErrorKind
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case KindAPIStatus:
		return fmt.Sprintf("medical terms api status %d: %v", e.StatusCode, e.Err)
	case KindTimeout:
		return fmt.Sprintf("medical terms lookup timed out: %v", e.Err)
	default:
		return fmt.Sprintf("medical terms network error: %v", e.Err)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func newNetworkError(err error) *LookupError {
	return &LookupError{Kind: KindNetwork, Err: err}
}

func newTimeoutError(err error) *LookupError {
	return &LookupError{Kind: KindTimeout, Err: err}
}

func newAPIStatusError(statusCode int, err error) *LookupError {
	return &LookupError{Kind: KindAPIStatus, StatusCode: statusCode, Err: err}
}
