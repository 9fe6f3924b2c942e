package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the per-IP limiter for every route and a stricter one
// for routes that book, move or cancel appointments upstream.
func (m *Middlewares) CreateRateLimiters() (normalLimiter, bookingLimiter func(next http.Handler) http.Handler) {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	maxBookingRequests := m.InternalConfig.App.MaxBookingRequestsPerMinute
	if maxBookingRequests <= 0 {
		maxBookingRequests = 30
	}

	normalLimiter = httprate.LimitByIP(maxRequests, time.Second)
	bookingLimiter = httprate.Limit(maxBookingRequests, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
	)
	return normalLimiter, bookingLimiter
}
