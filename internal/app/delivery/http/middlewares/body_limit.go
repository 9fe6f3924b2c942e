package middlewares

import (
	"net/http"
)

// BodyLimit caps request bodies at APP_REQUEST_BODY_LIMIT_IN_MEGABYTE. Reads past the
// limit fail, which the JSON and multipart parsers surface as 400/413.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	if limit <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
