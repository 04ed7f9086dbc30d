package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-pdf-relay/internal/logger"
)

const redacted = "REDACTED"

// sensitiveQueryParams are query parameters whose values never reach the
// access log.
var sensitiveQueryParams = []string{formFieldToken}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", loggableURI(r.URL)).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// loggableURI returns the request path and query with the values of
// sensitive parameters replaced.
func loggableURI(u *url.URL) string {
	query := u.Query()
	masked := false
	for _, param := range sensitiveQueryParams {
		if query.Has(param) {
			query.Set(param, redacted)
			masked = true
		}
	}

	if !masked {
		return u.RequestURI()
	}

	clean := *u
	clean.RawQuery = query.Encode()
	return clean.RequestURI()
}
