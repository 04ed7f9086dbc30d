package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-pdf-relay/internal/logger"
)

// errHandlerPanic wraps the value recovered from a panicking handler.
var errHandlerPanic = errors.New("handler panic")

// withRecovery turns a panic below it into a 500 RelayError. It sits inside
// withCORS and withTraceID so the answer still carries the CORS headers and
// the log line carries the trace id. [http.ErrAbortHandler] is re-raised.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from handler panic")

			writeError(w, r, fmt.Errorf("%w: %v", errHandlerPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
