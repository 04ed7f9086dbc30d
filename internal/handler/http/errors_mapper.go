package http

import (
	"errors"
	"maps"
	"net/http"

	"github.com/MKhiriev/go-pdf-relay/internal/adapter"
	"github.com/MKhiriev/go-pdf-relay/internal/app"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/service"
	"github.com/MKhiriev/go-pdf-relay/internal/utils"
	"github.com/MKhiriev/go-pdf-relay/internal/validators"
	"github.com/MKhiriev/go-pdf-relay/models"
)

// errorStatusMap gives the default status per failure kind. A
// *adapter.RemoteError carrying its own status overrides it.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrMalformedRequestBody:        http.StatusBadRequest,
	ErrUploadTooLarge:              http.StatusRequestEntityTooLarge,

	adapter.ErrRemoteUnavailable: http.StatusInternalServerError,
	adapter.ErrRemoteRejected:    http.StatusInternalServerError,
	adapter.ErrMalformedResponse: http.StatusInternalServerError,
	adapter.ErrUploadFailed:      http.StatusInternalServerError,
	adapter.ErrUpstreamStatus:    http.StatusBadGateway,
}

// errorMessageMap holds the fixed client-facing text of errors that do not
// carry a remote message of their own.
var errorMessageMap = map[error]string{
	validators.ErrMissingToken:    app.MsgMissingToken,
	validators.ErrMissingBatchID:  app.MsgMissingBatchID,
	validators.ErrMissingFile:     app.MsgMissingFile,
	validators.ErrMissingURL:      app.MsgMissingURL,
	validators.ErrInvalidURL:      app.MsgInvalidURL,
	validators.ErrMissingMarkdown: app.MsgMissingMarkdown,

	ErrMalformedRequestBody: app.MsgInvalidJSON,
	ErrUploadTooLarge:       app.MsgRequestTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if status == http.StatusBadRequest {
		return app.MsgInvalidDataProvided
	}
	return app.MsgInternalServerError
}

// translateError turns any error leaving the service layer into the status
// and body sent to the browser.
func translateError(err error) (int, models.RelayError) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, models.NewRelayError(app.MsgRequestTooLarge,
			map[string]any{"limit": maxBytesErr.Limit})
	}

	status := statusFromError(err)

	var remoteErr *adapter.RemoteError
	if !errors.As(err, &remoteErr) {
		return status, models.NewRelayError(messageFromError(err, status), nil)
	}

	if remoteErr.Status != 0 {
		status = remoteErr.Status
	}

	details := maps.Clone(remoteErr.Details)
	message := remoteErr.Message

	if errors.Is(remoteErr.Kind, adapter.ErrMalformedResponse) {
		if message != "" {
			if details == nil {
				details = map[string]any{}
			}
			details["reason"] = message
		}
		message = app.MsgMalformedRemoteResponse
	}
	if message == "" {
		message = remoteErr.Kind.Error()
	}

	return status, models.NewRelayError(message, details)
}

// writeError logs err and writes its translation. Client errors are logged
// at warn level, everything else at error level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := translateError(err)

	log := logger.FromRequest(r)
	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}
	event.Err(err).Int("status", status).Msg(body.Message)

	utils.WriteJSON(w, body, status)
}
