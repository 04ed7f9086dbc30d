package adapter

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pdf-relay/models"
	"github.com/go-resty/resty/v2"
)

// maxMessageLen bounds how much of an upstream body ends up in a message.
const maxMessageLen = 512

// unavailable wraps a transport failure.
func unavailable(err error) error {
	return &RemoteError{
		Kind:    ErrRemoteUnavailable,
		Status:  http.StatusInternalServerError,
		Message: transportMessage(err),
		Err:     err,
	}
}

// rejectedByStatus maps a non-2xx OCR service answer. The message is the
// envelope `msg` when the body is an envelope, the body text otherwise.
func rejectedByStatus(resp *resty.Response) error {
	message := bodyMessage(resp)
	if env, err := models.ParseRemoteEnvelope(resp.Body()); err == nil && env.Msg != "" {
		message = env.Msg
	}

	return &RemoteError{
		Kind:    ErrRemoteRejected,
		Status:  resp.StatusCode(),
		Message: message,
		Details: map[string]any{"upstreamStatus": resp.StatusCode()},
	}
}

// rejectedByEnvelope maps a 2xx answer whose envelope code is not a success.
func rejectedByEnvelope(env models.RemoteEnvelope) error {
	message := env.Msg
	if message == "" {
		message = "remote returned code " + string(env.Code)
	}

	details := map[string]any{"code": string(env.Code)}
	if env.TraceID != "" {
		details["traceId"] = env.TraceID
	}

	return &RemoteError{
		Kind:    ErrRemoteRejected,
		Status:  http.StatusBadRequest,
		Message: message,
		Details: details,
	}
}

func malformed(message string, err error) error {
	return &RemoteError{
		Kind:    ErrMalformedResponse,
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}

// uploadFailed maps a PUT that got an answer outside the 2xx range.
func uploadFailed(resp *resty.Response) error {
	return &RemoteError{
		Kind:    ErrUploadFailed,
		Status:  http.StatusInternalServerError,
		Message: statusLine(resp),
		Details: map[string]any{
			"stage":          "upload",
			"upstreamStatus": resp.StatusCode(),
			"upstreamReason": http.StatusText(resp.StatusCode()),
			"upstreamBody":   bodyMessage(resp),
		},
	}
}

// transportMessage is the text of a transport failure without the request
// URL. Presigned URLs carry their signature in the query and must not reach
// the caller or the logs.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

// uploadUnreachable maps a PUT that never got an answer.
func uploadUnreachable(err error) error {
	return &RemoteError{
		Kind:    ErrUploadFailed,
		Status:  http.StatusInternalServerError,
		Message: transportMessage(err),
		Details: map[string]any{"stage": "upload"},
		Err:     err,
	}
}

// upstreamStatus maps a non-2xx answer to a relayed binary request; the
// upstream status is surfaced unchanged.
func upstreamStatus(resp *resty.Response) error {
	return &RemoteError{
		Kind:    ErrUpstreamStatus,
		Status:  resp.StatusCode(),
		Message: bodyMessage(resp),
		Details: map[string]any{"upstreamStatus": resp.StatusCode()},
	}
}

// statusLine returns e.g. "403 Forbidden".
func statusLine(resp *resty.Response) string {
	if s := strings.TrimSpace(resp.Status()); s != "" {
		return s
	}
	return strconv.Itoa(resp.StatusCode()) + " " + http.StatusText(resp.StatusCode())
}

func bodyMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(body) > maxMessageLen {
		body = body[:maxMessageLen]
	}
	return body
}
