package adapter

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	// ErrRemoteUnavailable means the request never got an HTTP answer:
	// DNS, connection or timeout failure.
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	// ErrRemoteRejected means the OCR service answered and declined, either
	// with a non-2xx status or with a non-success envelope code.
	ErrRemoteRejected = errors.New("remote service rejected the request")
	// ErrMalformedResponse means a 2xx answer did not have the expected shape.
	ErrMalformedResponse = errors.New("malformed remote response")
	// ErrUploadFailed means the PUT of document bytes to the presigned URL
	// failed. The batch exists remotely but never received the file.
	ErrUploadFailed = errors.New("document upload failed")
	// ErrUpstreamStatus means a relayed binary fetch or conversion got a
	// non-2xx answer.
	ErrUpstreamStatus = errors.New("upstream returned an error status")
)

// RemoteError describes a failed outbound call.
type RemoteError struct {
	// Kind is one of the package sentinels.
	Kind error

	// Status is the HTTP status the relay should answer with; 0 lets the
	// caller pick the default for Kind.
	Status int

	// Message is the human readable reason, e.g. the envelope `msg` or the
	// transport error text.
	Message string

	// Details holds structured context such as the upstream status.
	Details map[string]any

	// Err is the underlying cause, if any.
	Err error
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
