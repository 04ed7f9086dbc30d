package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pdf-relay/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldToken targets the caller's OCR service token.
	FieldToken = "token"

	// FieldFile targets the uploaded document bytes.
	FieldFile = "file"

	// FieldBatchID targets the batch identifier of a poll request.
	FieldBatchID = "batch_id"

	// FieldURL targets the archive address of a relay request.
	FieldURL = "url"

	// FieldMarkdown targets the markdown body of a conversion request.
	FieldMarkdown = "markdown"
)

// RequestValidator implements the Validator interface for every inbound
// relay request: UploadRequest, BatchURLRequest, PollRequest, ZipRequest
// and ConvertRequest.
type RequestValidator struct {
}

// NewRequestValidator returns a Validator for relay requests.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the concrete type of obj. Pointers are accepted
// as well as values. With no fields given every field of the type is
// checked; otherwise only the named ones, in order.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.BatchURLRequest:
		return v.validateBatchURLRequest(ctx, value, fields...)
	case *models.BatchURLRequest:
		return v.validateBatchURLRequest(ctx, *value, fields...)

	case models.PollRequest:
		return v.validatePollRequest(ctx, value, fields...)
	case *models.PollRequest:
		return v.validatePollRequest(ctx, *value, fields...)

	case models.ZipRequest:
		return v.validateZipRequest(ctx, value, fields...)
	case *models.ZipRequest:
		return v.validateZipRequest(ctx, *value, fields...)

	case models.ConvertRequest:
		return v.validateConvertRequest(ctx, value, fields...)
	case *models.ConvertRequest:
		return v.validateConvertRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUploadRequest checks a document submission.
//
// Default validated fields: Token, File.
func (v *RequestValidator) validateUploadRequest(_ context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldFile}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if isBlank(request.Token) {
				return ErrMissingToken
			}
		case FieldFile:
			if len(request.FileBytes) == 0 {
				return ErrMissingFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBatchURLRequest checks a raw upload URL request. The file name is
// optional.
func (v *RequestValidator) validateBatchURLRequest(_ context.Context, request models.BatchURLRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if isBlank(request.MineruToken) {
				return ErrMissingToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePollRequest checks a result poll.
//
// Default validated fields: Token, BatchID.
func (v *RequestValidator) validatePollRequest(_ context.Context, request models.PollRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldBatchID}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if isBlank(request.MineruToken) {
				return ErrMissingToken
			}
		case FieldBatchID:
			if isBlank(request.BatchID) {
				return ErrMissingBatchID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateZipRequest checks that the archive address is an absolute http
// or https URL with a host.
func (v *RequestValidator) validateZipRequest(_ context.Context, request models.ZipRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if isBlank(request.URL) {
				return ErrMissingURL
			}
			u, err := url.Parse(request.URL)
			if err != nil || !u.IsAbs() || u.Host == "" {
				return ErrInvalidURL
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateConvertRequest(_ context.Context, request models.ConvertRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMarkdown}
	}

	for _, f := range fields {
		switch f {
		case FieldMarkdown:
			if isBlank(request.Markdown) {
				return ErrMissingMarkdown
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
