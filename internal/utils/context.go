// Package utils provides general-purpose helpers shared by the relay's
// packages: typed context keys, HTTP response writing, the resty client
// wrapper and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pdf-relay/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PutOptionsCtxKey carries the [models.PutOptions] of an in-flight upload
// down to the HTTP client hook that finalises its headers.
var PutOptionsCtxKey = contextKey("putOptions")

// WithPutOptions returns a copy of ctx carrying opts.
func WithPutOptions(ctx context.Context, opts models.PutOptions) context.Context {
	return context.WithValue(ctx, PutOptionsCtxKey, opts)
}

// GetPutOptionsFromContext retrieves the upload options stored in ctx.
//
// Returns ok == false when ctx carries none; the zero options (no
// Content-Type header) apply in that case.
func GetPutOptionsFromContext(ctx context.Context) (models.PutOptions, bool) {
	opts, ok := ctx.Value(PutOptionsCtxKey).(models.PutOptions)
	return opts, ok
}
