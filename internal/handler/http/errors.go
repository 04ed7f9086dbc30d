// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading inbound requests. Callers can
// match against them with [errors.Is].
var (
	// ErrMalformedRequestBody is returned when a JSON body cannot be decoded
	// or a multipart form cannot be read.
	ErrMalformedRequestBody = errors.New("malformed request body")

	// ErrUploadTooLarge is returned when the uploaded document is larger
	// than the configured in-memory limit.
	ErrUploadTooLarge = errors.New("uploaded document too large")
)
