// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// relay's HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// `message` field of relay error bodies or into log entries. Keeping them in
// one place keeps the wording consistent across routes.
package app

const (
	// MsgServiceRunning is the body of the liveness route.
	MsgServiceRunning = "PDF Convert API Proxy is running"

	// MsgInvalidDataProvided is returned when a request fails validation
	// for a reason without a more specific message.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when a request body is not valid JSON or
	// not a readable multipart form.
	MsgInvalidJSON = "Invalid request body"

	// MsgRequestTooLarge is returned when a request body or an uploaded
	// file exceeds the configured limit.
	MsgRequestTooLarge = "Request body too large"

	MsgMissingToken    = "Missing mineruToken"
	MsgMissingBatchID  = "Missing batchId"
	MsgMissingFile     = "Missing pdfFile"
	MsgMissingURL      = "Missing url"
	MsgInvalidURL      = "url must be an absolute http(s) URL"
	MsgMissingMarkdown = "Missing markdown"

	// MsgMalformedRemoteResponse is returned when the OCR service answered
	// with a payload the relay could not interpret.
	MsgMalformedRemoteResponse = "Unexpected response from OCR service"

	// MsgRouteNotFound is returned for unknown routes and for known routes
	// called with an unsupported method.
	MsgRouteNotFound = "Route not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
