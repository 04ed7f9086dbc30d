// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the services the relay sits in front of: the
// MinerU OCR API, the presigned storage URLs it hands out, arbitrary result
// archive URLs, and the markdown conversion service.
//
// Every failure is returned as a *[RemoteError] whose Kind is one of the
// sentinels in errors.go, so callers can use [errors.Is] to tell
// "never reached the remote" from "remote said no" from "upload failed".
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pdf-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// RemoteAPI is a typed client for the OCR service batch endpoints and for
// the raw PUT to the presigned upload URL it returns.
type RemoteAPI interface {
	// RequestUploadURLs asks the OCR service for a batch with one upload
	// slot for fileName and returns the service envelope as received.
	// A non-success envelope code is reported as [ErrRemoteRejected].
	RequestUploadURLs(ctx context.Context, token, fileName string) (models.RemoteEnvelope, error)

	// AllocateBatch is RequestUploadURLs followed by decoding the batch id
	// and the first upload URL. A success envelope without them is
	// reported as [ErrMalformedResponse].
	AllocateBatch(ctx context.Context, token, fileName string) (models.BatchAllocation, error)

	// PutBytes uploads body to uploadURL in a single PUT. Failures are
	// reported as [ErrUploadFailed].
	PutBytes(ctx context.Context, uploadURL string, body []byte, opts models.PutOptions) error

	// FetchResults returns the extraction state envelope for batchID.
	FetchResults(ctx context.Context, token, batchID string) (models.RemoteEnvelope, error)
}

// BinaryFetcher downloads an arbitrary URL as bytes.
type BinaryFetcher interface {
	// Fetch performs a GET on rawURL. A non-2xx answer is reported as
	// [ErrUpstreamStatus] carrying the upstream status.
	Fetch(ctx context.Context, rawURL string) (models.BinaryPayload, error)
}

// DocumentConverter turns markdown into a binary document.
type DocumentConverter interface {
	// ConvertMarkdown posts markdown to the conversion service.
	ConvertMarkdown(ctx context.Context, markdown string) (models.BinaryPayload, error)
}
