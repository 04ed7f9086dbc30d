// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultFileName is the document name sent to the OCR service when the
// caller does not provide one.
const DefaultFileName = "document.pdf"

// DefaultMimeType is assumed for uploaded documents without a declared type.
const DefaultMimeType = "application/pdf"

// UploadRequest is a single document submission received from the browser.
// It lives only for the duration of one inbound request.
type UploadRequest struct {
	// Token is the caller's OCR service credential. It is forwarded as a
	// bearer token and never inspected by the relay.
	Token string

	// FileName is the document name reported to the OCR service.
	// Empty means [DefaultFileName].
	FileName string

	// FileBytes holds the whole document in memory.
	FileBytes []byte

	// MimeType is the declared media type of FileBytes. It is only sent to
	// the storage backend when the upload runs with an explicit content type.
	MimeType string
}

// Name returns the file name to report, falling back to [DefaultFileName].
func (r UploadRequest) Name() string {
	if r.FileName == "" {
		return DefaultFileName
	}
	return r.FileName
}

// BatchAllocation is the result of asking the OCR service for an upload slot.
type BatchAllocation struct {
	// BatchID identifies the remote processing batch.
	BatchID string

	// UploadURL is the one-time presigned URL the document bytes go to.
	UploadURL string
}

// ProcessingHandle is what the caller keeps between submission and polling.
type ProcessingHandle struct {
	BatchID string
}

// PutOptions selects how document bytes are PUT to a presigned URL.
//
// Presigned storage URLs are signed over the request headers, so a
// Content-Type that was not part of the signature makes the storage reject
// the upload. The zero value sends no Content-Type header at all.
type PutOptions struct {
	// SetContentType enables sending ContentType with the upload.
	SetContentType bool

	// ContentType is the media type sent when SetContentType is true.
	ContentType string
}
