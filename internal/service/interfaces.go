package service

import (
	"context"

	"github.com/MKhiriev/go-pdf-relay/models"
)

// SubmissionService drives a document from the browser to the OCR service.
type SubmissionService interface {
	// Submit allocates a batch, uploads the document bytes to the presigned
	// URL and returns the batch id. The id is only returned once the bytes
	// reached storage.
	Submit(ctx context.Context, request models.UploadRequest) (models.ProcessingHandle, error)

	// RequestUploadURLs allocates a batch and returns the OCR service
	// envelope as received, leaving the upload to the caller.
	RequestUploadURLs(ctx context.Context, request models.BatchURLRequest) (models.RemoteEnvelope, error)
}

// ResultService reads the processing state of a batch.
type ResultService interface {
	Poll(ctx context.Context, request models.PollRequest) (models.RemoteEnvelope, error)
}

// RelayService fetches binary artifacts on behalf of the browser.
type RelayService interface {
	RelayZip(ctx context.Context, request models.ZipRequest) (models.BinaryPayload, error)
	RelayMarkdownConversion(ctx context.Context, request models.ConvertRequest) (models.BinaryPayload, error)
}

// AppInfoService reports on the relay itself.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStatus(ctx context.Context) models.StatusMessage
}
