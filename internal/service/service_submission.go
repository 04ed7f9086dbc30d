package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pdf-relay/internal/adapter"
	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/validators"
	"github.com/MKhiriev/go-pdf-relay/models"
)

type submissionService struct {
	remote    adapter.RemoteAPI
	validator validators.Validator

	setContentType bool

	logger *logger.Logger
}

// NewSubmissionService returns a SubmissionService backed by remote.
// cfg.UploadSetContentType selects whether uploads carry the document's
// media type or no Content-Type header at all.
func NewSubmissionService(remote adapter.RemoteAPI, validator validators.Validator, cfg config.Adapter, logger *logger.Logger) SubmissionService {
	return &submissionService{
		remote:         remote,
		validator:      validator,
		setContentType: cfg.UploadSetContentType,
		logger:         logger,
	}
}

func (s *submissionService) Submit(ctx context.Context, request models.UploadRequest) (models.ProcessingHandle, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("submission rejected by validation")
		return models.ProcessingHandle{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	allocation, err := s.remote.AllocateBatch(ctx, request.Token, request.Name())
	if err != nil {
		log.Err(err).Str("file_name", request.Name()).Msg("error allocating batch")
		return models.ProcessingHandle{}, fmt.Errorf("error allocating batch: %w", err)
	}

	log.Debug().Str("batch_id", allocation.BatchID).Msg("batch allocated")

	if err = s.remote.PutBytes(ctx, allocation.UploadURL, request.FileBytes, s.putOptions(request)); err != nil {
		// the batch stays allocated remotely without a file
		log.Err(err).Str("batch_id", allocation.BatchID).Msg("error uploading document")
		return models.ProcessingHandle{}, fmt.Errorf("error uploading document: %w", err)
	}

	log.Info().
		Str("batch_id", allocation.BatchID).
		Int("bytes", len(request.FileBytes)).
		Msg("document submitted")

	return models.ProcessingHandle{BatchID: allocation.BatchID}, nil
}

func (s *submissionService) RequestUploadURLs(ctx context.Context, request models.BatchURLRequest) (models.RemoteEnvelope, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.RemoteEnvelope{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	fileName := request.FileName
	if fileName == "" {
		fileName = models.DefaultFileName
	}

	envelope, err := s.remote.RequestUploadURLs(ctx, request.MineruToken, fileName)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("file_name", fileName).Msg("error requesting upload urls")
		return models.RemoteEnvelope{}, fmt.Errorf("error requesting upload urls: %w", err)
	}

	return envelope, nil
}

func (s *submissionService) putOptions(request models.UploadRequest) models.PutOptions {
	if !s.setContentType {
		return models.PutOptions{}
	}

	contentType := request.MimeType
	if contentType == "" {
		contentType = models.DefaultMimeType
	}
	return models.PutOptions{SetContentType: true, ContentType: contentType}
}
