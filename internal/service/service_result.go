package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pdf-relay/internal/adapter"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/validators"
	"github.com/MKhiriev/go-pdf-relay/models"
)

type resultService struct {
	remote    adapter.RemoteAPI
	validator validators.Validator

	logger *logger.Logger
}

func NewResultService(remote adapter.RemoteAPI, validator validators.Validator, logger *logger.Logger) ResultService {
	return &resultService{
		remote:    remote,
		validator: validator,
		logger:    logger,
	}
}

// Poll returns the batch state envelope exactly as the OCR service sent it.
// It has no side effects and may be called any number of times.
func (s *resultService) Poll(ctx context.Context, request models.PollRequest) (models.RemoteEnvelope, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.RemoteEnvelope{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	envelope, err := s.remote.FetchResults(ctx, request.MineruToken, request.BatchID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("batch_id", request.BatchID).Msg("error polling results")
		return models.RemoteEnvelope{}, fmt.Errorf("error polling results: %w", err)
	}

	return envelope, nil
}
