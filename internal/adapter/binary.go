package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/utils"
	"github.com/MKhiriev/go-pdf-relay/models"
	"github.com/go-resty/resty/v2"
)

const convertPath = "/convert"

type binaryAdapter struct {
	fetcher   *utils.HTTPClient
	converter *utils.HTTPClient

	logger *logger.Logger
}

// BinaryAdapter fetches result archives and converts markdown documents.
type BinaryAdapter interface {
	BinaryFetcher
	DocumentConverter
}

// NewBinaryAdapter constructs the HTTP implementation of [BinaryFetcher] and
// [DocumentConverter]. Archives are fetched from absolute URLs; conversions
// go to cfg.ConverterBaseURL.
func NewBinaryAdapter(cfg config.Adapter, logger *logger.Logger) (BinaryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ConverterBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid converter base url: %w", err)
	}

	fetcher := utils.NewHTTPClient(logger)
	fetcher.SetTimeout(cfg.RequestTimeout)

	converter := utils.NewHTTPClient(logger)
	converter.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &binaryAdapter{fetcher: fetcher, converter: converter, logger: logger}, nil
}

// Fetch implements [BinaryFetcher].
func (b *binaryAdapter) Fetch(ctx context.Context, rawURL string) (models.BinaryPayload, error) {
	resp, err := b.fetcher.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get(rawURL)
	if err != nil {
		err = unavailable(err)
		logger.FromContext(ctx).Err(err).Msg("binary fetch failed")
		return models.BinaryPayload{}, err
	}

	return toPayload(ctx, resp)
}

// ConvertMarkdown implements [DocumentConverter].
func (b *binaryAdapter) ConvertMarkdown(ctx context.Context, markdown string) (models.BinaryPayload, error) {
	resp, err := b.converter.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "*/*").
		SetBody(models.ConvertRequest{Markdown: markdown}).
		Post(convertPath)
	if err != nil {
		err = unavailable(err)
		logger.FromContext(ctx).Err(err).Msg("markdown conversion failed")
		return models.BinaryPayload{}, err
	}

	return toPayload(ctx, resp)
}

func toPayload(ctx context.Context, resp *resty.Response) (models.BinaryPayload, error) {
	if !resp.IsSuccess() {
		logger.FromContext(ctx).Error().
			Int("status", resp.StatusCode()).
			Str("url", resp.Request.URL).
			Msg("upstream answered with error status")
		return models.BinaryPayload{}, upstreamStatus(resp)
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = models.DefaultBinaryContentType
	}

	return models.BinaryPayload{
		ContentType:        contentType,
		ContentDisposition: resp.Header().Get("Content-Disposition"),
		Body:               resp.Body(),
	}, nil
}
