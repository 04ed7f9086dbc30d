// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/utils"
	"github.com/MKhiriev/go-pdf-relay/models"
	"github.com/go-resty/resty/v2"
)

const (
	batchURLsPath    = "/file-urls/batch"
	batchResultsPath = "/extract-results/batch/{batchId}"

	dataIDPrefix = "web_upload_"
)

// batchURLsRequest is the body of POST /file-urls/batch. Formula and table
// extraction and OCR are always on.
type batchURLsRequest struct {
	EnableFormula bool        `json:"enable_formula"`
	EnableTable   bool        `json:"enable_table"`
	LayoutModel   string      `json:"layout_model"`
	Language      string      `json:"language"`
	Files         []batchFile `json:"files"`
}

type batchFile struct {
	Name   string `json:"name"`
	IsOCR  bool   `json:"is_ocr"`
	DataID string `json:"data_id"`
}

type mineruAdapter struct {
	api     *utils.HTTPClient
	storage *utils.HTTPClient

	layoutModel string
	language    string

	now func() time.Time

	logger *logger.Logger
}

// NewMineruAdapter constructs the HTTP implementation of [RemoteAPI].
//
// Two clients are used: one bound to cfg.MineruBaseURL for the JSON API and
// one for presigned storage URLs, whose request headers are finalised by
// [applyPutOptions] right before sending. Both share cfg.RequestTimeout.
func NewMineruAdapter(cfg config.Adapter, logger *logger.Logger) (RemoteAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.MineruBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mineru base url: %w", err)
	}

	api := utils.NewHTTPClient(logger)
	api.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	storage := utils.NewHTTPClient(logger)
	storage.
		SetTimeout(cfg.RequestTimeout).
		SetPreRequestHook(applyPutOptions)

	return &mineruAdapter{
		api:         api,
		storage:     storage,
		layoutModel: cfg.LayoutModel,
		language:    cfg.Language,
		now:         time.Now,
		logger:      logger,
	}, nil
}

// RequestUploadURLs implements [RemoteAPI]. It POSTs the fixed feature set
// and one file entry named fileName; data_id is derived from the current
// time so each request is distinguishable on the remote side.
func (m *mineruAdapter) RequestUploadURLs(ctx context.Context, token, fileName string) (models.RemoteEnvelope, error) {
	log := logger.FromContext(ctx)

	body := batchURLsRequest{
		EnableFormula: true,
		EnableTable:   true,
		LayoutModel:   m.layoutModel,
		Language:      m.language,
		Files: []batchFile{{
			Name:   fileName,
			IsOCR:  true,
			DataID: fmt.Sprintf("%s%d", dataIDPrefix, m.now().UnixMilli()),
		}},
	}

	resp, err := m.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(batchURLsPath)
	if err != nil {
		err = unavailable(err)
		log.Err(err).Msg("batch url request failed")
		return models.RemoteEnvelope{}, err
	}

	log.Debug().Int("status", resp.StatusCode()).Str("file_name", fileName).Msg("batch url response received")

	return decodeEnvelope(resp)
}

// AllocateBatch implements [RemoteAPI].
func (m *mineruAdapter) AllocateBatch(ctx context.Context, token, fileName string) (models.BatchAllocation, error) {
	env, err := m.RequestUploadURLs(ctx, token, fileName)
	if err != nil {
		return models.BatchAllocation{}, err
	}

	return decodeAllocation(env)
}

// PutBytes implements [RemoteAPI]. uploadURL is absolute and already
// carries its signature, so no credentials are attached.
func (m *mineruAdapter) PutBytes(ctx context.Context, uploadURL string, body []byte, opts models.PutOptions) error {
	log := logger.FromContext(ctx)

	resp, err := m.storage.R().
		SetContext(utils.WithPutOptions(ctx, opts)).
		SetBody(body).
		Put(uploadURL)
	if err != nil {
		err = uploadUnreachable(err)
		log.Err(err).Msg("document upload failed to reach storage")
		return err
	}

	if !resp.IsSuccess() {
		log.Error().Int("status", resp.StatusCode()).Msg("storage rejected document upload")
		return uploadFailed(resp)
	}

	log.Debug().Int("bytes", len(body)).Bool("content_type", opts.SetContentType).Msg("document uploaded")
	return nil
}

// FetchResults implements [RemoteAPI].
func (m *mineruAdapter) FetchResults(ctx context.Context, token, batchID string) (models.RemoteEnvelope, error) {
	resp, err := m.authedRequest(ctx, token).
		SetPathParam("batchId", batchID).
		Get(batchResultsPath)
	if err != nil {
		err = unavailable(err)
		logger.FromContext(ctx).Err(err).Str("batch_id", batchID).Msg("result request failed")
		return models.RemoteEnvelope{}, err
	}

	return decodeEnvelope(resp)
}

func (m *mineruAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return m.api.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+strings.TrimSpace(token))
}

// applyPutOptions runs on the final *http.Request of every storage upload.
// resty always infers a Content-Type for request bodies; presigned URLs are
// signed without one, so it is removed unless the upload asked for it.
func applyPutOptions(_ *resty.Client, req *http.Request) error {
	opts, _ := utils.GetPutOptionsFromContext(req.Context())
	if opts.SetContentType && opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
		return nil
	}

	req.Header.Del("Content-Type")
	return nil
}
