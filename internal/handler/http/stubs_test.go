package http

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pdf-relay/internal/app"
	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/service"
	"github.com/MKhiriev/go-pdf-relay/models"
)

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetStatus(_ context.Context) models.StatusMessage {
	return models.StatusMessage{Message: app.MsgServiceRunning}
}

// stubSubmissionService implements service.SubmissionService with
// overridable functions. A nil function panics when called, so tests fail
// loudly on unexpected calls.
type stubSubmissionService struct {
	submitFn            func(ctx context.Context, request models.UploadRequest) (models.ProcessingHandle, error)
	requestUploadURLsFn func(ctx context.Context, request models.BatchURLRequest) (models.RemoteEnvelope, error)
}

func (s *stubSubmissionService) Submit(ctx context.Context, request models.UploadRequest) (models.ProcessingHandle, error) {
	return s.submitFn(ctx, request)
}

func (s *stubSubmissionService) RequestUploadURLs(ctx context.Context, request models.BatchURLRequest) (models.RemoteEnvelope, error) {
	return s.requestUploadURLsFn(ctx, request)
}

type stubResultService struct {
	pollFn func(ctx context.Context, request models.PollRequest) (models.RemoteEnvelope, error)
}

func (s *stubResultService) Poll(ctx context.Context, request models.PollRequest) (models.RemoteEnvelope, error) {
	return s.pollFn(ctx, request)
}

type stubRelayService struct {
	relayZipFn     func(ctx context.Context, request models.ZipRequest) (models.BinaryPayload, error)
	relayConvertFn func(ctx context.Context, request models.ConvertRequest) (models.BinaryPayload, error)
}

func (s *stubRelayService) RelayZip(ctx context.Context, request models.ZipRequest) (models.BinaryPayload, error) {
	return s.relayZipFn(ctx, request)
}

func (s *stubRelayService) RelayMarkdownConversion(ctx context.Context, request models.ConvertRequest) (models.BinaryPayload, error) {
	return s.relayConvertFn(ctx, request)
}

// testServerConfig mirrors the production defaults that matter to handlers.
var testServerConfig = config.Server{
	MaxBodySize:        1 << 20,
	MaxMultipartMemory: 1 << 16,
}

// newTestHandlerWith builds a Handler around services; unset services are
// replaced with empty stubs.
func newTestHandlerWith(services *service.Services) *Handler {
	if services.SubmissionService == nil {
		services.SubmissionService = &stubSubmissionService{}
	}
	if services.ResultService == nil {
		services.ResultService = &stubResultService{}
	}
	if services.RelayService == nil {
		services.RelayService = &stubRelayService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(services, testServerConfig, logger.Nop())
}

// wrapKind wraps err with kind the way the service layer does.
func wrapKind(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
