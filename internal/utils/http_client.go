package utils

import (
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose internal resty diagnostics
// (warnings about headers, retries, etc.) go to log instead of stderr.
// A nil log keeps resty's default logger.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New()
	if log != nil {
		client.SetLogger(restyLogger{log: log})
	}
	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.log.Error().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.log.Debug().Str("component", "resty").Msgf(format, v...)
}
