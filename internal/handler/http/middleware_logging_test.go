package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context logger writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 400 relay error",
			method:          http.MethodPost,
			path:            "/api/processPDF",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: `{"error":true,"message":"Missing pdfFile"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/api/processPDF"`,
				`"status":400`,
			},
		},
		{
			name:          "OPTIONS pre-flight without body",
			method:        http.MethodOptions,
			path:          "/api/pollResults",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"method":"OPTIONS"`,
				`"size":0`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/proxy-zip?url=https%3A%2F%2Fcdn%2Fx.zip",
			handlerStatus:   http.StatusOK,
			handlerResponse: "PK",
			checkLogContains: []string{
				`"uri":"/proxy-zip?url=https%3A%2F%2Fcdn%2Fx.zip"`,
			},
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_RedactsTokenInQuery(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantURI     string
		forbiddenIn []string
	}{
		{
			name:        "legacy poll route",
			path:        "/api/pollResults/B1?mineruToken=SECRET-TOKEN-123",
			wantURI:     `"uri":"/api/pollResults/B1?mineruToken=REDACTED"`,
			forbiddenIn: []string{"SECRET-TOKEN-123"},
		},
		{
			name:        "token among other params",
			path:        "/api/pollResults/B1?a=1&mineruToken=SECRET&z=2",
			wantURI:     `"uri":"/api/pollResults/B1?a=1&mineruToken=REDACTED&z=2"`,
			forbiddenIn: []string{"SECRET"},
		},
		{
			name:    "no sensitive params",
			path:    "/api/pollResults/B1?x=1",
			wantURI: `"uri":"/api/pollResults/B1?x=1"`,
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotEqual(t, redacted, r.URL.Query().Get(formFieldToken), "handler must see the real token")
				w.WriteHeader(http.StatusOK)
			})

			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, tt.path, &logBuf))

			assert.Contains(t, logBuf.String(), tt.wantURI)
			for _, secret := range tt.forbiddenIn {
				assert.NotContains(t, logBuf.String(), secret)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	})
}
