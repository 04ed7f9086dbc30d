package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/handler"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":0"}},
		{name: "empty handlers", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestNewServer_AppliesRequestTimeout(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":3000", RequestTimeout: time.Minute, MaxBodySize: 1 << 20}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	impl, ok := s.(*server)
	require.True(t, ok)
	assert.Equal(t, ":3000", impl.httpServer.server.Addr)
	assert.Equal(t, time.Minute, impl.httpServer.server.WriteTimeout)
	assert.Equal(t, time.Minute, impl.httpServer.server.ReadTimeout)
}

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(addr string) *server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	return &server{
		httpServer: newHTTPServer(mux, config.Server{HTTPAddress: addr}, logger.Nop()),
		logger:     logger.Nop(),
	}
}

func TestServe_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	s := newTestServer(addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
		if err != nil {
			return false
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return string(body) == "ok"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after the context was cancelled")
	}
}

func TestServe_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(busy.Addr().String())

	err = s.serve(context.Background())

	assert.ErrorIs(t, err, ErrListenFailed)
}

func TestShutdown_BeforeStart(t *testing.T) {
	s := newTestServer("127.0.0.1:0")

	assert.NoError(t, s.Shutdown(context.Background()))
}
