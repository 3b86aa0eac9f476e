package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_relay/config"
	"voice_relay/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.App{Name: "voice-relay", Version: "test"},
		Server: config.Server{Port: "0", WriteTimeout: time.Minute},
		Log:    config.Log{Level: "error"},
		Eden:   config.Eden{URL: "http://127.0.0.1:1", Timeout: time.Second},
		Relay:  config.Relay{StrictValidation: true, MaxUploadBytes: 1 << 20},
		OTEL:   config.OTEL{Exporter: config.ExporterNone},
	}
}

func TestHandler_CORS(t *testing.T) {
	h := Handler(testConfig(), logger.New("error", logger.Output(io.Discard)), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestHandler_Preflight(t *testing.T) {
	h := Handler(testConfig(), logger.New("error", logger.Output(io.Discard)), nil)

	req := httptest.NewRequest(http.MethodOptions, "/convert-voice-eden/", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInitGlobalProvider_None(t *testing.T) {
	s := &Server{}

	require.NoError(t, s.InitGlobalProvider(name, testConfig()))
	assert.Empty(t, s.traceProviderCloseFn)
}

func TestInitGlobalProvider_Jaeger(t *testing.T) {
	cfg := testConfig()
	cfg.OTEL.Exporter = config.ExporterJaeger
	cfg.OTEL.JaegerEndpoint = "http://127.0.0.1:14268/api/traces"

	s, err := NewServer(cfg)
	require.NoError(t, err)
	require.Len(t, s.traceProviderCloseFn, 1)

	for _, closeFn := range s.traceProviderCloseFn {
		_ = closeFn(context.Background())
	}
}

func TestRun_StopsOnContext(t *testing.T) {
	s := &Server{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, testConfig()) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}
