package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"voice_relay/config"
	v1 "voice_relay/internal/controller/http/v1"
	"voice_relay/internal/relay"
	"voice_relay/internal/telemetry/metric"
	ttrace "voice_relay/internal/telemetry/trace"
	"voice_relay/internal/upstream/edenai"
	"voice_relay/pkg/httpserver"
	"voice_relay/pkg/logger"
)

var name = "voice-relay"

// NewServer ...
func NewServer(cfg *config.Config) (*Server, error) {
	srv := &Server{}

	if err := srv.InitGlobalProvider(name, cfg); err != nil {
		return nil, err
	}

	return srv, nil
}

type Server struct {
	traceProviderCloseFn []ttrace.CloseFunc
}

// Handler wires the relay behind the HTTP router.
func Handler(cfg *config.Config, l logger.Interface, recorder relay.Recorder) http.Handler {
	client := edenai.NewClient(cfg.Eden.URL, cfg.Eden.Timeout)
	usecase := relay.NewVoiceUsecase(cfg, client, recorder)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := gin.New()
	v1.NewRouter(handler, l, usecase, v1.RouterConfig{
		MaxUploadBytes: cfg.Relay.MaxUploadBytes,
		Secret:         cfg.Eden.APIKey,
	})

	return corsOptions().Handler(handler)
}

// Run ...
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	l := logger.New(cfg.Log.Level)
	l.Info("Starting server...")

	if cfg.Eden.APIKey == "" {
		l.Warn("EDEN_AI_API_KEY is not set, conversions will fail")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metric.NewRelayMetrics(reg)
	if err != nil {
		return fmt.Errorf("app - Run - metric.NewRelayMetrics: %w", err)
	}

	httpServer := httpserver.New(
		Handler(cfg, l, recorder),
		httpserver.Port(cfg.Server.Port),
		httpserver.WriteTimeout(cfg.Server.WriteTimeout),
	)
	l.Info("server serving on port %s", cfg.Server.Port)

	var metricsNotify <-chan error
	var metricsServer *httpserver.Server
	if cfg.OTEL.PrometheusPort != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		metricsServer = httpserver.New(mux, httpserver.Port(cfg.OTEL.PrometheusPort))
		metricsNotify = metricsServer.Notify()
		l.Info("metrics serving on port %s", cfg.OTEL.PrometheusPort)
	}

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-interrupt:
		l.Info("app - Run - signal: " + sig.String())
	case <-ctx.Done():
		l.Info("app - Run - context done")
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	case err = <-metricsNotify:
		l.Error(fmt.Errorf("app - Run - metricsServer.Notify: %w", err))
	}

	// Shutdown
	if shutdownErr := httpServer.Shutdown(); shutdownErr != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", shutdownErr))
	}
	if metricsServer != nil {
		if shutdownErr := metricsServer.Shutdown(); shutdownErr != nil {
			l.Error(fmt.Errorf("app - Run - metricsServer.Shutdown: %w", shutdownErr))
		}
	}

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, closeFn := range s.traceProviderCloseFn {
		if closeErr := closeFn(ctxShutDown); closeErr != nil {
			l.Error(closeErr, "Unable to close trace provider")
		}
	}

	l.Info("server exited properly")

	return err
}

func corsOptions() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"POST", "GET", "HEAD", "OPTIONS"},
		AllowedHeaders:     []string{"*"},
		ExposedHeaders:     []string{v1.HeaderRequestID, v1.HeaderProvider},
		MaxAge:             60, // 1 minutes
		AllowCredentials:   false,
		OptionsPassthrough: false,
		Debug:              false,
	})
}
