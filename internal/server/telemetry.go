package server

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"voice_relay/config"
	ttrace "voice_relay/internal/telemetry/trace"
	traceExporter "voice_relay/internal/telemetry/trace/exporter"
)

const _otlpDialTimeout = 10 * time.Second

// InitGlobalProvider installs the global tracer provider. With the none
// exporter spans stay on the default no-op provider.
func (s *Server) InitGlobalProvider(name string, cfg *config.Config) error {
	// set global propagator to tracecontext (the default is no-op).
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	spanExporter, err := newSpanExporter(cfg.OTEL)
	if err != nil {
		return errors.Wrap(err, "failed initializing the tracer exporter")
	}
	if spanExporter == nil {
		return nil
	}

	tracerProvider, tracerProviderCloseFn, err := ttrace.NewTraceProviderBuilder(name).
		SetVersion(cfg.App.Version).
		SetExporter(spanExporter).
		Build()
	if err != nil {
		return errors.Wrap(err, "failed initializing the tracer provider")
	}
	s.traceProviderCloseFn = append(s.traceProviderCloseFn, tracerProviderCloseFn)

	otel.SetTracerProvider(tracerProvider)

	return nil
}

func newSpanExporter(cfg config.OTEL) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case config.ExporterJaeger:
		return traceExporter.NewJaeger(cfg.JaegerEndpoint)
	case config.ExporterOTLP:
		ctx, cancel := context.WithTimeout(context.Background(), _otlpDialTimeout)
		defer cancel()
		return traceExporter.NewOTLP(ctx, cfg.OTLPEndpoint)
	default:
		return nil, nil
	}
}
