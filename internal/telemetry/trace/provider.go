// Package trace builds the OpenTelemetry tracer provider.
package trace

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// CloseFunc flushes and stops a provider.
type CloseFunc func(ctx context.Context) error

type TraceProviderBuilder struct {
	name     string
	version  string
	exporter sdktrace.SpanExporter
	syncer   bool
}

func NewTraceProviderBuilder(name string) *TraceProviderBuilder {
	return &TraceProviderBuilder{name: name}
}

func (b *TraceProviderBuilder) SetVersion(version string) *TraceProviderBuilder {
	b.version = version
	return b
}

func (b *TraceProviderBuilder) SetExporter(exp sdktrace.SpanExporter) *TraceProviderBuilder {
	b.exporter = exp
	return b
}

// SetSyncer exports every span as it ends instead of batching. Tests only.
func (b *TraceProviderBuilder) SetSyncer(exp sdktrace.SpanExporter) *TraceProviderBuilder {
	b.exporter = exp
	b.syncer = true
	return b
}

func (b *TraceProviderBuilder) Build() (*sdktrace.TracerProvider, CloseFunc, error) {
	if b.exporter == nil {
		return nil, nil, errors.New("trace exporter is not set")
	}

	attrs := []attribute.KeyValue{attribute.String("service.name", b.name)}
	if b.version != "" {
		attrs = append(attrs, attribute.String("service.version", b.version))
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(attrs...))
	if err != nil {
		return nil, nil, errors.Wrap(err, "trace resource")
	}

	opt := sdktrace.WithBatcher(b.exporter)
	if b.syncer {
		opt = sdktrace.WithSyncer(b.exporter)
	}

	tp := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))

	return tp, tp.Shutdown, nil
}
