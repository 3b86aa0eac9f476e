package exporter

import (
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/jaeger"
)

// NewJaeger exports to a Jaeger collector HTTP endpoint.
func NewJaeger(endpoint string) (*jaeger.Exporter, error) {
	traceExp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return nil, errors.Wrap(err, "jaeger exporter")
	}
	return traceExp, nil
}
