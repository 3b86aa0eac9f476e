package relay

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"voice_relay/entity"
)

// Provider selection is fixed policy, callers cannot override it.
const (
	PrimaryProvider  = "elevenlabs"
	FallbackProvider = "coqui"
	TargetLanguage   = "he"
)

// BuildPayload loads both uploads in memory.
func BuildPayload(ctx context.Context, req entity.ConversionRequest) (entity.UpstreamPayload, error) {
	_, span := otel.Tracer(traceName).Start(ctx, "BuildPayload")
	defer span.End()

	source, err := readAudio(req.SourceAudio)
	if err != nil {
		return entity.UpstreamPayload{}, errors.Wrap(err, FieldSourceAudio)
	}

	reference, err := readAudio(req.ReferenceAudio)
	if err != nil {
		return entity.UpstreamPayload{}, errors.Wrap(err, FieldReferenceAudio)
	}

	span.SetAttributes(
		attribute.Int("source_bytes", len(source.Body)),
		attribute.Int("reference_bytes", len(reference.Body)),
	)

	return entity.UpstreamPayload{
		Providers:         PrimaryProvider,
		FallbackProviders: FallbackProvider,
		Language:          TargetLanguage,
		File:              source,
		ReferenceFile:     reference,
	}, nil
}

func readAudio(file *entity.AudioFile) (entity.UpstreamFile, error) {
	if file == nil || file.Open == nil {
		return entity.UpstreamFile{}, errors.New("file not provided")
	}

	r, err := file.Open()
	if err != nil {
		return entity.UpstreamFile{}, errors.Wrap(err, "open")
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return entity.UpstreamFile{}, errors.Wrap(err, "read")
	}

	return entity.UpstreamFile{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Body:        body,
	}, nil
}
