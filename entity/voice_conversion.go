package entity

import (
	"context"
	"encoding/json"
	"io"
)

type VoiceConversionUsecase interface {
	ConvertVoice(ctx context.Context, req ConversionRequest) (ConversionResult, error)
}

type UpstreamClient interface {
	Convert(ctx context.Context, apiKey string, payload UpstreamPayload) (UpstreamResponse, error)
}

// AudioFile is an uploaded file whose body has not been read yet.
type AudioFile struct {
	Field       string
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// ConversionRequest holds the two inbound uploads; a nil file means the part was missing.
type ConversionRequest struct {
	SourceAudio    *AudioFile
	ReferenceAudio *AudioFile
}

type UpstreamFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type UpstreamPayload struct {
	Providers         string
	FallbackProviders string
	Language          string
	File              UpstreamFile
	ReferenceFile     UpstreamFile
}

type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

type ProviderResult struct {
	Provider string
	Status   string
	Audio    string
	Raw      json.RawMessage
}

type ConversionResult struct {
	Provider  string
	MediaType string
	Audio     []byte
}
