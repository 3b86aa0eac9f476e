package relay_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"time"

	"voice_relay/entity"
)

func audioFile(field, contentType string, body []byte) *entity.AudioFile {
	return &entity.AudioFile{
		Field:       field,
		Filename:    field + ".mp3",
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		},
	}
}

func validRequest() entity.ConversionRequest {
	return entity.ConversionRequest{
		SourceAudio:    audioFile("source_audio", "audio/mpeg", []byte("source-bytes")),
		ReferenceAudio: audioFile("reference_audio", "audio/wav", []byte("reference-bytes")),
	}
}

func providerBody(results map[string]interface{}) []byte {
	b, err := json.Marshal(results)
	if err != nil {
		panic(err)
	}
	return b
}

func success(audio []byte) map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"audio":  base64.StdEncoding.EncodeToString(audio),
	}
}

type fakeClient struct {
	calls   int
	apiKey  string
	payload entity.UpstreamPayload
	res     entity.UpstreamResponse
	err     error
}

func (f *fakeClient) Convert(_ context.Context, apiKey string, payload entity.UpstreamPayload) (entity.UpstreamResponse, error) {
	f.calls++
	f.apiKey = apiKey
	f.payload = payload
	return f.res, f.err
}

type fakeRecorder struct {
	outcomes  []string
	statuses  []int
	providers []string
}

func (r *fakeRecorder) ObserveConversion(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *fakeRecorder) ObserveUpstream(status int, _ time.Duration) {
	r.statuses = append(r.statuses, status)
}

func (r *fakeRecorder) ObserveProvider(provider string) {
	r.providers = append(r.providers, provider)
}
