package relay

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"voice_relay/entity"
)

const (
	statusSuccess  = "success"
	audioMediaType = "audio/mpeg"
)

// InterpretResponse turns the upstream reply into audio. The primary provider
// object wins whenever it is present; the fallback object is only read when
// the primary key is missing.
func InterpretResponse(res entity.UpstreamResponse) (entity.ConversionResult, error) {
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return entity.ConversionResult{}, ErrUpstreamHTTP(res.StatusCode, string(res.Body))
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(res.Body, &body); err != nil {
		return entity.ConversionResult{}, ErrProviderFailure(string(res.Body))
	}

	result, ok := selectProviderResult(body)
	if !ok {
		return entity.ConversionResult{}, ErrProviderFailure(json.RawMessage(res.Body))
	}

	if result.Status != statusSuccess {
		return entity.ConversionResult{}, ErrProviderFailure(result.Raw)
	}

	if result.Audio == "" {
		return entity.ConversionResult{}, ErrEmptyAudio(result.Provider)
	}

	audio, err := base64.StdEncoding.DecodeString(result.Audio)
	if err != nil {
		return entity.ConversionResult{}, ErrDecode(err)
	}

	return entity.ConversionResult{
		Provider:  result.Provider,
		MediaType: audioMediaType,
		Audio:     audio,
	}, nil
}

func selectProviderResult(body map[string]json.RawMessage) (entity.ProviderResult, bool) {
	for _, provider := range []string{PrimaryProvider, FallbackProvider} {
		raw, ok := body[provider]
		if !ok || !isObject(raw) {
			continue
		}
		return parseProviderResult(provider, raw), true
	}
	return entity.ProviderResult{}, false
}

// parseProviderResult tolerates unexpected field types: a non-string status
// or audio reads as empty.
func parseProviderResult(provider string, raw json.RawMessage) entity.ProviderResult {
	var fields map[string]interface{}
	_ = json.Unmarshal(raw, &fields)

	status, _ := fields["status"].(string)
	audio, _ := fields["audio"].(string)

	return entity.ProviderResult{
		Provider: provider,
		Status:   status,
		Audio:    audio,
		Raw:      raw,
	}
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
