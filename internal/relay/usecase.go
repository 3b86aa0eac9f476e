package relay

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"voice_relay/config"
	"voice_relay/entity"
)

const traceName = "Voice-Relay"

const outcomeSuccess = "success"

// Recorder receives per-request measurements.
type Recorder interface {
	ObserveConversion(outcome string)
	ObserveUpstream(status int, elapsed time.Duration)
	ObserveProvider(provider string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveConversion(string)           {}
func (nopRecorder) ObserveUpstream(int, time.Duration) {}
func (nopRecorder) ObserveProvider(string)             {}

type VoiceUsecase struct {
	client    entity.UpstreamClient
	validator *Validator
	apiKey    string
	recorder  Recorder
}

var _ entity.VoiceConversionUsecase = (*VoiceUsecase)(nil)

// NewVoiceUsecase -. recorder may be nil.
func NewVoiceUsecase(cfg *config.Config, client entity.UpstreamClient, recorder Recorder) *VoiceUsecase {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &VoiceUsecase{
		client:    client,
		validator: NewValidator(cfg.Relay.StrictValidation),
		apiKey:    cfg.Eden.APIKey,
		recorder:  recorder,
	}
}

// ConvertVoice performs exactly one upstream call. Every returned error is a *Error.
func (u *VoiceUsecase) ConvertVoice(ctx context.Context, req entity.ConversionRequest) (result entity.ConversionResult, err error) {
	ctx, span := otel.Tracer(traceName).Start(ctx, "ConvertVoice")
	defer span.End()

	defer func() {
		outcome := outcomeSuccess
		if err != nil {
			relayErr := AsError(err)
			err = relayErr
			outcome = relayErr.Code
			span.SetStatus(codes.Error, relayErr.Code)
		}
		span.SetAttributes(attribute.String("outcome", outcome))
		u.recorder.ObserveConversion(outcome)
	}()

	if err := u.validator.Validate(req); err != nil {
		return entity.ConversionResult{}, err
	}

	if u.apiKey == "" {
		return entity.ConversionResult{}, ErrMissingCredential()
	}

	payload, err := BuildPayload(ctx, req)
	if err != nil {
		return entity.ConversionResult{}, ErrInternal(err)
	}

	start := time.Now()
	res, err := u.client.Convert(ctx, u.apiKey, payload)
	if err != nil {
		return entity.ConversionResult{}, ErrUpstreamTransport(err)
	}
	u.recorder.ObserveUpstream(res.StatusCode, time.Since(start))
	span.SetAttributes(attribute.Int("upstream_status", res.StatusCode))

	_, interpretSpan := otel.Tracer(traceName).Start(ctx, "InterpretResult")
	result, err = InterpretResponse(res)
	interpretSpan.End()
	if err != nil {
		return entity.ConversionResult{}, err
	}

	u.recorder.ObserveProvider(result.Provider)
	span.SetAttributes(attribute.String("provider", result.Provider))

	return result, nil
}
