package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"voice_relay/entity"
	"voice_relay/internal/relay"
	"voice_relay/pkg/logger"
)

type voiceRoutes struct {
	vu  entity.VoiceConversionUsecase
	l   logger.Interface
	cfg RouterConfig
}

func newVoiceRoutes(handler *gin.RouterGroup, vu entity.VoiceConversionUsecase, l logger.Interface, cfg RouterConfig) {
	r := &voiceRoutes{vu, l, cfg}

	handler.POST("/convert-voice-eden/", r.convertVoice)
}

// @Summary     Convert voice
// @Description Re-voices source_audio with the timbre of reference_audio through Eden AI
// @ID          convert-voice-eden
// @Tags        voice
// @Accept      multipart/form-data
// @Produce     audio/mpeg
// @Produce     json
// @Param       source_audio    formData file true "speech to convert"
// @Param       reference_audio formData file true "voice sample to imitate"
// @Success     200 {file}   binary
// @Header      200 {string} X-Provider "provider that produced the audio"
// @Failure     400 {object} response
// @Failure     500 {object} response
// @Router      /convert-voice-eden/ [post]
func (r *voiceRoutes) convertVoice(c *gin.Context) {
	ctx, span := otel.Tracer(traceName).Start(c.Request.Context(), "convert-voice-api")
	defer span.End()

	if r.cfg.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, r.cfg.MaxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		if isTooLarge(err) {
			r.fail(c, relay.ErrPayloadTooLarge(r.cfg.MaxUploadBytes))
			return
		}
		// A body that is not a multipart form carries neither file.
		r.l.Debug("http - v1 - convertVoice - multipart: %v", err)
		form = &multipart.Form{}
	} else {
		defer func() { _ = form.RemoveAll() }()
	}

	req := entity.ConversionRequest{
		SourceAudio:    audioFile(form, relay.FieldSourceAudio),
		ReferenceAudio: audioFile(form, relay.FieldReferenceAudio),
	}

	result, err := r.vu.ConvertVoice(ctx, req)
	if err != nil {
		r.fail(c, relay.AsError(err))
		return
	}

	span.SetAttributes(attribute.String("provider", result.Provider))
	c.Header(HeaderProvider, result.Provider)
	c.Data(http.StatusOK, result.MediaType, result.Audio)
}

func (r *voiceRoutes) fail(c *gin.Context, err *relay.Error) {
	if err.Status >= http.StatusInternalServerError {
		r.l.Error(err, "http - v1 - convertVoice")
	} else {
		r.l.Warn("http - v1 - convertVoice - %s: %s", err.Code, err.Message)
	}
	relayErrorResponse(c, err, r.cfg.Secret)
}

func audioFile(form *multipart.Form, field string) *entity.AudioFile {
	files := form.File[field]
	if len(files) == 0 {
		return nil
	}
	fh := files[0]

	return &entity.AudioFile{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
