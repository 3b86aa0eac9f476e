package relay

import (
	"mime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"voice_relay/entity"
)

// Inbound form field names.
const (
	FieldSourceAudio    = "source_audio"
	FieldReferenceAudio = "reference_audio"
)

var allowedContentTypes = []interface{}{
	"audio/mpeg",
	"audio/wav",
	"audio/mp3",
	"audio/x-wav",
	"audio/webm",
	"audio/ogg",
}

// Validator checks upload metadata only, bodies stay unread.
type Validator struct {
	strict bool
}

// NewValidator -. With strict off only presence is checked.
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

func (v *Validator) Validate(req entity.ConversionRequest) error {
	files := []struct {
		field string
		file  *entity.AudioFile
	}{
		{FieldSourceAudio, req.SourceAudio},
		{FieldReferenceAudio, req.ReferenceAudio},
	}

	for _, f := range files {
		if err := validation.Validate(f.file, validation.NotNil); err != nil {
			return ErrMissingField(f.field)
		}
	}

	if !v.strict {
		return nil
	}

	for _, f := range files {
		err := validation.Validate(mediaType(f.file.ContentType),
			validation.Required,
			validation.In(allowedContentTypes...),
		)
		if err != nil {
			return ErrUnsupportedType(f.field, f.file.ContentType)
		}
	}

	return nil
}

// mediaType drops parameters such as "codecs=opus" sent by browsers.
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}
