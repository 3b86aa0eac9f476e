package relay

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind groups failures that share a response status.
type Kind string

const (
	KindConfiguration     Kind = "ConfigurationError"
	KindValidation        Kind = "ValidationError"
	KindUpstreamTransport Kind = "UpstreamTransportError"
	KindUpstreamHTTP      Kind = "UpstreamHTTPError"
	KindProviderFailure   Kind = "ProviderFailureError"
	KindEmptyAudio        Kind = "EmptyAudioError"
	KindDecode            Kind = "DecodeError"
	KindInternal          Kind = "InternalError"
)

const (
	CodeMissingCredential = "missing_credential"
	CodeMissingField      = "missing_field"
	CodeUnsupportedType   = "unsupported_type"
	CodePayloadTooLarge   = "payload_too_large"
	CodeUpstreamTransport = "upstream_transport"
	CodeUpstreamHTTP      = "upstream_http"
	CodeProviderFailure   = "provider_failure"
	CodeEmptyAudio        = "empty_audio"
	CodeDecode            = "decode_error"
	CodeInternal          = "internal_error"
)

// Error is the single failure type leaving the relay. Message is the
// human readable category, Details is opaque diagnostic data for the caller.
type Error struct {
	Kind    Kind
	Code    string
	Status  int
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError returns err as *Error, classifying anything unknown as internal.
func AsError(err error) *Error {
	var relayErr *Error
	if errors.As(err, &relayErr) {
		return relayErr
	}
	return ErrInternal(err)
}

// FieldDetails names the offending form field.
type FieldDetails struct {
	Field       string `json:"field"`
	ContentType string `json:"content_type,omitempty"`
}

func ErrMissingCredential() *Error {
	return &Error{
		Kind:    KindConfiguration,
		Code:    CodeMissingCredential,
		Status:  http.StatusInternalServerError,
		Message: "EDEN_AI_API_KEY environment variable not found on the server.",
	}
}

func ErrMissingField(field string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeMissingField,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Missing required file %q", field),
		Details: FieldDetails{Field: field},
	}
}

func ErrUnsupportedType(field, contentType string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeUnsupportedType,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Unsupported content type %q for %q", contentType, field),
		Details: FieldDetails{Field: field, ContentType: contentType},
	}
}

func ErrPayloadTooLarge(limit int64) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodePayloadTooLarge,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Request body exceeds %d bytes", limit),
	}
}

func ErrUpstreamTransport(err error) *Error {
	return &Error{
		Kind:    KindUpstreamTransport,
		Code:    CodeUpstreamTransport,
		Status:  http.StatusInternalServerError,
		Message: "Failed to reach Eden AI",
		Details: err.Error(),
		Err:     err,
	}
}

// ErrUpstreamHTTP passes the upstream status through and keeps the body as text.
func ErrUpstreamHTTP(status int, body string) *Error {
	return &Error{
		Kind:    KindUpstreamHTTP,
		Code:    CodeUpstreamHTTP,
		Status:  status,
		Message: "Failed to call Eden AI",
		Details: body,
	}
}

func ErrProviderFailure(details interface{}) *Error {
	return &Error{
		Kind:    KindProviderFailure,
		Code:    CodeProviderFailure,
		Status:  http.StatusInternalServerError,
		Message: "Eden AI provider failed",
		Details: details,
	}
}

func ErrEmptyAudio(provider string) *Error {
	return &Error{
		Kind:    KindEmptyAudio,
		Code:    CodeEmptyAudio,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Eden AI provider %q returned no audio", provider),
	}
}

func ErrDecode(err error) *Error {
	return &Error{
		Kind:    KindDecode,
		Code:    CodeDecode,
		Status:  http.StatusInternalServerError,
		Message: "Failed to decode provider audio",
		Details: err.Error(),
		Err:     err,
	}
}

func ErrInternal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    CodeInternal,
		Status:  http.StatusInternalServerError,
		Message: "An internal server error occurred",
		Details: err.Error(),
		Err:     err,
	}
}
