// Package edenai talks to the Eden AI speech-to-speech endpoint.
package edenai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"voice_relay/entity"
)

const traceName = "Eden-AI"

const (
	fieldProviders         = "providers"
	fieldFallbackProviders = "fallback_providers"
	fieldLanguage          = "language"
	fieldFile              = "file"
	fieldReferenceFile     = "reference_file"

	defaultContentType = "application/octet-stream"
)

type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

var _ entity.UpstreamClient = (*Client)(nil)

// NewClient -. timeout bounds the whole exchange including the body read.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:     url,
		timeout: timeout,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Convert sends one multipart request and returns the raw reply. Non-2xx
// statuses are not errors here.
func (c *Client) Convert(ctx context.Context, apiKey string, payload entity.UpstreamPayload) (entity.UpstreamResponse, error) {
	ctx, span := otel.Tracer(traceName).Start(ctx, "CallUpstream")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, contentType, err := encodePayload(payload)
	if err != nil {
		return entity.UpstreamResponse{}, errors.Wrap(err, "edenai - encode payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return entity.UpstreamResponse{}, errors.Wrap(err, "edenai - new request")
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return entity.UpstreamResponse{}, errors.Wrap(err, "edenai - do request")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return entity.UpstreamResponse{}, errors.Wrap(err, "edenai - read body")
	}

	span.SetAttributes(
		attribute.Int("http.status_code", res.StatusCode),
		attribute.Int("response_bytes", len(raw)),
	)

	return entity.UpstreamResponse{StatusCode: res.StatusCode, Body: raw}, nil
}

func encodePayload(payload entity.UpstreamPayload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range []struct{ name, value string }{
		{fieldProviders, payload.Providers},
		{fieldFallbackProviders, payload.FallbackProviders},
		{fieldLanguage, payload.Language},
	} {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", errors.Wrap(err, f.name)
		}
	}

	if err := writeFile(w, fieldFile, payload.File); err != nil {
		return nil, "", err
	}
	if err := writeFile(w, fieldReferenceFile, payload.ReferenceFile); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close writer")
	}

	return buf, w.FormDataContentType(), nil
}

// writeFile keeps the caller's filename and content type on the part.
func writeFile(w *multipart.Writer, field string, file entity.UpstreamFile) error {
	filename := file.Filename
	if filename == "" {
		filename = field
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, escapeQuotes(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return errors.Wrap(err, field)
	}
	if _, err := part.Write(file.Body); err != nil {
		return errors.Wrap(err, field)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
