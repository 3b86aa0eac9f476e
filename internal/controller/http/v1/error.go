package v1

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"voice_relay/internal/relay"
)

const redacted = "[REDACTED]"

type response struct {
	Error   string      `json:"error"             example:"message"`
	Code    string      `json:"code,omitempty"    example:"missing_field"`
	Details interface{} `json:"details,omitempty" swaggertype:"object"`
}

func errorResponse(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, response{Error: msg})
}

// relayErrorResponse writes err as the structured error body with secret
// removed from every string it contains.
func relayErrorResponse(c *gin.Context, err *relay.Error, secret string) {
	body, marshalErr := json.Marshal(response{
		Error:   err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
	if marshalErr != nil {
		body, _ = json.Marshal(response{Error: err.Message, Code: err.Code})
	}

	c.Abort()
	c.Data(err.Status, "application/json; charset=utf-8", []byte(redact(string(body), secret)))
}

// redact replaces secret both raw and in its JSON escaped form.
func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	s = strings.ReplaceAll(s, secret, redacted)

	escaped, err := json.Marshal(secret)
	if err != nil {
		return s
	}
	if e := string(escaped[1 : len(escaped)-1]); e != secret {
		s = strings.ReplaceAll(s, e, redacted)
	}
	return s
}
