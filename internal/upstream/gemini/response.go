package gemini

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apperrors "nutriplan-go/internal/errors"
)

// Response wraps a raw generateContent body.
type Response struct {
	raw []byte
}

// NewResponse validates the body is JSON.
func NewResponse(body []byte) (*Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperrors.New(http.StatusBadGateway, "invalid_upstream_response", "server_error", "upstream returned malformed JSON")
	}
	return &Response{raw: body}, nil
}

// Raw returns the undecoded body.
func (r *Response) Raw() []byte { return r.raw }

// Text concatenates the text parts of the first candidate, skipping thought parts.
func (r *Response) Text() string {
	var b strings.Builder
	gjson.GetBytes(r.raw, "candidates.0.content.parts").ForEach(func(_, part gjson.Result) bool {
		if part.Get("thought").Bool() {
			return true
		}
		b.WriteString(part.Get("text").String())
		return true
	})
	return b.String()
}

// FinishReason of the first candidate, e.g. STOP or MAX_TOKENS.
func (r *Response) FinishReason() string {
	return gjson.GetBytes(r.raw, "candidates.0.finishReason").String()
}

// BlockReason is set when the prompt itself was rejected by safety filters.
func (r *Response) BlockReason() string {
	return gjson.GetBytes(r.raw, "promptFeedback.blockReason").String()
}

// Usage extracts token accounting from usageMetadata.
func (r *Response) Usage() (prompt, candidates, total int64) {
	u := gjson.GetBytes(r.raw, "usageMetadata")
	return u.Get("promptTokenCount").Int(), u.Get("candidatesTokenCount").Int(), u.Get("totalTokenCount").Int()
}
