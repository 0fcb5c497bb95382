package gemini

import "net/url"

// API paths for the Generative Language API (v1beta).
const (
	PathModels = "/v1beta/models"
)

// GenerateContentPath builds /v1beta/models/{model}:generateContent.
func GenerateContentPath(model string) string {
	return PathModels + "/" + url.PathEscape(model) + ":generateContent"
}
