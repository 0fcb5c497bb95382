package gemini

import (
	"github.com/tidwall/sjson"

	"nutriplan-go/internal/constants"
)

// TextRequest describes a single-turn text generation call.
type TextRequest struct {
	System      string
	Prompt      string
	JSONMode    bool
	Temperature float64
}

// BuildTextRequest renders a generateContent body. JSON mode asks the model
// for an application/json reply so callers can decode it directly.
func BuildTextRequest(r TextRequest) ([]byte, error) {
	body := []byte(`{}`)
	var err error
	if r.System != "" {
		if body, err = sjson.SetBytes(body, "systemInstruction.parts.0.text", r.System); err != nil {
			return nil, err
		}
	}
	if body, err = sjson.SetBytes(body, "contents.0.role", "user"); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "contents.0.parts.0.text", r.Prompt); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "generationConfig.temperature", r.Temperature); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "generationConfig.maxOutputTokens", constants.MaxOutputTokens); err != nil {
		return nil, err
	}
	if r.JSONMode {
		if body, err = sjson.SetBytes(body, "generationConfig.responseMimeType", "application/json"); err != nil {
			return nil, err
		}
	}
	return body, nil
}
