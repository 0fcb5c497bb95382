package constants

const (
	// DefaultModel is used when the configuration does not name one.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTemperature keeps meal plans varied without drifting off-format.
	DefaultTemperature = 0.7
	// MaxOutputTokens caps generation responses.
	MaxOutputTokens = 8192
	// MaxMealDescriptionLength bounds free-text meal analysis input.
	MaxMealDescriptionLength = 2000
)
