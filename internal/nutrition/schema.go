package nutrition

import (
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const mealPlanSchemaJSON = `{
  "type": "object",
  "required": ["days"],
  "properties": {
    "days": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["day", "meals"],
        "properties": {
          "day": {"type": "integer", "minimum": 1},
          "meals": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["name", "calories"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "calories": {"type": "number", "minimum": 0},
                "protein_g": {"type": "number", "minimum": 0},
                "carbs_g": {"type": "number", "minimum": 0},
                "fat_g": {"type": "number", "minimum": 0}
              }
            }
          }
        }
      }
    },
    "notes": {"type": "string"}
  }
}`

const mealAnalysisSchemaJSON = `{
  "type": "object",
  "required": ["calories", "protein_g", "carbs_g", "fat_g"],
  "properties": {
    "calories": {"type": "number", "minimum": 0},
    "protein_g": {"type": "number", "minimum": 0},
    "carbs_g": {"type": "number", "minimum": 0},
    "fat_g": {"type": "number", "minimum": 0},
    "fiber_g": {"type": "number", "minimum": 0},
    "confidence": {"type": "string"}
  }
}`

var (
	mealPlanSchema     = sync.OnceValues(func() (*gojsonschema.Schema, error) { return compile(mealPlanSchemaJSON) })
	mealAnalysisSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) { return compile(mealAnalysisSchemaJSON) })
)

func compile(src string) (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
}

// validateReply checks a model reply against schema and returns a short
// description of the first few violations.
func validateReply(schema func() (*gojsonschema.Schema, error), reply []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(reply))
	if err != nil {
		return invalidReply("reply is not valid JSON")
	}
	if result.Valid() {
		return nil
	}
	var msgs []string
	for i, desc := range result.Errors() {
		if i == 3 {
			break
		}
		msgs = append(msgs, desc.String())
	}
	return invalidReply("schema violation: " + strings.Join(msgs, "; "))
}
