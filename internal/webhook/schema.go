package webhook

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// quizSchema describes the unwrapped quiz payload. Only the fields the
// application reads are constrained; the workflow is free to add more.
const quizSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "options"],
        "properties": {
          "question": {"type": "string"},
          "options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
          "difficulty": {"type": "string"}
        }
      }
    }
  }
}`

// reviewSchema describes the unwrapped answer-review payload.
const reviewSchema = `{
  "type": "object",
  "required": ["summary"],
  "properties": {
    "summary": {"type": "string"},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "improvements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["area"],
        "properties": {
          "area": {"type": "string"},
          "priority": {"type": "string"}
        }
      }
    },
    "role_fits": {"type": "array", "items": {"type": "string"}},
    "confidence": {"type": "string"}
  }
}`

// ValidateQuizPayload checks an unwrapped quiz payload against the quiz
// schema.
func ValidateQuizPayload(payload []byte) error {
	return validate(quizSchema, payload)
}

// ValidateReviewPayload checks an unwrapped answer-review payload.
func ValidateReviewPayload(payload []byte) error {
	return validate(reviewSchema, payload)
}

func validate(schema string, payload []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("payload does not match schema:")
	for _, desc := range result.Errors() {
		sb.WriteString(fmt.Sprintf(" %s: %s;", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
