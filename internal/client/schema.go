package client

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// tourResultSchema pins down the loosely-typed tour payload at the
// boundary so backend contract drift fails loudly instead of rendering
// garbage. Every field is optional; only the types are enforced.
const tourResultSchema = `{
	"type": "object",
	"properties": {
		"reply": {"type": "string"},
		"duration": {"type": "string"},
		"sources": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"location_name": {"type": "string"},
					"review_text": {"type": "string"},
					"author": {"type": ["string", "null"]}
				},
				"required": ["location_name", "review_text"]
			}
		}
	}
}`

var tourSchemaLoader = gojsonschema.NewStringLoader(tourResultSchema)

func validateTourPayload(body []byte) error {
	result, err := gojsonschema.Validate(tourSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("failed to validate tour response: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("tour response does not match contract: %s", strings.Join(problems, "; "))
}
