package rag

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of a knowledge-base category file: an array
// of Record objects that may carry extra metadata fields.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	record := reflector.Reflect(&Record{})
	record.Version = ""

	file := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Knowledge base category file",
		Description: "The file name (without extension) is the category; each entry becomes one document.",
		Type:        "array",
		Items:       record,
	}
	return json.MarshalIndent(file, "", "  ")
}
