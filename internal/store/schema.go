package store

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema guards against loading a structurally broken document. It
// only pins the shape the loader relies on; field-level rules live in the
// domain layer.
const documentSchema = `{
  "type": "object",
  "required": ["teams", "users", "tasks", "comments"],
  "properties": {
    "teams":    { "type": "array", "items": { "$ref": "#/$defs/entity" } },
    "users":    { "type": "array", "items": { "$ref": "#/$defs/entity" } },
    "tasks":    { "type": "array", "items": { "$ref": "#/$defs/entity" } },
    "comments": { "type": "array", "items": { "$ref": "#/$defs/entity" } }
  },
  "$defs": {
    "entity": {
      "type": "object",
      "required": ["id"],
      "properties": { "id": { "type": "string" } }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("store.json", documentSchema)

// decodeDocument parses and validates a persisted document. Any failure is
// reported as not-ok so the caller can fall back to an empty store.
func decodeDocument(data []byte) (*Document, bool) {
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false
	}
	if err := compiledSchema.Validate(obj); err != nil {
		return nil, false
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}
