package results

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchemaJSON is the JSON Schema every result document must satisfy
// before it is decoded. Semantic constraints the schema cannot express
// (correct ≤ attempts, unique task IDs) are checked in validateSemantics.
const resultSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Agent result file",
  "type": "object",
  "required": ["agent", "attempts", "tasks"],
  "additionalProperties": false,
  "properties": {
    "agent": {
      "type": "string",
      "minLength": 1
    },
    "attempts": {
      "type": "integer",
      "minimum": 1
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["task", "correct"],
        "additionalProperties": false,
        "properties": {
          "task": {
            "type": "string",
            "minLength": 1
          },
          "correct": {
            "type": "integer",
            "minimum": 0
          }
        }
      }
    }
  }
}`

// resultSchema is the compiled JSON Schema for result documents.
var resultSchema *jsonschema.Schema

func init() {
	resultSchema = mustCompileSchema(resultSchemaJSON, "result.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}
