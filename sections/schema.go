package sections

import (
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/alqalam/campus-cms/locale"
)

func mustReader(source string) io.Reader {
	return strings.NewReader(source)
}

// SchemaAdvisor validates structured content against the JSON schema known
// for a section key. It is advisory only: findings are reported so editors
// can be warned about drifting payloads, but a mismatch never blocks a save
// and unknown keys are never checked.
type SchemaAdvisor struct {
	schemas map[string]*jsonschema.Schema
}

const localizedTextSchema = `{
	"type": "object",
	"properties": {
		"en": {"type": "string"},
		"ar": {"type": "string"}
	},
	"additionalProperties": false
}`

var knownShapeSchemas = map[string]string{
	KeyWhyChoose: `{
		"type": "object",
		"required": ["features"],
		"properties": {
			"features": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"icon": {"type": "string"},
						"title": {"$ref": "text.json"},
						"description": {"$ref": "text.json"}
					}
				}
			}
		}
	}`,
	KeyAchievements: `{
		"type": "object",
		"required": ["achievements"],
		"properties": {
			"achievements": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"icon": {"type": "string"},
						"value": {"type": "string"},
						"label": {"$ref": "text.json"}
					}
				}
			}
		}
	}`,
	KeyStats: `{
		"type": "object",
		"required": ["stats"],
		"properties": {
			"stats": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"value": {"type": "string"},
						"label": {"$ref": "text.json"}
					}
				}
			}
		}
	}`,
}

// NewSchemaAdvisor compiles the shape schemas for the known section keys.
func NewSchemaAdvisor() (*SchemaAdvisor, error) {
	compiled := make(map[string]*jsonschema.Schema, len(knownShapeSchemas))
	for key, source := range knownShapeSchemas {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("text.json", mustReader(localizedTextSchema)); err != nil {
			return nil, fmt.Errorf("sections: add text schema: %w", err)
		}
		if err := compiler.AddResource(key+".json", mustReader(source)); err != nil {
			return nil, fmt.Errorf("sections: add %s schema: %w", key, err)
		}
		schema, err := compiler.Compile(key + ".json")
		if err != nil {
			return nil, fmt.Errorf("sections: compile %s schema: %w", key, err)
		}
		compiled[key] = schema
	}
	return &SchemaAdvisor{schemas: compiled}, nil
}

// MustNewSchemaAdvisor panics when the embedded schemas fail to compile,
// which only happens on a programming error.
func MustNewSchemaAdvisor() *SchemaAdvisor {
	advisor, err := NewSchemaAdvisor()
	if err != nil {
		panic(err)
	}
	return advisor
}

// Check reports whether the content matches the known shape for the key.
// Unknown keys, absent payloads, and unparsed payloads pass without a check.
func (a *SchemaAdvisor) Check(sectionKey string, content locale.Structured) error {
	if a == nil {
		return nil
	}
	schema, ok := a.schemas[sectionKey]
	if !ok {
		return nil
	}
	if content.IsZero() || content.Unparsed() {
		return nil
	}
	return schema.Validate(content.Data())
}
