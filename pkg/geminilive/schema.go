package geminilive

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaFrom converts a JSON schema to the Live API wire schema used by
// function declarations. Only the subset the API understands is carried:
// type, format, description, enum, items, properties and required.
func SchemaFrom(schema *jsonschema.Schema) *Schema {
	if schema == nil {
		return nil
	}

	var enums []string
	for _, v := range schema.Enum {
		enums = append(enums, fmt.Sprintf("%v", v))
	}

	s := Schema{
		Format:      schema.Format,
		Description: schema.Description,
		Enum:        enums,
		Items:       SchemaFrom(schema.Items),
		Required:    schema.Required,
	}

	if n := len(schema.Properties); n > 0 {
		s.Properties = make(map[string]*Schema, n)
		for k, prop := range schema.Properties {
			s.Properties[k] = SchemaFrom(prop)
		}
	}

	switch schema.Type {
	case "object":
		s.Type = "OBJECT"
	case "array":
		s.Type = "ARRAY"
	case "string":
		s.Type = "STRING"
	case "number":
		s.Type = "NUMBER"
	case "integer":
		s.Type = "INTEGER"
	case "boolean":
		s.Type = "BOOLEAN"
	}
	return &s
}
