package geminilive

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
)

func TestSchemaFrom(t *testing.T) {
	in := &jsonschema.Schema{
		Type:        "object",
		Description: "tool arguments",
		Properties: map[string]*jsonschema.Schema{
			"timezone": {
				Type: "string",
				Enum: []any{"UTC", "local"},
			},
			"offsets": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "integer"},
			},
		},
		Required: []string{"timezone"},
	}

	got := SchemaFrom(in)
	if got.Type != "OBJECT" || got.Description != "tool arguments" {
		t.Fatalf("root=%+v", got)
	}
	if len(got.Required) != 1 || got.Required[0] != "timezone" {
		t.Errorf("required=%v", got.Required)
	}

	tz := got.Properties["timezone"]
	if tz == nil || tz.Type != "STRING" {
		t.Fatalf("timezone=%+v", tz)
	}
	if len(tz.Enum) != 2 || tz.Enum[0] != "UTC" || tz.Enum[1] != "local" {
		t.Errorf("enum=%v", tz.Enum)
	}

	off := got.Properties["offsets"]
	if off == nil || off.Type != "ARRAY" || off.Items == nil || off.Items.Type != "INTEGER" {
		t.Fatalf("offsets=%+v", off)
	}
}

func TestSchemaFromNil(t *testing.T) {
	if SchemaFrom(nil) != nil {
		t.Error("expected nil")
	}
}
