package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Output(map[string]string{"model": "gemini"}, OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["model"] != "gemini" {
		t.Errorf("got=%v", got)
	}
}

func TestOutputYAMLDefault(t *testing.T) {
	var buf bytes.Buffer
	err := Output(map[string]string{"model": "gemini"}, OutputOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if !strings.Contains(buf.String(), "model: gemini") {
		t.Errorf("out=%q", buf.String())
	}
}

func TestOutputRaw(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Output("plain text", OutputOptions{Format: FormatRaw, Writer: &buf}); err != nil {
			t.Fatalf("output: %v", err)
		}
		if buf.String() != "plain text" {
			t.Errorf("out=%q", buf.String())
		}
	})

	t.Run("bytes", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Output([]byte{0x01, 0x02}, OutputOptions{Format: FormatRaw, Writer: &buf}); err != nil {
			t.Fatalf("output: %v", err)
		}
		if !bytes.Equal(buf.Bytes(), []byte{0x01, 0x02}) {
			t.Errorf("out=%v", buf.Bytes())
		}
	})
}

func TestOutputUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Output("x", OutputOptions{Format: "xml", Writer: &buf}); err == nil {
		t.Error("expected error")
	}
}
