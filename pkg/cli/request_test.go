package cli

import (
	"os"
	"path/filepath"
	"testing"
)

type testReq struct {
	Model string   `yaml:"model" json:"model"`
	Turns []string `yaml:"turns" json:"turns"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadRequestYAML(t *testing.T) {
	path := writeFile(t, "req.yaml", "model: models/gemini-2.0-flash-exp\nturns:\n  - hello\n")
	var req testReq
	if err := LoadRequest(path, &req); err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Model != "models/gemini-2.0-flash-exp" || len(req.Turns) != 1 {
		t.Errorf("req=%+v", req)
	}
}

func TestLoadRequestJSON(t *testing.T) {
	path := writeFile(t, "req.json", `{"model":"m","turns":["a","b"]}`)
	var req testReq
	if err := LoadRequest(path, &req); err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Model != "m" || len(req.Turns) != 2 {
		t.Errorf("req=%+v", req)
	}
}

func TestParseRequestUnknownExtension(t *testing.T) {
	var req testReq
	if err := ParseRequest([]byte(`{"model":"m"}`), "req.txt", &req); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Model != "m" {
		t.Errorf("req=%+v", req)
	}
}

func TestLoadRequestMissingFile(t *testing.T) {
	var req testReq
	if err := LoadRequest(filepath.Join(t.TempDir(), "nope.yaml"), &req); err == nil {
		t.Error("expected error")
	}
}
