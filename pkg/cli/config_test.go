package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestLoadConfigDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadConfig("gemlive")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := filepath.Join(home, DefaultBaseDir, "gemlive", DefaultConfigFile)
	if cfg.Path() != want {
		t.Errorf("path=%s want=%s", cfg.Path(), want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoadConfigCreatesFile(t *testing.T) {
	path := testConfigPath(t)
	cfg, err := LoadConfigWithPath("gemlive", path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != "gemlive" {
		t.Errorf("app=%s", cfg.AppName)
	}
	if cfg.Path() != path {
		t.Errorf("path=%s", cfg.Path())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestConfigContexts(t *testing.T) {
	path := testConfigPath(t)
	cfg, err := LoadConfigWithPath("gemlive", path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := cfg.AddContext("dev", &Context{APIKey: "key-dev"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cfg.AddContext("prod", &Context{APIKey: "key-prod", Model: "models/gemini-2.0-flash-exp"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cfg.UseContext("prod"); err != nil {
		t.Fatalf("use: %v", err)
	}

	// Reload from disk and verify persistence
	cfg2, err := LoadConfigWithPath("gemlive", path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg2.CurrentContext != "prod" {
		t.Errorf("current=%s", cfg2.CurrentContext)
	}
	ctx, err := cfg2.GetCurrentContext()
	if err != nil {
		t.Fatalf("current context: %v", err)
	}
	if ctx.APIKey != "key-prod" || ctx.Model != "models/gemini-2.0-flash-exp" {
		t.Errorf("ctx=%+v", ctx)
	}
	if len(cfg2.ListContexts()) != 2 {
		t.Errorf("contexts=%v", cfg2.ListContexts())
	}
}

func TestConfigResolveContext(t *testing.T) {
	cfg, err := LoadConfigWithPath("gemlive", testConfigPath(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.AddContext("a", &Context{APIKey: "ka"})
	cfg.AddContext("b", &Context{APIKey: "kb"})
	cfg.UseContext("a")

	ctx, err := cfg.ResolveContext("")
	if err != nil || ctx.APIKey != "ka" {
		t.Errorf("ctx=%+v err=%v", ctx, err)
	}
	ctx, err = cfg.ResolveContext("b")
	if err != nil || ctx.APIKey != "kb" {
		t.Errorf("ctx=%+v err=%v", ctx, err)
	}
	if _, err := cfg.ResolveContext("missing"); err == nil {
		t.Error("expected error for missing context")
	}
}

func TestConfigDeleteContext(t *testing.T) {
	cfg, err := LoadConfigWithPath("gemlive", testConfigPath(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.AddContext("dev", &Context{APIKey: "k"})
	cfg.UseContext("dev")

	if err := cfg.DeleteContext("dev"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cfg.CurrentContext != "" {
		t.Errorf("current=%s", cfg.CurrentContext)
	}
	if err := cfg.DeleteContext("dev"); err == nil {
		t.Error("expected error deleting missing context")
	}
}

func TestContextExtra(t *testing.T) {
	ctx := &Context{}
	if ctx.GetExtra("missing") != "" {
		t.Error("expected empty")
	}
	ctx.SetExtra("system_prompt", "be brief")
	if ctx.GetExtra("system_prompt") != "be brief" {
		t.Errorf("extra=%q", ctx.GetExtra("system_prompt"))
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", "*****"},
		{"12345678", "********"},
		{"AIzaSyExampleKey1234", "AIza************1234"},
	}
	for _, tc := range tests {
		if got := MaskAPIKey(tc.in); got != tc.want {
			t.Errorf("MaskAPIKey(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
	if strings.Contains(MaskAPIKey("AIzaSyExampleKey1234"), "Example") {
		t.Error("key material leaked")
	}
}
