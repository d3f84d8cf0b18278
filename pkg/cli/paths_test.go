package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func testPaths(t *testing.T) *Paths {
	t.Helper()
	return &Paths{AppName: "gemlive", HomeDir: t.TempDir()}
}

func TestPathsLayout(t *testing.T) {
	p := testPaths(t)

	base := filepath.Join(p.HomeDir, DefaultBaseDir)
	if p.BaseDir() != base {
		t.Errorf("base=%s", p.BaseDir())
	}
	if p.AppDir() != filepath.Join(base, "gemlive") {
		t.Errorf("app=%s", p.AppDir())
	}
	if p.ConfigFile() != filepath.Join(base, "gemlive", DefaultConfigFile) {
		t.Errorf("config=%s", p.ConfigFile())
	}
	if p.LogPath("s.json") != filepath.Join(base, "gemlive", "logs", "s.json") {
		t.Errorf("log=%s", p.LogPath("s.json"))
	}
	if p.DataPath("a.pcm") != filepath.Join(base, "gemlive", "data", "a.pcm") {
		t.Errorf("data=%s", p.DataPath("a.pcm"))
	}
}

func TestPathsEnsureDirs(t *testing.T) {
	p := testPaths(t)

	if err := p.EnsureLogDir(); err != nil {
		t.Fatalf("ensure logs: %v", err)
	}
	if info, err := os.Stat(p.LogDir()); err != nil || !info.IsDir() {
		t.Errorf("log dir: %v", err)
	}

	if err := p.EnsureDataDir(); err != nil {
		t.Fatalf("ensure data: %v", err)
	}
	if info, err := os.Stat(p.DataDir()); err != nil || !info.IsDir() {
		t.Errorf("data dir: %v", err)
	}
}

func TestNewPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p, err := NewPaths("gemlive")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if p.HomeDir == "" || p.AppName != "gemlive" {
		t.Errorf("paths=%+v", p)
	}
}
