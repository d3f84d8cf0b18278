package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("bare name", func(t *testing.T) {
		got, err := resolveLogPath("session.json")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		want := filepath.Join(home, ".gemlive", appName, "logs", "session.json")
		if got != want {
			t.Errorf("got=%s want=%s", got, want)
		}
		if info, err := os.Stat(filepath.Dir(got)); err != nil || !info.IsDir() {
			t.Errorf("log dir not created: %v", err)
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		got, err := resolveLogPath("out/session.json")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got != "out/session.json" {
			t.Errorf("got=%s", got)
		}
	})
}

func TestResolveAudioPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveAudioPath("reply.pcm")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join(".gemlive", appName, "data", "reply.pcm")) {
		t.Errorf("got=%s", got)
	}

	got, err = resolveAudioPath("/tmp/reply.pcm")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/tmp/reply.pcm" {
		t.Errorf("got=%s", got)
	}
}
