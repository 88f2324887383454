package internal

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.App.LogLevel != slog.LevelError {
		t.Errorf("log level = %v, want error", cfg.App.LogLevel)
	}
}

func TestApplicationConfig_EmptyFormatDefaultsText(t *testing.T) {
	cfg := ApplicationConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty format should default to text: %v", err)
	}
	if cfg.LogFormat != LogFormatText {
		t.Errorf("format = %q, want %q", cfg.LogFormat, LogFormatText)
	}
}

func TestApplicationConfig_InvalidFormat(t *testing.T) {
	cfg := ApplicationConfig{LogFormat: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid format should fail validation")
	}
}

func TestStoreConfig_EmptyPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Path = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("empty store path should fail")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "path") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStoreConfig_ResolvedPath(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", "/home/tester")
	cfg := StoreConfig{Path: "~/.qcd.db"}
	got, err := cfg.ResolvedPath()
	if err != nil {
		t.Fatalf("ResolvedPath: %v", err)
	}
	if got != filepath.Join("/home/tester", ".qcd.db") {
		t.Errorf("ResolvedPath = %q", got)
	}

	cfg.Path = "/var/lib/qcd.db"
	if got, _ := cfg.ResolvedPath(); got != "/var/lib/qcd.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
