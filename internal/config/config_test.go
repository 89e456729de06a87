package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	for _, k := range []string{"CATALOG", "COUNT", "SEED", "LOG_LEVEL"} {
		t.Setenv(Prefix+k, "")
		os.Unsetenv(Prefix + k)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Catalog != "verified_universities.json" {
		t.Errorf("Catalog = %q", cfg.Catalog)
	}
	if cfg.Count != 10 {
		t.Errorf("Count = %d, want 10", cfg.Count)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	lvl, err := cfg.Level()
	if err != nil || lvl != slog.LevelWarn {
		t.Errorf("Level() = %v, %v; want warn", lvl, err)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("ZCAMPUS_CATALOG", "catalogs/**/*.yaml")
	t.Setenv("ZCAMPUS_COUNT", "25")
	t.Setenv("ZCAMPUS_SEED", "42")
	t.Setenv("ZCAMPUS_LOG_LEVEL", "debug")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Catalog != "catalogs/**/*.yaml" {
		t.Errorf("Catalog = %q", cfg.Catalog)
	}
	if cfg.Count != 25 {
		t.Errorf("Count = %d, want 25", cfg.Count)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", lvl)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"count not a number", "ZCAMPUS_COUNT", "ten"},
		{"negative count", "ZCAMPUS_COUNT", "-1"},
		{"negative seed", "ZCAMPUS_SEED", "-5"},
		{"unknown level", "ZCAMPUS_LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Parse(); err == nil {
				t.Errorf("%s=%q should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	t.Setenv("ZCAMPUS_COUNT", "")
	os.Unsetenv("ZCAMPUS_COUNT")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ZCAMPUS_COUNT=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ZCAMPUS_COUNT") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Count != 3 {
		t.Errorf("Count = %d, want 3 from .env", cfg.Count)
	}
}

func TestLoadMissingDotenv(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored: %v", err)
	}
}
