package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ModsDir != "mods" {
		t.Fatalf("mods_dir = %q", cfg.ModsDir)
	}
	if cfg.Loader != "fabric" || cfg.GameVersion != "1.21.11" {
		t.Fatalf("loader/game_version = %q/%q", cfg.Loader, cfg.GameVersion)
	}
	if cfg.APIBaseURL != "https://api.modrinth.com/v2" {
		t.Fatalf("api_base_url = %q", cfg.APIBaseURL)
	}
	if len(cfg.Mods) == 0 {
		t.Fatal("default mod list is empty")
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.BaseDelay != 250*time.Millisecond {
		t.Fatalf("retry = %+v", cfg.Retry)
	}
	if got := cfg.Retry.Statuses; len(got) != 5 || got[0] != 429 {
		t.Fatalf("retry statuses = %v", got)
	}
	if cfg.Download.RetryMax != 3 || cfg.Download.RetryWaitMin != time.Second {
		t.Fatalf("download = %+v", cfg.Download)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
mods_dir: /tmp/pack
loader: forge
game_version: 1.20.1
mods:
  - jei
  - waystones
retry:
  max_attempts: 5
  base_delay: 1s
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Loader != "forge" || cfg.GameVersion != "1.20.1" {
		t.Fatalf("loader/game_version = %q/%q", cfg.Loader, cfg.GameVersion)
	}
	if len(cfg.Mods) != 2 || cfg.Mods[0] != "jei" {
		t.Fatalf("mods = %v", cfg.Mods)
	}
	if cfg.Retry.MaxAttempts != 5 || cfg.Retry.BaseDelay != time.Second {
		t.Fatalf("retry = %+v", cfg.Retry)
	}
	// untouched keys keep their defaults
	if cfg.APIBaseURL != "https://api.modrinth.com/v2" {
		t.Fatalf("api_base_url = %q", cfg.APIBaseURL)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("logging.format = %q", cfg.Logging.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad url", "api_base_url: not-a-url\n"},
		{"zero attempts", "retry:\n  max_attempts: 0\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"inverted retry delays", "retry:\n  base_delay: 10s\n  max_delay: 1s\n"},
		{"inverted download waits", "download:\n  retry_wait_min: 10s\n  retry_wait_max: 1s\n"},
		{"empty mod list", "mods: []\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
