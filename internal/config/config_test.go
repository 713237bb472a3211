package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.ChartDays != 7 {
		t.Fatalf("ChartDays = %d, want 7", cfg.General.ChartDays)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.General.DataFile != "" {
		t.Fatalf("DataFile = %q, want empty", cfg.General.DataFile)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataFile = "/tmp/habits.json"
	cfg.General.ChartDays = 14
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatalf("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "consist", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[general\nbroken"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatalf("Load() error = nil, want parse error")
	}
}

func TestDataFileResolution(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	want := filepath.Join(dir, "consist", "consist.json")
	if got := DataFile(cfg); got != want {
		t.Fatalf("DataFile = %q, want %q", got, want)
	}

	cfg.General.DataFile = "/data/habits.json"
	if got := DataFile(cfg); got != "/data/habits.json" {
		t.Fatalf("DataFile = %q, want configured override", got)
	}
}

func TestChartDaysFallback(t *testing.T) {
	tests := []struct {
		configured int
		want       int
	}{
		{0, 7},
		{-3, 7},
		{14, 14},
		{1, 1},
	}
	for _, tt := range tests {
		cfg := Config{General: GeneralConfig{ChartDays: tt.configured}}
		if got := ChartDays(cfg); got != tt.want {
			t.Errorf("ChartDays(%d) = %d, want %d", tt.configured, got, tt.want)
		}
	}
}
