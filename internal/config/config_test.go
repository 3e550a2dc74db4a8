package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Table.MaxSeats != 4 {
		t.Errorf("max seats = %d, want 4", cfg.Table.MaxSeats)
	}
	if !cfg.Bots.AutoFill {
		t.Errorf("bot auto fill should default on")
	}
	if cfg.Log.Mode != "release" {
		t.Errorf("log mode = %q, want release", cfg.Log.Mode)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
log:
  mode: debug
table:
  max_seats: 6
bots:
  auto_fill: false
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Mode != "debug" {
		t.Errorf("log mode = %q, want debug", cfg.Log.Mode)
	}
	if cfg.Table.MaxSeats != 6 {
		t.Errorf("max seats = %d, want 6", cfg.Table.MaxSeats)
	}
	if cfg.Bots.AutoFill {
		t.Errorf("auto fill should be off")
	}
	// Unset keys keep their defaults.
	if cfg.Table.TurnSeconds != 30 {
		t.Errorf("turn seconds = %d, want default 30", cfg.Table.TurnSeconds)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Table.MaxSeats != 4 {
		t.Errorf("max seats = %d, want default 4", cfg.Table.MaxSeats)
	}
}
