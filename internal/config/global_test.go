package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGlobalConfig(t *testing.T) {
	cfg := DefaultGlobalConfig()
	if cfg.Network != "cont_net" {
		t.Errorf("expected default network cont_net, got %q", cfg.Network)
	}
	if cfg.Debug.RetentionDays != 7 {
		t.Errorf("expected default retention 7, got %d", cfg.Debug.RetentionDays)
	}
}

func TestLoadGlobal_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEVUP_NETWORK", "")
	t.Setenv("DEVUP_DEBUG_RETENTION_DAYS", "")

	dir := filepath.Join(home, ".devup")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	data := []byte("network: team_net\ndebug:\n  retention-days: 14\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.Network != "team_net" {
		t.Errorf("expected network team_net, got %q", cfg.Network)
	}
	if cfg.Debug.RetentionDays != 14 {
		t.Errorf("expected retention 14, got %d", cfg.Debug.RetentionDays)
	}
}

func TestLoadGlobal_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEVUP_NETWORK", "ci_net")
	t.Setenv("DEVUP_DEBUG_RETENTION_DAYS", "3")

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.Network != "ci_net" {
		t.Errorf("expected network ci_net, got %q", cfg.Network)
	}
	if cfg.Debug.RetentionDays != 3 {
		t.Errorf("expected retention 3, got %d", cfg.Debug.RetentionDays)
	}
}

func TestLoadGlobal_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEVUP_NETWORK", "")
	t.Setenv("DEVUP_DEBUG_RETENTION_DAYS", "")

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.Network != "cont_net" {
		t.Errorf("expected default network, got %q", cfg.Network)
	}
}
