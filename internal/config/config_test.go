package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PREPTRACK_DB", filepath.Join(t.TempDir(), "preptrack.db"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Name != "preptrack" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.App.LogLevel != "warn" {
		t.Errorf("App.LogLevel = %q, want warn", cfg.App.LogLevel)
	}
	if cfg.Leaderboard.PageSize != 10 {
		t.Errorf("Leaderboard.PageSize = %d, want 10", cfg.Leaderboard.PageSize)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("Storage.DBPath not resolved")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PREPTRACK_APP_LOG_LEVEL", "debug")
	t.Setenv("PREPTRACK_LEADERBOARD_PAGE_SIZE", "25")
	t.Setenv("PREPTRACK_DB", filepath.Join(t.TempDir(), "preptrack.db"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("App.LogLevel = %q, want debug", cfg.App.LogLevel)
	}
	if cfg.Leaderboard.PageSize != 25 {
		t.Errorf("Leaderboard.PageSize = %d, want 25", cfg.Leaderboard.PageSize)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preptrack.yaml")
	content := "app:\n  log_level: error\nstorage:\n  db_path: " + filepath.Join(dir, "data.db") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.LogLevel != "error" {
		t.Errorf("App.LogLevel = %q, want error", cfg.App.LogLevel)
	}
	if cfg.Storage.DBPath != filepath.Join(dir, "data.db") {
		t.Errorf("Storage.DBPath = %q", cfg.Storage.DBPath)
	}
}
