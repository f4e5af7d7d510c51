package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDir_EnvOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom-data")
	t.Setenv("WORKFLOW_DATA_DIR", dir)

	got, err := DataDir()
	if err != nil {
		t.Fatalf("failed to resolve data dir: %v", err)
	}
	if got != dir {
		t.Errorf("expected %s, got %s", dir, got)
	}

	// The override dir must be created
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("data dir was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("data dir is not a directory")
	}
}

func TestDataFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKFLOW_DATA_DIR", dir)

	got, err := DataFilePath()
	if err != nil {
		t.Fatalf("failed to resolve data file: %v", err)
	}
	if got != filepath.Join(dir, DataFileName) {
		t.Errorf("unexpected data file path: %s", got)
	}
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("expected empty data_dir, got %q", cfg.DataDir)
	}
}

func TestLoadConfig_ReadsDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: /tmp/elsewhere\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DataDir != "/tmp/elsewhere" {
		t.Errorf("unexpected data_dir: %q", cfg.DataDir)
	}
}

func TestLoadConfig_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [unterminated\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
