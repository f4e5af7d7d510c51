package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	AppName      = "workflow"
	DataFileName = "tasks.csv"
	ConfigName   = "config.yaml"
)

// Config holds optional user settings loaded from config.yaml
type Config struct {
	DataDir string `yaml:"data_dir"`
}

// DataDir returns the path to the workflow data directory (~/.workflow/)
// Creates the directory if it doesn't exist
// Resolution order: WORKFLOW_DATA_DIR env var (primarily for testing),
// then data_dir from ~/.workflow/config.yaml, then ~/.workflow itself
func DataDir() (string, error) {
	// Check for test override
	if dataDir := os.Getenv("WORKFLOW_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)

	cfg, err := loadConfig(filepath.Join(dataDir, ConfigName))
	if err != nil {
		return "", err
	}
	if cfg.DataDir != "" {
		dataDir = cfg.DataDir
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// DataFilePath returns the path to the task CSV file (~/.workflow/tasks.csv)
func DataFilePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, DataFileName), nil
}

// loadConfig reads config.yaml if present; a missing file yields defaults
func loadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
