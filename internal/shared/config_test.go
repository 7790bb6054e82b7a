package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./repertorio.db" {
			t.Errorf("expected database path ./repertorio.db, got %s", config.Database.Path)
		}
		if config.Extract.SourceSystem != "ECAD" {
			t.Errorf("expected source system ECAD, got %s", config.Extract.SourceSystem)
		}
		if config.Extract.RowTolerance != 2.0 {
			t.Errorf("expected row tolerance 2.0, got %v", config.Extract.RowTolerance)
		}
		if config.Export.Format != "json" {
			t.Errorf("expected export format json, got %s", config.Export.Format)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Error("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[extract]
source_system = "SGAE"
row_tolerance = 1.5

[export]
format = "csv"
output_dir = "/tmp/exports"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected /custom/path.db, got %s", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 20 {
			t.Errorf("expected 20 max open conns, got %d", config.Database.MaxOpenConns)
		}
		if config.Extract.SourceSystem != "SGAE" {
			t.Errorf("expected source system SGAE, got %s", config.Extract.SourceSystem)
		}
		if config.Export.OutputDir != "/tmp/exports" {
			t.Errorf("expected output dir /tmp/exports, got %s", config.Export.OutputDir)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("loading a missing config should fail")
		}
	})
}
