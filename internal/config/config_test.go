package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Level = %s, want info", cfg.Logging.Level)
		}
		if cfg.Logging.MaxSizeMB != 10 {
			t.Errorf("MaxSizeMB = %d, want 10", cfg.Logging.MaxSizeMB)
		}
	})

	t.Run("file overrides layered onto defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "logging:\n  level: debug\n  file: /tmp/tileplan.log\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Level = %s, want debug", cfg.Logging.Level)
		}
		if cfg.Logging.File != "/tmp/tileplan.log" {
			t.Errorf("File = %s, want /tmp/tileplan.log", cfg.Logging.File)
		}
		if cfg.Logging.MaxBackups != 3 {
			t.Errorf("MaxBackups = %d, want default 3", cfg.Logging.MaxBackups)
		}
	})

	t.Run("path overrides apply onto paths", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "plans_dir: /maps/plans\ndatabase: /maps/quadrants.db\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		paths := PathsAt("/data")
		cfg.ApplyTo(paths)
		if paths.Plans != "/maps/plans" {
			t.Errorf("Plans = %s, want /maps/plans", paths.Plans)
		}
		if paths.Database != "/maps/quadrants.db" {
			t.Errorf("Database = %s, want /maps/quadrants.db", paths.Database)
		}
		if paths.Root != "/data" {
			t.Errorf("Root = %s, want /data untouched", paths.Root)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("logging: [not a map"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}
