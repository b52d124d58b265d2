package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.conf")

	cfg := New(configPath)

	if err := cfg.Set(KeyLastDirectory, "/srv/data"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if err := cfg.Set(KeySearchIgnoreCase, "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Load config in new instance
	cfg2 := New(configPath)
	if err := cfg2.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if val := cfg2.GetOrDefault(KeyLastDirectory, ""); val != "/srv/data" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "/srv/data")
	}

	if !cfg2.GetBool(KeySearchIgnoreCase) {
		t.Errorf("GetBool(%s) = false, want true", KeySearchIgnoreCase)
	}
}

func TestConfigSaveIsSortedAndCommented(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.conf")
	cfg := New(configPath)

	cfg.Set("ZZZ", "last")
	cfg.Set("AAA", "first")

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "# dirmanager configuration") {
		t.Errorf("config file missing header:\n%s", content)
	}
	if strings.Index(content, "AAA=first") > strings.Index(content, "ZZZ=last") {
		t.Errorf("keys not written in sorted order:\n%s", content)
	}

	// No temp files left behind next to the config
	entries, _ := os.ReadDir(tmpDir)
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestConfigLoadSkipsCommentsAndBlankLines(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.conf")
	content := "# comment\n\n  LOG_LEVEL = debug \nnot-a-pair\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg := New(configPath)
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if val := cfg.GetOrDefault(KeyLogLevel, ""); val != "debug" {
		t.Errorf("GetOrDefault() = %q, want %q", val, "debug")
	}
	if got := len(cfg.GetAll()); got != 1 {
		t.Errorf("GetAll() has %d keys, want 1", got)
	}
}

func TestConfigGet(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	cfg.Set("KEY1", "value1")

	val, err := cfg.Get("KEY1")
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if val != "value1" {
		t.Errorf("Get() = %v, want %v", val, "value1")
	}

	_, err = cfg.Get("NONEXISTENT")
	if err == nil {
		t.Error("Get() error = nil, want error for non-existent key")
	}
}

func TestConfigGetOrDefault(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	val := cfg.GetOrDefault("NONEXISTENT", "default_value")
	if val != "default_value" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "default_value")
	}

	// Defaults table wins over the fallback
	if val := cfg.GetOrDefault(KeyLogLevel, "error"); val != "info" {
		t.Errorf("GetOrDefault(%s) = %v, want %v", KeyLogLevel, val, "info")
	}

	cfg.Set("KEY1", "value1")
	val = cfg.GetOrDefault("KEY1", "default")
	if val != "value1" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "value1")
	}
}

func TestConfigGetBool(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"true", "true", true},
		{"one", "1", true},
		{"false", "false", false},
		{"garbage", "sometimes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cfg.Set(KeyConfirmDelete, tt.value); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			if got := cfg.GetBool(KeyConfirmDelete); got != tt.want {
				t.Errorf("GetBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	if cfg.Exists("NONEXISTENT") {
		t.Error("Exists() = true, want false for non-existent key")
	}

	cfg.Set("KEY1", "value1")
	if !cfg.Exists("KEY1") {
		t.Error("Exists() = false, want true for existing key")
	}
}

func TestConfigDelete(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	cfg.Set("KEY1", "value1")
	if !cfg.Exists("KEY1") {
		t.Error("Key should exist after Set()")
	}

	cfg.Delete("KEY1")
	if cfg.Exists("KEY1") {
		t.Error("Key should not exist after Delete()")
	}
}

func TestConfigLoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "nonexistent.conf"))

	err := cfg.Load()
	if err != nil {
		t.Errorf("Load() on non-existent file error = %v, want nil", err)
	}
}

func TestConfigFilePath(t *testing.T) {
	expectedPath := "/tmp/test.conf"
	cfg := New(expectedPath)

	if cfg.FilePath() != expectedPath {
		t.Errorf("FilePath() = %v, want %v", cfg.FilePath(), expectedPath)
	}
}
