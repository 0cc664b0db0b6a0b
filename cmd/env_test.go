package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "render.env")
	if err := os.WriteFile(envFile, []byte("PT_TEST_SCENE=cubes\nPT_TEST_PRESET=from-file\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	t.Setenv(EnvFileVar, envFile)
	t.Setenv("PT_TEST_PRESET", "from-process")
	t.Setenv("PT_TEST_SCENE", "")
	os.Unsetenv("PT_TEST_SCENE")

	if err := LoadEnv(); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if got := os.Getenv("PT_TEST_SCENE"); got != "cubes" {
		t.Errorf("Expected PT_TEST_SCENE from file, got %q", got)
	}
	if got := os.Getenv("PT_TEST_PRESET"); got != "from-process" {
		t.Errorf("Process environment should win, got %q", got)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		t.Setenv(EnvFileVar, filepath.Join(t.TempDir(), "missing.env"))
		err := LoadEnv()
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected a wrapped not-exist error, got %v", err)
		}
	})

	t.Run("default path", func(t *testing.T) {
		t.Setenv(EnvFileVar, "")
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd failed: %v", err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatalf("Chdir failed: %v", err)
		}
		t.Cleanup(func() { os.Chdir(wd) })
		if err := LoadEnv(); err != nil {
			t.Errorf("A missing default .env should be ignored, got %v", err)
		}
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PT_TEST_VALUE", "set")
	t.Setenv("PT_TEST_EMPTY", "")

	tests := []struct {
		key      string
		expected string
	}{
		{"PT_TEST_VALUE", "set"},
		{"PT_TEST_EMPTY", "fallback"},
		{"PT_TEST_UNSET_VALUE", "fallback"},
	}
	for _, tt := range tests {
		if got := getEnv(tt.key, "fallback"); got != tt.expected {
			t.Errorf("getEnv(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}
}
