package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config must validate, got %v", err)
	}
}

func TestValidateUnknownBackend(t *testing.T) {
	cfg := Default()
	cfg.Locator.Backend = "cloudvision"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected an error for an unknown backend")
	}
	if !strings.Contains(err.Error(), "locator.backend") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidateLocalNeedsCascade(t *testing.T) {
	cfg := Default()
	cfg.Locator.Backend = BackendLocal
	cfg.Locator.CascadePath = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for a local backend without cascade_path")
	}
}

func TestValidateRemoteNeedsModel(t *testing.T) {
	for _, backend := range []string{BackendOllama, BackendLlamaCpp} {
		cfg := Default()
		cfg.Locator.Backend = backend
		cfg.Locator.Model = ""

		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected an error without a model", backend)
		}
	}
}

func TestValidateQualityBounds(t *testing.T) {
	cfg := Default()
	cfg.Locator.SendQuality = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for send_quality 0")
	}

	cfg = Default()
	cfg.Output.OverlayQuality = 101
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for overlay_quality 101")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Locator.Backend = BackendOllama
	cfg.Locator.ServerURL = "http://localhost:11434"
	cfg.Locator.Model = "llava:13b"
	cfg.Output.WriteOverlay = false

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Locator.Backend != BackendOllama || loaded.Locator.Model != "llava:13b" {
		t.Errorf("Locator config did not round-trip: %+v", loaded.Locator)
	}
	if loaded.Output.WriteOverlay {
		t.Error("Output config did not round-trip")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.json"); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if !strings.HasSuffix(path, "config.json") {
		t.Errorf("Unexpected config path: %s", path)
	}
}
