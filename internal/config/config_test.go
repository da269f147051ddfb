package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.EmulatorPort != "5000" {
		t.Errorf("EmulatorPort = %q, want 5000", cfg.EmulatorPort)
	}
	if cfg.ServiceCenterFile != "data/service_centers.json" {
		t.Errorf("ServiceCenterFile = %q, want default", cfg.ServiceCenterFile)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	env := "API_BASE_URL=https://api.example.test\nACCESS_TOKEN=abc123\nEMULATOR_PORT=9999\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.test" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.AccessToken != "abc123" {
		t.Errorf("AccessToken = %q", cfg.AccessToken)
	}
	if cfg.EmulatorPort != "9999" {
		t.Errorf("EmulatorPort = %q", cfg.EmulatorPort)
	}
}
