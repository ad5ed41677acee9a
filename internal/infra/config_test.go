package infra

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() with missing file should use defaults, got error: %v", err)
	}
	if !cfg.Trading.Testnet {
		t.Error("default config should target testnet")
	}
	if cfg.BaseURL() != "https://testnet.binancefuture.com" {
		t.Errorf("BaseURL() = %s, want testnet URL", cfg.BaseURL())
	}
	if cfg.HasCredentials() {
		t.Error("default config should carry no credentials")
	}
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
trading:
  testnet: false
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_SECRET_KEY", "env-secret")
	t.Setenv("TESTNET", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Binance.APIKey != "env-key" || cfg.API.Binance.SecretKey != "env-secret" {
		t.Error("environment credentials should override the file")
	}
	if !cfg.Trading.Testnet {
		t.Error("TESTNET=true should override the file's testnet: false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("file log level should apply, got %s", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown log level should fail validation")
	}

	cfg = DefaultConfig()
	cfg.API.Binance.RestURL = "ftp://example.com"
	if err := cfg.Validate(); err == nil {
		t.Error("non-https REST URL should fail validation")
	}

	cfg = DefaultConfig()
	cfg.API.Binance.RecvWindowMS = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero recv window should fail validation")
	}
}
