package infra

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every setting the tools need. Values come from defaults,
// then an optional config.yaml, then environment variables. Secrets
// should arrive via environment (or .env), never the config file.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		Binance struct {
			RestURL      string `yaml:"rest_url"`
			TestnetURL   string `yaml:"testnet_url"`
			APIKey       string `yaml:"api_key"`
			SecretKey    string `yaml:"secret_key"`
			RecvWindowMS int    `yaml:"recv_window_ms"`
		} `yaml:"binance"`
	} `yaml:"api"`

	Trading struct {
		Testnet bool `yaml:"testnet"`
	} `yaml:"trading"`

	Data struct {
		HistoricalPrices string `yaml:"historical_prices"`
		FearGreed        string `yaml:"fear_greed"`
		Journal          string `yaml:"journal"`
	} `yaml:"data"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the built-in configuration. The tools must run
// with no config file at all (simulated mode against the sample data).
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "binance-bot"
	cfg.App.Version = "1.0.0"
	cfg.API.Binance.RestURL = "https://fapi.binance.com"
	cfg.API.Binance.TestnetURL = "https://testnet.binancefuture.com"
	cfg.API.Binance.RecvWindowMS = 5000
	cfg.Trading.Testnet = true
	cfg.Data.HistoricalPrices = "data/historical_prices.csv"
	cfg.Data.FearGreed = "data/fear_greed.csv"
	cfg.Data.Journal = "" // resolved against the workspace dir when empty
	cfg.Logging.Level = "info"
	return cfg
}

// LoadConfig reads the optional config file and applies env overrides.
// A missing file is not an error; defaults cover everything.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.API.Binance.RestURL, "https://") {
		return fmt.Errorf("invalid Binance REST URL: %s", c.API.Binance.RestURL)
	}
	if !strings.HasPrefix(c.API.Binance.TestnetURL, "https://") {
		return fmt.Errorf("invalid Binance testnet URL: %s", c.API.Binance.TestnetURL)
	}
	if c.API.Binance.RecvWindowMS <= 0 {
		return fmt.Errorf("recv window must be positive")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Logging.Level)
	}
	return nil
}

// HasCredentials reports whether live trading is configured at all.
func (c *Config) HasCredentials() bool {
	return c.API.Binance.APIKey != "" && c.API.Binance.SecretKey != ""
}

// BaseURL returns the REST endpoint for the configured network.
func (c *Config) BaseURL() string {
	if c.Trading.Testnet {
		return c.API.Binance.TestnetURL
	}
	return c.API.Binance.RestURL
}

// overrideWithEnv applies environment variables on top of file values.
// Environment always wins so secrets can stay out of the config file.
func overrideWithEnv(cfg *Config) {
	if cfg.API.Binance.APIKey != "" || cfg.API.Binance.SecretKey != "" {
		fmt.Fprintln(os.Stderr, "WARNING: API secrets found in config file; prefer BINANCE_API_KEY / BINANCE_SECRET_KEY environment variables")
	}

	if key := os.Getenv("BINANCE_API_KEY"); key != "" {
		cfg.API.Binance.APIKey = key
	}
	if secret := os.Getenv("BINANCE_SECRET_KEY"); secret != "" {
		cfg.API.Binance.SecretKey = secret
	}
	if v := os.Getenv("TESTNET"); v != "" {
		cfg.Trading.Testnet = strings.EqualFold(v, "true")
	}
}
