// Package config provides YAML configuration file loading and validation.
// It handles .env loading, environment variable expansion and overrides,
// default value application, and placeholder detection for values the
// operator has not filled in yet.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmagro/chain-dashboard/internal/rpc"
)

// DefaultRefreshInterval is the poll period when the config file sets none.
const DefaultRefreshInterval = 15 * time.Second

// Environment overrides, applied after the file is parsed.
const (
	EnvRPCURL         = "DASHBOARD_RPC_URL"
	EnvDefaultAddress = "DASHBOARD_DEFAULT_ADDRESS"
	EnvWalletURL      = "DASHBOARD_WALLET_URL"
)

// Config is the dashboard's endpoint configuration. It is loaded once at
// startup and treated as immutable afterwards.
type Config struct {
	RPCURL          string        `yaml:"rpc_url"`          // JSON-RPC endpoint (supports ${VAR} expansion)
	DefaultAddress  string        `yaml:"default_address"`  // Account shown until a wallet connects
	WalletURL       string        `yaml:"wallet_url"`       // Optional external signer endpoint
	RefreshInterval time.Duration `yaml:"refresh_interval"` // Poll period (e.g. "15s")
}

// EndpointConfigured reports whether RPCURL is set to a real value.
// A placeholder suppresses automatic polling.
func (c *Config) EndpointConfigured() bool {
	return !rpc.IsPlaceholder(c.RPCURL)
}

// DefaultAddressConfigured reports whether DefaultAddress is set to a real
// value. A placeholder suppresses the default-account balance lookup.
func (c *Config) DefaultAddressConfigured() bool {
	return !rpc.IsPlaceholder(c.DefaultAddress)
}

// WalletConfigured reports whether a wallet provider endpoint is available.
func (c *Config) WalletConfigured() bool {
	return !rpc.IsPlaceholder(c.WalletURL)
}

// Validate checks the values that are set and applies defaults.
//
// Placeholder values are not errors: the dashboard renders an instruction
// for them instead. Only values that are present and malformed fail.
func (c *Config) Validate() error {
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must be > 0")
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	if c.RefreshInterval < time.Second {
		fmt.Fprintf(os.Stderr, "Warning: refresh_interval is very low (%s); the endpoint may rate-limit you\n", c.RefreshInterval)
	}

	if c.EndpointConfigured() {
		if err := validateURL("rpc_url", c.RPCURL, "http", "https"); err != nil {
			return err
		}
	}
	if c.WalletConfigured() {
		if err := validateURL("wallet_url", c.WalletURL, "http", "https", "ws", "wss"); err != nil {
			return err
		}
	}

	if c.DefaultAddressConfigured() && !common.IsHexAddress(c.DefaultAddress) {
		return fmt.Errorf("default_address %q is not a valid hex address", c.DefaultAddress)
	}

	return nil
}

func validateURL(field, raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s: invalid url (missing scheme or host)", field)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("%s: invalid url scheme %q (expected one of %v)", field, u.Scheme, schemes)
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// references, applying DASHBOARD_* overrides and validating the result.
//
// A missing file is not an error: the dashboard can run from environment
// variables alone, and with nothing set at all it shows the "not configured"
// instruction rather than refusing to start.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvRPCURL); ok && v != "" {
		c.RPCURL = v
	}
	if v, ok := os.LookupEnv(EnvDefaultAddress); ok && v != "" {
		c.DefaultAddress = v
	}
	if v, ok := os.LookupEnv(EnvWalletURL); ok && v != "" {
		c.WalletURL = v
	}
}

// LoadEnv reads KEY=VALUE pairs from a .env file in the current working
// directory. Variables already present in the environment win. A missing
// file is silently ignored so system environment variables still work.
func LoadEnv() {
	_ = godotenv.Load()
}
