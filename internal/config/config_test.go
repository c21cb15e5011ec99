package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x2a63E334e71Cb80B857D4b5821e673C73Ce18a68"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
rpc_url: https://rpc.example.org/abc
default_address: `+testAddress+`
refresh_interval: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.example.org/abc", cfg.RPCURL)
	assert.Equal(t, testAddress, cfg.DefaultAddress)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.True(t, cfg.EndpointConfigured())
	assert.True(t, cfg.DefaultAddressConfigured())
	assert.False(t, cfg.WalletConfigured())
}

func TestLoadDefaultsRefreshInterval(t *testing.T) {
	cfg, err := Load(writeConfig(t, "rpc_url: https://rpc.example.org\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRefreshInterval, cfg.RefreshInterval)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_DASHBOARD_NODE", "https://node.example.org/key")

	cfg, err := Load(writeConfig(t, "rpc_url: ${TEST_DASHBOARD_NODE}\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://node.example.org/key", cfg.RPCURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvRPCURL, "https://override.example.org")
	t.Setenv(EnvWalletURL, "http://127.0.0.1:8550")

	cfg, err := Load(writeConfig(t, "rpc_url: https://file.example.org\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.org", cfg.RPCURL)
	assert.True(t, cfg.WalletConfigured())
}

func TestLoadMissingFileIsUnconfigured(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.EndpointConfigured())
	assert.False(t, cfg.DefaultAddressConfigured())
}

func TestLoadPlaceholdersAreNotErrors(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
rpc_url: https://REPLACE_WITH_YOUR_ENDPOINT/
default_address: REPLACE_WITH_YOUR_ADDRESS
`))
	require.NoError(t, err)
	assert.False(t, cfg.EndpointConfigured())
	assert.False(t, cfg.DefaultAddressConfigured())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"negative interval", Config{RefreshInterval: -time.Second}, "refresh_interval"},
		{"missing scheme", Config{RPCURL: "rpc.example.org"}, "missing scheme or host"},
		{"websocket rpc", Config{RPCURL: "wss://rpc.example.org"}, "invalid url scheme"},
		{"bad wallet scheme", Config{WalletURL: "ftp://signer"}, "wallet_url"},
		{"bad address", Config{DefaultAddress: "0x1234"}, "not a valid hex address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "rpc_url: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
