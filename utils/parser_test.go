package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payvine/payflow/types"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"network": "solana-mainnet",
		"maxSafeAmount": "250",
		"logLevel": "debug"
	}`))

	require.NoError(t, err)
	assert.Equal(t, types.NetworkSolanaMainnet, cfg.Network)
	assert.True(t, cfg.MaxSafeAmount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.DefaultTimeout)
}

func TestParseConfigFillsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, types.NetworkSolanaDevnet, cfg.Network)
	assert.True(t, cfg.MaxSafeAmount.Equal(decimal.NewFromInt(types.DefaultMaxSafeAmount)))
}

func TestParseConfigRejectsUnknownNetwork(t *testing.T) {
	_, err := ParseConfig([]byte(`{"network": "base-sepolia"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported network")
}

func TestParseConfigRejectsMalformedJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{"network": `))
	require.Error(t, err)
}
