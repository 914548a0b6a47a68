package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusError.Terminal())
	assert.False(t, StatusIdle.Terminal())

	assert.True(t, StatusConnecting.InFlight())
	assert.True(t, StatusProcessing.InFlight())
	assert.False(t, StatusSuccess.InFlight())
	assert.False(t, StatusIdle.InFlight())
}

func TestFeeMethodValid(t *testing.T) {
	assert.True(t, FeeNative.Valid())
	assert.True(t, FeeSponsored.Valid())
	assert.False(t, FeeMethod("credit-card").Valid())
}

func TestRecoverableDefaults(t *testing.T) {
	recoverable := []ErrorCode{
		ErrEmptyField, ErrMalformedAddress, ErrNotANumber,
		ErrNonPositiveAmount, ErrAmountTooLarge,
		ErrSponsorUnavailable, ErrNetworkUnavailable, ErrSubmissionFailed,
	}
	for _, code := range recoverable {
		assert.True(t, code.Recoverable(), string(code))
	}

	assert.False(t, ErrInvalidCounterparty.Recoverable())
	assert.False(t, ErrInsufficientBalance.Recoverable())
}

func TestNewPaymentErrorCarriesUserMessage(t *testing.T) {
	perr := NewPaymentError(ErrInsufficientBalance)

	assert.Equal(t, ErrInsufficientBalance, perr.Code)
	assert.False(t, perr.Recoverable)
	assert.NotEmpty(t, perr.Message)
	assert.Equal(t, perr.Message, perr.Error())
}

func TestConfigNormalize(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	assert.Equal(t, NetworkSolanaDevnet, cfg.Network)
	assert.True(t, cfg.MaxSafeAmount.Equal(decimal.NewFromInt(DefaultMaxSafeAmount)))
	assert.Positive(t, cfg.DefaultTimeout)
}

func TestExplorerTxURL(t *testing.T) {
	assert.Equal(t,
		"https://explorer.solana.com/tx/sig123",
		NetworkSolanaMainnet.ExplorerTxURL("sig123"))
	assert.Equal(t,
		"https://explorer.solana.com/tx/sig123?cluster=devnet",
		NetworkSolanaDevnet.ExplorerTxURL("sig123"))
	assert.Equal(t,
		"https://explorer.solana.com/tx/sig123?cluster=testnet",
		NetworkSolanaTestnet.ExplorerTxURL("sig123"))
}

func TestNetworkDefaults(t *testing.T) {
	assert.False(t, NetworkSolanaMainnet.IsTestnet())
	assert.True(t, NetworkSolanaDevnet.IsTestnet())
	assert.Contains(t, NetworkSolanaDevnet.DefaultRPCEndpoint(), "devnet")
}
