package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payvine/payflow/types"
)

const goodRecipient = "Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS"

func TestValidateRecipient(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		code types.ErrorCode
		want string
	}{
		{"valid address", goodRecipient, "", goodRecipient},
		{"valid with padding", "  " + goodRecipient + "  ", "", goodRecipient},
		{"system program id", "11111111111111111111111111111111", "", "11111111111111111111111111111111"},
		{"empty", "", types.ErrEmptyField, ""},
		{"whitespace only", "   \t", types.ErrEmptyField, ""},
		{"bad alphabet", "0OIl-not-base58", types.ErrMalformedAddress, ""},
		{"too short", "abc", types.ErrMalformedAddress, ""},
		{"truncated key", goodRecipient[:20], types.ErrMalformedAddress, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, perr := ValidateRecipient(tc.raw)
			if tc.code == "" {
				require.Nil(t, perr)
				assert.Equal(t, tc.want, key.String())
				return
			}
			require.NotNil(t, perr)
			assert.Equal(t, tc.code, perr.Code)
		})
	}
}

func TestValidateRecipientIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		key, perr := ValidateRecipient(goodRecipient)
		require.Nil(t, perr)
		assert.Equal(t, goodRecipient, key.String())
	}
}

func TestValidateAmount(t *testing.T) {
	max := decimal.NewFromInt(1000)

	tests := []struct {
		name string
		raw  string
		code types.ErrorCode
		want string
	}{
		{"simple", "0.05", "", "0.05"},
		{"padded", " 1.5 ", "", "1.5"},
		{"at ceiling", "1000", "", "1000"},
		{"empty", "", types.ErrEmptyField, ""},
		{"whitespace", "  ", types.ErrEmptyField, ""},
		{"words", "ten", types.ErrNotANumber, ""},
		{"double dot", "1.2.3", types.ErrNotANumber, ""},
		{"zero", "0", types.ErrNonPositiveAmount, ""},
		{"negative", "-1", types.ErrNonPositiveAmount, ""},
		{"over ceiling", "1500", types.ErrAmountTooLarge, ""},
		{"huge exponent", "1e99", types.ErrAmountTooLarge, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, perr := ValidateAmount(tc.raw, max)
			if tc.code == "" {
				require.Nil(t, perr)
				assert.True(t, amount.Equal(decimal.RequireFromString(tc.want)))
				return
			}
			require.NotNil(t, perr)
			assert.Equal(t, tc.code, perr.Code)
		})
	}
}

func TestValidateRequestShortCircuitsOnRecipient(t *testing.T) {
	req := &types.TransferRequest{Recipient: "", Amount: "also-bad"}

	_, _, perr := ValidateRequest(req, decimal.NewFromInt(1000))

	require.NotNil(t, perr)
	assert.Equal(t, types.ErrEmptyField, perr.Code)
}

func TestValidateRequestReturnsParsedValues(t *testing.T) {
	req := &types.TransferRequest{Recipient: goodRecipient, Amount: "2.5"}

	key, amount, perr := ValidateRequest(req, decimal.NewFromInt(1000))

	require.Nil(t, perr)
	assert.Equal(t, goodRecipient, key.String())
	assert.True(t, amount.Equal(decimal.RequireFromString("2.5")))
}
