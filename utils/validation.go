// Package utils provides the input validators and config parsing helpers
// used by the orchestrator and by UI layers validating per keystroke.
package utils

import (
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"

	"github.com/payvine/payflow/types"
)

// ValidateRecipient checks that raw is a structurally well-formed account
// address and returns the parsed key. Pure and cheap; safe to call on
// every keystroke.
func ValidateRecipient(raw string) (solana.PublicKey, *types.PaymentError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return solana.PublicKey{}, types.NewPaymentError(types.ErrEmptyField)
	}

	// Cheap alphabet check first; PublicKeyFromBase58 then enforces the
	// 32-byte length.
	if _, err := base58.Decode(trimmed); err != nil {
		return solana.PublicKey{}, types.NewPaymentError(types.ErrMalformedAddress)
	}

	key, err := solana.PublicKeyFromBase58(trimmed)
	if err != nil {
		return solana.PublicKey{}, types.NewPaymentError(types.ErrMalformedAddress)
	}

	return key, nil
}

// ValidateAmount parses raw as a decimal amount in whole native units and
// enforces the positivity and safety-ceiling rules. The ceiling is a
// client-side guardrail against fat-finger input, not a protocol limit.
// Pure and synchronous.
func ValidateAmount(raw string, maxSafe decimal.Decimal) (decimal.Decimal, *types.PaymentError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, types.NewPaymentError(types.ErrEmptyField)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, types.NewPaymentError(types.ErrNotANumber)
	}

	if amount.Sign() <= 0 {
		return decimal.Zero, types.NewPaymentError(types.ErrNonPositiveAmount)
	}

	if amount.GreaterThan(maxSafe) {
		return decimal.Zero, types.NewPaymentError(types.ErrAmountTooLarge)
	}

	return amount, nil
}

// ValidateRequest runs both field validators over a transfer request and
// returns the parsed recipient and amount.
func ValidateRequest(req *types.TransferRequest, maxSafe decimal.Decimal) (solana.PublicKey, decimal.Decimal, *types.PaymentError) {
	recipient, perr := ValidateRecipient(req.Recipient)
	if perr != nil {
		return solana.PublicKey{}, decimal.Zero, perr
	}

	amount, perr := ValidateAmount(req.Amount, maxSafe)
	if perr != nil {
		return solana.PublicKey{}, decimal.Zero, perr
	}

	return recipient, amount, nil
}
