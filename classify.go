package payflow

import (
	"context"
	"errors"
	"strings"

	"github.com/payvine/payflow/types"
)

// The external wallet SDK and RPC layer export no structured error types,
// so the only classification signal is the error text. All of that
// string-sniffing is contained here.

var (
	insufficientSignals = []string{
		"insufficient",
		"debit an account",
		"0x1", // system program: insufficient lamports
	}

	sponsorSignals = []string{
		"sponsor",
		"paymaster",
		"fee payer",
		"rate limit",
		"429",
	}

	networkSignals = []string{
		"network",
		"rpc",
		"timeout",
		"timed out",
		"connection",
		"fetch",
		"unreachable",
		"blockhash",
	}

	counterpartySignals = []string{
		"invalid recipient",
		"invalid public key",
		"counterparty",
		"invalid account address",
	}

	cancelSignals = []string{
		"cancel",
		"denied",
		"dismiss",
		"abort",
		"notallowederror",
	}
)

// classifySubmissionError maps a raw collaborator error onto the closed
// ErrorCode taxonomy. Unrecognized failures land in the default bucket.
func classifySubmissionError(err error) types.ErrorCode {
	if errors.Is(err, context.DeadlineExceeded) {
		return types.ErrNetworkUnavailable
	}

	text := strings.ToLower(err.Error())

	switch {
	case matchesAny(text, counterpartySignals):
		return types.ErrInvalidCounterparty
	case matchesAny(text, insufficientSignals):
		return types.ErrInsufficientBalance
	case matchesAny(text, sponsorSignals):
		return types.ErrSponsorUnavailable
	case matchesAny(text, networkSignals):
		return types.ErrNetworkUnavailable
	default:
		return types.ErrSubmissionFailed
	}
}

// isCancellation reports whether a wallet-connect failure looks like the
// user dismissing the ceremony. Connect failures resolve to idle either
// way, so this only informs logging.
func isCancellation(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	return matchesAny(strings.ToLower(err.Error()), cancelSignals)
}

func matchesAny(text string, signals []string) bool {
	for _, s := range signals {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
