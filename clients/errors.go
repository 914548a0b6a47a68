package clients

import "errors"

// Submission errors are classified upstream by message content, so the
// wording here is load-bearing: "sponsor" marks sponsorship failures,
// "rpc"/"timed out" mark connectivity failures, "invalid recipient" marks
// counterparty rejection.
var (
	ErrNoSponsor           = errors.New("sponsor account is not configured for sponsored fees")
	ErrNoPayer             = errors.New("wallet has no active address to pay fees from")
	ErrNoInstructions      = errors.New("no instructions to submit")
	ErrZeroRecipient       = errors.New("invalid recipient: zero public key")
	ErrConfirmationTimeout = errors.New("rpc: transaction confirmation timed out")
)
