// Package types defines the data model shared across the payflow library:
// payment statuses, fee payment methods, the transfer request/result pair,
// and the closed payment error taxonomy.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a single orchestration instance.
// Exactly one status holds at any time; Success and Error are terminal
// until an explicit Reset.
type PaymentStatus string

const (
	StatusIdle       PaymentStatus = "idle"
	StatusConnecting PaymentStatus = "connecting"
	StatusProcessing PaymentStatus = "processing"
	StatusSuccess    PaymentStatus = "success"
	StatusError      PaymentStatus = "error"
)

func (s PaymentStatus) String() string { return string(s) }

// Terminal reports whether the status only leaves via Reset or Retry.
func (s PaymentStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// InFlight reports whether a payment is currently being driven. Pay calls
// are rejected while the status is in flight.
func (s PaymentStatus) InFlight() bool {
	return s == StatusConnecting || s == StatusProcessing
}

// FeeMethod selects who covers the network fee for a transfer.
type FeeMethod string

const (
	// FeeNative settles the network fee from the payer's own balance.
	FeeNative FeeMethod = "native"

	// FeeSponsored delegates the network fee to a sponsorship service,
	// typically settled in a stable secondary asset.
	FeeSponsored FeeMethod = "sponsored"
)

func (f FeeMethod) String() string { return string(f) }

// Valid reports whether the fee method is one of the known selections.
func (f FeeMethod) Valid() bool {
	return f == FeeNative || f == FeeSponsored
}

// TransferRequest carries the raw caller input for one payment. Recipient
// and Amount are kept as entered; validation parses them on Pay. The
// request is immutable once validation begins.
type TransferRequest struct {
	// Recipient is the destination account address as typed by the user.
	Recipient string `json:"recipient"`

	// Amount is the transfer amount in whole native units, as typed.
	Amount string `json:"amount"`

	// FeeMethod is the caller-selected fee coverage. Never inferred.
	FeeMethod FeeMethod `json:"feeMethod"`

	// Reference is an optional caller correlation tag. When empty the
	// orchestrator fills it with a generated UUID.
	Reference string `json:"reference,omitempty"`
}

// PaymentResult is produced once per successful payment and never mutated.
type PaymentResult struct {
	// Signature is the transaction signature returned by the network.
	Signature string `json:"signature"`

	// ExplorerURL links the signature on the configured network's explorer.
	ExplorerURL string `json:"explorerUrl"`

	// Amount is the validated transfer amount in whole native units.
	Amount decimal.Decimal `json:"amount"`

	FeeMethod FeeMethod `json:"feeMethod"`

	Reference string `json:"reference,omitempty"`

	// CompletedAt is the wall-clock completion time in epoch milliseconds.
	CompletedAt int64 `json:"completedAt"`
}

// ErrorCode is the closed classification of payment failures.
type ErrorCode string

const (
	ErrEmptyField          ErrorCode = "EMPTY_FIELD"
	ErrMalformedAddress    ErrorCode = "MALFORMED_ADDRESS"
	ErrNotANumber          ErrorCode = "NOT_A_NUMBER"
	ErrNonPositiveAmount   ErrorCode = "NON_POSITIVE_AMOUNT"
	ErrAmountTooLarge      ErrorCode = "AMOUNT_TOO_LARGE"
	ErrInvalidCounterparty ErrorCode = "INVALID_COUNTERPARTY"
	ErrInsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"
	ErrSponsorUnavailable  ErrorCode = "FEE_SPONSORSHIP_UNAVAILABLE"
	ErrNetworkUnavailable  ErrorCode = "NETWORK_UNAVAILABLE"
	ErrSubmissionFailed    ErrorCode = "SUBMISSION_FAILED"
)

// recoverableDefaults records, per code, whether the same request may be
// re-submitted as-is. False means the request itself is invalid and must
// be rebuilt by the caller.
var recoverableDefaults = map[ErrorCode]bool{
	ErrEmptyField:          true,
	ErrMalformedAddress:    true,
	ErrNotANumber:          true,
	ErrNonPositiveAmount:   true,
	ErrAmountTooLarge:      true,
	ErrInvalidCounterparty: false,
	ErrInsufficientBalance: false,
	ErrSponsorUnavailable:  true,
	ErrNetworkUnavailable:  true,
	ErrSubmissionFailed:    true,
}

// Recoverable returns the default retry policy for the code.
func (c ErrorCode) Recoverable() bool { return recoverableDefaults[c] }

// userMessages maps each code to the message exposed to callers. Raw
// collaborator errors never appear here; they are logged only.
var userMessages = map[ErrorCode]string{
	ErrEmptyField:          "recipient and amount are required",
	ErrMalformedAddress:    "recipient is not a valid account address",
	ErrNotANumber:          "amount is not a valid number",
	ErrNonPositiveAmount:   "amount must be greater than zero",
	ErrAmountTooLarge:      "amount exceeds the safety ceiling",
	ErrInvalidCounterparty: "recipient account was rejected at submission",
	ErrInsufficientBalance: "balance is too low to cover this transfer",
	ErrSponsorUnavailable:  "fee sponsorship is unavailable, try paying the fee yourself",
	ErrNetworkUnavailable:  "network is unreachable, try again shortly",
	ErrSubmissionFailed:    "transaction could not be submitted",
}

// PaymentError is the failure value surfaced by the orchestrator.
type PaymentError struct {
	Code        ErrorCode `json:"code"`
	Message     string    `json:"message"`
	Recoverable bool      `json:"recoverable"`
}

func (e *PaymentError) Error() string { return e.Message }

// NewPaymentError builds a PaymentError for a code with its user-safe
// message and default recoverability.
func NewPaymentError(code ErrorCode) *PaymentError {
	return &PaymentError{
		Code:        code,
		Message:     userMessages[code],
		Recoverable: code.Recoverable(),
	}
}

// Config carries library-wide configuration.
type Config struct {
	// Network selects the target cluster, mostly for explorer links and
	// the RPC submitter defaults.
	Network Network `json:"network" validate:"required"`

	// MaxSafeAmount is a client-side guardrail against fat-finger input,
	// in whole native units. It is not a protocol limit.
	MaxSafeAmount decimal.Decimal `json:"maxSafeAmount"`

	// DefaultTimeout bounds a single submission round trip inside the RPC
	// submitter. The orchestrator itself enforces no timeout.
	DefaultTimeout time.Duration `json:"defaultTimeout,omitempty"`

	LogLevel      string `json:"logLevel,omitempty"`
	EnableMetrics bool   `json:"enableMetrics,omitempty"`
}

// DefaultMaxSafeAmount mirrors the guardrail the original app shipped with.
const DefaultMaxSafeAmount = 1000

// DefaultConfig returns a devnet configuration with the stock guardrail.
func DefaultConfig() *Config {
	return &Config{
		Network:        NetworkSolanaDevnet,
		MaxSafeAmount:  decimal.NewFromInt(DefaultMaxSafeAmount),
		DefaultTimeout: 30 * time.Second,
		LogLevel:       "info",
	}
}

// Normalize fills zero-valued fields with defaults.
func (c *Config) Normalize() {
	if c.MaxSafeAmount.IsZero() {
		c.MaxSafeAmount = decimal.NewFromInt(DefaultMaxSafeAmount)
	}
	if c.DefaultTimeout <= 0 {
		c.DefaultTimeout = 30 * time.Second
	}
	if c.Network == "" {
		c.Network = NetworkSolanaDevnet
	}
}
