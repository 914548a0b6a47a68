// Package payflow drives a value transfer from raw user input to a final
// success or error outcome: it validates the request, connects the wallet
// session on demand, builds the transfer instruction, submits it with the
// selected fee payment method, and classifies failures into a closed error
// taxonomy.
package payflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/payvine/payflow/clients"
	"github.com/payvine/payflow/logger"
	"github.com/payvine/payflow/metrics"
	"github.com/payvine/payflow/types"
	"github.com/payvine/payflow/utils"
)

var (
	// ErrBusy rejects a Pay call while another payment is connecting or
	// processing. Re-entrant submissions are never queued.
	ErrBusy = errors.New("a payment is already in flight")

	// ErrNoRetry rejects Retry outside a recoverable error state.
	ErrNoRetry = errors.New("nothing to retry")
)

// Orchestrator runs one payment at a time against a set of injected
// collaborators. Instances are independent of each other; concurrent
// payments against the same underlying wallet are ordered by the wallet
// itself, not by this library.
type Orchestrator struct {
	cfg       *types.Config
	wallet    clients.Wallet
	builder   clients.InstructionBuilder
	submitter clients.Submitter
	explorer  clients.Explorer

	log logger.Logger
	rec metrics.Recorder
	now func() time.Time

	mu      sync.Mutex
	status  types.PaymentStatus
	result  *types.PaymentResult
	lastErr *types.PaymentError
	lastReq *types.TransferRequest
}

// New builds an orchestrator. The wallet, builder and submitter are the
// external collaborator boundary; nil config selects defaults.
func New(cfg *types.Config, wallet clients.Wallet, builder clients.InstructionBuilder, submitter clients.Submitter, opts ...Option) *Orchestrator {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	cfg.Normalize()

	o := &Orchestrator{
		cfg:       cfg,
		wallet:    wallet,
		builder:   builder,
		submitter: submitter,
		explorer:  clients.NetworkExplorer{Network: cfg.Network},
		log:       logger.NoopLogger{},
		rec:       metrics.NoopRecorder{},
		now:       time.Now,
		status:    types.StatusIdle,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Status returns the current lifecycle state.
func (o *Orchestrator) Status() types.PaymentStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Result returns the outcome of the last successful payment, nil otherwise.
func (o *Orchestrator) Result() *types.PaymentResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}

// LastError returns the classified failure of the last payment, nil when
// none is recorded.
func (o *Orchestrator) LastError() *types.PaymentError {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Pay runs the full payment flow for the request. Validation failures land
// in the error state without any collaborator interaction. A dismissed
// wallet-connect ceremony returns the orchestrator to idle silently; a
// declined biometric prompt is not a failure to report. Returns ErrBusy
// while another payment is in flight.
func (o *Orchestrator) Pay(ctx context.Context, req *types.TransferRequest) error {
	o.mu.Lock()
	if o.status.InFlight() {
		o.mu.Unlock()
		return ErrBusy
	}
	o.result = nil
	o.lastErr = nil
	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}
	o.lastReq = req

	recipient, amount, perr := utils.ValidateRequest(req, o.cfg.MaxSafeAmount)
	if perr != nil {
		o.status = types.StatusError
		o.lastErr = perr
		o.mu.Unlock()
		o.rec.IncPayment("rejected", req.FeeMethod.String())
		return perr
	}

	connected := o.wallet.IsConnected()
	if !connected {
		o.status = types.StatusConnecting
	} else {
		o.status = types.StatusProcessing
	}
	o.mu.Unlock()

	if !connected {
		if err := o.wallet.Connect(ctx); err != nil {
			// Cancellation and connect failures both resolve to idle with
			// no recorded error.
			if isCancellation(err) {
				o.log.Info("wallet connect cancelled by user", map[string]any{
					"reference": req.Reference,
				})
			} else {
				o.log.Warn("wallet connect failed", map[string]any{
					"reference": req.Reference,
					"cause":     err.Error(),
				})
			}
			o.setIdle()
			return nil
		}
		o.mu.Lock()
		o.status = types.StatusProcessing
		o.mu.Unlock()
	}

	return o.process(ctx, req, recipient, amount)
}

// process runs the build-and-submit half of the flow. Status is already
// processing on entry.
func (o *Orchestrator) process(ctx context.Context, req *types.TransferRequest, recipient solana.PublicKey, amount decimal.Decimal) error {
	sender, ok := o.wallet.Address()
	if !ok {
		return o.fail(req, errors.New("wallet session has no active address"))
	}

	ix, err := o.builder.BuildTransfer(sender, recipient, amount)
	if err != nil {
		return o.fail(req, err)
	}

	start := o.now()
	sig, err := o.submitter.Submit(ctx, []solana.Instruction{ix}, req.FeeMethod)
	o.rec.ObserveSubmitLatency(req.FeeMethod.String(), o.now().Sub(start))
	if err != nil {
		return o.fail(req, err)
	}

	result := &types.PaymentResult{
		Signature:   sig,
		ExplorerURL: o.explorer.TxURL(sig),
		Amount:      amount,
		FeeMethod:   req.FeeMethod,
		Reference:   req.Reference,
		CompletedAt: o.now().UnixMilli(),
	}

	o.mu.Lock()
	o.status = types.StatusSuccess
	o.result = result
	o.mu.Unlock()

	o.rec.IncPayment("success", req.FeeMethod.String())
	o.log.Info("payment confirmed", map[string]any{
		"signature": sig,
		"amount":    amount.String(),
		"feeMethod": req.FeeMethod.String(),
		"reference": req.Reference,
	})

	return nil
}

// fail classifies a collaborator error, records the user-safe PaymentError
// and moves to the error state. The raw error is logged, never surfaced.
func (o *Orchestrator) fail(req *types.TransferRequest, raw error) error {
	code := classifySubmissionError(raw)
	perr := types.NewPaymentError(code)

	o.mu.Lock()
	o.status = types.StatusError
	o.lastErr = perr
	o.mu.Unlock()

	o.rec.IncPayment("failed", req.FeeMethod.String())
	o.log.Error("payment failed", map[string]any{
		"code":      string(code),
		"reference": req.Reference,
		"cause":     raw.Error(),
	})

	return perr
}

// Reset unconditionally returns the orchestrator to idle, clearing result
// and error.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = types.StatusIdle
	o.result = nil
	o.lastErr = nil
}

// Retry re-submits the last request. Valid only from the error state when
// the recorded error is recoverable; otherwise ErrNoRetry with no state
// change.
func (o *Orchestrator) Retry(ctx context.Context) error {
	o.mu.Lock()
	if o.status != types.StatusError || o.lastErr == nil || !o.lastErr.Recoverable || o.lastReq == nil {
		o.mu.Unlock()
		return ErrNoRetry
	}
	req := o.lastReq
	o.status = types.StatusIdle
	o.lastErr = nil
	o.mu.Unlock()

	return o.Pay(ctx, req)
}

func (o *Orchestrator) setIdle() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = types.StatusIdle
	o.lastErr = nil
}
