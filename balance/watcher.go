// Package balance polls a wallet's balance on a fixed interval and
// delivers updates on a channel. Payment UIs refresh the figure after a
// confirmed transfer via Refresh.
package balance

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/payvine/payflow/logger"
)

// Fetcher reads the current balance of an account in whole native units.
type Fetcher interface {
	Balance(ctx context.Context, addr solana.PublicKey) (decimal.Decimal, error)
}

// Update is one observed balance reading.
type Update struct {
	Address solana.PublicKey
	Amount  decimal.Decimal
	At      time.Time
}

// Watcher polls one address. Create with NewWatcher, drive with Run.
type Watcher struct {
	fetcher  Fetcher
	address  solana.PublicKey
	interval time.Duration
	log      logger.Logger

	updates chan Update
	kick    chan struct{}
}

// NewWatcher builds a watcher for addr polling on the given interval.
// Intervals below one second are clamped to one second to keep public RPC
// endpoints happy.
func NewWatcher(fetcher Fetcher, addr solana.PublicKey, interval time.Duration, log logger.Logger) *Watcher {
	if interval < time.Second {
		interval = time.Second
	}
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Watcher{
		fetcher:  fetcher,
		address:  addr,
		interval: interval,
		log:      log,
		updates:  make(chan Update, 1),
		kick:     make(chan struct{}, 1),
	}
}

// Updates delivers balance readings. Slow consumers only ever see the most
// recent reading; stale ones are dropped.
func (w *Watcher) Updates() <-chan Update { return w.updates }

// Refresh forces a poll ahead of the next tick. Non-blocking.
func (w *Watcher) Refresh() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Run polls until ctx ends, emitting one reading immediately and then one
// per interval or Refresh. It closes the updates channel on return.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.updates)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		case <-w.kick:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	amount, err := w.fetcher.Balance(ctx, w.address)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Warn("balance poll failed", map[string]any{
				"address": w.address.String(),
				"cause":   err.Error(),
			})
		}
		return
	}

	update := Update{Address: w.address, Amount: amount, At: time.Now()}

	// Drop the stale reading if the consumer has not drained it yet.
	select {
	case w.updates <- update:
	default:
		select {
		case <-w.updates:
		default:
		}
		select {
		case w.updates <- update:
		default:
		}
	}
}
