package payflow

import (
	"time"

	"github.com/payvine/payflow/clients"
	"github.com/payvine/payflow/logger"
	"github.com/payvine/payflow/metrics"
)

type Option func(*Orchestrator)

func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		o.log = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(o *Orchestrator) {
		o.rec = r
	}
}

func WithExplorer(e clients.Explorer) Option {
	return func(o *Orchestrator) {
		o.explorer = e
	}
}

// WithClock overrides the wall clock, used by tests to pin result
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}
