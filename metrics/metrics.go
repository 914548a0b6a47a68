package metrics

import "time"

type Recorder interface {
	IncPayment(outcome string, feeMethod string)
	ObserveSubmitLatency(feeMethod string, duration time.Duration)
}
