package metrics

import "time"

type NoopRecorder struct{}

func (NoopRecorder) IncPayment(string, string)                  {}
func (NoopRecorder) ObserveSubmitLatency(string, time.Duration) {}
