package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	payments *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewPrometheusRecorder() Recorder {
	payments := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payflow",
			Name:      "payments_total",
			Help:      "payment outcomes by fee method",
		},
		[]string{"outcome", "fee_method"},
	)

	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payflow",
			Name:      "submit_latency_seconds",
			Help:      "submission round-trip latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"fee_method"},
	)

	prometheus.MustRegister(payments, latency)

	return &PrometheusRecorder{
		payments: payments,
		latency:  latency,
	}
}

func (p *PrometheusRecorder) IncPayment(outcome string, feeMethod string) {
	p.payments.WithLabelValues(outcome, feeMethod).Inc()
}

func (p *PrometheusRecorder) ObserveSubmitLatency(feeMethod string, d time.Duration) {
	p.latency.WithLabelValues(feeMethod).Observe(d.Seconds())
}
