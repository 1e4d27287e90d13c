package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped" // development mode
)

var (
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_dispatch_total",
			Help: "Dispatch attempts by channel and outcome",
		},
		[]string{"channel", "outcome"}, // email|sms , sent|failed|skipped
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		DispatchTotal,
	)
}
