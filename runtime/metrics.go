// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	callsSucceeded prometheus.Counter
	callsFailed    prometheus.Counter
	callsRejected  prometheus.Counter
}

func newMetrics(r *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		callsSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "calls_succeeded",
			Help:      "number of invocations that completed and wrote state",
		}),
		callsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "calls_failed",
			Help:      "number of invocations that ended in a terminal error",
		}),
		callsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "calls_rejected",
			Help:      "number of invocations targeting an unregistered program",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.callsSucceeded),
		r.Register(m.callsFailed),
		r.Register(m.callsRejected),
	)
	return m, errs.Err
}
