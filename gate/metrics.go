package gate

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultAllow = "allow"
	resultDeny  = "deny"
	resultError = "error"
)

type counters struct {
	evaluations *prometheus.CounterVec
}

// WithRegisterer enables the period_gate_evaluations_total counter on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(g *Gate) {
		if reg != nil {
			g.evals = newCounters(reg)
		}
	}
}

func newCounters(reg prometheus.Registerer) *counters {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "period_gate_evaluations_total",
		Help: "Period gate evaluations by gate name and result.",
	}, []string{"gate", "result"})

	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				cv = existing
			}
		}
		// on any other registration error the vector still counts locally
	}
	return &counters{evaluations: cv}
}

func (g *Gate) count(result string) {
	if g.evals == nil {
		return
	}
	g.evals.evaluations.WithLabelValues(g.name, result).Inc()
}
