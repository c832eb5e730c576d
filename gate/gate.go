// Package gate wraps a period expression into a reusable yes/no gate for
// services that switch behavior on a schedule ("business hours only",
// "maintenance window", and so on). The expression is validated once at
// construction; evaluation never fails afterwards.
package gate

import (
	"time"

	liberrors "github.com/vortex-fintech/period-lib/errors"
	"github.com/vortex-fintech/period-lib/logger"
	"github.com/vortex-fintech/period-lib/period"
	"github.com/vortex-fintech/period-lib/timeutil"
	"github.com/vortex-fintech/period-lib/validator"
)

type Config struct {
	// Name labels the gate in logs and metrics.
	Name string
	// Expression is a period expression, e.g. "wd {mo-fr} hr {9-17}".
	Expression string `validate:"required,period"`
}

type Gate struct {
	name  string
	expr  string // normalized form
	clock timeutil.Clock
	log   logger.LoggerInterface
	evals *counters
}

type Option func(*Gate)

// WithLogger enables logging of unexpected evaluation failures.
func WithLogger(l logger.LoggerInterface) Option {
	return func(g *Gate) { g.log = l }
}

// WithClock replaces the clock used by AllowNow (local time by default).
func WithClock(c timeutil.Clock) Option {
	return func(g *Gate) {
		if c != nil {
			g.clock = c
		}
	}
}

func New(cfg Config, opts ...Option) (*Gate, error) {
	g := &Gate{
		name:  cfg.Name,
		clock: timeutil.LocalClock{},
	}
	if g.name == "" {
		g.name = "default"
	}
	for _, opt := range opts {
		opt(g)
	}

	if fields := validator.Validate(cfg); fields != nil {
		if fields["Expression"] == "invalid_period" {
			// re-run the evaluation to surface the real diagnostic
			_, err := period.Match(cfg.Expression, g.clock.Now())
			return nil, liberrors.InvalidPeriod(err)
		}
		return nil, liberrors.ValidationFields(fields)
	}

	g.expr = period.Normalize(cfg.Expression)
	return g, nil
}

// Name returns the gate's label.
func (g *Gate) Name() string { return g.name }

// Expression returns the normalized expression the gate evaluates.
func (g *Gate) Expression() string { return g.expr }

// Allow reports whether t falls inside the gate's period. The expression
// was validated at construction, so an evaluation error cannot normally
// happen; if it does, the gate logs it and denies.
func (g *Gate) Allow(t time.Time) bool {
	ok, err := period.Match(g.expr, t)
	if err != nil {
		if g.log != nil {
			g.log.Errorw("period gate evaluation failed", "gate", g.name, "error", err)
		}
		g.count(resultError)
		return false
	}
	if ok {
		g.count(resultAllow)
	} else {
		g.count(resultDeny)
	}
	return ok
}

// AllowNow evaluates the gate against the gate's clock.
func (g *Gate) AllowNow() bool {
	return g.Allow(g.clock.Now())
}
