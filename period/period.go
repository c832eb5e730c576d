// Package period decides whether an instant falls inside a time period
// written in the Time::Period dialect, e.g. "wd {mo-fr} hr {9-17}".
//
// An expression is a comma-separated list of sub-periods (OR). A sub-period
// is one or more scale tests (AND), each of the form code{ranges}, where
// ranges are single values or low-high pairs. A range whose high bound is
// below its low bound wraps past the end of the scale's domain, so
// "wd {fr-mo}" covers Friday through Monday.
package period

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vortex-fintech/period-lib/timeutil"
)

// ErrInvalidFormat is wrapped by every diagnostic returned for a malformed
// expression: unparseable scale test, unknown scale code, non-integer bound
// or bound outside the scale's domain.
var ErrInvalidFormat = errors.New("invalid period format")

func formatErrf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, fmt.Sprintf(format, a...))
}

// Match reports whether t falls inside the period expression.
//
// The whole expression is validated before any outcome is produced: a format
// error anywhere invalidates the call even when another sub-period would
// already have matched.
func Match(expr string, t time.Time) (bool, error) {
	subs, err := parseExpression(Normalize(expr), t)
	if err != nil {
		return false, err
	}
	for _, sp := range subs {
		if sp.match(t) {
			return true, nil
		}
	}
	return false, nil
}

// MatchNow evaluates expr against the package clock, which defaults to the
// current local time.
func MatchNow(expr string) (bool, error) {
	return Match(expr, nowFromClock())
}

// ===== Package clock =====

var (
	clockMu sync.RWMutex
	clock   timeutil.Clock = timeutil.LocalClock{}
)

func nowFromClock() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}

// WithClock swaps the clock used by MatchNow and returns a restore function.
func WithClock(c timeutil.Clock) (restore func()) {
	if c == nil {
		c = timeutil.LocalClock{}
	}
	clockMu.Lock()
	prev := clock
	clock = c
	clockMu.Unlock()
	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}

// ===== Expression parsing =====

// subPeriod is one AND-combined clause of the expression. A fixed clause
// ("never", "none", "always" or empty) carries its outcome directly.
type subPeriod struct {
	fixed   bool
	outcome bool
	tests   []scaleTest
}

// scaleTest holds the resolved ranges accumulated for one scale. Repeated
// tests for the same scale within a sub-period extend the same range list.
type scaleTest struct {
	kind   scaleKind
	ranges []boundsRange
}

func (sp subPeriod) match(t time.Time) bool {
	if sp.fixed {
		return sp.outcome
	}
	for _, st := range sp.tests {
		if !st.match(t) {
			return false
		}
	}
	return true
}

func (st scaleTest) match(t time.Time) bool {
	now := scales[st.kind].value(t)
	for _, r := range st.ranges {
		if r.contains(now) {
			return true
		}
	}
	return false
}

func parseExpression(normalized string, t time.Time) ([]subPeriod, error) {
	subs := strings.Split(normalized, ",")
	out := make([]subPeriod, 0, len(subs))
	for _, raw := range subs {
		sp, err := parseSubPeriod(raw, t)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}

func parseSubPeriod(raw string, t time.Time) (subPeriod, error) {
	switch raw {
	case "never":
		return subPeriod{fixed: true, outcome: false}, nil
	case "none", "always", "":
		return subPeriod{fixed: true, outcome: true}, nil
	}

	var (
		tests []scaleTest
		index = map[scaleKind]int{}
	)
	for _, fragment := range strings.Split(raw, "|") {
		kind, tokens, err := parseScaleTest(fragment)
		if err != nil {
			return subPeriod{}, err
		}
		ranges, err := parseRanges(kind, tokens, t)
		if err != nil {
			return subPeriod{}, err
		}
		if i, ok := index[kind]; ok {
			tests[i].ranges = append(tests[i].ranges, ranges...)
			continue
		}
		index[kind] = len(tests)
		tests = append(tests, scaleTest{kind: kind, ranges: ranges})
	}
	return subPeriod{tests: tests}, nil
}
