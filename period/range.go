package period

import (
	"strconv"
	"strings"
	"time"
)

// boundsRange is a resolved range: a single value when hasHigh is false,
// otherwise a low-high pair with wraparound semantics when high < low.
type boundsRange struct {
	low, high int
	hasHigh   bool
}

func (r boundsRange) contains(x int) bool {
	switch {
	case !r.hasHigh || r.high == r.low:
		return x == r.low
	case r.high > r.low:
		return r.low <= x && x <= r.high
	default:
		// wraparound, e.g. "fr-mo" spans the week boundary
		return x >= r.low || x <= r.high
	}
}

// parseRanges resolves symbolic names, splits each token into bounds and
// validates them against the scale's domain. The evaluation instant is
// needed only to expand two-digit years with its century.
func parseRanges(kind scaleKind, tokens []string, t time.Time) ([]boundsRange, error) {
	out := make([]boundsRange, 0, len(tokens))
	for _, token := range tokens {
		switch kind {
		case scaleWeekday:
			token = resolveSymbols(token, weekdayNames)
		case scaleMonth:
			token = resolveSymbols(token, monthNames)
		}
		r, err := parseBounds(kind, token, t)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// parseBounds splits a token on dashes into a mandatory low and optional
// high bound. Extra dash segments are ignored, matching Time::Period.
func parseBounds(kind scaleKind, token string, t time.Time) (boundsRange, error) {
	parts := strings.Split(token, "-")
	var r boundsRange
	var err error
	if r.low, err = parseBound(kind, parts[0], t); err != nil {
		return boundsRange{}, err
	}
	if len(parts) > 1 {
		if r.high, err = parseBound(kind, parts[1], t); err != nil {
			return boundsRange{}, err
		}
		r.hasHigh = true
	}
	return r, nil
}

func parseBound(kind scaleKind, raw string, t time.Time) (int, error) {
	info := scales[kind]
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, formatErrf("an integer value is required for %s", info.name)
	}
	if kind == scaleYear {
		// Two-digit years borrow the century of the evaluated instant.
		// The year scale has no domain check beyond integer parsing.
		if n < 100 {
			n += 100 * (t.Year() / 100)
		}
		return n, nil
	}
	if n < info.min || n > info.max {
		return 0, formatErrf("%d is not valid for %s. Valid options are between %d and %d",
			n, info.name, info.min, info.max)
	}
	return n, nil
}
