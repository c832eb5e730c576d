package period

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type scaleKind int

const (
	scaleYear scaleKind = iota
	scaleMonth
	scaleWeek
	scaleYearDay
	scaleMonthDay
	scaleWeekday
	scaleHour
	scaleMinute
	scaleSecond
)

type scaleInfo struct {
	name     string // diagnostic name used in error messages
	min, max int
	value    func(t time.Time) int
}

var scales = [...]scaleInfo{
	scaleYear:     {name: "year", value: func(t time.Time) int { return t.Year() }},
	scaleMonth:    {name: "month", min: 1, max: 12, value: func(t time.Time) int { return int(t.Month()) }},
	scaleWeek:     {name: "week", min: 1, max: 5, value: func(t time.Time) int { return (t.Day()-1)/7 + 1 }},
	scaleYearDay:  {name: "year day", min: 1, max: 366, value: func(t time.Time) int { return t.YearDay() }},
	scaleMonthDay: {name: "day", min: 1, max: 31, value: func(t time.Time) int { return t.Day() }},
	scaleWeekday:  {name: "weekday", min: 1, max: 7, value: func(t time.Time) int { return int(t.Weekday()) + 1 }},
	scaleHour:     {name: "hour", min: 0, max: 23, value: func(t time.Time) int { return t.Hour() }},
	scaleMinute:   {name: "minute", min: 0, max: 59, value: func(t time.Time) int { return t.Minute() }},
	scaleSecond:   {name: "second", min: 0, max: 59, value: func(t time.Time) int { return t.Second() }},
}

// Every scale has a short code and a long alias resolving to the same kind.
var scaleByCode = map[string]scaleKind{
	"yr": scaleYear, "year": scaleYear,
	"mo": scaleMonth, "month": scaleMonth,
	"wk": scaleWeek, "week": scaleWeek,
	"yd": scaleYearDay, "yday": scaleYearDay,
	"md": scaleMonthDay, "mday": scaleMonthDay,
	"wd": scaleWeekday, "wday": scaleWeekday,
	"hr": scaleHour, "hour": scaleHour,
	"min": scaleMinute, "minute": scaleMinute,
	"sec": scaleSecond, "second": scaleSecond,
}

var scaleTestRe = regexp.MustCompile(`(\w+?)\{(.*?)\}`)

// parseScaleTest extracts the scale kind and raw range tokens from one
// code{ranges} fragment.
func parseScaleTest(fragment string) (scaleKind, []string, error) {
	m := scaleTestRe.FindStringSubmatch(fragment)
	if m == nil {
		return 0, nil, formatErrf("unable to parse the given time period")
	}
	kind, ok := scaleByCode[m[1]]
	if !ok {
		return 0, nil, formatErrf("%q is not a valid scale", m[1])
	}
	return kind, splitRangeTokens(m[2]), nil
}

// splitRangeTokens splits a brace body at every single whitespace character.
// Adjacent separators produce empty tokens which later fail integer parsing,
// so "hr {9  12}" is a format error rather than a silent repair.
func splitRangeTokens(body string) []string {
	var out []string
	start := 0
	for i := 0; i < len(body); i++ {
		if isSpace(body[i]) {
			out = append(out, body[start:i])
			start = i + 1
		}
	}
	return append(out, body[start:])
}

type symbol struct {
	name string
	code int
}

// Sunday is 1 and Saturday is 7, as in Time::Period.
var weekdayNames = []symbol{
	{"su", 1}, {"mo", 2}, {"tu", 3}, {"we", 4}, {"th", 5}, {"fr", 6}, {"sa", 7},
}

var monthNames = []symbol{
	{"jan", 1}, {"feb", 2}, {"mar", 3}, {"apr", 4}, {"may", 5}, {"jun", 6},
	{"jul", 7}, {"aug", 8}, {"sep", 9}, {"oct", 10}, {"nov", 11}, {"dec", 12},
}

// resolveSymbols substitutes every occurrence of a known abbreviation with
// its numeric code. The match is greedy up to the next dash, whitespace or
// end of token, so "monday" and "mon" both reduce through "mo".
func resolveSymbols(token string, table []symbol) string {
	for _, sym := range table {
		for {
			i := strings.Index(token, sym.name)
			if i < 0 {
				break
			}
			j := i + len(sym.name)
			for j < len(token) && token[j] != '-' && !isSpace(token[j]) {
				j++
			}
			token = token[:i] + strconv.Itoa(sym.code) + token[j:]
		}
	}
	return token
}
