package career

import (
	"strings"
	"time"
)

const daysPerMonth = 30.44

type precision int

const (
	precisionDay precision = iota
	precisionMonth
	precisionYear
)

var layouts = []struct {
	layout string
	prec   precision
}{
	{"2006-01-02", precisionDay},
	{"02/01/2006", precisionDay},
	{"2006-01", precisionMonth},
	{"01/2006", precisionMonth},
	{"Jan 2006", precisionMonth},
	{"January 2006", precisionMonth},
	{"2006", precisionYear},
}

var ongoing = map[string]struct{}{
	"present": {}, "current": {}, "now": {}, "till date": {}, "to date": {}, "ongoing": {},
}

func parse(s string) (time.Time, precision, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, 0, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return t, l.prec, true
		}
	}
	return time.Time{}, 0, false
}

// ParseStart parses the start of a period. Supported forms are YYYY-MM-DD,
// DD/MM/YYYY, YYYY-MM, MM/YYYY, "Jan 2006", "January 2006" and YYYY.
func ParseStart(s string) (time.Time, bool) {
	t, _, ok := parse(s)
	return t, ok
}

// ParseEnd parses the end of a period, extending month and year precision to
// the last day of the period. Empty values and words like "present" resolve to now.
func ParseEnd(s string, now time.Time) (time.Time, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return now, true
	}
	if _, ok := ongoing[trimmed]; ok {
		return now, true
	}

	t, prec, ok := parse(s)
	if !ok {
		return time.Time{}, false
	}
	switch prec {
	case precisionMonth:
		t = t.AddDate(0, 1, -1)
	case precisionYear:
		t = t.AddDate(1, 0, -1)
	}
	return t, true
}

// MonthsBetween returns the whole number of average-length months from a to b, or 0 when b precedes a.
func MonthsBetween(a, b time.Time) int {
	if !b.After(a) {
		return 0
	}
	return int(b.Sub(a).Hours() / 24 / daysPerMonth)
}
