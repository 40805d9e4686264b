// Package career interprets employment history: dated spans, tenure, gaps,
// title seniority and progression.
package career

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/spigell/hh-scorer/internal/model"
)

// Span is an employment entry with resolved dates.
type Span struct {
	Entry model.Employment
	Start time.Time
	End   time.Time
}

// Months returns the tenure of the span.
func (s Span) Months() float64 {
	if !s.End.After(s.Start) {
		return 0
	}
	return s.End.Sub(s.Start).Hours() / 24 / daysPerMonth
}

// Spans resolves entries with a parseable start date, most recent first.
// Entries without an end date, or marked current, end at now.
func Spans(history []model.Employment, now time.Time) []Span {
	spans := make([]Span, 0, len(history))
	for _, e := range history {
		start, ok := ParseStart(e.StartDate)
		if !ok {
			continue
		}
		end := now
		if !e.IsCurrent {
			if end, ok = ParseEnd(e.EndDate, now); !ok {
				continue
			}
		}
		spans = append(spans, Span{Entry: e, Start: start, End: end})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start.After(spans[j].Start)
	})
	return spans
}

// AverageTenureMonths returns the mean tenure over dated entries and how many were counted.
func AverageTenureMonths(history []model.Employment, now time.Time) (float64, int) {
	spans := Spans(history, now)
	if len(spans) == 0 {
		return 0, 0
	}
	total := 0.0
	for _, s := range spans {
		total += s.Months()
	}
	return total / float64(len(spans)), len(spans)
}

// Gap is a period without employment between two consecutive positions.
type Gap struct {
	Before model.Employment
	After  model.Employment
	Months int
}

// Gaps returns the periods not covered by any dated position, most recent
// first. A gap is measured from the latest end among all earlier positions,
// so a short side job inside a longer role does not open a gap.
func Gaps(history []model.Employment, now time.Time) []Gap {
	spans := Spans(history, now)
	if len(spans) < 2 {
		return nil
	}

	var gaps []Gap
	// spans are newest first; walk them oldest first.
	covered := spans[len(spans)-1]
	for i := len(spans) - 2; i >= 0; i-- {
		next := spans[i]
		if months := MonthsBetween(covered.End, next.Start); months > 0 {
			gaps = append(gaps, Gap{Before: covered.Entry, After: next.Entry, Months: months})
		}
		if next.End.After(covered.End) {
			covered = next
		}
	}
	slices.Reverse(gaps)
	return gaps
}

// Ordered returns entries most recent first: dated entries by start date,
// followed by undated entries in their original order.
func Ordered(history []model.Employment) []model.Employment {
	type keyed struct {
		e     model.Employment
		start time.Time
		dated bool
	}
	items := make([]keyed, len(history))
	for i, e := range history {
		start, ok := ParseStart(e.StartDate)
		items[i] = keyed{e: e, start: start, dated: ok}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].dated != items[j].dated {
			return items[i].dated
		}
		return items[i].start.After(items[j].start)
	})

	out := make([]model.Employment, len(items))
	for i, it := range items {
		out[i] = it.e
	}
	return out
}

// Industries returns the distinct non-empty industries in the history.
func Industries(history []model.Employment) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range history {
		ind := strings.ToLower(strings.TrimSpace(e.Industry))
		if ind == "" {
			continue
		}
		if _, ok := seen[ind]; ok {
			continue
		}
		seen[ind] = struct{}{}
		out = append(out, ind)
	}
	return out
}
