// Package completeness checks that candidate and job records carry enough
// data for a meaningful assessment.
package completeness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

// Report is the validation outcome for one record.
type Report struct {
	Valid            bool
	CriticalMissing  []string
	ImportantMissing []string
	Score            float64
}

// Quality buckets.
const (
	QualityExcellent    = "EXCELLENT"
	QualityGood         = "GOOD"
	QualityFair         = "FAIR"
	QualityPoor         = "POOR"
	QualityUnacceptable = "UNACCEPTABLE"
)

// ValidateCandidate checks a candidate record.
func ValidateCandidate(r model.Record) Report {
	return Validate(r, CandidateRequirements)
}

// ValidateJob checks a job record.
func ValidateJob(r model.Record) Report {
	return Validate(r, JobRequirements)
}

// Validate checks a record against a requirement table. It is a pure function.
func Validate(r model.Record, reqs []Requirement) Report {
	rep := Report{CriticalMissing: []string{}, ImportantMissing: []string{}}

	for _, req := range reqs {
		if req.Satisfied(r) {
			continue
		}
		msg := fmt.Sprintf("%s %s: %s", req.Criticality.Marker(), req.Label, req.Impact)
		if req.Criticality == model.Critical {
			rep.CriticalMissing = append(rep.CriticalMissing, msg)
		} else {
			rep.ImportantMissing = append(rep.ImportantMissing, msg)
		}
	}

	if total := len(reqs); total > 0 {
		missing := len(rep.CriticalMissing) + len(rep.ImportantMissing)
		rep.Score = float64(total-missing) / float64(total) * 100
	} else {
		rep.Score = 100
	}
	rep.Valid = len(rep.CriticalMissing) == 0

	return rep
}

// Combine merges candidate and job reports into the summary attached to results.
func Combine(candidate, job Report) *model.CompletenessReport {
	out := &model.CompletenessReport{
		Valid:            candidate.Valid && job.Valid,
		CriticalMissing:  []string{},
		ImportantMissing: []string{},
		Score:            (candidate.Score + job.Score) / 2,
	}
	for _, m := range candidate.CriticalMissing {
		out.CriticalMissing = append(out.CriticalMissing, "CANDIDATE: "+m)
	}
	for _, m := range job.CriticalMissing {
		out.CriticalMissing = append(out.CriticalMissing, "JOB: "+m)
	}
	for _, m := range candidate.ImportantMissing {
		out.ImportantMissing = append(out.ImportantMissing, "CANDIDATE: "+m)
	}
	for _, m := range job.ImportantMissing {
		out.ImportantMissing = append(out.ImportantMissing, "JOB: "+m)
	}
	out.Quality = Quality(out.Score, len(out.CriticalMissing))
	return out
}

// Quality buckets an average completeness score.
func Quality(score float64, criticalMissing int) string {
	switch {
	case criticalMissing > 0:
		return QualityUnacceptable
	case score >= 90:
		return QualityExcellent
	case score >= 75:
		return QualityGood
	case score >= 60:
		return QualityFair
	default:
		return QualityPoor
	}
}

// Satisfied reports whether the record meets the requirement.
func (req Requirement) Satisfied(r model.Record) bool {
	if req.NonNegativeNumber {
		v, ok := lookup(map[string]any(r), strings.Split(req.Path, "."))
		if !ok {
			return false
		}
		n, ok := number(v)
		return ok && n >= 0
	}

	if !Present(r, req.Path) {
		return false
	}

	if req.MinItems > 0 {
		v, _ := lookup(map[string]any(r), strings.Split(req.Path, "."))
		if list, ok := v.([]any); ok && len(list) < req.MinItems {
			return false
		}
		if list, ok := v.([]string); ok && len(list) < req.MinItems {
			return false
		}
	}

	return true
}

// Present reports whether a dotted path resolves to a meaningful value: a
// non-blank string, a non-empty list or map, any number (including zero) or
// any boolean. When a path crosses a list, at least one element must satisfy
// the remainder of the path.
func Present(r model.Record, path string) bool {
	return present(map[string]any(r), strings.Split(path, "."))
}

func present(current any, parts []string) bool {
	for i, part := range parts {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case model.Record:
			current = node[part]
		case []any:
			if len(node) == 0 {
				return false
			}
			for _, item := range node {
				if present(item, parts[i:]) {
					return true
				}
			}
			return false
		default:
			return false
		}
		if current == nil {
			return false
		}
	}
	return meaningful(current)
}

func meaningful(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

func lookup(current any, parts []string) (any, bool) {
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
