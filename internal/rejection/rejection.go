// Package rejection evaluates binary eligibility rules that force a zero score
// regardless of soft scoring.
package rejection

import (
	"fmt"

	"github.com/spigell/hh-scorer/internal/model"
	"go.uber.org/zap"
)

// Rule is a single hard eligibility rule. Disable must not be called while
// evaluations are running.
type Rule interface {
	Name() string
	Code() string
	Disable(reason string)
	IsEnabled() bool

	Evaluate(c *model.Candidate, j *model.Job) Outcome
}

// Outcome is the verdict of one rule.
type Outcome struct {
	Passed bool
	// Skipped is set when the rule does not apply to the job.
	Skipped bool
	Reason  string
}

// Failure records a failed rule.
type Failure struct {
	Name   string
	Code   string
	Reason string
}

// Result is the verdict across all rules.
type Result struct {
	Eligible bool
	// Reason and Code describe the first failing rule.
	Reason   string
	Code     string
	Failures []Failure
	Trace    []string
}

// Status represents runtime information about a rule.
type Status struct {
	Name    string
	Code    string
	Enabled bool
	Reason  string
}

// DisableByName marks a rule with the provided name as disabled while keeping it in the list.
func DisableByName(rules []Rule, name, reason string) {
	for _, r := range rules {
		if r.Name() == name {
			r.Disable(reason)
		}
	}
}

// Run evaluates every rule, even after the first failure, so the trace is complete.
func Run(rules []Rule, c *model.Candidate, j *model.Job, log *zap.Logger) Result {
	if log == nil {
		log = zap.NewNop()
	}

	res := Result{Eligible: true, Trace: make([]string, 0, len(rules))}
	for _, r := range rules {
		if !r.IsEnabled() {
			res.Trace = append(res.Trace, fmt.Sprintf("DISABLED: %s", r.Name()))
			continue
		}

		out := r.Evaluate(c, j)
		switch {
		case out.Skipped:
			res.Trace = append(res.Trace, fmt.Sprintf("SKIPPED: %s - %s", r.Name(), out.Reason))
		case out.Passed:
			res.Trace = append(res.Trace, fmt.Sprintf("PASSED: %s", r.Name()))
		default:
			res.Trace = append(res.Trace, fmt.Sprintf("FAILED: %s - %s", r.Name(), out.Reason))
			res.Failures = append(res.Failures, Failure{Name: r.Name(), Code: r.Code(), Reason: out.Reason})
			if res.Eligible {
				res.Eligible = false
				res.Reason = out.Reason
				res.Code = r.Code()
			}
			log.Debug("hard rule failed",
				zap.String("rule", r.Name()),
				zap.String("code", r.Code()),
				zap.String("reason", out.Reason),
			)
		}
	}

	return res
}

// Describe returns status entries for the provided rules.
func Describe(rules []Rule) []Status {
	statuses := make([]Status, 0, len(rules))
	for _, r := range rules {
		st := Status{Name: r.Name(), Code: r.Code(), Enabled: r.IsEnabled()}
		if reporter, ok := r.(interface{ DisabledReason() string }); ok {
			st.Reason = reporter.DisabledReason()
		}
		statuses = append(statuses, st)
	}
	return statuses
}
