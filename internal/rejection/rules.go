package rejection

import (
	"fmt"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

type rule struct {
	name     string
	code     string
	enabled  bool
	disabled string
	check    func(c *model.Candidate, j *model.Job) Outcome
}

func newRule(name, code string, check func(c *model.Candidate, j *model.Job) Outcome) Rule {
	return &rule{name: name, code: code, enabled: true, check: check}
}

func (r *rule) Name() string { return r.name }

func (r *rule) Code() string { return r.code }

func (r *rule) Disable(reason string) {
	r.enabled = false
	r.disabled = reason
}

func (r *rule) IsEnabled() bool { return r.enabled }

func (r *rule) DisabledReason() string { return r.disabled }

func (r *rule) Evaluate(c *model.Candidate, j *model.Job) Outcome { return r.check(c, j) }

func pass() Outcome { return Outcome{Passed: true} }

func skip(reason string) Outcome { return Outcome{Passed: true, Skipped: true, Reason: reason} }

func fail(format string, args ...any) Outcome {
	return Outcome{Reason: fmt.Sprintf(format, args...)}
}

// DefaultRules returns the ordered rule set configured with th.
func DefaultRules(th taxonomy.Thresholds) []Rule {
	return []Rule{
		NewMinExperience(th.HardMinExperienceRatio),
		NewMaxExperience(),
		NewSalaryCeiling(th.HardSalaryCeilingRatio),
		NewNationality(),
		NewVisa(),
		NewGCCExperience(),
		NewDisqualifier(),
	}
}

// NewMinExperience fails candidates far below the minimum experience (years < min * ratio).
func NewMinExperience(ratio float64) Rule {
	return newRule("HARD_MIN_EXPERIENCE", "HR-001", func(c *model.Candidate, j *model.Job) Outcome {
		if j.MinExperienceYears <= 0 {
			return skip("no minimum experience")
		}
		floor := j.MinExperienceYears * ratio
		if c.TotalExperienceYears < floor {
			return fail("Experience of %.1f years is far below the required minimum of %.0f years", c.TotalExperienceYears, j.MinExperienceYears)
		}
		return pass()
	})
}

// NewMaxExperience enforces the experience ceiling when the job asks for it.
func NewMaxExperience() Rule {
	return newRule("HARD_MAX_EXPERIENCE", "HR-002", func(c *model.Candidate, j *model.Job) Outcome {
		if !j.EnforceMaxExperience || j.MaxExperienceYears <= 0 {
			return skip("maximum experience not enforced")
		}
		if c.TotalExperienceYears > j.MaxExperienceYears {
			return fail("Experience of %.1f years exceeds the enforced maximum of %.0f years", c.TotalExperienceYears, j.MaxExperienceYears)
		}
		return pass()
	})
}

// NewSalaryCeiling fails expectations far above budget (expected > max * ratio).
func NewSalaryCeiling(ratio float64) Rule {
	return newRule("HARD_SALARY_CEILING", "HR-003", func(c *model.Candidate, j *model.Job) Outcome {
		if j.SalaryMax <= 0 || c.ExpectedSalary == nil {
			return skip("salary budget or expectation not specified")
		}
		if *c.ExpectedSalary > j.SalaryMax*ratio {
			return fail("Expected salary %.0f exceeds the budget of %.0f by more than %.0f%%", *c.ExpectedSalary, j.SalaryMax, (ratio-1)*100)
		}
		return pass()
	})
}

// NewNationality enforces a mandatory nationality list.
func NewNationality() Rule {
	return newRule("HARD_NATIONALITY", "HR-004", func(c *model.Candidate, j *model.Job) Outcome {
		if len(j.RequiredNationalities) == 0 {
			return skip("no nationality restriction")
		}
		for _, n := range j.RequiredNationalities {
			if strings.EqualFold(strings.TrimSpace(n), strings.TrimSpace(c.Nationality)) {
				return pass()
			}
		}
		nat := c.Nationality
		if strings.TrimSpace(nat) == "" {
			nat = "unspecified"
		}
		return fail("Nationality %s is not in the required list (%s)", nat, strings.Join(j.RequiredNationalities, ", "))
	})
}

// NewVisa requires a valid visa when the job demands one.
func NewVisa() Rule {
	return newRule("HARD_VISA", "HR-005", func(c *model.Candidate, j *model.Job) Outcome {
		if !j.RequireValidVisa {
			return skip("valid visa not required")
		}
		if strings.Contains(strings.ToLower(c.VisaStatus), "valid") && !strings.Contains(strings.ToLower(c.VisaStatus), "invalid") {
			return pass()
		}
		status := c.VisaStatus
		if strings.TrimSpace(status) == "" {
			status = "unspecified"
		}
		return fail("A valid visa is required, candidate visa status is %s", status)
	})
}

// NewGCCExperience requires some GCC experience when the job requires it with a positive minimum.
func NewGCCExperience() Rule {
	return newRule("HARD_GCC_EXPERIENCE", "HR-006", func(c *model.Candidate, j *model.Job) Outcome {
		if j.GCCMinimum() <= 0 {
			return skip("GCC experience not required")
		}
		if c.GCCExperienceYears <= 0 {
			return fail("Job requires %.0f years of GCC experience, candidate has none", j.GCCMinimum())
		}
		return pass()
	})
}

// NewDisqualifier fails candidates explicitly marked as disqualified.
func NewDisqualifier() Rule {
	return newRule("HARD_DISQUALIFIER", "HR-007", func(c *model.Candidate, _ *model.Job) Outcome {
		if !c.Disqualified {
			return pass()
		}
		reason := strings.TrimSpace(c.DisqualificationReason)
		if reason == "" {
			reason = "no reason recorded"
		}
		return fail("Candidate is disqualified: %s", reason)
	})
}
