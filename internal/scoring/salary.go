package scoring

import (
	"fmt"

	"github.com/spigell/hh-scorer/internal/model"
)

func assessSalary(c *model.Candidate, j *model.Job) []model.FieldAssessment {
	fields := []model.FieldAssessment{expectedSalaryField(c, j)}
	if c.CurrentSalary != nil && c.ExpectedSalary != nil && *c.CurrentSalary > 0 && *c.ExpectedSalary > 0 {
		fields = append(fields, salaryProgressionField(*c.CurrentSalary, *c.ExpectedSalary))
	}
	return fields
}

func expectedSalaryField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	var expected float64
	if c.ExpectedSalary != nil {
		expected = *c.ExpectedSalary
	}
	lo, hi := j.SalaryMin, j.SalaryMax

	var score float64
	var expl string
	switch {
	case hi <= 0:
		score, expl = 100, "No salary range specified for this job"
	case expected <= 0:
		score, expl = 80, "Candidate salary expectation not specified"
	case expected <= hi && expected >= lo:
		score, expl = 100, fmt.Sprintf("Expected salary %s fits perfectly within budget (%s-%s)", money(expected), money(lo), money(hi))
	case expected <= hi:
		score, expl = 95, fmt.Sprintf("Expected salary %s is below budget range - potential savings", money(expected))
	case expected <= hi*1.1:
		score, expl = 80, fmt.Sprintf("Expected salary %s is slightly above budget (%s) but negotiable", money(expected), money(hi))
	case expected <= hi*1.25:
		score, expl = 60, fmt.Sprintf("Expected salary %s exceeds budget (%s) by 10-25%%", money(expected), money(hi))
	default:
		score, expl = 40, fmt.Sprintf("Significant salary gap: expects %s, budget max is %s", money(expected), money(hi))
	}

	candidate, requirement := "Not specified", "Not specified"
	if expected > 0 {
		candidate = money(expected)
	}
	if hi > 0 {
		requirement = fmt.Sprintf("%s - %s", money(lo), money(hi))
	}
	return field("expected_salary", "Expected Salary", candidate, requirement, score, 2, expl)
}

func salaryProgressionField(current, expected float64) model.FieldAssessment {
	increase := (expected - current) / current * 100

	var score float64
	var expl string
	switch {
	case increase <= 20:
		score, expl = 100, fmt.Sprintf("Reasonable salary expectation (%.0f%% increase from current)", increase)
	case increase <= 35:
		score, expl = 85, fmt.Sprintf("Moderate salary increase expected (%.0f%%)", increase)
	case increase <= 50:
		score, expl = 70, fmt.Sprintf("Significant salary increase expected (%.0f%%)", increase)
	default:
		score, expl = 50, fmt.Sprintf("Very high salary expectation (%.0f%% increase)", increase)
	}
	return field("salary_progression", "Salary Progression",
		fmt.Sprintf("Current: %s → Expected: %s", money(current), money(expected)),
		"Reasonable expectations preferred", score, 1, expl)
}
