package insights

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spigell/hh-scorer/internal/career"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

// Red flag types.
const (
	FlagEmploymentGap     = "employment_gap"
	FlagJobHopping        = "job_hopping"
	FlagOverqualification = "overqualification"
	FlagUnderqualified    = "underqualification"
	FlagSalaryMismatch    = "salary_mismatch"
	FlagSalaryConcern     = "salary_concern"
	FlagCriticalSkillGaps = "critical_skill_gaps"
	FlagSkillGaps         = "skill_gaps"
	FlagCareerRegression  = "career_regression"
	FlagMissingContact    = "missing_contact"
	FlagMissingExperience = "missing_experience"
	FlagMissingEducation  = "missing_education"
	FlagMissingData       = "missing_data"
)

// detector inspects one aspect of a profile and returns zero or more flags.
type detector func(d *Detector, c *model.Candidate, j *model.Job, skills *model.SkillAssessment) []model.RedFlag

var detectors = []detector{
	(*Detector).employmentGaps,
	(*Detector).jobHopping,
	(*Detector).overqualification,
	(*Detector).underqualification,
	(*Detector).salaryMismatch,
	(*Detector).skillGaps,
	(*Detector).careerRegression,
	(*Detector).missingInformation,
}

// Detector runs the red flag battery with configurable thresholds.
type Detector struct {
	th  taxonomy.Thresholds
	now func() time.Time
}

// NewDetector creates a detector. A nil clock defaults to time.Now.
func NewDetector(th taxonomy.Thresholds, now func() time.Time) *Detector {
	if now == nil {
		now = time.Now
	}
	return &Detector{th: th, now: now}
}

// Detect returns every red flag raised for the candidate. skills may be nil,
// in which case skill gaps are computed by exact name comparison.
func (d *Detector) Detect(c *model.Candidate, j *model.Job, skills *model.SkillAssessment) []model.RedFlag {
	flags := []model.RedFlag{}
	for _, det := range detectors {
		flags = append(flags, det(d, c, j, skills)...)
	}
	return flags
}

func (d *Detector) employmentGaps(c *model.Candidate, _ *model.Job, _ *model.SkillAssessment) []model.RedFlag {
	var flags []model.RedFlag
	for _, g := range career.Gaps(c.EmploymentHistory, d.now()) {
		if g.Months < d.th.EmploymentGapMonths {
			continue
		}
		sev := model.SeverityMedium
		if g.Months >= d.th.SevereGapMonths {
			sev = model.SeverityHigh
		}
		flags = append(flags, model.RedFlag{
			Type:        FlagEmploymentGap,
			Severity:    sev,
			Description: fmt.Sprintf("Employment gap of %d months between %s and %s", g.Months, positionName(g.Before), positionName(g.After)),
			Details:     "May indicate difficulty finding work, personal issues, or career transition",
			Mitigation:  "Ask candidate to explain the gap during interview",
		})
	}
	return flags
}

func (d *Detector) jobHopping(c *model.Candidate, _ *model.Job, _ *model.SkillAssessment) []model.RedFlag {
	if len(c.EmploymentHistory) < d.th.JobHoppingMinEntries {
		return nil
	}
	avg, n := career.AverageTenureMonths(c.EmploymentHistory, d.now())
	if n == 0 {
		return nil
	}

	switch {
	case avg < d.th.JobHoppingHighTenureMonths:
		return []model.RedFlag{{
			Type:        FlagJobHopping,
			Severity:    model.SeverityHigh,
			Description: fmt.Sprintf("Frequent job changes with average tenure of %.1f months", avg),
			Details:     "High risk of early departure, potential reliability concerns",
			Mitigation:  "Discuss career stability and long-term commitment during interview",
		}}
	case avg < d.th.JobHoppingMediumTenureMonths:
		return []model.RedFlag{{
			Type:        FlagJobHopping,
			Severity:    model.SeverityMedium,
			Description: fmt.Sprintf("Relatively short average tenure of %.1f months", avg),
			Details:     "May indicate lower retention probability",
			Mitigation:  "Explore reasons for job changes and career goals",
		}}
	}
	return nil
}

func (d *Detector) overqualification(c *model.Candidate, j *model.Job, _ *model.SkillAssessment) []model.RedFlag {
	if j.MaxExperienceYears <= 0 || c.TotalExperienceYears <= j.MaxExperienceYears*d.th.OverqualificationRatio {
		return nil
	}
	return []model.RedFlag{{
		Type:     FlagOverqualification,
		Severity: model.SeverityMedium,
		Description: fmt.Sprintf("Candidate has %.1f years experience, significantly more than maximum %g years required",
			c.TotalExperienceYears, j.MaxExperienceYears),
		Details:    "Risk of flight due to boredom, may expect higher salary, potential team dynamics issues",
		Mitigation: "Assess motivation for applying to this level position and long-term interest",
	}}
}

func (d *Detector) underqualification(c *model.Candidate, j *model.Job, _ *model.SkillAssessment) []model.RedFlag {
	if j.MinExperienceYears <= 0 || c.TotalExperienceYears >= j.MinExperienceYears*d.th.UnderqualificationRatio {
		return nil
	}
	return []model.RedFlag{{
		Type:     FlagUnderqualified,
		Severity: model.SeverityHigh,
		Description: fmt.Sprintf("Candidate has only %.1f years experience, below minimum %g years required",
			c.TotalExperienceYears, j.MinExperienceYears),
		Details:    "May struggle with job responsibilities, longer ramp-up time required",
		Mitigation: "Evaluate if exceptional skills or potential can compensate for experience gap",
	}}
}

func (d *Detector) salaryMismatch(c *model.Candidate, j *model.Job, _ *model.SkillAssessment) []model.RedFlag {
	if c.ExpectedSalary == nil || *c.ExpectedSalary <= 0 || j.SalaryMax <= 0 {
		return nil
	}
	expected := *c.ExpectedSalary
	p := message.NewPrinter(language.English)

	switch {
	case expected > j.SalaryMax*d.th.SalaryMismatchRatio:
		return []model.RedFlag{{
			Type:     FlagSalaryMismatch,
			Severity: model.SeverityHigh,
			Description: p.Sprintf("Candidate expects %.0f, which is %.0f%%+ above budget of %.0f",
				expected, (d.th.SalaryMismatchRatio-1)*100, j.SalaryMax),
			Details:    "High likelihood of offer rejection, wasted interview time",
			Mitigation: "Clarify budget constraints early or skip if no negotiation room",
		}}
	case expected < j.SalaryMax*d.th.SalaryConcernRatio:
		return []model.RedFlag{{
			Type:        FlagSalaryConcern,
			Severity:    model.SeverityLow,
			Description: p.Sprintf("Candidate expects %.0f, significantly below the budget of %.0f", expected, j.SalaryMax),
			Details:     "May indicate undervaluation or a flight risk once market rates are discovered",
			Mitigation:  "Discuss career goals and ensure expectations are aligned",
		}}
	}
	return nil
}

func (d *Detector) skillGaps(c *model.Candidate, j *model.Job, skills *model.SkillAssessment) []model.RedFlag {
	required := len(j.RequiredSkills)
	if required == 0 {
		return nil
	}

	var missing []string
	if skills != nil {
		missing = skills.MissingRequired
	} else {
		missing = exactMissing(j.RequiredSkills, c.AllSkills())
	}
	if len(missing) == 0 {
		return nil
	}

	if float64(len(missing)) > float64(required)*d.th.CriticalSkillGapRatio {
		return []model.RedFlag{{
			Type:        FlagCriticalSkillGaps,
			Severity:    model.SeverityCritical,
			Description: fmt.Sprintf("Missing %d out of %d required skills: %s", len(missing), required, strings.Join(head(missing, 5), ", ")),
			Details:     "Candidate may not be able to perform core job functions",
			Mitigation:  "Proceed only if willing to invest in extensive training",
		}}
	}
	return []model.RedFlag{{
		Type:        FlagSkillGaps,
		Severity:    model.SeverityMedium,
		Description: fmt.Sprintf("Missing %d required skills: %s", len(missing), strings.Join(head(missing, 3), ", ")),
		Details:     "Some ramp-up time and training will be needed",
		Mitigation:  "Assess ability and willingness to learn these skills quickly",
	}}
}

func (d *Detector) careerRegression(c *model.Candidate, _ *model.Job, _ *model.SkillAssessment) []model.RedFlag {
	if len(c.EmploymentHistory) < 2 {
		return nil
	}
	ordered := career.Ordered(c.EmploymentHistory)
	if !career.IsJuniorTitle(ordered[0].JobTitle) || !career.IsSeniorTitle(ordered[1].JobTitle) {
		return nil
	}
	return []model.RedFlag{{
		Type:        FlagCareerRegression,
		Severity:    model.SeverityMedium,
		Description: "Recent position appears to be a step down from previous role",
		Details:     "May indicate performance issues, career change, or desperation",
		Mitigation:  "Understand reasons for the change and assess if pattern will continue",
	}}
}

func (d *Detector) missingInformation(c *model.Candidate, _ *model.Job, _ *model.SkillAssessment) []model.RedFlag {
	var flags []model.RedFlag
	if strings.TrimSpace(c.Email) == "" {
		flags = append(flags, model.RedFlag{
			Type:        FlagMissingContact,
			Severity:    model.SeverityCritical,
			Description: "No email address provided",
			Details:     "Cannot contact candidate",
			Mitigation:  "Obtain contact information before proceeding",
		})
	}
	if len(c.EmploymentHistory) == 0 {
		flags = append(flags, model.RedFlag{
			Type:        FlagMissingExperience,
			Severity:    model.SeverityHigh,
			Description: "No work experience documented",
			Details:     "Cannot assess practical skills and job performance",
			Mitigation:  "Request detailed work history",
		})
	}
	if len(c.EducationDetails) == 0 && strings.TrimSpace(c.EducationLevel) == "" {
		flags = append(flags, model.RedFlag{
			Type:        FlagMissingEducation,
			Severity:    model.SeverityMedium,
			Description: "No education history provided",
			Details:     "Cannot verify qualifications",
			Mitigation:  "Request education details and verify credentials",
		})
	}
	return flags
}

// MissingDataFlag is the flag attached to assessments rejected for incomplete data.
func MissingDataFlag(missing []string) model.RedFlag {
	return model.RedFlag{
		Type:        FlagMissingData,
		Severity:    model.SeverityCritical,
		Description: fmt.Sprintf("Missing %d critical field(s): %s", len(missing), strings.Join(missing, ", ")),
		Details:     "The candidate cannot be assessed reliably",
		Mitigation:  "Complete the missing fields and re-run the assessment",
	}
}

func positionName(e model.Employment) string {
	switch {
	case e.JobTitle != "" && e.CompanyName != "":
		return e.JobTitle + " at " + e.CompanyName
	case e.JobTitle != "":
		return e.JobTitle
	case e.CompanyName != "":
		return e.CompanyName
	}
	return "positions"
}

func exactMissing(required, have []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, s := range have {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := set[strings.ToLower(strings.TrimSpace(r))]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
