package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

var logisticsTerms = []string{"logistics", "supply chain", "warehouse", "freight", "shipping", "transport"}

func assessExperience(c *model.Candidate, j *model.Job) []model.FieldAssessment {
	return []model.FieldAssessment{
		totalExperienceField(c, j),
		gccField(c, j),
		industryField(c, j),
		functionalAreaField(c, j),
		designationField(c, j),
	}
}

func totalExperienceField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	years := c.TotalExperienceYears
	lo, hi := j.MinExperienceYears, j.ExperienceCeiling()

	var score float64
	var expl string
	switch {
	case years >= lo && years <= hi:
		score, expl = 100, fmt.Sprintf("%.1f years perfectly matches required range (%g-%g years)", years, lo, hi)
	case years > hi && years <= hi+5:
		score, expl = 85, fmt.Sprintf("%.1f years experience exceeds maximum (%g), but within acceptable range", years, hi)
	case years > hi:
		score, expl = 70, fmt.Sprintf("%.1f years may be overqualified for this role (requires %g-%g years)", years, lo, hi)
	case years >= lo-1:
		score, expl = 75, fmt.Sprintf("%.1f years is slightly below minimum (%g years), but close", years, lo)
	case years >= lo*0.5:
		score, expl = 50, fmt.Sprintf("%.1f years experience is below minimum requirement of %g years", years, lo)
	default:
		score, expl = 25, fmt.Sprintf("Insufficient experience: %.1f years vs required %g years", years, lo)
	}
	return field("total_experience", "Total Experience", fmt.Sprintf("%.1f years", years), fmt.Sprintf("%g-%g years", lo, hi), score, 1.5, expl)
}

func gccField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	gcc, minGCC := c.GCCExperienceYears, j.GCCMinimum()

	var score float64
	var expl string
	switch {
	case minGCC <= 0 && gcc > 0:
		score, expl = 100, fmt.Sprintf("GCC experience: %.1f years", gcc)
	case minGCC <= 0:
		score, expl = 80, "No GCC experience, not required"
	case gcc >= minGCC:
		score, expl = 100, fmt.Sprintf("%.1f years GCC experience meets requirement (%g years minimum)", gcc, minGCC)
	case gcc > 0:
		score, expl = 60, fmt.Sprintf("%.1f years GCC experience is below required %g years", gcc, minGCC)
	default:
		score, expl = 30, fmt.Sprintf("No GCC experience, but %g years required", minGCC)
	}

	requirement := "Not required"
	if minGCC > 0 {
		requirement = fmt.Sprintf("%g years minimum", minGCC)
	}
	return field("gcc_experience", "GCC Experience", fmt.Sprintf("%.1f years", gcc), requirement, score, 1.2, expl)
}

// industryText is the candidate text searched for industry and functional area mentions.
func industryText(c *model.Candidate) string {
	parts := []string{c.EmploymentSummary, c.PreferredIndustry}
	for _, e := range c.EmploymentHistory {
		parts = append(parts, e.Industry)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func industryField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	text := industryText(c)

	var matched []string
	for _, ind := range []string{j.Industry, j.SubIndustry} {
		ind = strings.ToLower(strings.TrimSpace(ind))
		if ind != "" && strings.Contains(text, ind) {
			matched = append(matched, ind)
		}
	}

	var score float64
	var expl string
	switch {
	case len(matched) >= 2:
		score, expl = 100, fmt.Sprintf("Strong industry match: experience in %s", strings.Join(matched, ", "))
	case len(matched) == 1:
		score, expl = 85, fmt.Sprintf("Industry match found: %s", matched[0])
	case containsAny(text, logisticsTerms...):
		score, expl = 75, "Related logistics/supply chain experience detected"
	default:
		score, expl = 50, fmt.Sprintf("No direct industry match found for %s", orDefault(j.Industry, "this role"))
	}

	requirement := orDefault(j.Industry, "Not specified")
	if j.SubIndustry != "" {
		requirement += " / " + j.SubIndustry
	}
	return field("industry", "Industry Experience", orDefault(c.PreferredIndustry, "From work history"), requirement, score, 1, expl)
}

func functionalAreaField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	jobFunc := strings.TrimSpace(j.FunctionalArea)
	text := strings.ToLower(c.PreferredFunctionalArea + " " + c.EmploymentSummary)

	var score float64
	var expl string
	switch {
	case jobFunc == "":
		score, expl = 100, "No specific functional area requirement"
	case strings.Contains(text, strings.ToLower(jobFunc)):
		score, expl = 95, fmt.Sprintf("Functional area '%s' matches candidate experience", jobFunc)
	case c.PreferredFunctionalArea != "":
		score, expl = 70, fmt.Sprintf("Candidate functional area '%s' differs from job requirement '%s'", c.PreferredFunctionalArea, jobFunc)
	default:
		score, expl = 60, "Functional area experience not clearly defined"
	}
	return field("functional_area", "Functional Area", orDefault(c.PreferredFunctionalArea, "Not specified"), orDefault(jobFunc, "Not specified"), score, 1, expl)
}

func designationField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	var score float64
	var expl string
	switch {
	case strings.TrimSpace(j.Designation) == "":
		score, expl = 100, "No specific designation requirement"
	case designationLevelsMatch(c.PreferredDesignation, j.Designation):
		score, expl = 95, fmt.Sprintf("Designation level matches: seeking %s", j.Designation)
	default:
		score, expl = 70, fmt.Sprintf("Designation: candidate seeking '%s', job offers '%s'", c.PreferredDesignation, j.Designation)
	}
	return field("designation", "Designation/Role Level", orDefault(c.PreferredDesignation, "Open"), orDefault(j.Designation, "Not specified"), score, 1, expl)
}

var designationLevels = []struct {
	keyword string
	level   int
}{
	{"junior", 1}, {"entry", 1},
	{"mid", 2}, {"intermediate", 2},
	{"senior", 3}, {"lead", 3},
	{"manager", 4}, {"head", 4},
	{"director", 5}, {"executive", 5}, {"vp", 5},
	{"cxo", 6},
}

func designationLevel(title string) int {
	title = strings.ToLower(title)
	level := 0
	for _, l := range designationLevels {
		if strings.Contains(title, l.keyword) && l.level > level {
			level = l.level
		}
	}
	return level
}

// designationLevelsMatch reports whether the levels are at most one step apart.
func designationLevelsMatch(candidate, job string) bool {
	diff := designationLevel(candidate) - designationLevel(job)
	return diff >= -1 && diff <= 1
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
