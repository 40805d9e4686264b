package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

func sectionExplanation(sec model.Section, score float64, fields []model.FieldAssessment) string {
	name := strings.ReplaceAll(string(sec), "_", " ")

	var parts []string
	switch {
	case score >= 85:
		parts = append(parts, "Excellent match on "+name)
	case score >= 70:
		parts = append(parts, "Good match on "+name)
	case score >= 50:
		parts = append(parts, "Partial match on "+name)
	default:
		parts = append(parts, "Weak match on "+name)
	}

	var strong, weak []string
	for _, f := range fields {
		if f.Weight == 0 {
			continue
		}
		switch {
		case f.Score >= 80:
			strong = append(strong, f.Label)
		case f.Score < 60:
			weak = append(weak, f.Label)
		}
	}
	if len(strong) > 0 {
		parts = append(parts, "Strong in: "+strings.Join(head(strong, 2), ", "))
	}
	if len(weak) > 0 {
		parts = append(parts, "Gaps in: "+strings.Join(head(weak, 2), ", "))
	}
	return strings.Join(parts, ". ")
}

// OverallExplanation summarises the strongest and weakest sections.
func OverallExplanation(sections []model.SectionAssessment, total int) string {
	var parts []string
	switch {
	case total >= 80:
		parts = append(parts, "This candidate shows excellent overall alignment with the job requirements")
	case total >= 65:
		parts = append(parts, "This candidate shows good potential for the role with some areas for consideration")
	case total >= 50:
		parts = append(parts, "This candidate has partial alignment with moderate gaps")
	default:
		parts = append(parts, "This candidate shows significant gaps compared to requirements")
	}

	var strong, weak []string
	for _, s := range sections {
		switch {
		case s.Score >= 80:
			strong = append(strong, s.Name)
		case s.Score < 60:
			weak = append(weak, s.Name)
		}
	}
	if len(strong) > 0 {
		parts = append(parts, "Strongest areas: "+strings.Join(head(strong, 2), ", "))
	}
	if len(weak) > 0 {
		parts = append(parts, "Areas of concern: "+strings.Join(head(weak, 2), ", "))
	}
	return strings.Join(parts, ". ") + "."
}

// RecommendationText is the recruiter-facing verdict for a score.
func RecommendationText(total int, rejected bool) string {
	switch {
	case rejected:
		return "NOT RECOMMENDED - Candidate does not meet minimum requirements"
	case total >= 85:
		return "HIGHLY RECOMMENDED - Proceed to interview immediately"
	case total >= 75:
		return "RECOMMENDED - Strong candidate for shortlist"
	case total >= 65:
		return "CONSIDER - Review specific gaps before proceeding"
	case total >= 50:
		return "BORDERLINE - May consider if role requirements are flexible"
	default:
		return "NOT RECOMMENDED - Significant gaps exist"
	}
}

// SoftConcerns lists severe soft-scoring gaps. They are reported, not enforced.
func SoftConcerns(sections []model.SectionAssessment, total int) []string {
	var out []string
	for _, s := range sections {
		switch {
		case s.Section == model.SectionExperience && s.Score < 30:
			out = append(out, "Experience mismatch: "+s.Explanation)
		case s.Section == model.SectionSkills && s.Score < 30:
			out = append(out, "Skills gap: "+s.Explanation)
		}
	}
	if total < 25 {
		out = append(out, fmt.Sprintf("Overall score of %d is below the minimum bar", total))
	}
	return out
}

// ImprovementTips suggests what the candidate could do to fit the role better.
func ImprovementTips(a *Assessment) []model.ImprovementTip {
	tips := []model.ImprovementTip{}
	if sa := a.Skills; sa != nil {
		if len(sa.MissingRequired) > 0 {
			tips = append(tips, model.ImprovementTip{
				Section:  model.SectionSkills,
				Tip:      "Critical: Add these required skills: " + strings.Join(head(sa.MissingRequired, 3), ", "),
				Priority: model.PriorityCritical,
			})
		}
		if len(sa.MissingPreferred) > 0 {
			tips = append(tips, model.ImprovementTip{
				Section:  model.SectionSkills,
				Tip:      "Consider adding these preferred skills: " + strings.Join(head(sa.MissingPreferred, 3), ", "),
				Priority: model.PriorityHigh,
			})
		}
	}
	if exp, ok := a.Scores[model.SectionExperience]; ok && exp < 80 {
		tips = append(tips, model.ImprovementTip{
			Section:  model.SectionExperience,
			Tip:      "Gain more relevant experience to better match the job requirements",
			Priority: model.PriorityMedium,
		})
	}
	if _, ok := a.Scores[model.SectionCV]; !ok {
		tips = append(tips, model.ImprovementTip{
			Section:  model.SectionCV,
			Tip:      "Provide a CV so its content can be assessed",
			Priority: model.PriorityLow,
		})
	}
	return tips
}

// Highlights returns short strengths and concerns for recruiters.
func Highlights(a *Assessment, c *model.Candidate) (strengths, concerns []string) {
	strengths, concerns = []string{}, []string{}

	if sa := a.Skills; sa != nil && sa.TotalRequired > 0 {
		switch rate := sa.RequiredMatchRate * 100; {
		case rate >= 80:
			desc := ""
			if sa.Counts.Exact > 0 {
				desc = fmt.Sprintf(", %d exact", sa.Counts.Exact)
			}
			strengths = append(strengths, fmt.Sprintf("Strong required skills match (%d/%d%s)", len(sa.MatchedRequired), sa.TotalRequired, desc))
		case rate < 60:
			concerns = append(concerns, fmt.Sprintf("Missing %d required skills", len(sa.MissingRequired)))
		}
	}
	if sa := a.Skills; sa != nil && len(sa.MatchedPreferred) > 0 {
		strengths = append(strengths, fmt.Sprintf("Bonus: %d preferred skills matched", len(sa.MatchedPreferred)))
	}
	if exp := a.Scores[model.SectionExperience]; exp >= 80 {
		strengths = append(strengths, fmt.Sprintf("Excellent experience fit (%g years)", c.TotalExperienceYears))
	} else if exp < 60 {
		concerns = append(concerns, "Experience below the role's expectations")
	}
	if c.GCCExperienceYears > 0 {
		strengths = append(strengths, fmt.Sprintf("GCC experience (%g years)", c.GCCExperienceYears))
	}
	if cv, ok := a.Scores[model.SectionCV]; ok && cv >= 80 {
		strengths = append(strengths, "High profile relevance")
	}
	if salary, ok := a.Scores[model.SectionSalary]; ok && salary < 60 {
		concerns = append(concerns, "Salary expectation above budget")
	}
	return strengths, concerns
}

// QuickSummary is a one-line recruiter digest.
func QuickSummary(strengths, concerns []string) string {
	switch {
	case len(strengths) >= 2:
		return "Strong: " + strings.Join(strengths[:2], ", ")
	case len(concerns) > 0:
		return "Note: " + concerns[0]
	default:
		return "Average match"
	}
}
