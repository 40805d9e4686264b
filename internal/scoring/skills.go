package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

// The skills section reproduces the matcher's 0.7/0.3 split through field weights;
// IT skills are informational only.
const (
	requiredSkillsWeight  = 0.7
	preferredSkillsWeight = 0.3
)

func assessSkills(c *model.Candidate, sa *model.SkillAssessment) []model.FieldAssessment {
	return []model.FieldAssessment{
		requiredSkillsField(sa),
		preferredSkillsField(sa),
		itSkillsField(c),
	}
}

func requiredSkillsField(sa *model.SkillAssessment) model.FieldAssessment {
	if sa.TotalRequired == 0 {
		return field("required_skills", "Required Skills", []string{"None matched"}, []string{"None specified"},
			sa.RequiredScore, requiredSkillsWeight, "No required skills specified")
	}

	matched := len(sa.MatchedRequired)
	expl := fmt.Sprintf("Matched %d/%d required skills (%.0f%%)", matched, sa.TotalRequired, sa.RequiredMatchRate*100)
	if n := len(sa.MissingRequired); n > 0 {
		expl += ". Missing: " + strings.Join(head(sa.MissingRequired, 3), ", ")
		if n > 3 {
			expl += fmt.Sprintf(" (+%d more)", n-3)
		}
	}
	if sa.SemanticDegraded {
		expl += ". Semantic matching was unavailable"
	}

	f := field("required_skills", "Required Skills", matchedNames(sa.MatchedRequired), jobSkills(sa.MatchedRequired, sa.MissingRequired),
		sa.RequiredScore, requiredSkillsWeight, expl)
	f.Details = matchDetails(sa.MatchedRequired)
	return f
}

func preferredSkillsField(sa *model.SkillAssessment) model.FieldAssessment {
	if sa.TotalPreferred == 0 {
		return field("preferred_skills", "Preferred Skills", []string{"None matched"}, []string{"None specified"},
			sa.PreferredScore, preferredSkillsWeight, "No preferred skills specified")
	}
	expl := fmt.Sprintf("Matched %d/%d preferred skills (%.0f%%)", len(sa.MatchedPreferred), sa.TotalPreferred, sa.PreferredMatchRate*100)

	f := field("preferred_skills", "Preferred Skills", matchedNames(sa.MatchedPreferred), jobSkills(sa.MatchedPreferred, sa.MissingPreferred),
		sa.PreferredScore, preferredSkillsWeight, expl)
	f.Details = matchDetails(sa.MatchedPreferred)
	return f
}

func itSkillsField(c *model.Candidate) model.FieldAssessment {
	n := len(c.ITSkills)
	if n == 0 {
		return field("it_skills", "IT/Technical Skills", []string{"None listed"}, "Technical proficiency preferred", 50, 0, "No IT skills listed")
	}
	return field("it_skills", "IT/Technical Skills", head(c.ITSkills, 5), "Technical proficiency preferred",
		float64(60+5*n), 0, fmt.Sprintf("Has %d IT/technical skills", n))
}

func matchDetails(matches []model.SkillMatch) []model.FieldAssessment {
	out := make([]model.FieldAssessment, 0, len(matches))
	for _, m := range matches {
		out = append(out, field(m.JobSkill, m.JobSkill, m.CandidateSkill, string(m.MatchType),
			m.Confidence*m.Weight*100, 1, m.Explanation))
	}
	return out
}

func matchedNames(matches []model.SkillMatch) []string {
	if len(matches) == 0 {
		return []string{"None matched"}
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.JobSkill
	}
	return out
}

func jobSkills(matched []model.SkillMatch, missing []string) []string {
	out := make([]string, 0, len(matched)+len(missing))
	for _, m := range matched {
		out = append(out, m.JobSkill)
	}
	return append(out, missing...)
}

func head(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
