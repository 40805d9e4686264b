package scoring

import (
	"fmt"

	"github.com/spigell/hh-scorer/internal/model"
)

// DetectInteractions flags compound patterns across sections. The result is
// informational and never changes the score.
func DetectInteractions(base int, scores map[model.Section]float64, c *model.Candidate) []model.FeatureInteraction {
	out := []model.FeatureInteraction{}

	var top []model.Section
	for _, sec := range model.Sections {
		if s, ok := scores[sec]; ok && s >= 90 {
			top = append(top, sec)
		}
	}
	if len(top) >= 3 {
		out = append(out, model.FeatureInteraction{
			Code:        "PERFECT_CANDIDATE_AMPLIFIER",
			Sections:    top,
			Description: fmt.Sprintf("Top scores across %d dimensions", len(top)),
			Effect:      "amplifies",
		})
	}

	skills, hasSkills := scores[model.SectionSkills]
	experience, hasExperience := scores[model.SectionExperience]
	if hasSkills && hasExperience {
		switch {
		case skills >= 85 && experience < 60:
			out = append(out, model.FeatureInteraction{
				Code:        "SKILLS_COMPENSATE_EXPERIENCE",
				Sections:    []model.Section{model.SectionSkills, model.SectionExperience},
				Description: "Strong skills may offset limited experience",
				Effect:      "compensates",
			})
		case experience >= 85 && skills < 60:
			out = append(out, model.FeatureInteraction{
				Code:        "EXPERIENCE_COMPENSATES_SKILLS",
				Sections:    []model.Section{model.SectionExperience, model.SectionSkills},
				Description: "Deep experience may offset skill gaps",
				Effect:      "compensates",
			})
		}
	}

	if salary, ok := scores[model.SectionSalary]; ok && salary < 50 && base >= 70 {
		out = append(out, model.FeatureInteraction{
			Code:        "SALARY_BLOCKER",
			Sections:    []model.Section{model.SectionSalary},
			Description: "Salary expectations may block an otherwise strong match",
			Effect:      "blocks",
		})
	}

	if c.GCCExperienceYears >= 2 && hasSkills && skills >= 80 {
		out = append(out, model.FeatureInteraction{
			Code:        "GCC_SKILLS_SYNERGY",
			Sections:    []model.Section{model.SectionExperience, model.SectionSkills},
			Description: fmt.Sprintf("%.1f years of GCC experience combined with strong skills", c.GCCExperienceYears),
			Effect:      "amplifies",
		})
	}

	return out
}
