package scoring

import (
	"fmt"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

// Adjust applies the contextual bonus/penalty rules to base. The summed delta is
// capped at the configured adjustment cap and the result stays within [0,100].
func Adjust(base int, scores map[model.Section]float64, c *model.Candidate, j *model.Job, th taxonomy.Thresholds) (int, []model.ContextualAdjustment) {
	adjustments := []model.ContextualAdjustment{}
	add := func(code string, points int, reason string, confidence float64) {
		t := model.AdjustmentBonus
		if points < 0 {
			t = model.AdjustmentPenalty
		}
		adjustments = append(adjustments, model.ContextualAdjustment{
			Code: code, Type: t, Points: points, Reason: reason, Confidence: confidence,
		})
	}

	skills, hasSkills := scores[model.SectionSkills]
	experience := scores[model.SectionExperience]
	cv, hasCV := scores[model.SectionCV]

	if base >= 80 && hasSkills && skills >= 90 {
		add("STRONG_SKILLS_BONUS", 3, fmt.Sprintf("Exceptional skills match (%.0f%%) on a strong overall profile", skills), 0.9)
	}
	if experience >= 85 {
		add("INDUSTRY_EXPERIENCE_BONUS", 2, fmt.Sprintf("Highly relevant industry experience (%.0f%%)", experience), 0.85)
	}
	if hasCV && cv >= 80 {
		add("CV_QUALITY_BONUS", 2, fmt.Sprintf("Well-structured CV closely aligned with the role (%.0f%%)", cv), 0.8)
	}
	if minGCC := j.GCCMinimum(); minGCC > 0 && c.GCCExperienceYears >= 3 && c.GCCExperienceYears >= 2*minGCC {
		add("GCC_EXPERIENCE_BONUS", 2, fmt.Sprintf("Strong regional experience: %.1f years in the GCC", c.GCCExperienceYears), 0.85)
	}
	if e := c.ExpectedSalary; e != nil && j.SalaryMax > 0 && *e >= j.SalaryMin && *e <= 0.9*j.SalaryMax {
		add("SALARY_SWEET_SPOT", 1, fmt.Sprintf("Expected salary %s sits comfortably inside the budget", money(*e)), 0.9)
	}
	if days := c.Availability(); days > th.LongNoticeDays {
		add("LONG_NOTICE_PENALTY", -2, fmt.Sprintf("Notice period of %d days exceeds %d days", days, th.LongNoticeDays), 0.95)
	}

	delta := 0
	for _, a := range adjustments {
		delta += a.Points
	}
	if limit := th.AdjustmentCap; limit > 0 {
		delta = max(-limit, min(limit, delta))
	}
	return clampInt(base + delta), adjustments
}
