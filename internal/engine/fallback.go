package engine

import (
	"fmt"
	"strings"

	"github.com/spigell/hh-scorer/internal/growth"
	"github.com/spigell/hh-scorer/internal/insights"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/recommendation"
)

// CodeDataIncomplete is the rejection code of assessments blocked by missing critical data.
const CodeDataIncomplete = "DATA_INCOMPLETE"

const (
	mockScore   = 50
	mockProfile = "default"
)

var mockWeights = map[model.Section]float64{
	model.SectionPersonal:   0.10,
	model.SectionExperience: 0.25,
	model.SectionEducation:  0.15,
	model.SectionSkills:     0.25,
	model.SectionSalary:     0.10,
	model.SectionCV:         0.15,
}

// incomplete turns res into the rejection returned when critical fields are missing.
func incomplete(res *model.AssessmentResult, report *model.CompletenessReport) *model.AssessmentResult {
	n := len(report.CriticalMissing)
	summary := fmt.Sprintf("INSUFFICIENT DATA FOR ASSESSMENT - Missing %d critical field(s)", n)

	res.TotalScore = 0
	res.Decision = model.DecisionRejected
	res.IsRejected = true
	res.RejectionRuleCode = CodeDataIncomplete
	res.RejectionReasons = append([]string{summary}, report.CriticalMissing...)
	res.RuleTrace = []string{fmt.Sprintf("FAILED: DATA_COMPLETENESS - Missing %d critical field(s)", n)}
	res.WeightProfile = "none"

	res.Explanation = "Assessment not performed. Critical data is missing: " + strings.Join(report.CriticalMissing, "; ")
	res.Recommendation = "NOT ASSESSABLE - Complete required data fields first"
	res.Concerns = append(res.Concerns, report.CriticalMissing...)
	res.QuickSummary = "Note: " + summary

	res.Confidence = model.ConfidenceMetrics{
		Level:              model.ConfidenceLow,
		Score:              0,
		UncertaintyFactors: []string{"incomplete_profile"},
		DataCompleteness:   report.Score / 100,
	}

	ins := insights.Unavailable()
	ins.RedFlags = []model.RedFlag{insights.MissingDataFlag(report.CriticalMissing)}
	ins.Recommendation = res.Recommendation
	res.Insights = ins
	return res
}

// mock is the clearly labelled placeholder returned when the pipeline cannot run.
func (s *Service) mock(candidate, job model.Record, cause error) *model.AssessmentResult {
	res := s.newResult(candidate.ID(), job.ID())
	res.IsMock = true
	res.TotalScore = mockScore
	res.BaseScore = mockScore
	res.AdjustedScore = mockScore
	res.Decision = model.DecisionFor(mockScore, false)
	res.WeightProfile = mockProfile

	for _, sec := range model.Sections {
		res.SectionScores[sec] = mockScore
		res.Sections = append(res.Sections, model.SectionAssessment{
			Section:     sec,
			Name:        sec.Label(),
			Score:       mockScore,
			Weight:      mockWeights[sec],
			MatchLevel:  model.LevelFor(mockScore),
			Explanation: sec.Label() + " assessment (mock)",
			Fields:      []model.FieldAssessment{},
		})
	}

	res.Explanation = "This is a mock evaluation - scoring engine not available."
	res.Recommendation = "CONSIDER - Review specific gaps before proceeding (mock)"
	res.QuickSummary = "Mock evaluation"
	res.Confidence = model.ConfidenceMetrics{
		Level:              model.ConfidenceLow,
		UncertaintyFactors: []string{"scoring_unavailable"},
	}
	res.Growth = growth.NotAssessed()
	res.Insights = insights.Unavailable()
	res.SmartRecommendation = recommendation.Neutral(mockScore)
	res.Fallbacks = []string{"engine: " + cause.Error()}
	return res
}
