package recommendation

import (
	"testing"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	return NewEngine(tax.Intervals())
}

func flags(n int) *model.CandidateInsights {
	ins := &model.CandidateInsights{}
	for i := 0; i < n; i++ {
		ins.RedFlags = append(ins.RedFlags, model.RedFlag{Type: "employment_gap", Severity: model.SeverityMedium, Description: "gap"})
	}
	return ins
}

func TestInterval(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	ci := e.Interval(80, model.ConfidenceHigh, 0.9)
	// 5 * 1.0 * (1.5 - 0.9)
	assert.InDelta(t, 3, ci.MarginOfError, 1e-9)
	assert.InDelta(t, 77, ci.LowerBound, 1e-9)
	assert.InDelta(t, 83, ci.UpperBound, 1e-9)
	assert.Equal(t, 95, ci.ConfidenceLevel)

	ci = e.Interval(98, model.ConfidenceLow, 0.1)
	assert.InDelta(t, 100, ci.UpperBound, 1e-9)
	assert.Equal(t, 80, ci.ConfidenceLevel)

	ci = e.Interval(2, model.ConfidenceNone, 0)
	assert.InDelta(t, 0, ci.LowerBound, 1e-9)
	assert.Equal(t, 90, ci.ConfidenceLevel)
}

func TestIntervalBoundsOrdered(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	for _, level := range []model.ConfidenceLevel{model.ConfidenceVeryHigh, model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow} {
		for score := 0.0; score <= 100; score += 12.5 {
			for conf := 0.0; conf <= 1; conf += 0.25 {
				ci := e.Interval(score, level, conf)
				assert.LessOrEqual(t, ci.LowerBound, ci.PointEstimate)
				assert.LessOrEqual(t, ci.PointEstimate, ci.UpperBound)
				assert.GreaterOrEqual(t, ci.LowerBound, 0.0)
				assert.LessOrEqual(t, ci.UpperBound, 100.0)
			}
		}
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	high := model.ConfidenceMetrics{Level: model.ConfidenceVeryHigh, Score: 0.95}
	low := model.ConfidenceMetrics{Level: model.ConfidenceLow, Score: 0.3}

	tests := []struct {
		name     string
		in       Input
		action   model.Action
		priority model.Priority
	}{
		{name: "rejected", in: Input{Score: 95, Rejected: true, Confidence: high}, action: model.ActionReject, priority: model.PriorityNone},
		{name: "below floor", in: Input{Score: 39, Confidence: high}, action: model.ActionReject, priority: model.PriorityNone},
		{name: "many red flags", in: Input{Score: 95, Confidence: high, Insights: flags(3)}, action: model.ActionHoldForReview, priority: model.PriorityLow},
		{
			name:     "growth rescue",
			in:       Input{Score: 66, Confidence: low, Growth: &model.GrowthPotential{Score: 70, Tier: model.GrowthHighPotential}},
			action:   model.ActionShortlist,
			priority: model.PriorityHigh,
		},
		{name: "immediate critical", in: Input{Score: 85, Confidence: high}, action: model.ActionImmediateInterview, priority: model.PriorityCritical},
		{name: "immediate high", in: Input{Score: 80, Confidence: low}, action: model.ActionImmediateInterview, priority: model.PriorityHigh},
		{name: "shortlist high", in: Input{Score: 72, Confidence: high, Insights: flags(2)}, action: model.ActionShortlist, priority: model.PriorityHigh},
		{name: "shortlist medium", in: Input{Score: 72, Confidence: low, Insights: flags(1)}, action: model.ActionShortlist, priority: model.PriorityMedium},
		{name: "waitlist medium", in: Input{Score: 62, Confidence: high}, action: model.ActionWaitlist, priority: model.PriorityMedium},
		{name: "waitlist low", in: Input{Score: 60, Confidence: low}, action: model.ActionWaitlist, priority: model.PriorityLow},
		{name: "reject without growth", in: Input{Score: 55, Confidence: high}, action: model.ActionReject, priority: model.PriorityNone},
		{
			name:     "weak base lifted by adjustments",
			in:       Input{Score: 62, BaseScore: 38, Confidence: high},
			action:   model.ActionReject,
			priority: model.PriorityNone,
		},
		{
			name:     "base at floor",
			in:       Input{Score: 62, BaseScore: 40, Confidence: high},
			action:   model.ActionWaitlist,
			priority: model.PriorityMedium,
		},
	}

	e := newEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := tt.in
			if in.BaseScore == 0 {
				in.BaseScore = in.Score
			}
			rec := e.Recommend(in)
			assert.Equal(t, tt.action, rec.Action)
			assert.Equal(t, tt.priority, rec.Priority)
			assert.NotEmpty(t, rec.NextSteps)
			assert.NotEmpty(t, rec.Message)
		})
	}
}

func TestRisk(t *testing.T) {
	t.Parallel()

	narrow := model.ConfidenceInterval{LowerBound: 78, UpperBound: 82}
	wide := model.ConfidenceInterval{LowerBound: 60, UpperBound: 80}

	assert.Equal(t, model.RiskLow, Risk(80, narrow, 0, 0.9))
	assert.Equal(t, model.RiskMedium, Risk(80, narrow, 2, 0.9))
	assert.Equal(t, model.RiskHigh, Risk(65, wide, 1, 0.5))
}

func TestSuccessProbability(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 98, SuccessProbability(80, 0.9, 75, 0), 1e-9)
	assert.InDelta(t, 60, SuccessProbability(80, 0.5, 0, 5), 1e-9)
	assert.InDelta(t, 100, SuccessProbability(99, 1, 80, 0), 1e-9)
	assert.InDelta(t, 0, SuccessProbability(5, 0, 0, 4), 1e-9)
}

func TestFocusAreasAndFactors(t *testing.T) {
	t.Parallel()

	ins := &model.CandidateInsights{
		RedFlags:   []model.RedFlag{{Type: "job_hopping", Description: "Frequent job changes"}},
		Strengths:  []string{"Excellent skills match (95%)"},
		Weaknesses: []string{"Weak salary match (40%)", "Weak education match (45%)"},
	}
	in := Input{
		Score:      72,
		BaseScore:  70,
		Confidence: model.ConfidenceMetrics{Level: model.ConfidenceHigh, Score: 0.8},
		Insights:   ins,
		Sections: []model.SectionAssessment{
			{Section: model.SectionSalary, Score: 40},
			{Section: model.SectionEducation, Score: 45},
			{Section: model.SectionSkills, Score: 95},
		},
	}

	rec := newEngine(t).Recommend(in)
	assert.Equal(t, []string{
		"Probe salary capabilities in depth",
		"Probe education capabilities in depth",
		"Clarify: Frequent job changes",
		"Assess: Weak salary match (40%)",
		"Assess: Weak education match (45%)",
	}, rec.InterviewFocusAreas)
	assert.Equal(t, "Excellent skills match (95%)", rec.DecisionFactors.TopStrength)
	assert.Equal(t, 1, rec.DecisionFactors.RedFlagCount)
	assert.Contains(t, rec.NextSteps, "Verify concerns: Frequent job changes")
}
