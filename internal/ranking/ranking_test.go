package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/hh-scorer/internal/model"
)

func result(id string, total int, flags ...model.Severity) *model.AssessmentResult {
	ins := &model.CandidateInsights{CulturalFit: 70, LearningPotential: 70}
	for _, sev := range flags {
		ins.RedFlags = append(ins.RedFlags, model.RedFlag{Type: "test", Severity: sev, Description: "flag " + string(sev)})
	}
	return &model.AssessmentResult{
		CandidateID:   id,
		TotalScore:    total,
		SectionScores: map[model.Section]float64{model.SectionSkills: float64(total)},
		Insights:      ins,
	}
}

func TestComposite(t *testing.T) {
	t.Parallel()

	r := &model.AssessmentResult{
		TotalScore: 80,
		SectionScores: map[model.Section]float64{
			model.SectionSkills:     90,
			model.SectionExperience: 75,
			model.SectionSalary:     60,
		},
		Insights: &model.CandidateInsights{
			RedFlags: []model.RedFlag{
				{Severity: model.SeverityCritical},
				{Severity: model.SeverityHigh},
				{Severity: model.SeverityLow},
			},
			CulturalFit:       60,
			LearningPotential: 90,
			SkillCurrency:     model.SkillCurrency{Score: 50},
		},
	}

	tests := []struct {
		criterion Criterion
		want      float64
	}{
		{criterion: OverallScore, want: 61},
		{criterion: SkillsMatch, want: 78},
		{criterion: ExperienceFit, want: 75},
		{criterion: SalaryFit, want: 60},
		{criterion: CulturalFit, want: 60},
		{criterion: LearningPotential, want: 90},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Composite(r, tt.criterion), 1e-9, string(tt.criterion))
	}

	// missing insights count as zero cultural fit and learning potential
	assert.InDelta(t, 58, Composite(&model.AssessmentResult{TotalScore: 72}, OverallScore), 1e-9)
}

func TestRankIsPermutationAndOrdered(t *testing.T) {
	t.Parallel()

	results := []*model.AssessmentResult{
		result("c", 70), result("a", 90), nil, result("b", 70), result("d", 50),
	}
	ranked := Rank(results, OverallScore)
	require.Len(t, ranked, 4)

	ids := make([]string, len(ranked))
	for i, rc := range ranked {
		assert.Equal(t, i+1, rc.Rank)
		ids[i] = rc.CandidateID
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].CompositeScore, rc.CompositeScore)
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestTierFor(t *testing.T) {
	t.Parallel()

	want := []model.Tier{
		model.TierS, model.TierS, model.TierA, model.TierA, model.TierB,
		model.TierB, model.TierB, model.TierC, model.TierC, model.TierD,
	}
	for i, tier := range want {
		assert.Equal(t, tier, TierFor(i+1, 10), "rank %d", i+1)
	}
	assert.Equal(t, model.TierS, TierFor(1, 1))
}

func TestPriorityFor(t *testing.T) {
	t.Parallel()

	rejected := result("r", 95)
	rejected.IsRejected = true

	tests := []struct {
		name string
		r    *model.AssessmentResult
		rank int
		want model.InterviewPriority
	}{
		{name: "rejected", r: rejected, rank: 1, want: model.InterviewDoNotInterview},
		{name: "critical flag", r: result("x", 99, model.SeverityCritical), rank: 1, want: model.InterviewDoNotInterview},
		{name: "urgent", r: result("x", 88), rank: 3, want: model.InterviewUrgent},
		{name: "high outside top three", r: result("x", 88), rank: 4, want: model.InterviewHigh},
		{name: "medium outside top ten", r: result("x", 80), rank: 11, want: model.InterviewMedium},
		{name: "low", r: result("x", 40), rank: 2, want: model.InterviewLow},
		{name: "no insights", r: &model.AssessmentResult{TotalScore: 62}, rank: 5, want: model.InterviewMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityFor(tt.r, tt.rank), tt.name)
	}
}

func TestBatchWithCriticalFlagsIsNeverInterviewed(t *testing.T) {
	t.Parallel()

	var results []*model.AssessmentResult
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("cand-%02d", i)
		if i < 3 {
			// the highest raw scores carry critical flags
			results = append(results, result(id, 99-i, model.SeverityCritical))
			continue
		}
		results = append(results, result(id, 90-i*3))
	}

	ranked := Rank(results, OverallScore)
	require.Len(t, ranked, 10)

	blocked := map[string]bool{}
	for _, rc := range ranked {
		if rc.InterviewPriority == model.InterviewDoNotInterview {
			blocked[rc.CandidateID] = true
		}
	}
	assert.Equal(t, map[string]bool{"cand-00": true, "cand-01": true, "cand-02": true}, blocked)

	m := Matrix(ranked, OverallScore)
	require.NotNil(t, m)
	assert.Equal(t, 10, m.TotalCandidates)
	assert.Equal(t, 3, m.PriorityDistribution[model.InterviewDoNotInterview])
	assert.Equal(t, map[model.Tier]int{model.TierS: 2, model.TierA: 2, model.TierB: 3, model.TierC: 2, model.TierD: 1}, m.TierDistribution)
	assert.Len(t, m.TopCandidates, 10)
	assert.Equal(t, ranked[0].CandidateID, m.TopCandidates[0])
}

func TestMatrixAverages(t *testing.T) {
	t.Parallel()

	var results []*model.AssessmentResult
	for i := 0; i < 12; i++ {
		results = append(results, result(fmt.Sprintf("c%02d", i), 100-i*5))
	}
	ranked := Rank(results, OverallScore)
	m := Matrix(ranked, OverallScore)

	require.NotNil(t, m)
	assert.Len(t, m.Compared, 10)
	assert.InDelta(t, 72.5, m.AverageScore, 1e-9)
	assert.InDelta(t, 77.5, m.TopTenAverage, 1e-9)
	assert.Equal(t, "overall_score", m.Criterion)

	assert.Nil(t, Matrix(nil, OverallScore))
}

func TestParseCriterion(t *testing.T) {
	t.Parallel()

	c, err := ParseCriterion("")
	require.NoError(t, err)
	assert.Equal(t, OverallScore, c)

	c, err = ParseCriterion("salary_fit")
	require.NoError(t, err)
	assert.Equal(t, SalaryFit, c)

	_, err = ParseCriterion("vibes")
	assert.Error(t, err)
}
