package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/hh-scorer/internal/embedding"
	"github.com/spigell/hh-scorer/internal/insights"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/ranking"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

var fixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T, log *zap.Logger) *Service {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	return New(Options{
		Taxonomy: tax,
		Embedder: embedding.NewHashingProvider(0),
		Logger:   log,
		Clock:    func() time.Time { return fixedNow },
		Workers:  4,
	})
}

func job() model.Record {
	return model.Record{
		"id":                   "job-1",
		"title":                "Warehouse Supervisor",
		"job_description":      "Supervise inbound and outbound warehouse operations.",
		"min_experience_years": 3,
		"max_experience_years": 7,
		"required_skills":      []any{"Inventory Management", "WMS", "Excel"},
		"preferred_skills":     []any{"SAP"},
		"salary_min":           10000,
		"salary_max":           15000,
		"city":                 "Dubai",
		"country":              "UAE",
	}
}

func candidate() model.Record {
	return model.Record{
		"id":                     "cand-1",
		"name":                   "Test Candidate",
		"email":                  "candidate@example.com",
		"mobile_number":          "+971500000000",
		"current_city":           "Dubai",
		"current_country":        "UAE",
		"total_experience_years": 5,
		"gcc_experience_years":   3,
		"education_level":        "bachelor",
		"skills":                 []any{"Inventory Management", "WMS", "Excel", "SAP"},
		"expected_salary":        14000,
		"current_salary":         12000,
		"employment_history": []any{
			map[string]any{
				"job_title":    "Warehouse Supervisor",
				"company_name": "Gulf Logistics",
				"start_date":   "2023-01",
				"end_date":     "present",
			},
			map[string]any{
				"job_title":    "Warehouse Coordinator",
				"company_name": "Desert Freight",
				"start_date":   "2021-01",
				"end_date":     "2022-12",
			},
		},
	}
}

func with(r model.Record, kv ...any) model.Record {
	out := model.Record{}
	for k, v := range r {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key := kv[i].(string)
		if kv[i+1] == nil {
			delete(out, key)
			continue
		}
		out[key] = kv[i+1]
	}
	return out
}

func field(t *testing.T, res *model.AssessmentResult, sec model.Section, name string) model.FieldAssessment {
	t.Helper()
	for _, s := range res.Sections {
		if s.Section != sec {
			continue
		}
		for _, f := range s.Fields {
			if f.Field == name {
				return f
			}
		}
	}
	t.Fatalf("field %s not found in %s", name, sec)
	return model.FieldAssessment{}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	res := s.Evaluate(context.Background(), candidate(), job())

	require.NotNil(t, res)
	assert.False(t, res.IsMock)
	assert.False(t, res.IsRejected)
	assert.Empty(t, res.Fallbacks)
	assert.Equal(t, "cand-1", res.CandidateID)
	assert.Equal(t, "job-1", res.JobID)
	assert.Equal(t, ModelVersion, res.ModelVersion)
	assert.Equal(t, "2026-06-01T09:00:00Z", res.EvaluatedAt)

	assert.GreaterOrEqual(t, res.TotalScore, 0)
	assert.LessOrEqual(t, res.TotalScore, 100)
	assert.Equal(t, model.DecisionFor(res.TotalScore, false), res.Decision)
	for sec, score := range res.SectionScores {
		assert.GreaterOrEqual(t, score, 0.0, sec)
		assert.LessOrEqual(t, score, 100.0, sec)
	}
	assert.GreaterOrEqual(t, res.Confidence.Score, 0.0)
	assert.LessOrEqual(t, res.Confidence.Score, 1.0)

	f := field(t, res, model.SectionExperience, "total_experience")
	assert.InDelta(t, 100, f.Score, 1e-9)
	assert.Contains(t, f.Explanation, "perfectly matches")

	require.NotNil(t, res.Skills)
	assert.Equal(t, 3, len(res.Skills.MatchedRequired)+len(res.Skills.MissingRequired))

	require.NotNil(t, res.Growth)
	require.NotNil(t, res.Insights)
	require.NotNil(t, res.SmartRecommendation)
	require.NotNil(t, res.Completeness)
	assert.True(t, res.Completeness.Valid)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	a := s.Evaluate(context.Background(), candidate(), job())
	b := s.Evaluate(context.Background(), candidate(), job())

	assert.Equal(t, a, b)
	assert.Equal(t, a.AssessmentID, b.AssessmentID)
}

func TestEvaluateMissingContact(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	res := s.Evaluate(context.Background(), with(candidate(), "email", nil, "mobile_number", ""), job())

	assert.True(t, res.IsRejected)
	assert.False(t, res.IsMock)
	assert.Equal(t, CodeDataIncomplete, res.RejectionRuleCode)
	assert.Equal(t, 0, res.TotalScore)
	assert.Equal(t, model.DecisionRejected, res.Decision)
	require.NotEmpty(t, res.RejectionReasons)
	assert.Equal(t, "INSUFFICIENT DATA FOR ASSESSMENT - Missing 2 critical field(s)", res.RejectionReasons[0])

	joined := ""
	for _, r := range res.RejectionReasons {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "Email Address")
	assert.Contains(t, joined, "Mobile Number")

	assert.Equal(t, model.ConfidenceLow, res.Confidence.Level)
	assert.Contains(t, res.Confidence.UncertaintyFactors, "incomplete_profile")
	require.NotNil(t, res.Insights)
	require.Len(t, res.Insights.RedFlags, 1)
	assert.Equal(t, model.SeverityCritical, res.Insights.RedFlags[0].Severity)
	assert.Nil(t, res.SmartRecommendation)
}

func TestEvaluateSalaryAboveBudget(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	res := s.Evaluate(context.Background(), with(candidate(), "expected_salary", 20000, "current_salary", nil), job())

	assert.False(t, res.IsRejected)
	assert.InDelta(t, 40, res.SectionScores[model.SectionSalary], 1e-9)
	assert.InDelta(t, 40, field(t, res, model.SectionSalary, "expected_salary").Score, 1e-9)

	require.NotNil(t, res.Insights)
	var found bool
	for _, f := range res.Insights.RedFlags {
		if f.Type == insights.FlagSalaryMismatch {
			found = true
			assert.Equal(t, model.SeverityHigh, f.Severity)
		}
	}
	assert.True(t, found, "salary mismatch flag missing: %+v", res.Insights.RedFlags)
}

func TestEvaluateHardRejection(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	res := s.Evaluate(context.Background(), with(candidate(), "total_experience_years", 1), job())

	assert.True(t, res.IsRejected)
	assert.Equal(t, 0, res.TotalScore)
	assert.Equal(t, "HR-001", res.RejectionRuleCode)
	assert.NotEmpty(t, res.RejectionReasons)
	assert.Equal(t, model.DecisionRejected, res.Decision)
	assert.Contains(t, res.Explanation, "Rejected by HR-001")
}

func TestEvaluateMalformedRecordReturnsMock(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	s := newService(t, zap.New(core))
	res := s.Evaluate(context.Background(), with(candidate(), "total_experience_years", "plenty"), job())

	assert.True(t, res.IsMock)
	assert.Equal(t, 50, res.TotalScore)
	assert.Equal(t, "cand-1", res.CandidateID)
	require.Len(t, res.Fallbacks, 1)
	assert.Contains(t, res.Fallbacks[0], "engine: ")
	assert.Equal(t, 1, logs.FilterMessage("evaluation failed, returning mock result").Len())
}

func TestEvaluateWithoutTaxonomyIsMock(t *testing.T) {
	t.Parallel()

	s := New(Options{Clock: func() time.Time { return fixedNow }})
	res := s.Evaluate(context.Background(), candidate(), job())

	assert.True(t, res.IsMock)
	assert.Equal(t, model.DecisionWeakMatch, res.Decision)
	assert.Equal(t, "This is a mock evaluation - scoring engine not available.", res.Explanation)
	assert.Len(t, res.Sections, len(model.Sections))
	require.NotNil(t, res.Growth)
	require.NotNil(t, res.Insights)
	require.NotNil(t, res.SmartRecommendation)
	assert.Contains(t, res.Fallbacks[0], ErrNotReady.Error())
}

func TestRunStageFallbacks(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(core)
	s := New(Options{Logger: zap.NewNop()})
	res := &model.AssessmentResult{}

	got := runStage(s, log, res, Stage[int]{
		Name:     "failing",
		Run:      func() (int, error) { return 0, errors.New("backend down") },
		Fallback: func() int { return 50 },
	})
	assert.Equal(t, 50, got)

	got = runStage(s, log, res, Stage[int]{
		Name:     "panicking",
		Run:      func() (int, error) { panic("nil map") },
		Fallback: func() int { return 50 },
	})
	assert.Equal(t, 50, got)

	got = runStage(s, log, res, Stage[int]{
		Name:     "ok",
		Run:      func() (int, error) { return 7, nil },
		Fallback: func() int { return 50 },
	})
	assert.Equal(t, 7, got)

	assert.Equal(t, []string{"failing: backend down", "panicking: panic: nil map"}, res.Fallbacks)
	assert.Equal(t, 2, logs.FilterMessage("stage failed, using neutral default").Len())
}

func TestEvaluateBatch(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	candidates := []model.Record{
		candidate(),
		with(candidate(), "id", "cand-2", "total_experience_years", "plenty"),
		with(candidate(), "id", "cand-3", "email", nil),
		with(candidate(), "id", nil, "expected_salary", 20000),
	}

	out := s.EvaluateBatch(context.Background(), job(), candidates, ranking.OverallScore)

	assert.Equal(t, "job-1", out.JobID)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "cand-2", out.Errors[0].CandidateID)
	assert.Equal(t, 1, out.Errors[0].Index)

	require.Len(t, out.Results, 3)
	assert.Equal(t, "cand-1", out.Results[0].CandidateID)
	assert.Equal(t, "cand-3", out.Results[1].CandidateID)
	assert.Equal(t, CodeDataIncomplete, out.Results[1].RejectionRuleCode)
	assert.Equal(t, "candidate-4", out.Results[2].CandidateID)

	require.Len(t, out.Ranking, 3)
	for i, rc := range out.Ranking {
		assert.Equal(t, i+1, rc.Rank)
	}
	ids := map[string]model.InterviewPriority{}
	for _, rc := range out.Ranking {
		ids[rc.CandidateID] = rc.InterviewPriority
	}
	assert.Equal(t, model.InterviewDoNotInterview, ids["cand-3"])
	require.NotNil(t, out.Matrix)
	assert.Equal(t, 3, out.Matrix.TotalCandidates)

	// the caller's records are left untouched
	assert.NotContains(t, candidates[3], "id")
}

func TestEvaluateBatchEmpty(t *testing.T) {
	t.Parallel()

	out := newService(t, nil).EvaluateBatch(context.Background(), job(), nil, ranking.OverallScore)
	assert.Empty(t, out.Results)
	assert.Empty(t, out.Ranking)
	assert.Nil(t, out.Matrix)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newService(t, nil).Health(context.Background())
	assert.Equal(t, model.HealthHealthy, h.Status)
	assert.True(t, h.TaxonomyLoaded)
	assert.True(t, h.EmbedderReady)
	assert.Equal(t, "hashing", h.Embedder)

	tax, err := taxonomy.Default()
	require.NoError(t, err)
	h = New(Options{Taxonomy: tax}).Health(context.Background())
	assert.Equal(t, model.HealthDegraded, h.Status)
	assert.Equal(t, "none", h.Embedder)

	h = New(Options{}).Health(context.Background())
	assert.Equal(t, model.HealthUnavailable, h.Status)
	assert.False(t, h.TaxonomyLoaded)
}

func TestRulesCanBeDisabled(t *testing.T) {
	t.Parallel()

	tax, err := taxonomy.Default()
	require.NoError(t, err)
	s := New(Options{Taxonomy: tax, DisabledRules: map[string]string{"HARD_MIN_EXPERIENCE": "pilot program"}})

	res := s.Evaluate(context.Background(), with(candidate(), "total_experience_years", 1), job())
	assert.False(t, res.IsRejected)

	var seen bool
	for _, st := range s.Rules() {
		if st.Name == "HARD_MIN_EXPERIENCE" {
			seen = true
			assert.False(t, st.Enabled)
		}
	}
	assert.True(t, seen)
}
