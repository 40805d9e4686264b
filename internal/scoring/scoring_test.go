package scoring

import (
	"context"
	"testing"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/skills"
	"github.com/spigell/hh-scorer/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorer(t *testing.T) (*Scorer, *taxonomy.Taxonomy) {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	return NewScorer(tax, skills.NewMatcher(tax, nil, nil), nil), tax
}

func ptr[T any](v T) *T { return &v }

func fieldByName(t *testing.T, s model.SectionAssessment, name string) model.FieldAssessment {
	t.Helper()
	for _, f := range s.Fields {
		if f.Field == name {
			return f
		}
	}
	t.Fatalf("field %s not found in %s", name, s.Section)
	return model.FieldAssessment{}
}

func sectionByName(t *testing.T, a *Assessment, sec model.Section) model.SectionAssessment {
	t.Helper()
	for _, s := range a.Sections {
		if s.Section == sec {
			return s
		}
	}
	t.Fatalf("section %s not found", sec)
	return model.SectionAssessment{}
}

func TestExperienceWithinBand(t *testing.T) {
	t.Parallel()

	s, tax := newScorer(t)
	j := &model.Job{MinExperienceYears: 3, MaxExperienceYears: 7}
	a := s.Assess(context.Background(), &model.Candidate{TotalExperienceYears: 5}, j, tax.SelectProfile(j))

	f := fieldByName(t, sectionByName(t, a, model.SectionExperience), "total_experience")
	assert.InDelta(t, 100, f.Score, 1e-9)
	assert.Contains(t, f.Explanation, "perfectly matches")
	assert.Equal(t, "3-7 years", f.JobRequirement)
}

func TestTotalExperienceSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		years float64
		want  float64
	}{
		{years: 5, want: 100},
		{years: 9, want: 85},
		{years: 20, want: 70},
		{years: 2.5, want: 75},
		{years: 1.6, want: 50},
		{years: 1, want: 25},
	}
	j := &model.Job{MinExperienceYears: 3, MaxExperienceYears: 7}
	for _, tt := range tests {
		got := totalExperienceField(&model.Candidate{TotalExperienceYears: tt.years}, j)
		assert.InDelta(t, tt.want, got.Score, 1e-9, "years=%v", tt.years)
	}
}

func TestNoSkillsScoresZero(t *testing.T) {
	t.Parallel()

	s, tax := newScorer(t)
	j := &model.Job{RequiredSkills: []string{"SAP", "Excel", "WMS", "Forklift", "Customs"}}
	a := s.Assess(context.Background(), &model.Candidate{}, j, tax.SelectProfile(j))

	assert.InDelta(t, 0, a.Scores[model.SectionSkills], 1e-9)
	assert.ElementsMatch(t, j.RequiredSkills, a.Skills.MissingRequired)
	assert.Empty(t, a.Skills.MatchedRequired)
}

func TestSalaryAboveBudget(t *testing.T) {
	t.Parallel()

	s, tax := newScorer(t)
	j := &model.Job{SalaryMin: 10000, SalaryMax: 15000}
	a := s.Assess(context.Background(), &model.Candidate{ExpectedSalary: ptr(20000.0)}, j, tax.SelectProfile(j))

	sec := sectionByName(t, a, model.SectionSalary)
	assert.InDelta(t, 40, sec.Score, 1e-9)
	assert.Equal(t, "Significant salary gap: expects 20,000, budget max is 15,000", fieldByName(t, sec, "expected_salary").Explanation)
}

func TestSalaryProgression(t *testing.T) {
	t.Parallel()

	f := salaryProgressionField(10000, 13000)
	assert.InDelta(t, 85, f.Score, 1e-9)
	assert.Equal(t, "Moderate salary increase expected (30%)", f.Explanation)
}

func TestCVSectionOnlyWithText(t *testing.T) {
	t.Parallel()

	s, tax := newScorer(t)
	j := &model.Job{Title: "Warehouse Supervisor"}

	a := s.Assess(context.Background(), &model.Candidate{}, j, tax.SelectProfile(j))
	_, ok := a.Scores[model.SectionCV]
	assert.False(t, ok)
	assert.Nil(t, a.CV)

	a = s.Assess(context.Background(), &model.Candidate{CVText: "short cv"}, j, tax.SelectProfile(j))
	assert.InDelta(t, 50, a.Scores[model.SectionCV], 1e-9)
}

func TestAnalyzeCV(t *testing.T) {
	t.Parallel()

	cv := `John Doe john.doe@example.com +971 50 123 4567 linkedin.com/in/jdoe
Summary: 8 years of experience in logistics and warehouse operations.
Experience: 2016 - present Warehouse Supervisor, managed a team of 20 and reduced picking errors.
Skills: WMS, SAP, Excel
• Inventory control
• Forklift certified`
	j := &model.Job{
		Title:          "Warehouse Supervisor",
		RequiredSkills: []string{"WMS", "SAP", "Kubernetes"},
		Industry:       "Logistics",
	}

	a := AnalyzeCV(cv, j)
	assert.Contains(t, a.MatchedKeywords, "wms")
	assert.Contains(t, a.MissingKeywords, "kubernetes")
	assert.InDelta(t, 100, a.ExperienceMatch, 1e-9)
	assert.InDelta(t, 95, a.Relevance, 1e-9)
	assert.GreaterOrEqual(t, a.Score, 0.0)
	assert.LessOrEqual(t, a.Score, 100.0)
}

func TestEducationLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, EducationLevel("PhD in Physics"))
	assert.Equal(t, 4, EducationLevel("MBA"))
	assert.Equal(t, 3, EducationLevel("Bachelor of Commerce"))
	assert.Equal(t, 0, EducationLevel("self taught"))

	j := &model.Job{RequiredEducation: "Bachelor's degree"}
	assert.InDelta(t, 75, educationLevelField(&model.Candidate{EducationLevel: "Diploma"}, j).Score, 1e-9)
	assert.InDelta(t, 50, educationLevelField(&model.Candidate{EducationLevel: "High School"}, j).Score, 1e-9)
	assert.InDelta(t, 100, educationLevelField(&model.Candidate{EducationLevel: "Masters"}, j).Score, 1e-9)
}

func TestScoresStayInRange(t *testing.T) {
	t.Parallel()

	s, tax := newScorer(t)
	c := &model.Candidate{
		TotalExperienceYears: 40,
		ExpectedSalary:       ptr(1e9),
		CurrentSalary:        ptr(1.0),
		ITSkills:             []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		Certifications:       []model.Certification{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}},
	}
	j := &model.Job{MinExperienceYears: 2, SalaryMax: 100}
	a := s.Assess(context.Background(), c, j, tax.SelectProfile(j))
	for _, sec := range a.Sections {
		assert.GreaterOrEqual(t, sec.Score, 0.0)
		assert.LessOrEqual(t, sec.Score, 100.0)
		for _, f := range sec.Fields {
			assert.GreaterOrEqual(t, f.Score, 0.0, f.Field)
			assert.LessOrEqual(t, f.Score, 100.0, f.Field)
		}
	}
}
