package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

var fixedNow = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

func newDetector(t *testing.T) *Detector {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	return NewDetector(tax.Thresholds(), fixedNow)
}

func salary(v float64) *float64 { return &v }

func flagsOf(flags []model.RedFlag, typ string) []model.RedFlag {
	var out []model.RedFlag
	for _, f := range flags {
		if f.Type == typ {
			out = append(out, f)
		}
	}
	return out
}

func completeCandidate() *model.Candidate {
	return &model.Candidate{
		Email:                "jane@example.com",
		TotalExperienceYears: 6,
		EducationLevel:       "Bachelor",
		Skills:               []string{"Go", "SQL"},
		EmploymentHistory: []model.Employment{
			{JobTitle: "Engineer", CompanyName: "Acme", StartDate: "2020-01", IsCurrent: true},
		},
	}
}

func TestEmploymentGapsUseCalendarDates(t *testing.T) {
	t.Parallel()

	c := completeCandidate()
	c.EmploymentHistory = []model.Employment{
		{JobTitle: "Lead", CompanyName: "Acme", StartDate: "2023-01", IsCurrent: true},
		{JobTitle: "Engineer", CompanyName: "Beta", StartDate: "2020-01", EndDate: "2021-12"},
		{JobTitle: "Engineer", CompanyName: "Gamma", StartDate: "2017-01", EndDate: "2019-06"},
	}

	gaps := flagsOf(newDetector(t).Detect(c, &model.Job{}, nil), FlagEmploymentGap)
	require.Len(t, gaps, 2)
	assert.Equal(t, model.SeverityHigh, gaps[0].Severity)
	assert.Equal(t, "Employment gap of 12 months between Engineer at Beta and Lead at Acme", gaps[0].Description)
	assert.Equal(t, model.SeverityMedium, gaps[1].Severity)
}

func TestOverlappingSideJobDoesNotInflateGap(t *testing.T) {
	t.Parallel()

	c := completeCandidate()
	c.EmploymentHistory = []model.Employment{
		{JobTitle: "Ops Manager", CompanyName: "Acme", StartDate: "2021-01", IsCurrent: true},
		{JobTitle: "Part-time Lecturer", CompanyName: "College", StartDate: "2012-01", EndDate: "2013-01"},
		{JobTitle: "Logistics Lead", CompanyName: "Beta", StartDate: "2010-01", EndDate: "2020-06"},
	}

	for _, f := range flagsOf(newDetector(t).Detect(c, &model.Job{}, nil), FlagEmploymentGap) {
		assert.NotEqual(t, model.SeverityHigh, f.Severity, f.Description)
		assert.NotContains(t, f.Description, "Part-time Lecturer")
	}
}

func TestShortGapsAreIgnored(t *testing.T) {
	t.Parallel()

	c := completeCandidate()
	c.EmploymentHistory = []model.Employment{
		{JobTitle: "Lead", StartDate: "2022-03", IsCurrent: true},
		{JobTitle: "Engineer", StartDate: "2019-01", EndDate: "2022-01"},
	}
	assert.Empty(t, flagsOf(newDetector(t).Detect(c, &model.Job{}, nil), FlagEmploymentGap))
}

func TestJobHopping(t *testing.T) {
	t.Parallel()

	c := completeCandidate()
	c.EmploymentHistory = []model.Employment{
		{JobTitle: "Analyst", StartDate: "2025-01", EndDate: "2025-06"},
		{JobTitle: "Analyst", StartDate: "2024-01", EndDate: "2024-06"},
		{JobTitle: "Analyst", StartDate: "2023-01", EndDate: "2023-06"},
	}

	hops := flagsOf(newDetector(t).Detect(c, &model.Job{}, nil), FlagJobHopping)
	require.Len(t, hops, 1)
	assert.Equal(t, model.SeverityHigh, hops[0].Severity)
	assert.Contains(t, hops[0].Description, "average tenure of 5.9 months")

	c.EmploymentHistory = c.EmploymentHistory[:2]
	assert.Empty(t, flagsOf(newDetector(t).Detect(c, &model.Job{}, nil), FlagJobHopping))
}

func TestQualificationBand(t *testing.T) {
	t.Parallel()

	d := newDetector(t)
	job := &model.Job{MinExperienceYears: 4, MaxExperienceYears: 6}

	c := completeCandidate()
	c.TotalExperienceYears = 10
	over := flagsOf(d.Detect(c, job, nil), FlagOverqualification)
	require.Len(t, over, 1)
	assert.Equal(t, model.SeverityMedium, over[0].Severity)

	c.TotalExperienceYears = 2
	under := flagsOf(d.Detect(c, job, nil), FlagUnderqualified)
	require.Len(t, under, 1)
	assert.Equal(t, model.SeverityHigh, under[0].Severity)
	assert.Equal(t, "Candidate has only 2.0 years experience, below minimum 4 years required", under[0].Description)

	c.TotalExperienceYears = 5
	flags := d.Detect(c, job, nil)
	assert.Empty(t, flagsOf(flags, FlagOverqualification))
	assert.Empty(t, flagsOf(flags, FlagUnderqualified))
}

func TestSalaryFlags(t *testing.T) {
	t.Parallel()

	d := newDetector(t)
	job := &model.Job{SalaryMax: 15000}

	tests := []struct {
		name     string
		expected float64
		typ      string
		severity model.Severity
	}{
		{name: "above budget", expected: 20000, typ: FlagSalaryMismatch, severity: model.SeverityHigh},
		{name: "far below budget", expected: 8000, typ: FlagSalaryConcern, severity: model.SeverityLow},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := completeCandidate()
			c.ExpectedSalary = salary(tt.expected)
			got := flagsOf(d.Detect(c, job, nil), tt.typ)
			require.Len(t, got, 1)
			assert.Equal(t, tt.severity, got[0].Severity)
		})
	}

	c := completeCandidate()
	c.ExpectedSalary = salary(20000)
	mismatch := flagsOf(d.Detect(c, job, nil), FlagSalaryMismatch)
	require.Len(t, mismatch, 1)
	assert.Equal(t, "Candidate expects 20,000, which is 20%+ above budget of 15,000", mismatch[0].Description)

	c.ExpectedSalary = salary(14000)
	assert.Empty(t, flagsOf(d.Detect(c, job, nil), FlagSalaryMismatch))
	assert.Empty(t, flagsOf(d.Detect(c, job, nil), FlagSalaryConcern))
}

func TestSkillGaps(t *testing.T) {
	t.Parallel()

	d := newDetector(t)
	job := &model.Job{RequiredSkills: []string{"Go", "SQL", "Docker", "Kubernetes"}}

	c := completeCandidate()
	c.Skills = []string{"go"}
	critical := flagsOf(d.Detect(c, job, nil), FlagCriticalSkillGaps)
	require.Len(t, critical, 1)
	assert.Equal(t, model.SeverityCritical, critical[0].Severity)
	assert.Equal(t, "Missing 3 out of 4 required skills: SQL, Docker, Kubernetes", critical[0].Description)

	c.Skills = []string{"go", "sql", "docker"}
	minor := flagsOf(d.Detect(c, job, nil), FlagSkillGaps)
	require.Len(t, minor, 1)
	assert.Equal(t, model.SeverityMedium, minor[0].Severity)

	// a semantic assessment takes precedence over exact names
	sa := &model.SkillAssessment{MissingRequired: []string{}}
	flags := d.Detect(c, job, sa)
	assert.Empty(t, flagsOf(flags, FlagSkillGaps))
	assert.Empty(t, flagsOf(flags, FlagCriticalSkillGaps))
}

func TestCareerRegression(t *testing.T) {
	t.Parallel()

	c := completeCandidate()
	c.EmploymentHistory = []model.Employment{
		{JobTitle: "Senior Manager", StartDate: "2019-01", EndDate: "2023-12"},
		{JobTitle: "Junior Analyst", StartDate: "2024-01", IsCurrent: true},
	}
	got := flagsOf(newDetector(t).Detect(c, &model.Job{}, nil), FlagCareerRegression)
	require.Len(t, got, 1)
	assert.Equal(t, model.SeverityMedium, got[0].Severity)
}

func TestMissingInformation(t *testing.T) {
	t.Parallel()

	flags := newDetector(t).Detect(&model.Candidate{}, &model.Job{}, nil)

	want := map[string]model.Severity{
		FlagMissingContact:    model.SeverityCritical,
		FlagMissingExperience: model.SeverityHigh,
		FlagMissingEducation:  model.SeverityMedium,
	}
	for typ, sev := range want {
		got := flagsOf(flags, typ)
		require.Len(t, got, 1, typ)
		assert.Equal(t, sev, got[0].Severity, typ)
	}
	assert.Empty(t, newDetector(t).Detect(completeCandidate(), &model.Job{}, nil))
}

func TestSkillCurrency(t *testing.T) {
	t.Parallel()

	sc := SkillCurrency([]string{"Python", "AWS", "Excel", "Perl"})
	assert.InDelta(t, 42.5, sc.Score, 1e-9)
	assert.Equal(t, []string{"Python", "AWS"}, sc.CurrentSkills)
	assert.Equal(t, []string{"Perl"}, sc.OutdatedSkills)

	assert.InDelta(t, 50, SkillCurrency(nil).Score, 1e-9)
	assert.InDelta(t, 0, SkillCurrency([]string{"VB6", "Flash"}).Score, 1e-9)
}

func TestLearningPotentialAndCulturalFit(t *testing.T) {
	t.Parallel()

	c := &model.Candidate{
		EducationDetails: []model.Education{{Degree: "Bachelor of Science"}, {Degree: "MBA"}},
		Certifications:   []model.Certification{{Name: "PMP"}},
		EmploymentHistory: []model.Employment{
			{JobTitle: "A"}, {JobTitle: "B"}, {JobTitle: "C"},
		},
	}
	assert.InDelta(t, 85, LearningPotential(c), 1e-9)
	assert.InDelta(t, 50, LearningPotential(&model.Candidate{}), 1e-9)

	flags := []model.RedFlag{
		{Type: FlagJobHopping, Severity: model.SeverityHigh},
		{Type: FlagMissingContact, Severity: model.SeverityCritical},
	}
	assert.InDelta(t, 50, CulturalFit(c, flags), 1e-9)
	assert.InDelta(t, 75, CulturalFit(&model.Candidate{}, nil), 1e-9)
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	high := []model.RedFlag{{Severity: model.SeverityHigh}}
	critical := []model.RedFlag{{Severity: model.SeverityCritical}}

	tests := []struct {
		total    int
		rejected bool
		flags    []model.RedFlag
		prefix   string
	}{
		{total: 95, rejected: true, prefix: "DO NOT PROCEED"},
		{total: 95, flags: critical, prefix: "NOT RECOMMENDED - Critical"},
		{total: 90, prefix: "HIGHLY RECOMMENDED"},
		{total: 90, flags: high, prefix: "RECOMMENDED WITH CAUTION"},
		{total: 78, prefix: "RECOMMENDED - Strong"},
		{total: 65, prefix: "CONSIDER"},
		{total: 40, prefix: "NOT RECOMMENDED - Weak"},
	}
	for _, tt := range tests {
		assert.Contains(t, Recommend(tt.total, tt.rejected, tt.flags), tt.prefix, "total %d", tt.total)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tax, err := taxonomy.Default()
	require.NoError(t, err)

	c := &model.Candidate{
		Email:                "omar@example.com",
		TotalExperienceYears: 7,
		GCCExperienceYears:   3,
		EducationLevel:       "Master",
		Skills:               []string{"Python", "AWS"},
		EmploymentHistory: []model.Employment{
			{JobTitle: "Operations Manager", StartDate: "2021-01", IsCurrent: true},
			{JobTitle: "Analyst", StartDate: "2016-01", EndDate: "2020-12"},
			{JobTitle: "Analyst", StartDate: "2014-01", EndDate: "2015-12"},
		},
	}
	job := &model.Job{MinExperienceYears: 5, MaxExperienceYears: 10, RequiredSkills: []string{"Python"}}
	in := Input{
		TotalScore: 88,
		Sections: map[model.Section]float64{
			model.SectionExperience: 92,
			model.SectionSkills:     100,
			model.SectionSalary:     40,
		},
	}

	got := NewGenerator(tax.Thresholds(), fixedNow).Generate(c, job, in)

	assert.Empty(t, got.RedFlags)
	assert.Equal(t, "steady_upward", got.Progression.Trajectory)
	assert.InDelta(t, 100, got.SkillCurrency.Score, 1e-9)
	assert.Equal(t, []string{
		"Excellent experience match (92%)",
		"Excellent skills match (100%)",
		"7 years of industry experience",
		"3 years of GCC experience",
		"Advanced degree qualification",
	}, got.Strengths)
	assert.Equal(t, []string{"Weak salary match (40%)"}, got.Weaknesses)
	assert.Equal(t, "HIGHLY RECOMMENDED - Excellent match with no major concerns", got.Recommendation)
	assert.Equal(t, []string{
		"Overall Match Score: 88%",
		"Steady career progression",
		"7 years total experience",
	}, got.Highlights)
}

func TestUnavailable(t *testing.T) {
	t.Parallel()

	u := Unavailable()
	assert.Empty(t, u.RedFlags)
	assert.NotNil(t, u.RedFlags)
	assert.InDelta(t, 50, u.LearningPotential, 1e-9)
	assert.Equal(t, "unclear", u.Progression.Trajectory)
}
