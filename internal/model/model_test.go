package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCandidateWeakTyping(t *testing.T) {
	t.Parallel()

	rec := Record{
		"id":                        42.0,
		"email":                     "a@b.c",
		"total_experience_years":    "5.5",
		"expected_salary":           "",
		"current_salary":            12000,
		"availability_to_join_days": "15",
		"languages_known":           "English, Arabic , ,Hindi",
		"it_skill_certifications":   []any{"AWS SAA", map[string]any{"name": "PMP", "year": 2024}},
		"skills":                    []any{"Go", "SQL"},
		"professional_skills":       []any{"go", "Kubernetes"},
	}

	c, err := DecodeCandidate(rec)
	require.NoError(t, err)

	assert.Equal(t, "42", c.ID)
	assert.InDelta(t, 5.5, c.TotalExperienceYears, 1e-9)
	assert.Nil(t, c.ExpectedSalary)
	require.NotNil(t, c.CurrentSalary)
	assert.InDelta(t, 12000, *c.CurrentSalary, 1e-9)
	assert.Equal(t, 15, c.Availability())
	assert.Equal(t, []string{"English", "Arabic", "Hindi"}, c.LanguagesKnown)
	assert.Equal(t, []string{"AWS SAA", "PMP"}, c.CertificationNames())
	assert.Equal(t, 2024, c.Certifications[1].Year)
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, c.AllSkills())
}

func TestDecodeRejectsMalformedRecord(t *testing.T) {
	t.Parallel()

	_, err := DecodeCandidate(Record{"employment_history": "not a list of entries"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestJobDefaults(t *testing.T) {
	t.Parallel()

	j := &Job{MinExperienceYears: 3, MinGCCExperienceYears: 2}
	assert.InDelta(t, 13, j.ExperienceCeiling(), 1e-9)
	assert.Zero(t, j.GCCMinimum())

	j.RequireGCCExperience = true
	assert.InDelta(t, 2, j.GCCMinimum(), 1e-9)
}

func TestLevelAndDecisionThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score    float64
		level    MatchLevel
		decision Decision
	}{
		{score: 90, level: MatchExcellent, decision: DecisionStrongMatch},
		{score: 85, level: MatchExcellent, decision: DecisionStrongMatch},
		{score: 70, level: MatchGood, decision: DecisionPotentialMatch},
		{score: 55, level: MatchPartial, decision: DecisionWeakMatch},
		{score: 39, level: MatchPoor, decision: DecisionNotRecommended},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelFor(tt.score), "score %v", tt.score)
		assert.Equal(t, tt.decision, DecisionFor(int(tt.score), false), "score %v", tt.score)
	}
	assert.Equal(t, DecisionRejected, DecisionFor(99, true))
}
