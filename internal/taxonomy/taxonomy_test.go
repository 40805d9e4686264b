package taxonomy

import (
	"math"
	"testing"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfilesSumToOne(t *testing.T) {
	t.Parallel()

	tax, err := Default()
	require.NoError(t, err)

	for _, name := range tax.ProfileNames() {
		p, ok := tax.Profile(name)
		require.True(t, ok)

		sum := 0.0
		for _, w := range p.Weights {
			sum += w
		}
		assert.LessOrEqual(t, math.Abs(sum-1), weightEpsilon, "profile %s", name)
	}
}

func TestCanonicalAndNormalize(t *testing.T) {
	t.Parallel()

	tax, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "nodejs dev", tax.Normalize("  Node.JS \t Dev "))
	assert.Equal(t, "логистика", tax.Normalize("Логистика!"))
	assert.Equal(t, "مستودع", tax.Normalize("مستودع"))
	assert.Equal(t, "café 2", tax.Normalize("Café (2)"))
	assert.Equal(t, "javascript", tax.Canonical("JS"))
	assert.Equal(t, "javascript", tax.Canonical("JavaScript"))
	assert.Equal(t, "cobol", tax.Canonical("COBOL"))
	assert.True(t, tax.Excluded("Java", "JS"))
	assert.False(t, tax.Excluded("Java", "Python"))

	cat, ok := tax.Category(tax.Canonical("WMS"))
	require.True(t, ok)
	assert.Equal(t, "logistics.operations", cat)

	assert.Equal(t, []string{"cloud_platforms"}, tax.SharedRelationships(tax.Canonical("aws"), tax.Canonical("azure")))
	assert.Empty(t, tax.SharedRelationships("golang", "customs clearance"))
}

func TestSelectProfile(t *testing.T) {
	t.Parallel()

	tax, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name string
		job  model.Job
		want string
	}{
		{name: "executive title", job: model.Job{Title: "Head of Logistics"}, want: "executive"},
		{name: "senior designation", job: model.Job{Designation: "Senior Manager", Title: "Warehouse"}, want: "senior"},
		{name: "junior", job: model.Job{Title: "Junior Analyst"}, want: "entry"},
		{name: "mid", job: model.Job{Title: "Logistics Coordinator"}, want: "mid"},
		{name: "no keyword uses experience", job: model.Job{Title: "Driver", MinExperienceYears: 6}, want: "senior"},
		{name: "headcount is not head of", job: model.Job{Title: "Headcount Planner"}, want: DefaultProfile},
		{name: "fallback", job: model.Job{Title: "Storekeeper"}, want: DefaultProfile},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tax.SelectProfile(&tt.job).Name)
		})
	}
}

func TestLoadRejectsInvalidProfiles(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`
weight_profiles:
  default:
    skills: 0.9
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsUnknownSectionAndVersion(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`
version: "2.0"
weight_profiles:
  custom:
    charisma: 1.0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
	assert.Contains(t, err.Error(), "unknown section")
}

func TestLoadOverlaysDefaults(t *testing.T) {
	t.Parallel()

	tax, err := Load([]byte(`
matching:
  semantic_similarity_threshold: 0.8
`))
	require.NoError(t, err)
	assert.InDelta(t, 0.8, tax.Matching().SemanticThreshold, 1e-9)
	assert.True(t, tax.Matching().EnableSynonym)
	assert.InDelta(t, 1.0, tax.Weights().Exact, 1e-9)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"THRESHOLDS__ADJUSTMENT_CAP", "6")

	tax, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 6, tax.Thresholds().AdjustmentCap)
}
