package taxonomy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

// SupportedMajorVersion is the configuration schema major version understood by this build.
const SupportedMajorVersion = "1"

// ErrInvalidConfig is returned when the configuration artifact violates its schema.
var ErrInvalidConfig = errors.New("invalid taxonomy config")

// Config is the raw, externally editable configuration artifact.
type Config struct {
	Version          string                        `koanf:"version"`
	Matching         Matching                      `koanf:"matching"`
	MatchTypeWeights MatchTypeWeights              `koanf:"match_type_weights"`
	Synonyms         []SynonymGroup                `koanf:"synonyms"`
	Categories       []Group                       `koanf:"categories"`
	Relationships    []Group                       `koanf:"relationships"`
	Exclusions       Exclusions                    `koanf:"exclusions"`
	WeightProfiles   map[string]map[string]float64 `koanf:"weight_profiles"`
	ProfileKeywords  map[string][]string           `koanf:"profile_keywords"`
	Thresholds       Thresholds                    `koanf:"thresholds"`
	Intervals        IntervalTable                 `koanf:"confidence_intervals"`
}

// Matching toggles skill matching strategies.
type Matching struct {
	EnableSynonym         bool    `koanf:"enable_synonym_matching"`
	EnableSemantic        bool    `koanf:"enable_semantic_matching"`
	EnableCategory        bool    `koanf:"enable_category_matching"`
	SemanticThreshold     float64 `koanf:"semantic_similarity_threshold"`
	SemanticConfidenceCap float64 `koanf:"semantic_confidence_cap"`
	StripSpecialChars     bool    `koanf:"strip_special_chars"`
	EmbeddingCacheSize    int     `koanf:"embedding_cache_size"`
}

// MatchTypeWeights is the weight applied per resolved match type.
type MatchTypeWeights struct {
	Exact    float64 `koanf:"exact_match"`
	Synonym  float64 `koanf:"synonym_match"`
	Semantic float64 `koanf:"semantic_match"`
	Category float64 `koanf:"category_match"`
}

// For returns the weight configured for a match type.
func (w MatchTypeWeights) For(t model.MatchType) float64 {
	switch t {
	case model.MatchTypeExact:
		return w.Exact
	case model.MatchTypeSynonym:
		return w.Synonym
	case model.MatchTypeSemantic:
		return w.Semantic
	case model.MatchTypeCategory:
		return w.Category
	}
	return 0
}

// SynonymGroup maps aliases onto one canonical skill.
type SynonymGroup struct {
	Canonical string   `koanf:"canonical"`
	Aliases   []string `koanf:"aliases"`
}

// Group is a named list of skills, used for categories and relationship groups.
type Group struct {
	Name   string   `koanf:"name"`
	Skills []string `koanf:"skills"`
}

// Exclusions lists skill pairs that must never match each other.
type Exclusions struct {
	DoNotMatch [][]string `koanf:"do_not_match"`
}

// Thresholds holds the tunable knobs used by rules and detectors.
type Thresholds struct {
	SalaryMismatchRatio          float64 `koanf:"salary_mismatch_ratio"`
	SalaryConcernRatio           float64 `koanf:"salary_concern_ratio"`
	OverqualificationRatio       float64 `koanf:"overqualification_ratio"`
	UnderqualificationRatio      float64 `koanf:"underqualification_ratio"`
	EmploymentGapMonths          int     `koanf:"employment_gap_months"`
	SevereGapMonths              int     `koanf:"severe_gap_months"`
	JobHoppingMinEntries         int     `koanf:"job_hopping_min_entries"`
	JobHoppingHighTenureMonths   float64 `koanf:"job_hopping_high_tenure_months"`
	JobHoppingMediumTenureMonths float64 `koanf:"job_hopping_medium_tenure_months"`
	CriticalSkillGapRatio        float64 `koanf:"critical_skill_gap_ratio"`
	HardMinExperienceRatio       float64 `koanf:"hard_min_experience_ratio"`
	HardSalaryCeilingRatio       float64 `koanf:"hard_salary_ceiling_ratio"`
	AdjustmentCap                int     `koanf:"adjustment_cap"`
	LongNoticeDays               int     `koanf:"long_notice_days"`
}

// IntervalTable configures confidence interval width per confidence level.
type IntervalTable struct {
	BaseMargin float64                   `koanf:"base_margin"`
	Levels     map[string]IntervalParams `koanf:"levels"`
}

// IntervalParams is the nominal level and margin multiplier for one confidence level.
type IntervalParams struct {
	Level      int     `koanf:"level"`
	Multiplier float64 `koanf:"multiplier"`
}

const weightEpsilon = 0.001

// Validate checks the artifact against its schema.
func (c *Config) Validate() error {
	var problems []string

	major, _, _ := strings.Cut(strings.TrimSpace(c.Version), ".")
	if major != SupportedMajorVersion {
		problems = append(problems, fmt.Sprintf("unsupported version %q (want %s.x)", c.Version, SupportedMajorVersion))
	}

	if c.Matching.SemanticThreshold <= 0 || c.Matching.SemanticThreshold > 1 {
		problems = append(problems, "matching.semantic_similarity_threshold must be in (0, 1]")
	}
	if c.Matching.SemanticConfidenceCap <= 0 || c.Matching.SemanticConfidenceCap > 1 {
		problems = append(problems, "matching.semantic_confidence_cap must be in (0, 1]")
	}
	if c.Matching.EmbeddingCacheSize < 10 {
		problems = append(problems, "matching.embedding_cache_size must be at least 10")
	}

	for name, w := range map[string]float64{
		"exact_match":    c.MatchTypeWeights.Exact,
		"synonym_match":  c.MatchTypeWeights.Synonym,
		"semantic_match": c.MatchTypeWeights.Semantic,
		"category_match": c.MatchTypeWeights.Category,
	} {
		if w < 0 || w > 1 {
			problems = append(problems, fmt.Sprintf("match_type_weights.%s must be in [0, 1]", name))
		}
	}

	for i, g := range c.Synonyms {
		if strings.TrimSpace(g.Canonical) == "" {
			problems = append(problems, fmt.Sprintf("synonyms[%d]: canonical is empty", i))
		}
	}
	for i, pair := range c.Exclusions.DoNotMatch {
		if len(pair) != 2 {
			problems = append(problems, fmt.Sprintf("exclusions.do_not_match[%d]: want a pair, got %d entries", i, len(pair)))
		}
	}

	if _, ok := c.WeightProfiles[DefaultProfile]; !ok {
		problems = append(problems, "weight_profiles.default is required")
	}
	for name, profile := range c.WeightProfiles {
		sum := 0.0
		for section, w := range profile {
			if _, err := model.ParseSection(section); err != nil {
				problems = append(problems, fmt.Sprintf("weight_profiles.%s: %v", name, err))
			}
			if w < 0 {
				problems = append(problems, fmt.Sprintf("weight_profiles.%s.%s is negative", name, section))
			}
			sum += w
		}
		if math.Abs(sum-1) > weightEpsilon {
			problems = append(problems, fmt.Sprintf("weight_profiles.%s sums to %.3f, want 1.0", name, sum))
		}
	}
	for name := range c.ProfileKeywords {
		if _, ok := c.WeightProfiles[name]; !ok {
			problems = append(problems, fmt.Sprintf("profile_keywords.%s has no matching weight profile", name))
		}
	}

	t := c.Thresholds
	for name, v := range map[string]float64{
		"salary_mismatch_ratio":            t.SalaryMismatchRatio,
		"salary_concern_ratio":             t.SalaryConcernRatio,
		"overqualification_ratio":          t.OverqualificationRatio,
		"underqualification_ratio":         t.UnderqualificationRatio,
		"critical_skill_gap_ratio":         t.CriticalSkillGapRatio,
		"hard_min_experience_ratio":        t.HardMinExperienceRatio,
		"hard_salary_ceiling_ratio":        t.HardSalaryCeilingRatio,
		"job_hopping_high_tenure_months":   t.JobHoppingHighTenureMonths,
		"job_hopping_medium_tenure_months": t.JobHoppingMediumTenureMonths,
	} {
		if v <= 0 {
			problems = append(problems, fmt.Sprintf("thresholds.%s must be positive", name))
		}
	}
	if t.EmploymentGapMonths <= 0 || t.SevereGapMonths < t.EmploymentGapMonths {
		problems = append(problems, "thresholds: gap months must be positive and severe >= regular")
	}
	if t.JobHoppingMinEntries < 2 {
		problems = append(problems, "thresholds.job_hopping_min_entries must be at least 2")
	}
	if t.AdjustmentCap < 0 || t.AdjustmentCap > 100 {
		problems = append(problems, "thresholds.adjustment_cap must be in [0, 100]")
	}

	if c.Intervals.BaseMargin <= 0 {
		problems = append(problems, "confidence_intervals.base_margin must be positive")
	}
	for _, lvl := range []model.ConfidenceLevel{model.ConfidenceVeryHigh, model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow} {
		p, ok := c.Intervals.Levels[string(lvl)]
		if !ok {
			problems = append(problems, fmt.Sprintf("confidence_intervals.levels.%s is required", lvl))
			continue
		}
		if p.Level <= 0 || p.Level >= 100 || p.Multiplier <= 0 {
			problems = append(problems, fmt.Sprintf("confidence_intervals.levels.%s is out of range", lvl))
		}
	}
	for name := range c.Intervals.Levels {
		if _, err := model.ParseConfidenceLevel(name); err != nil {
			problems = append(problems, fmt.Sprintf("confidence_intervals.levels: %v", err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
