package scoring

import (
	"math"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

const (
	completenessShare = 0.4
	agreementShare    = 0.3
	coverageShare     = 0.3
	factorPenalty     = 0.05

	disagreementStdDev = 25
	incompleteBelow    = 70
	sparseSkills       = 3
)

// Uncertainty factors lowering confidence.
const (
	FactorIncompleteProfile    = "incomplete_profile"
	FactorSignalDisagreement   = "signal_disagreement"
	FactorMissingCV            = "missing_cv"
	FactorSparseSkills         = "sparse_skills"
	FactorEmbeddingUnavailable = "embedding_unavailable"
)

// Confidence derives how much the score can be trusted from data completeness
// (0-100), agreement between section scores and field coverage.
func Confidence(completeness float64, a *Assessment, c *model.Candidate) model.ConfidenceMetrics {
	completeness = clamp(completeness) / 100

	scores := make([]float64, 0, len(a.Sections))
	var fields, covered int
	for _, s := range a.Sections {
		scores = append(scores, s.Score)
		for _, f := range s.Fields {
			fields++
			if specified(f.CandidateValue) {
				covered++
			}
		}
	}
	sd := stdDev(scores)
	agreement := 1 - math.Min(1, sd/50)
	coverage := 0.0
	if fields > 0 {
		coverage = float64(covered) / float64(fields)
	}

	factors := []string{}
	if completeness*100 < incompleteBelow {
		factors = append(factors, FactorIncompleteProfile)
	}
	if sd > disagreementStdDev {
		factors = append(factors, FactorSignalDisagreement)
	}
	if strings.TrimSpace(c.CVText) == "" {
		factors = append(factors, FactorMissingCV)
	}
	if len(c.AllSkills()) < sparseSkills {
		factors = append(factors, FactorSparseSkills)
	}
	if a.Skills != nil && a.Skills.SemanticDegraded {
		factors = append(factors, FactorEmbeddingUnavailable)
	}

	score := completenessShare*completeness + agreementShare*agreement + coverageShare*coverage - factorPenalty*float64(len(factors))
	score = round3(math.Max(0, math.Min(1, score)))

	return model.ConfidenceMetrics{
		Level:              ConfidenceLevelFor(score),
		Score:              score,
		UncertaintyFactors: factors,
		DataCompleteness:   round3(completeness),
		SignalAgreement:    round3(agreement),
		FieldCoverage:      round3(coverage),
	}
}

// ConfidenceLevelFor buckets a 0-1 confidence score.
func ConfidenceLevelFor(score float64) model.ConfidenceLevel {
	switch {
	case score >= 0.9:
		return model.ConfidenceVeryHigh
	case score >= 0.8:
		return model.ConfidenceHigh
	case score >= 0.6:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

func specified(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		val = strings.TrimSpace(val)
		return val != "" && val != "Not specified" && val != "0 certifications"
	case []string:
		if len(val) == 1 && strings.HasPrefix(val[0], "None ") {
			return false
		}
		return len(val) > 0
	}
	return true
}

func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(len(values)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
