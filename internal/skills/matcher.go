// Package skills resolves job skills against a candidate's skills using exact,
// synonym, semantic and category strategies.
package skills

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spigell/hh-scorer/internal/embedding"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
	"go.uber.org/zap"
)

const (
	synonymConfidence  = 0.95
	categoryConfidence = 0.70

	recommendationLimit = 5
	requiredShare       = 0.7
	preferredShare      = 0.3
)

// Embedder is the subset of embedding.Provider used for semantic matching.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Matcher is safe for concurrent use; its only mutable state lives in the embedder cache.
type Matcher struct {
	tax      *taxonomy.Taxonomy
	embedder Embedder
	log      *zap.Logger
}

// NewMatcher creates a matcher. A nil embedder disables semantic matching.
func NewMatcher(tax *taxonomy.Taxonomy, embedder Embedder, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{tax: tax, embedder: embedder, log: log}
}

type matchRun struct {
	ctx      context.Context
	degraded atomic.Bool
}

// Match resolves required and preferred job skills against candidate skills.
func (m *Matcher) Match(ctx context.Context, required, preferred, candidate []string) *model.SkillAssessment {
	res := &model.SkillAssessment{
		MatchedRequired:  []model.SkillMatch{},
		MatchedPreferred: []model.SkillMatch{},
		MissingRequired:  []string{},
		MissingPreferred: []string{},
		TotalRequired:    len(required),
		TotalPreferred:   len(preferred),
	}

	if len(candidate) == 0 && (len(required) > 0 || len(preferred) > 0) {
		res.MissingRequired = append(res.MissingRequired, required...)
		res.MissingPreferred = append(res.MissingPreferred, preferred...)
		res.Recommendations = m.Recommendations(res.MissingRequired, res.MissingPreferred, recommendationLimit)
		return res
	}

	run := &matchRun{ctx: ctx}

	for _, skill := range required {
		if match, ok := m.matchOne(run, skill, candidate, true); ok {
			res.MatchedRequired = append(res.MatchedRequired, match)
		} else {
			res.MissingRequired = append(res.MissingRequired, skill)
		}
	}
	for _, skill := range preferred {
		if match, ok := m.matchOne(run, skill, candidate, false); ok {
			res.MatchedPreferred = append(res.MatchedPreferred, match)
		} else {
			res.MissingPreferred = append(res.MissingPreferred, skill)
		}
	}

	res.RequiredScore, res.RequiredMatchRate = score(res.MatchedRequired, len(required))
	res.PreferredScore, res.PreferredMatchRate = score(res.MatchedPreferred, len(preferred))
	res.OverallScore = res.RequiredScore*requiredShare + res.PreferredScore*preferredShare

	for _, list := range [][]model.SkillMatch{res.MatchedRequired, res.MatchedPreferred} {
		for _, match := range list {
			switch match.MatchType {
			case model.MatchTypeExact:
				res.Counts.Exact++
			case model.MatchTypeSynonym:
				res.Counts.Synonym++
			case model.MatchTypeSemantic:
				res.Counts.Semantic++
			case model.MatchTypeCategory:
				res.Counts.Category++
			}
		}
	}

	res.Recommendations = m.Recommendations(res.MissingRequired, res.MissingPreferred, recommendationLimit)
	res.SemanticDegraded = run.degraded.Load()

	return res
}

// score returns the weighted match score (0-100) and the plain match rate (0-1).
func score(matches []model.SkillMatch, total int) (float64, float64) {
	if total == 0 {
		return 100, 1
	}
	sum := 0.0
	for _, match := range matches {
		sum += match.Confidence * match.Weight
	}
	return sum / float64(total) * 100, float64(len(matches)) / float64(total)
}

func (m *Matcher) matchOne(run *matchRun, jobSkill string, candidate []string, required bool) (model.SkillMatch, bool) {
	cfg := m.tax.Matching()
	weights := m.tax.Weights()

	jobNorm := m.tax.Normalize(jobSkill)
	if jobNorm == "" {
		return model.SkillMatch{}, false
	}
	jobCanonical := m.tax.Canonical(jobSkill)
	jobCategory, _ := m.tax.Category(jobCanonical)

	var best model.SkillMatch
	bestConfidence := 0.0

	consider := func(candidateSkill string, t model.MatchType, confidence float64, category string) {
		if confidence <= bestConfidence {
			return
		}
		bestConfidence = confidence
		best = model.SkillMatch{
			JobSkill:       jobSkill,
			CandidateSkill: candidateSkill,
			MatchType:      t,
			Confidence:     confidence,
			Weight:         weights.For(t),
			Required:       required,
			Category:       category,
		}
	}

	for _, candidateSkill := range candidate {
		candNorm := m.tax.Normalize(candidateSkill)
		if candNorm == "" {
			continue
		}
		candCanonical := m.tax.Canonical(candidateSkill)

		if jobNorm == candNorm {
			match := model.SkillMatch{
				JobSkill:       jobSkill,
				CandidateSkill: candidateSkill,
				MatchType:      model.MatchTypeExact,
				Confidence:     1.0,
				Weight:         weights.Exact,
				Required:       required,
				Category:       jobCategory,
			}
			match.Explanation = Explain(match)
			return match, true
		}

		if cfg.EnableSynonym && jobCanonical == candCanonical {
			consider(candidateSkill, model.MatchTypeSynonym, synonymConfidence, jobCategory)
		}

		if cfg.EnableSemantic {
			if sim := m.similarity(run, jobSkill, candidateSkill); sim >= cfg.SemanticThreshold {
				consider(candidateSkill, model.MatchTypeSemantic, sim*cfg.SemanticConfidenceCap, jobCategory)
			}
		}

		if cfg.EnableCategory {
			if shared := m.tax.SharedRelationships(jobCanonical, candCanonical); len(shared) > 0 {
				consider(candidateSkill, model.MatchTypeCategory, categoryConfidence, shared[0])
			}
		}
	}

	if bestConfidence == 0 {
		return model.SkillMatch{}, false
	}
	best.Explanation = Explain(best)
	return best, true
}

func (m *Matcher) similarity(run *matchRun, a, b string) float64 {
	if m.embedder == nil || run.degraded.Load() {
		return 0
	}
	if m.tax.Excluded(a, b) {
		return 0
	}

	ea, err := m.embedder.Embed(run.ctx, m.tax.Canonical(a))
	if err == nil {
		var eb []float32
		eb, err = m.embedder.Embed(run.ctx, m.tax.Canonical(b))
		if err == nil {
			return embedding.Cosine(ea, eb)
		}
	}

	if !run.degraded.Swap(true) {
		m.log.Warn("semantic matching unavailable, continuing without it", zap.Error(err))
	}
	return 0
}

// Recommendations suggests missing skills to acquire, required first.
func (m *Matcher) Recommendations(missingRequired, missingPreferred []string, limit int) []model.SkillRecommendation {
	out := make([]model.SkillRecommendation, 0, limit)
	for _, skill := range missingRequired {
		if len(out) >= limit {
			return out
		}
		out = append(out, model.SkillRecommendation{
			Skill:    skill,
			Reason:   fmt.Sprintf("Required skill in %s category", m.categoryOf(skill)),
			Priority: "critical",
		})
	}
	for _, skill := range missingPreferred {
		if len(out) >= limit {
			return out
		}
		out = append(out, model.SkillRecommendation{
			Skill:    skill,
			Reason:   fmt.Sprintf("Preferred skill in %s category - would strengthen application", m.categoryOf(skill)),
			Priority: "high",
		})
	}
	return out
}

func (m *Matcher) categoryOf(skill string) string {
	if c, ok := m.tax.Category(m.tax.Canonical(skill)); ok {
		return c
	}
	return "General"
}

// Explain renders a human readable explanation of a match.
func Explain(match model.SkillMatch) string {
	switch match.MatchType {
	case model.MatchTypeExact:
		return fmt.Sprintf("Perfect match: '%s' exactly matches required '%s'", match.CandidateSkill, match.JobSkill)
	case model.MatchTypeSynonym:
		return fmt.Sprintf("Synonym match: '%s' is equivalent to '%s'", match.CandidateSkill, match.JobSkill)
	case model.MatchTypeSemantic:
		return fmt.Sprintf("Related skill: '%s' is similar to '%s' (%.0f%% match)", match.CandidateSkill, match.JobSkill, match.Confidence*100)
	case model.MatchTypeCategory:
		return fmt.Sprintf("Category match: '%s' is in the same category as '%s'", match.CandidateSkill, match.JobSkill)
	}
	return fmt.Sprintf("Matched '%s' to '%s'", match.CandidateSkill, match.JobSkill)
}
