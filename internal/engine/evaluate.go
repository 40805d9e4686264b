package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/completeness"
	"github.com/spigell/hh-scorer/internal/growth"
	"github.com/spigell/hh-scorer/internal/insights"
	"github.com/spigell/hh-scorer/internal/logger"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/recommendation"
	"github.com/spigell/hh-scorer/internal/rejection"
	"github.com/spigell/hh-scorer/internal/scoring"
	"github.com/spigell/hh-scorer/internal/utils"
)

const cvPreviewLen = 120

var assessmentNamespace = uuid.MustParse("6f1c2b9e-5d43-4c1a-9a5e-2f0d8e7b3a61")

// Evaluate scores one candidate against one job. It never fails: incomplete
// data yields a DATA_INCOMPLETE rejection and an internal failure yields a
// result flagged as mock.
func (s *Service) Evaluate(ctx context.Context, candidate, job model.Record) *model.AssessmentResult {
	res, err := s.evaluate(ctx, candidate, job)
	if err != nil {
		logger.WithCommonFields(s.log, candidate.ID(), job.ID()).Error("evaluation failed, returning mock result", zap.Error(err))
		return s.mock(candidate, job, err)
	}
	return res
}

func (s *Service) evaluate(ctx context.Context, candidate, job model.Record) (res *model.AssessmentResult, err error) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w: %v", ErrEvaluationPanic, r)
		}
		if err == nil && s.metrics != nil {
			s.metrics.EvaluationsTotal.WithLabelValues(string(res.Decision)).Inc()
			s.metrics.EvaluationDuration.Observe(time.Since(started).Seconds())
		}
	}()

	if s.tax == nil {
		return nil, ErrNotReady
	}

	log := logger.WithCommonFields(s.log, candidate.ID(), job.ID())
	res = s.newResult(candidate.ID(), job.ID())

	report := completeness.Combine(completeness.ValidateCandidate(candidate), completeness.ValidateJob(job))
	res.Completeness = report
	if !report.Valid {
		log.Info("insufficient data for assessment", zap.Int("critical_missing", len(report.CriticalMissing)))
		return incomplete(res, report), nil
	}

	c, err := model.DecodeCandidate(candidate)
	if err != nil {
		return nil, err
	}
	j, err := model.DecodeJob(job)
	if err != nil {
		return nil, err
	}

	log.Debug("evaluating candidate",
		zap.String("job_title", j.Title),
		zap.String("cv_preview", utils.TruncateForLog(c.CVText, cvPreviewLen)),
	)

	verdict := rejection.Run(s.rules, c, j, log)
	profile := s.tax.SelectProfile(j)
	a := s.scorer.Assess(ctx, c, j, profile)
	agg := scoring.Aggregate(a.Scores, profile)
	adjusted, adjustments := scoring.Adjust(agg.Base, a.Scores, c, j, s.tax.Thresholds())

	rejected := !verdict.Eligible
	total := adjusted
	if rejected {
		total = 0
	}

	res.TotalScore = total
	res.BaseScore = agg.Base
	res.AdjustedScore = adjusted
	res.Decision = model.DecisionFor(total, rejected)
	res.IsRejected = rejected
	res.RejectionRuleCode = verdict.Code
	res.RuleTrace = verdict.Trace
	for _, f := range verdict.Failures {
		res.RejectionReasons = append(res.RejectionReasons, f.Reason)
	}

	res.WeightProfile = profile.Name
	res.SectionScores = a.Scores
	res.Sections = a.Sections
	res.Skills = a.Skills
	res.Adjustments = adjustments
	res.Interactions = scoring.DetectInteractions(agg.Base, a.Scores, c)
	res.Confidence = scoring.Confidence(report.Score, a, c)

	res.Explanation = scoring.OverallExplanation(a.Sections, total)
	if rejected {
		res.Explanation = fmt.Sprintf("Rejected by %s: %s. %s", verdict.Code, verdict.Reason, res.Explanation)
	}
	res.Recommendation = scoring.RecommendationText(total, rejected)
	strengths, concerns := scoring.Highlights(a, c)
	res.Strengths = strengths
	res.Concerns = append(res.Concerns, res.RejectionReasons...)
	res.Concerns = append(res.Concerns, concerns...)
	res.Concerns = append(res.Concerns, scoring.SoftConcerns(a.Sections, total)...)
	res.ImprovementTips = scoring.ImprovementTips(a)
	res.QuickSummary = scoring.QuickSummary(strengths, res.Concerns)

	res.Growth = runStage(s, log, res, Stage[*model.GrowthPotential]{
		Name:     "growth",
		Run:      func() (*model.GrowthPotential, error) { return s.growth.Analyze(c, j, float64(total)), nil },
		Fallback: growth.NotAssessed,
	})
	res.Insights = runStage(s, log, res, Stage[*model.CandidateInsights]{
		Name: "insights",
		Run: func() (*model.CandidateInsights, error) {
			return s.insights.Generate(c, j, insights.Input{
				TotalScore: total,
				Rejected:   rejected,
				Sections:   a.Scores,
				Skills:     a.Skills,
			}), nil
		},
		Fallback: insights.Unavailable,
	})
	res.SmartRecommendation = runStage(s, log, res, Stage[*model.SmartRecommendation]{
		Name: "recommendation",
		Run: func() (*model.SmartRecommendation, error) {
			return s.recommender.Recommend(recommendation.Input{
				Score:      total,
				BaseScore:  agg.Base,
				Rejected:   rejected,
				Confidence: res.Confidence,
				Growth:     res.Growth,
				Insights:   res.Insights,
				Sections:   a.Sections,
			}), nil
		},
		Fallback: func() *model.SmartRecommendation { return recommendation.Neutral(total) },
	})

	log.Info("candidate evaluated",
		zap.Int("total_score", res.TotalScore),
		zap.String("decision", string(res.Decision)),
		zap.String("profile", res.WeightProfile),
		zap.Float64("confidence", res.Confidence.Score),
	)
	return res, nil
}

// newResult fills the metadata shared by every kind of result.
func (s *Service) newResult(candidateID, jobID string) *model.AssessmentResult {
	evaluatedAt := s.now().UTC().Format(time.RFC3339)
	return &model.AssessmentResult{
		AssessmentID:     assessmentID(candidateID, jobID, evaluatedAt),
		CandidateID:      candidateID,
		JobID:            jobID,
		ModelVersion:     ModelVersion,
		EvaluatedAt:      evaluatedAt,
		RejectionReasons: []string{},
		RuleTrace:        []string{},
		SectionScores:    map[model.Section]float64{},
		Sections:         []model.SectionAssessment{},
		Strengths:        []string{},
		Concerns:         []string{},
		ImprovementTips:  []model.ImprovementTip{},
		Adjustments:      []model.ContextualAdjustment{},
		Interactions:     []model.FeatureInteraction{},
	}
}

// assessmentID is derived from the inputs so that re-running an evaluation
// at the same instant yields the same identifier.
func assessmentID(candidateID, jobID, evaluatedAt string) string {
	name := strings.Join([]string{ModelVersion, candidateID, jobID, evaluatedAt}, "|")
	return uuid.NewSHA1(assessmentNamespace, []byte(name)).String()
}
