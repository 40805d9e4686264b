// Package recommendation turns a scored assessment into a hiring action with a
// confidence interval, risk level and next steps.
package recommendation

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

const (
	immediateInterviewScore = 80
	shortlistScore          = 70
	waitlistScore           = 60
	rejectBelow             = 40
	growthRescueScore       = 65
	holdFlagCount           = 3
	maxFocusAreas           = 5
)

// Input is everything the engine needs about one evaluated candidate.
type Input struct {
	// Score is the adjusted total; BaseScore is the weighted score before
	// contextual adjustments and decides the reject floor.
	Score      int
	BaseScore  int
	Rejected   bool
	Confidence model.ConfidenceMetrics
	Growth     *model.GrowthPotential
	Insights   *model.CandidateInsights
	Sections   []model.SectionAssessment
}

func (in Input) redFlags() []model.RedFlag {
	if in.Insights == nil {
		return nil
	}
	return in.Insights.RedFlags
}

func (in Input) growthScore() float64 {
	if in.Growth == nil || in.Growth.Tier == model.GrowthNotAssessed {
		return 0
	}
	return in.Growth.Score
}

// Engine produces smart recommendations. It is safe for concurrent use.
type Engine struct {
	intervals taxonomy.IntervalTable
}

// NewEngine creates an engine using the configured confidence interval table.
func NewEngine(intervals taxonomy.IntervalTable) *Engine {
	return &Engine{intervals: intervals}
}

// Recommend builds the recommendation for in.
func (e *Engine) Recommend(in Input) *model.SmartRecommendation {
	score := float64(in.Score)
	flags := in.redFlags()

	ci := e.Interval(score, in.Confidence.Level, in.Confidence.Score)
	action, priority := decide(in, ci)
	risk := Risk(score, ci, len(flags), in.Confidence.Score)

	return &model.SmartRecommendation{
		Action:              action,
		Priority:            priority,
		Interval:            ci,
		RiskLevel:           risk,
		NextSteps:           nextSteps(action, score, flags),
		SuccessProbability:  SuccessProbability(score, in.Confidence.Score, in.growthScore(), len(flags)),
		InterviewFocusAreas: focusAreas(in),
		DecisionFactors:     decisionFactors(in, ci, risk),
		Message:             message(action, score, ci, in.growthScore(), risk, len(flags)),
	}
}

// Interval computes the confidence interval around score. Lower confidence widens it.
func (e *Engine) Interval(score float64, level model.ConfidenceLevel, confidence float64) model.ConfidenceInterval {
	params, ok := e.intervals.Levels[string(level)]
	if !ok {
		params = e.intervals.Levels[string(model.ConfidenceMedium)]
	}

	margin := e.intervals.BaseMargin * params.Multiplier * (1.5 - confidence)
	if margin < 0 {
		margin = 0
	}
	return model.ConfidenceInterval{
		PointEstimate:   round1(score),
		LowerBound:      round1(math.Max(0, score-margin)),
		UpperBound:      round1(math.Min(100, score+margin)),
		MarginOfError:   round1(margin),
		ConfidenceLevel: params.Level,
	}
}

func decide(in Input, ci model.ConfidenceInterval) (model.Action, model.Priority) {
	score := in.Score
	flags := len(in.redFlags())

	switch {
	case in.Rejected || in.BaseScore < rejectBelow:
		return model.ActionReject, model.PriorityNone
	case flags >= holdFlagCount:
		return model.ActionHoldForReview, model.PriorityLow
	case in.Growth != nil && in.Growth.Tier == model.GrowthHighPotential && score >= growthRescueScore:
		return model.ActionShortlist, model.PriorityHigh
	case score >= immediateInterviewScore && ci.LowerBound >= 75:
		return model.ActionImmediateInterview, model.PriorityCritical
	case score >= immediateInterviewScore && flags == 0:
		return model.ActionImmediateInterview, model.PriorityHigh
	case score >= shortlistScore && ci.LowerBound >= 65:
		return model.ActionShortlist, model.PriorityHigh
	case score >= shortlistScore && flags <= 1:
		return model.ActionShortlist, model.PriorityMedium
	case score >= waitlistScore && ci.LowerBound >= 55:
		return model.ActionWaitlist, model.PriorityMedium
	case score >= waitlistScore:
		return model.ActionWaitlist, model.PriorityLow
	default:
		return model.ActionReject, model.PriorityNone
	}
}

// Risk buckets hiring risk from interval width, red flags and confidence.
func Risk(score float64, ci model.ConfidenceInterval, flags int, confidence float64) model.RiskLevel {
	points := 0

	switch width := ci.UpperBound - ci.LowerBound; {
	case width > 15:
		points += 2
	case width > 10:
		points++
	}
	switch {
	case flags >= 2:
		points += 2
	case flags == 1:
		points++
	}
	switch {
	case confidence < 0.6:
		points += 2
	case confidence < 0.75:
		points++
	}
	if score < 70 && flags > 0 {
		points++
	}

	switch {
	case points >= 4:
		return model.RiskHigh
	case points >= 2:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// SuccessProbability estimates the likelihood of a successful hire.
func SuccessProbability(score, confidence, growth float64, flags int) float64 {
	growthBonus := 0.0
	switch {
	case growth >= 75:
		growthBonus = 10
	case growth >= 65:
		growthBonus = 5
	}
	p := score + (confidence-0.5)*20 + growthBonus - math.Min(float64(flags*5), 20)
	return round1(math.Max(0, math.Min(100, p)))
}

func nextSteps(action model.Action, score float64, flags []model.RedFlag) []string {
	switch action {
	case model.ActionImmediateInterview:
		steps := []string{"Schedule interview within 24-48 hours", "Prepare job offer parameters"}
		if score < 90 && len(flags) > 0 {
			steps = append(steps, "Address minor gaps during interview: "+strings.Join(flagTypes(flags, 2), ", "))
		}
		return steps
	case model.ActionShortlist:
		steps := []string{"Add to shortlist for interview scheduling", "Request additional information if needed"}
		if len(flags) > 0 {
			steps = append(steps, "Verify concerns: "+flags[0].Description)
		}
		return append(steps, "Compare with other shortlisted candidates")
	case model.ActionWaitlist:
		steps := []string{"Add to waitlist - review if shortlist exhausted", "Monitor for better candidates"}
		if score >= 65 {
			steps = append(steps, "Consider if requirements can be adjusted")
		}
		return steps
	case model.ActionHoldForReview:
		return []string{
			"Senior recruiter review required",
			"Investigate red flags: " + strings.Join(flagTypes(flags, 3), ", "),
			"Request additional documentation",
		}
	default:
		return []string{"Send polite rejection email", "Keep in database for future opportunities"}
	}
}

func focusAreas(in Input) []string {
	var out []string
	weak := 0
	for _, s := range in.Sections {
		if s.Score < 70 && weak < 3 {
			out = append(out, fmt.Sprintf("Probe %s capabilities in depth", strings.ReplaceAll(string(s.Section), "_", " ")))
			weak++
		}
	}
	flags := in.redFlags()
	for i := 0; i < len(flags) && i < 2; i++ {
		out = append(out, "Clarify: "+flags[i].Description)
	}
	if in.Insights != nil {
		for i := 0; i < len(in.Insights.Weaknesses) && i < 2; i++ {
			out = append(out, "Assess: "+in.Insights.Weaknesses[i])
		}
	}
	if len(out) > maxFocusAreas {
		out = out[:maxFocusAreas]
	}
	if out == nil {
		return []string{}
	}
	return out
}

func decisionFactors(in Input, ci model.ConfidenceInterval, risk model.RiskLevel) model.DecisionFactors {
	df := model.DecisionFactors{
		CurrentFitScore: float64(in.Score),
		ScoreRange:      fmt.Sprintf("%.0f-%.0f", ci.LowerBound, ci.UpperBound),
		ConfidenceLevel: in.Confidence.Level,
		GrowthPotential: in.growthScore(),
		RiskLevel:       risk,
		RedFlagCount:    len(in.redFlags()),
		TopStrength:     "Not identified",
		TopWeakness:     "Not identified",
	}
	if in.Insights != nil {
		if len(in.Insights.Strengths) > 0 {
			df.TopStrength = in.Insights.Strengths[0]
		}
		if len(in.Insights.Weaknesses) > 0 {
			df.TopWeakness = in.Insights.Weaknesses[0]
		}
	}
	return df
}

func message(action model.Action, score float64, ci model.ConfidenceInterval, growth float64, risk model.RiskLevel, flags int) string {
	rng := fmt.Sprintf("range: %.0f-%.0f", ci.LowerBound, ci.UpperBound)
	switch action {
	case model.ActionImmediateInterview:
		return fmt.Sprintf("IMMEDIATE INTERVIEW RECOMMENDED - Score: %.0f (%s, %d%% confidence). Excellent match with %s hiring risk. Top-tier candidate - prioritize scheduling.",
			score, rng, ci.ConfidenceLevel, risk)
	case model.ActionShortlist:
		msg := fmt.Sprintf("SHORTLIST FOR INTERVIEW - Score: %.0f (%s, %d%% confidence). Strong candidate with %s risk. ", score, rng, ci.ConfidenceLevel, risk)
		if growth >= 70 {
			msg += fmt.Sprintf("Growth potential: %.0f. ", growth)
		}
		return msg + "Schedule when available."
	case model.ActionWaitlist:
		return fmt.Sprintf("WAITLIST - Score: %.0f (%s, %d%% confidence). Borderline candidate with %s risk. Consider if shortlist candidates decline.",
			score, rng, ci.ConfidenceLevel, risk)
	case model.ActionHoldForReview:
		return fmt.Sprintf("HOLD FOR SENIOR REVIEW - Score: %.0f but %d red flags detected. Risk level: %s. Requires additional verification before proceeding.",
			score, flags, risk)
	default:
		return fmt.Sprintf("NOT RECOMMENDED - Score: %.0f (%s). Significant gaps exist. Send polite rejection.", score, rng)
	}
}

func flagTypes(flags []model.RedFlag, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < len(flags) && i < n; i++ {
		out = append(out, flags[i].Type)
	}
	return out
}

// Neutral is the payload used when the engine cannot run.
func Neutral(score int) *model.SmartRecommendation {
	s := float64(score)
	return &model.SmartRecommendation{
		Action:   model.ActionHoldForReview,
		Priority: model.PriorityLow,
		Interval: model.ConfidenceInterval{
			PointEstimate: s, LowerBound: s, UpperBound: s,
		},
		RiskLevel:           model.RiskMedium,
		NextSteps:           []string{"Senior recruiter review required"},
		SuccessProbability:  s,
		InterviewFocusAreas: []string{},
		DecisionFactors: model.DecisionFactors{
			CurrentFitScore: s,
			ScoreRange:      fmt.Sprintf("%d-%d", score, score),
			ConfidenceLevel: model.ConfidenceNone,
			RiskLevel:       model.RiskMedium,
			TopStrength:     "Not identified",
			TopWeakness:     "Not identified",
		},
		Message: "Recommendation unavailable - review manually",
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
