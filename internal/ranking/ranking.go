// Package ranking orders scored candidates for one job and summarises the batch.
package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/spigell/hh-scorer/internal/model"
)

// Criterion selects how the composite ranking score is computed.
type Criterion string

const (
	OverallScore      Criterion = "overall_score"
	SkillsMatch       Criterion = "skills_match"
	ExperienceFit     Criterion = "experience_fit"
	SalaryFit         Criterion = "salary_fit"
	CulturalFit       Criterion = "cultural_fit"
	LearningPotential Criterion = "learning_potential"
)

// Criteria lists the supported criteria.
var Criteria = []Criterion{OverallScore, SkillsMatch, ExperienceFit, SalaryFit, CulturalFit, LearningPotential}

const (
	criticalPenalty = 15
	highPenalty     = 5
	insightPivot    = 70
	insightFactor   = 0.1

	compareTop = 10
)

// ParseCriterion validates a criterion name. An empty name selects OverallScore.
func ParseCriterion(s string) (Criterion, error) {
	if s == "" {
		return OverallScore, nil
	}
	for _, c := range Criteria {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown ranking criterion %q", s)
}

// Composite computes the ranking score of one result under the criterion.
func Composite(r *model.AssessmentResult, c Criterion) float64 {
	ins := r.Insights
	if ins == nil {
		ins = &model.CandidateInsights{}
	}
	section := func(s model.Section) float64 {
		v, _ := r.SectionScore(s)
		return v
	}

	switch c {
	case SkillsMatch:
		return section(model.SectionSkills)*0.7 + ins.SkillCurrency.Score*0.3
	case ExperienceFit:
		return section(model.SectionExperience)
	case SalaryFit:
		return section(model.SectionSalary)
	case CulturalFit:
		return ins.CulturalFit
	case LearningPotential:
		return ins.LearningPotential
	}

	penalty := float64(ins.CriticalFlagCount()*criticalPenalty + ins.HighFlagCount()*highPenalty)
	cultural := (ins.CulturalFit - insightPivot) * insightFactor
	learning := (ins.LearningPotential - insightPivot) * insightFactor
	return float64(r.TotalScore) - penalty + cultural + learning
}

// Rank orders results by composite score, highest first. Ties keep a stable
// order by candidate ID so repeated runs produce the same ranking.
func Rank(results []*model.AssessmentResult, c Criterion) []model.RankedCandidate {
	type scored struct {
		r         *model.AssessmentResult
		composite float64
	}
	items := make([]scored, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		items = append(items, scored{r: r, composite: Composite(r, c)})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].composite != items[j].composite {
			return items[i].composite > items[j].composite
		}
		return items[i].r.CandidateID < items[j].r.CandidateID
	})

	total := len(items)
	ranked := make([]model.RankedCandidate, total)
	for i, it := range items {
		rank := i + 1
		ranked[i] = entry(it.r, rank, total, it.composite)
	}
	return ranked
}

func entry(r *model.AssessmentResult, rank, total int, composite float64) model.RankedCandidate {
	ins := r.Insights
	if ins == nil {
		ins = &model.CandidateInsights{}
	}
	skills, _ := r.SectionScore(model.SectionSkills)
	experience, _ := r.SectionScore(model.SectionExperience)

	concerns := []string{}
	for i, f := range ins.RedFlags {
		if i == 2 {
			break
		}
		concerns = append(concerns, f.Description)
	}
	strengths := ins.Strengths
	if len(strengths) > 3 {
		strengths = strengths[:3]
	}
	if strengths == nil {
		strengths = []string{}
	}

	return model.RankedCandidate{
		CandidateID:       r.CandidateID,
		Rank:              rank,
		CompositeScore:    math.Round(composite*100) / 100,
		TotalScore:        r.TotalScore,
		SkillsScore:       skills,
		ExperienceScore:   experience,
		CulturalFit:       ins.CulturalFit,
		RedFlagCount:      len(ins.RedFlags),
		CriticalRedFlags:  ins.CriticalFlagCount(),
		Recommendation:    ins.Recommendation,
		Tier:              TierFor(rank, total),
		InterviewPriority: PriorityFor(r, rank),
		Percentile:        percentile(rank, total),
		KeyStrengths:      strengths,
		KeyConcerns:       concerns,
	}
}

func percentile(rank, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(rank-1) / float64(total)
}

// TierFor buckets a rank by its position in the batch.
func TierFor(rank, total int) model.Tier {
	p := percentile(rank, total)
	switch {
	case p <= 0.1:
		return model.TierS
	case p <= 0.3:
		return model.TierA
	case p <= 0.6:
		return model.TierB
	case p <= 0.85:
		return model.TierC
	}
	return model.TierD
}

// PriorityFor derives interview urgency. Rejected candidates and those with a
// critical red flag are never interviewed, whatever their score.
func PriorityFor(r *model.AssessmentResult, rank int) model.InterviewPriority {
	switch {
	case r.IsRejected || r.Insights.CriticalFlagCount() > 0:
		return model.InterviewDoNotInterview
	case rank <= 3 && r.TotalScore >= 85:
		return model.InterviewUrgent
	case rank <= 10 && r.TotalScore >= 75:
		return model.InterviewHigh
	case r.TotalScore >= 60:
		return model.InterviewMedium
	}
	return model.InterviewLow
}

// Matrix summarises a ranking. It returns nil for an empty ranking.
func Matrix(ranked []model.RankedCandidate, c Criterion) *model.ComparisonMatrix {
	if len(ranked) == 0 {
		return nil
	}

	top := ranked
	if len(top) > compareTop {
		top = top[:compareTop]
	}

	m := &model.ComparisonMatrix{
		TotalCandidates: len(ranked),
		Criterion:       string(c),
		Compared:        top,
		TierDistribution: map[model.Tier]int{
			model.TierS: 0, model.TierA: 0, model.TierB: 0, model.TierC: 0, model.TierD: 0,
		},
		PriorityDistribution: map[model.InterviewPriority]int{
			model.InterviewUrgent: 0, model.InterviewHigh: 0, model.InterviewMedium: 0,
			model.InterviewLow: 0, model.InterviewDoNotInterview: 0,
		},
		TopCandidates: make([]string, 0, len(top)),
	}

	sum := 0
	for _, rc := range ranked {
		m.TierDistribution[rc.Tier]++
		m.PriorityDistribution[rc.InterviewPriority]++
		sum += rc.TotalScore
	}
	topSum := 0
	for _, rc := range top {
		m.TopCandidates = append(m.TopCandidates, rc.CandidateID)
		topSum += rc.TotalScore
	}

	m.AverageScore = round2(float64(sum) / float64(len(ranked)))
	m.TopTenAverage = round2(float64(topSum) / float64(len(top)))
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
