// Package scoring turns a candidate/job pair into per-section assessments,
// aggregates them with a seniority-dependent weight profile and derives the
// contextual adjustments, interactions and confidence around that score.
package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/skills"
	"github.com/spigell/hh-scorer/internal/taxonomy"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scorer runs the section scorers. It holds only read-only configuration and is safe for concurrent use.
type Scorer struct {
	tax     *taxonomy.Taxonomy
	matcher *skills.Matcher
	log     *zap.Logger
}

// Assessment is the raw output of all section scorers.
type Assessment struct {
	Sections []model.SectionAssessment
	// Scores holds only the sections that had data.
	Scores map[model.Section]float64
	Skills *model.SkillAssessment
	CV     *CVAnalysis
}

// NewScorer creates a scorer backed by the taxonomy and skill matcher.
func NewScorer(tax *taxonomy.Taxonomy, matcher *skills.Matcher, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{tax: tax, matcher: matcher, log: log}
}

// Assess runs every section scorer. Section weights are taken from profile.
func (s *Scorer) Assess(ctx context.Context, c *model.Candidate, j *model.Job, profile taxonomy.Profile) *Assessment {
	skillAssessment := s.matcher.Match(ctx, j.RequiredSkills, j.PreferredSkills, c.AllSkills())

	sections := []model.SectionAssessment{
		section(model.SectionPersonal, "Personal Details & Eligibility", assessPersonal(c, j)),
		section(model.SectionExperience, "Experience & Industry", assessExperience(c, j)),
		section(model.SectionEducation, "Education & Qualifications", assessEducation(c, j)),
		section(model.SectionSkills, "Skills Assessment", assessSkills(c, skillAssessment)),
		section(model.SectionSalary, "Salary Alignment", assessSalary(c, j)),
	}

	var cv *CVAnalysis
	if strings.TrimSpace(c.CVText) != "" {
		cv = AnalyzeCV(c.CVText, j)
		sections = append(sections, model.SectionAssessment{
			Section:     model.SectionCV,
			Name:        "CV/Resume Analysis",
			Score:       cv.Score,
			MatchLevel:  model.LevelFor(cv.Score),
			Explanation: cv.Explanation,
			Fields:      cv.Fields(),
		})
	}

	scores := make(map[model.Section]float64, len(sections))
	for i := range sections {
		sections[i].Weight = profile.Weights[sections[i].Section]
		scores[sections[i].Section] = sections[i].Score
	}

	s.log.Debug("sections scored",
		zap.String("profile", profile.Name),
		zap.Int("sections", len(sections)),
		zap.Float64("skills", scores[model.SectionSkills]),
		zap.Float64("experience", scores[model.SectionExperience]),
	)

	return &Assessment{Sections: sections, Scores: scores, Skills: skillAssessment, CV: cv}
}

func section(sec model.Section, name string, fields []model.FieldAssessment) model.SectionAssessment {
	score := fieldAverage(fields)
	return model.SectionAssessment{
		Section:     sec,
		Name:        name,
		Score:       score,
		MatchLevel:  model.LevelFor(score),
		Explanation: sectionExplanation(sec, score, fields),
		Fields:      fields,
	}
}

func field(name, label string, candidate, requirement any, score, weight float64, explanation string) model.FieldAssessment {
	score = clamp(score)
	return model.FieldAssessment{
		Field:          name,
		Label:          label,
		CandidateValue: candidate,
		JobRequirement: requirement,
		Score:          score,
		Weight:         weight,
		Explanation:    explanation,
		MatchLevel:     model.LevelFor(score),
	}
}

// fieldAverage is the weight-averaged field score rounded to an integer.
func fieldAverage(fields []model.FieldAssessment) float64 {
	var sum, weight float64
	for _, f := range fields {
		sum += f.Score * f.Weight
		weight += f.Weight
	}
	if weight == 0 {
		return 0
	}
	return math.Round(sum / weight)
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func clampInt(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

var printer = message.NewPrinter(language.English)

// money renders an amount with thousands separators.
func money(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
