// Package insights turns a scored assessment into HR-facing narrative:
// red flags, career progression, skill currency and a short recommendation.
package insights

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spigell/hh-scorer/internal/career"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

const (
	maxStrengths  = 5
	maxWeaknesses = 5
	maxHighlights = 5

	strengthScore = 85
	weaknessScore = 50
)

var (
	currentTech = []string{
		"react", "vue", "angular", "next.js", "typescript", "node.js", "fastapi",
		"flutter", "react native", "swift", "kotlin", "swiftui",
		"python", "pandas", "spark", "airflow", "dbt", "snowflake",
		"tensorflow", "pytorch", "scikit-learn", "transformers", "langchain",
		"aws", "azure", "gcp", "kubernetes", "docker", "terraform",
		"postgresql", "mongodb", "redis", "elasticsearch",
	}
	outdatedTech = []string{"flash", "silverlight", "vb6", "perl", "coldfusion", "asp classic"}

	progressionHighlights = map[string]string{
		career.StrongUpward: "Strong career growth trajectory",
		career.SteadyUpward: "Steady career progression",
		career.Lateral:      "Lateral career movement",
		career.Stagnant:     "Limited career growth",
		career.Declining:    "Career regression pattern",
	}
)

// Input is the part of an assessment the generator needs.
type Input struct {
	TotalScore int
	Rejected   bool
	Sections   map[model.Section]float64
	Skills     *model.SkillAssessment
}

// Generator builds candidate insights.
type Generator struct {
	detector *Detector
}

// NewGenerator creates a generator using the given thresholds and clock.
func NewGenerator(th taxonomy.Thresholds, now func() time.Time) *Generator {
	return &Generator{detector: NewDetector(th, now)}
}

// Unavailable is the neutral payload used when insight generation fails.
func Unavailable() *model.CandidateInsights {
	return &model.CandidateInsights{
		RedFlags:          []model.RedFlag{},
		Progression:       model.CareerProgression{Trajectory: career.Unclear},
		SkillCurrency:     model.SkillCurrency{Score: 50},
		LearningPotential: 50,
		CulturalFit:       50,
		Strengths:         []string{},
		Weaknesses:        []string{},
		Recommendation:    "Insights unavailable - review manually",
		Highlights:        []string{},
	}
}

// Generate produces insights for a candidate that has already been scored.
func (g *Generator) Generate(c *model.Candidate, j *model.Job, in Input) *model.CandidateInsights {
	flags := g.detector.Detect(c, j, in.Skills)
	progression := career.Progression(c.EmploymentHistory)
	strengths := Strengths(c, in.Sections)
	weaknesses := Weaknesses(in.Sections, flags)

	return &model.CandidateInsights{
		RedFlags:          flags,
		Progression:       progression,
		SkillCurrency:     SkillCurrency(c.AllSkills()),
		LearningPotential: LearningPotential(c),
		CulturalFit:       CulturalFit(c, flags),
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		Recommendation:    Recommend(in.TotalScore, in.Rejected, flags),
		Highlights:        Highlights(c, in.TotalScore, progression),
	}
}

// SkillCurrency rates how modern a skill set is. An empty set is neutral.
func SkillCurrency(skills []string) model.SkillCurrency {
	if len(skills) == 0 {
		return model.SkillCurrency{Score: 50}
	}

	var current, outdated []string
	for _, s := range skills {
		l := strings.ToLower(s)
		if containsAny(l, currentTech) {
			current = append(current, s)
		}
		if containsAny(l, outdatedTech) {
			outdated = append(outdated, s)
		}
	}

	n := float64(len(skills))
	score := float64(len(current))/n*100 - float64(len(outdated))/n*30
	return model.SkillCurrency{
		Score:          round1(math.Max(0, math.Min(100, score))),
		CurrentSkills:  current,
		OutdatedSkills: outdated,
	}
}

// LearningPotential estimates the ability to learn from degrees, skill breadth and certifications.
func LearningPotential(c *model.Candidate) float64 {
	score := 50.0

	degrees := make([]string, 0, len(c.EducationDetails))
	for _, e := range c.EducationDetails {
		degrees = append(degrees, e.Degree)
	}
	if len(degrees) == 0 && c.EducationLevel != "" {
		degrees = append(degrees, c.EducationLevel)
	}
	for _, d := range degrees {
		l := strings.ToLower(d)
		switch {
		case strings.Contains(l, "phd") || strings.Contains(l, "doctorate"):
			score += 20
		case strings.Contains(l, "master") || strings.Contains(l, "mba"):
			score += 15
		case strings.Contains(l, "bachelor"):
			score += 10
		}
	}

	switch n := len(c.AllSkills()); {
	case n > 15:
		score += 10
	case n > 10:
		score += 5
	}
	if len(c.Certifications) > 0 {
		score += 10
	}
	return math.Min(100, score)
}

// CulturalFit scores stability from tenure patterns and critical concerns.
func CulturalFit(c *model.Candidate, flags []model.RedFlag) float64 {
	score := 75.0
	for _, f := range flags {
		if f.Type == FlagJobHopping {
			score -= 20
			break
		}
	}
	if len(c.EmploymentHistory) >= 3 {
		score += 10
	}
	for _, f := range flags {
		if f.Severity == model.SeverityCritical {
			score -= 15
		}
	}
	return math.Max(0, math.Min(100, score))
}

// Strengths lists excellent sections and notable profile facts.
func Strengths(c *model.Candidate, sections map[model.Section]float64) []string {
	var out []string
	for _, sec := range model.Sections {
		if score, ok := sections[sec]; ok && score >= strengthScore {
			out = append(out, fmt.Sprintf("Excellent %s match (%.0f%%)", sectionWords(sec), score))
		}
	}
	if c.TotalExperienceYears >= 5 {
		out = append(out, fmt.Sprintf("%g years of industry experience", c.TotalExperienceYears))
	}
	if c.GCCExperienceYears >= 2 {
		out = append(out, fmt.Sprintf("%g years of GCC experience", c.GCCExperienceYears))
	}
	if hasAdvancedDegree(c) {
		out = append(out, "Advanced degree qualification")
	}
	return head(nonNil(out), maxStrengths)
}

// Weaknesses lists weak sections followed by up to three serious red flags.
func Weaknesses(sections map[model.Section]float64, flags []model.RedFlag) []string {
	var out []string
	for _, sec := range model.Sections {
		if score, ok := sections[sec]; ok && score < weaknessScore {
			out = append(out, fmt.Sprintf("Weak %s match (%.0f%%)", sectionWords(sec), score))
		}
	}
	serious := 0
	for _, f := range flags {
		if serious == 3 {
			break
		}
		if f.Severity == model.SeverityHigh || f.Severity == model.SeverityCritical {
			out = append(out, f.Description)
			serious++
		}
	}
	return head(nonNil(out), maxWeaknesses)
}

// Recommend gives the categorical insight recommendation.
func Recommend(total int, rejected bool, flags []model.RedFlag) string {
	var critical, high int
	for _, f := range flags {
		switch f.Severity {
		case model.SeverityCritical:
			critical++
		case model.SeverityHigh:
			high++
		}
	}

	switch {
	case rejected:
		return "DO NOT PROCEED - Failed hard rejection criteria"
	case critical > 0:
		return "NOT RECOMMENDED - Critical concerns present"
	case total >= 85 && high == 0:
		return "HIGHLY RECOMMENDED - Excellent match with no major concerns"
	case total >= 75 && high > 0:
		return "RECOMMENDED WITH CAUTION - Good match but address concerns in interview"
	case total >= 75:
		return "RECOMMENDED - Strong candidate worth interviewing"
	case total >= 60:
		return "CONSIDER - Moderate match, proceed if other options limited"
	}
	return "NOT RECOMMENDED - Weak match, better candidates likely available"
}

// Highlights is the quick-review list shown next to the score.
func Highlights(c *model.Candidate, total int, p model.CareerProgression) []string {
	out := []string{fmt.Sprintf("Overall Match Score: %d%%", total)}
	if h, ok := progressionHighlights[p.Trajectory]; ok {
		out = append(out, h)
	}
	if c.TotalExperienceYears > 0 {
		out = append(out, fmt.Sprintf("%g years total experience", c.TotalExperienceYears))
	}
	return head(out, maxHighlights)
}

func hasAdvancedDegree(c *model.Candidate) bool {
	levels := []string{c.EducationLevel}
	for _, e := range c.EducationDetails {
		levels = append(levels, e.Degree)
	}
	for _, l := range levels {
		l = strings.ToLower(l)
		if strings.Contains(l, "master") || strings.Contains(l, "phd") {
			return true
		}
	}
	return false
}

func sectionWords(s model.Section) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
