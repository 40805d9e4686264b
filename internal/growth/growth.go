// Package growth estimates a candidate's ability to grow into a role,
// independently of how well they fit it today.
package growth

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/spigell/hh-scorer/internal/career"
	"github.com/spigell/hh-scorer/internal/model"
)

const (
	skillAcquisitionWeight = 0.25
	educationWeight        = 0.20
	trajectoryWeight       = 0.25
	certificationWeight    = 0.15
	adaptabilityWeight     = 0.15

	maxIndicators     = 8
	recentCertYears   = 2
	fastTrackMaxYears = 10
)

var (
	modernTech    = []string{"react", "vue", "angular", "node", "python", "ai", "ml", "cloud", "aws", "azure", "docker", "kubernetes", "microservices"}
	premiumCerts  = []string{"aws", "azure", "gcp", "pmp", "cissp", "cpa", "cfa", "scrum", "agile", "six sigma", "itil", "ccna", "ccnp"}
	leadershipKWs = []string{"senior", "lead", "manager", "head", "director", "principal"}
	softSkills    = []string{"leadership", "communication", "teamwork", "problem solving", "analytical", "management", "strategic", "collaboration"}
)

// Analyzer computes growth potential. It is stateless apart from the clock.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer; a nil clock defaults to time.Now.
func NewAnalyzer(now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{now: now}
}

// NotAssessed is the neutral payload used when the analysis cannot run.
func NotAssessed() *model.GrowthPotential {
	return &model.GrowthPotential{
		Score:                 50,
		LearningAgility:       50,
		CareerTrajectory:      50,
		SkillAcquisitionRate:  50,
		EducationInvestment:   50,
		CertificationCurrency: 50,
		IndustryAdaptability:  50,
		Indicators:            []string{},
		Tier:                  model.GrowthNotAssessed,
		Recommendation:        "Growth potential could not be assessed",
	}
}

type component struct {
	score      float64
	indicators []string
}

func (c *component) add(points float64, indicator string) {
	c.score += points
	if indicator != "" {
		c.indicators = append(c.indicators, indicator)
	}
}

func (c component) final() float64 {
	return math.Min(100, c.score)
}

// Analyze scores the five growth dimensions and classifies the candidate into a tier.
// currentFit is the candidate's present match score.
func (a *Analyzer) Analyze(c *model.Candidate, j *model.Job, currentFit float64) *model.GrowthPotential {
	skills := a.skillAcquisition(c)
	edu := educationInvestment(c, j)
	traj := trajectory(c)
	certs := certificationCurrency(c)
	adapt := adaptability(c)

	score := skills.final()*skillAcquisitionWeight +
		edu.final()*educationWeight +
		traj.final()*trajectoryWeight +
		certs.final()*certificationWeight +
		adapt.final()*adaptabilityWeight

	indicators := []string{}
	for _, comp := range []component{skills, edu, traj, certs, adapt} {
		indicators = append(indicators, comp.indicators...)
	}
	if len(indicators) > maxIndicators {
		indicators = indicators[:maxIndicators]
	}

	tier, recommendation := Tier(score, currentFit)
	return &model.GrowthPotential{
		Score:                 round1(score),
		LearningAgility:       round1((skills.final() + adapt.final()) / 2),
		CareerTrajectory:      round1(traj.final()),
		SkillAcquisitionRate:  round1(skills.final()),
		EducationInvestment:   round1(edu.final()),
		CertificationCurrency: round1(certs.final()),
		IndustryAdaptability:  round1(adapt.final()),
		Indicators:            indicators,
		Tier:                  tier,
		Recommendation:        recommendation,
	}
}

func (a *Analyzer) skillAcquisition(c *model.Candidate) component {
	comp := component{score: 50}

	all := c.AllSkills()
	switch n := len(all); {
	case n > 15:
		comp.add(20, fmt.Sprintf("Extensive skill portfolio (%d skills)", n))
	case n > 10:
		comp.add(15, fmt.Sprintf("Strong skill diversity (%d skills)", n))
	case n > 5:
		comp.add(10, "")
	}

	cutoff := a.now().Year() - recentCertYears
	recent := 0
	for _, cert := range c.Certifications {
		if cert.Year >= cutoff {
			recent++
		}
	}
	switch {
	case recent >= 3:
		comp.add(15, fmt.Sprintf("Active learner: %d recent certifications", recent))
	case recent >= 1:
		comp.add(10, fmt.Sprintf("%d recent certification(s)", recent))
	}

	modern := 0
	for _, s := range all {
		if hasWord(s, modernTech...) {
			modern++
		}
	}
	switch {
	case modern >= 5:
		comp.add(15, fmt.Sprintf("Adopting modern technologies (%d modern skills)", modern))
	case modern >= 3:
		comp.add(10, "")
	}
	return comp
}

func educationInvestment(c *model.Candidate, j *model.Job) component {
	comp := component{score: 50}
	level := strings.ToLower(c.HighestEducation())

	switch {
	case containsAny(level, "phd", "doctorate"):
		comp.add(30, "PhD/Doctorate: Highest commitment to knowledge")
	case containsAny(level, "master", "mba", "msc"):
		comp.add(20, "Master's degree: Advanced education investment")
	case containsAny(level, "bachelor", "bsc", "btech"):
		comp.add(10, "")
	}

	if containsAny(level, "master", "mba", "msc", "phd", "doctorate") && strings.Contains(strings.ToLower(j.RequiredEducation), "bachelor") {
		comp.add(15, "Education exceeds job requirement (growth mindset)")
	}
	if n := len(c.EducationDetails); n > 1 {
		comp.add(10, fmt.Sprintf("Multiple degrees (%d) shows continuous learning", n))
	}
	for _, e := range c.EducationDetails {
		if len(strings.TrimSpace(e.Specialization)) > 3 {
			comp.add(5, "")
			break
		}
	}
	return comp
}

func trajectory(c *model.Candidate) component {
	comp := component{score: 50}
	years := c.TotalExperienceYears
	roles := len(c.EmploymentHistory)

	if years > 0 && roles > 0 {
		switch rate := float64(roles) / years; {
		case rate >= 0.3 && rate <= 0.6:
			comp.add(20, fmt.Sprintf("Healthy career progression rate (%d roles in %.1f years)", roles, years))
		case rate >= 0.15 && rate < 0.3:
			comp.add(10, "Stable career progression")
		case rate > 0.6:
			comp.add(5, "Fast-paced career movement")
		}
	}

	if containsAny(strings.ToLower(c.PreferredDesignation), leadershipKWs...) {
		if years < fastTrackMaxYears {
			comp.add(15, "Fast track to leadership roles")
		} else {
			comp.add(10, "Achieved leadership position")
		}
	}

	switch p := career.Progression(c.EmploymentHistory); p.Trajectory {
	case career.StrongUpward:
		comp.add(10, "Rising title seniority across recent roles")
	case career.SteadyUpward:
		comp.add(5, "")
	case career.Declining:
		comp.add(-10, "")
	}

	switch n := len(career.Industries(c.EmploymentHistory)); {
	case n >= 3:
		comp.add(15, fmt.Sprintf("Cross-industry experience (%d industries)", n))
	case n >= 2:
		comp.add(10, "Multi-industry background")
	}
	return comp
}

func certificationCurrency(c *model.Candidate) component {
	comp := component{score: 50}

	n := len(c.Certifications)
	switch {
	case n >= 5:
		comp.add(20, fmt.Sprintf("Highly certified (%d certifications)", n))
	case n >= 3:
		comp.add(15, fmt.Sprintf("Well certified (%d certifications)", n))
	case n >= 1:
		comp.add(10, "")
	}

	premium := 0
	for _, cert := range c.Certifications {
		if containsAny(strings.ToLower(cert.Name+" "+cert.Issuer), premiumCerts...) {
			premium++
		}
	}
	switch {
	case premium >= 2:
		comp.add(20, fmt.Sprintf("%d industry-recognized certifications", premium))
	case premium == 1:
		comp.add(15, "Industry-recognized certification")
	}
	return comp
}

func adaptability(c *model.Candidate) component {
	comp := component{score: 50}

	functional := append(append([]string{}, c.ProfessionalSkills...), c.FunctionalSkills...)
	switch n := len(functional); {
	case n > 10:
		comp.add(15, fmt.Sprintf("Versatile skill set (%d functional skills)", n))
	case n > 5:
		comp.add(10, "")
	}

	switch n := len(c.LanguagesKnown); {
	case n >= 3:
		comp.add(15, fmt.Sprintf("Multilingual (%d languages) - highly adaptable", n))
	case n == 2:
		comp.add(10, "Bilingual capability")
	}

	if c.GCCExperienceYears > 0 && c.TotalExperienceYears > c.GCCExperienceYears {
		comp.add(15, "International work experience (adaptable to new markets)")
	}

	text := strings.ToLower(strings.Join(functional, " "))
	soft := 0
	for _, s := range softSkills {
		if strings.Contains(text, s) {
			soft++
		}
	}
	if soft >= 4 {
		comp.add(10, "Strong soft skills (adaptable team player)")
	}
	return comp
}

// Tier classifies a growth score. A borderline growth score still counts as
// high potential when the current fit is weak.
func Tier(score, currentFit float64) (model.GrowthTier, string) {
	switch {
	case score >= 75:
		return model.GrowthHighPotential, fmt.Sprintf("HIGH GROWTH POTENTIAL (%.0f/100) - Strong candidate for long-term investment. "+
			"Exhibits exceptional learning ability and career trajectory. Consider for roles with growth runway.", score)
	case score >= 65 && currentFit < 70:
		return model.GrowthHighPotential, fmt.Sprintf("HIDDEN GEM ALERT - Current fit %.0f%% but growth potential %.0f%%. "+
			"Candidate shows strong learning capacity and may exceed current limitations. Recommend for roles with training/mentorship.", currentFit, score)
	case score >= 50:
		return model.GrowthStandard, fmt.Sprintf("STANDARD GROWTH POTENTIAL (%.0f/100) - Candidate shows moderate learning ability and progression. "+
			"Suitable for roles matching current capabilities.", score)
	default:
		return model.GrowthLimited, fmt.Sprintf("LIMITED GROWTH INDICATORS (%.0f/100) - Candidate may be better suited for roles matching exact current skills. "+
			"Limited evidence of continuous learning or career progression.", score)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasWord reports whether s contains any of words as a whole token, so that
// "ml" matches "ML Ops" but not "HTML".
func hasWord(s string, words ...string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if slices.Contains(tokens, w) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
