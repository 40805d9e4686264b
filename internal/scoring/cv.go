package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

const minCVLength = 100

var (
	emailPattern    = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phonePattern    = regexp.MustCompile(`\+?[\d\s\-()]{10,}`)
	keyTermPattern  = regexp.MustCompile(`\b[A-Za-z]{3,}\b`)
	skillsHeading   = regexp.MustCompile(`skills?\s*[:\-]`)
	bulletPattern   = regexp.MustCompile(`•|▪|◦|\*|-\s+[A-Z]`)
	experiencePatts = []*regexp.Regexp{
		regexp.MustCompile(`\d+\+?\s*years?\s*(of\s*)?experience`),
		regexp.MustCompile(`experience\s*:\s*\d+`),
		regexp.MustCompile(`20\d{2}\s*[-–to]+\s*(20\d{2}|present|current)`),
	}

	stopWords = map[string]struct{}{
		"the": {}, "and": {}, "for": {}, "with": {}, "this": {}, "that": {}, "will": {},
		"have": {}, "from": {}, "they": {}, "are": {}, "been": {}, "has": {},
	}
	sectionHeadings  = []string{"experience", "education", "skills", "summary"}
	achievementVerbs = []string{"achieved", "increased", "reduced", "improved", "managed", "led"}
	workTerms        = []string{"experience", "years", "worked", "employed"}
)

// CVAnalysis is the breakdown of the CV content analysis.
type CVAnalysis struct {
	Score           float64  `json:"cv_score"`
	Quality         float64  `json:"cv_quality_score"`
	Relevance       float64  `json:"content_relevance_score"`
	KeywordMatch    float64  `json:"keyword_match_score"`
	ExperienceMatch float64  `json:"experience_extraction_score"`
	SkillsMatch     float64  `json:"skills_extraction_score"`
	Explanation     string   `json:"explanation"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	WordCount       int      `json:"word_count"`
}

// Fields renders the sub-scores as field assessments for the CV section.
func (a *CVAnalysis) Fields() []model.FieldAssessment {
	return []model.FieldAssessment{
		field("cv_quality", "CV Quality", fmt.Sprintf("%d words", a.WordCount), "Structured CV", a.Quality, 0.15, "Contact details, structure, length and achievements"),
		field("keyword_match", "Keyword Match", a.MatchedKeywords, a.MissingKeywords, a.KeywordMatch, 0.30, fmt.Sprintf("Found %d matching keywords", len(a.MatchedKeywords))),
		field("content_relevance", "Content Relevance", nil, "Industry and functional area", a.Relevance, 0.25, "Industry, functional area and logistics mentions"),
		field("experience_extraction", "Experience Mentions", nil, "Dated experience", a.ExperienceMatch, 0.15, "Experience statements and date ranges"),
		field("skills_extraction", "Skills Mentions", nil, "Skills section", a.SkillsMatch, 0.15, "Skills heading and bullet lists"),
	}
}

// AnalyzeCV scores CV text for quality, keyword overlap and relevance to the job.
// Texts shorter than 100 characters get a neutral 50 across the board.
func AnalyzeCV(text string, j *model.Job) *CVAnalysis {
	if len(strings.TrimSpace(text)) < minCVLength {
		return &CVAnalysis{
			Score: 50, Quality: 50, Relevance: 50, KeywordMatch: 50, ExperienceMatch: 50, SkillsMatch: 50,
			Explanation:     "CV text is too short or not available for detailed analysis",
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			WordCount:       len(strings.Fields(text)),
		}
	}

	lower := strings.ToLower(text)
	words := len(strings.Fields(text))

	quality := percentOf(
		emailPattern.MatchString(text),
		phonePattern.MatchString(text),
		strings.Contains(lower, "linkedin"),
		containsAny(lower, sectionHeadings...),
		words >= 200,
		containsAny(lower, achievementVerbs...),
	)

	keywords := jobKeywords(j)
	var matched, missing []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	keywordScore := 75.0
	if len(keywords) > 0 {
		keywordScore = float64(int(float64(len(matched)) / float64(len(keywords)) * 100))
	}

	hits := 0
	for _, ok := range []bool{
		j.Industry != "" && strings.Contains(lower, strings.ToLower(j.Industry)),
		j.FunctionalArea != "" && strings.Contains(lower, strings.ToLower(j.FunctionalArea)),
		containsAny(lower, logisticsTerms[:5]...),
		containsAny(lower, workTerms...),
	} {
		if ok {
			hits++
		}
	}
	relevance := clamp(float64(50 + hits*15))

	expHits := 0
	for _, p := range experiencePatts {
		if p.MatchString(lower) {
			expHits++
		}
	}
	experience := clamp(float64(50 + expHits*20))

	skillsScore := 50
	if skillsHeading.MatchString(lower) {
		skillsScore += 25
	}
	skillsScore += min(len(bulletPattern.FindAllString(text, -1))*5, 25)

	a := &CVAnalysis{
		Quality:         quality,
		KeywordMatch:    keywordScore,
		Relevance:       relevance,
		ExperienceMatch: experience,
		SkillsMatch:     clamp(float64(skillsScore)),
		MatchedKeywords: nonNil(head(matched, 20)),
		MissingKeywords: nonNil(head(missing, 10)),
		WordCount:       words,
	}
	a.Score = float64(int(a.Quality*0.15 + a.KeywordMatch*0.30 + a.Relevance*0.25 + a.ExperienceMatch*0.15 + a.SkillsMatch*0.15))
	a.Explanation = cvExplanation(a)
	return a
}

// jobKeywords collects lowercase, de-duplicated keywords from skill lists and job text, in first-seen order.
func jobKeywords(j *model.Job) []string {
	raw := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills)+len(j.Keywords))
	raw = append(raw, j.RequiredSkills...)
	raw = append(raw, j.PreferredSkills...)
	raw = append(raw, j.Keywords...)
	for _, term := range keyTermPattern.FindAllString(j.JobDescription+" "+j.Title, -1) {
		if _, stop := stopWords[strings.ToLower(term)]; !stop {
			raw = append(raw, term)
		}
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if len(k) <= 2 {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func cvExplanation(a *CVAnalysis) string {
	var parts []string
	switch {
	case a.Score >= 80:
		parts = append(parts, "CV shows strong alignment with job requirements")
	case a.Score >= 60:
		parts = append(parts, "CV has moderate alignment with job requirements")
	default:
		parts = append(parts, "CV shows limited alignment with job requirements")
	}
	if len(a.MatchedKeywords) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d matching keywords", len(a.MatchedKeywords)))
	}
	if len(a.MissingKeywords) > 0 {
		parts = append(parts, "Missing key terms: "+strings.Join(head(a.MissingKeywords, 5), ", "))
	}
	return strings.Join(parts, ". ")
}

func percentOf(flags ...bool) float64 {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return float64(int(float64(n) / float64(len(flags)) * 100))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
