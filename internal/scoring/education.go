package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

var educationHierarchy = []struct {
	keyword string
	level   int
}{
	{"phd", 5}, {"doctorate", 5},
	{"masters", 4}, {"master", 4}, {"mba", 4}, {"msc", 4},
	{"bachelors", 3}, {"bachelor", 3}, {"bsc", 3}, {"btech", 3},
	{"diploma", 2}, {"associate", 2},
	{"high school", 1}, {"secondary", 1},
}

// EducationLevel maps a free-text degree to an ordinal (PhD=5 ... high school=1, unknown=0).
func EducationLevel(s string) int {
	s = strings.ToLower(s)
	level := 0
	for _, e := range educationHierarchy {
		if strings.Contains(s, e.keyword) && e.level > level {
			level = e.level
		}
	}
	return level
}

func assessEducation(c *model.Candidate, j *model.Job) []model.FieldAssessment {
	fields := []model.FieldAssessment{educationLevelField(c, j)}
	if f, ok := fieldOfStudyField(c, j); ok {
		fields = append(fields, f)
	}
	return append(fields, certificationsField(c))
}

func educationLevelField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	candEdu := c.HighestEducation()
	candLevel := EducationLevel(candEdu)
	for _, e := range c.EducationDetails {
		if l := EducationLevel(e.Degree); l > candLevel {
			candLevel = l
		}
	}
	reqLevel := EducationLevel(j.RequiredEducation)

	var score float64
	var expl string
	switch {
	case reqLevel == 0:
		score, expl = 100, "No specific education requirement"
	case candLevel >= reqLevel:
		score, expl = 100, fmt.Sprintf("Education '%s' meets or exceeds requirement '%s'", candEdu, j.RequiredEducation)
	case candLevel == reqLevel-1:
		score, expl = 75, fmt.Sprintf("Education '%s' is one level below required '%s'", candEdu, j.RequiredEducation)
	default:
		score, expl = 50, fmt.Sprintf("Education gap: '%s' vs required '%s'", orDefault(candEdu, "not specified"), j.RequiredEducation)
	}
	return field("education_level", "Education Level", orDefault(candEdu, "Not specified"), orDefault(j.RequiredEducation, "Not specified"), score, 1.5, expl)
}

func fieldOfStudyField(c *model.Candidate, j *model.Job) (model.FieldAssessment, bool) {
	if len(c.EducationDetails) == 0 {
		return model.FieldAssessment{}, false
	}

	var studies []string
	for _, e := range c.EducationDetails {
		if s := strings.TrimSpace(e.Specialization); s != "" {
			studies = append(studies, s)
		}
	}

	jobText := strings.ToLower(j.JobDescription + " " + j.Title)
	score, expl := 75.0, "Field of study may not directly relate to job"
	for _, s := range studies {
		if strings.Contains(jobText, strings.ToLower(s)) {
			score, expl = 95, "Field of study relevant to job requirements"
			break
		}
	}

	value := "Not specified"
	if len(studies) > 0 {
		value = strings.Join(studies, ", ")
	}
	return field("field_of_study", "Field of Study", value, "Relevant field preferred", score, 1, expl), true
}

func certificationsField(c *model.Candidate) model.FieldAssessment {
	n := len(c.CertificationNames())
	if n == 0 {
		return field("certifications", "Professional Certifications", "0 certifications", "Preferred", 60, 1, "No certifications listed")
	}
	return field("certifications", "Professional Certifications", fmt.Sprintf("%d certifications", n), "Preferred",
		float64(70+10*n), 1, fmt.Sprintf("Has %d relevant certifications", n))
}
