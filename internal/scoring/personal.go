package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

func assessPersonal(c *model.Candidate, j *model.Job) []model.FieldAssessment {
	return []model.FieldAssessment{
		nationalityField(c, j),
		locationField(c, j),
		visaField(c, j),
		availabilityField(c),
		genderField(c, j),
		licenseField(c),
	}
}

func nationalityField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	var score float64
	var expl string
	switch {
	case len(j.PreferredNationality) == 0 || strings.TrimSpace(c.Nationality) == "":
		score, expl = 100, "No nationality requirement specified"
	case containsFold(j.PreferredNationality, c.Nationality):
		score, expl = 100, fmt.Sprintf("Nationality '%s' matches preference", c.Nationality)
	default:
		score, expl = 70, fmt.Sprintf("Nationality '%s' not in preferred list: %s", c.Nationality, strings.Join(j.PreferredNationality, ", "))
	}

	var requirement any = "No preference"
	if len(j.PreferredNationality) > 0 {
		requirement = j.PreferredNationality
	}
	return field("nationality", "Nationality", orDefault(c.Nationality, "Not specified"), requirement, score, 1, expl)
}

func locationField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	candLoc := orDefault(c.CurrentCountry, c.CurrentCity)
	jobLoc := orDefault(j.Country, j.City)
	cl, jl := strings.ToLower(strings.TrimSpace(candLoc)), strings.ToLower(strings.TrimSpace(jobLoc))

	var score float64
	var expl string
	switch {
	case jl == "" && len(j.PreferredLocations) == 0:
		score, expl = 100, "No location requirement"
	case cl == "":
		score, expl = 60, "Candidate location not specified"
	case jl != "" && (strings.Contains(jl, cl) || strings.Contains(cl, jl)):
		score, expl = 100, fmt.Sprintf("Candidate location '%s' matches job location '%s'", candLoc, jobLoc)
	case preferredLocation(cl, j.PreferredLocations):
		score, expl = 90, fmt.Sprintf("Candidate in preferred location: %s", candLoc)
	default:
		score, expl = 60, fmt.Sprintf("Candidate location '%s' differs from job location '%s'", candLoc, jobLoc)
	}

	var requirement any = "Flexible"
	switch {
	case jobLoc != "":
		requirement = jobLoc
	case len(j.PreferredLocations) > 0:
		requirement = j.PreferredLocations
	}
	return field("location", "Location", orDefault(candLoc, "Not specified"), requirement, score, 1, expl)
}

func preferredLocation(candidate string, preferred []string) bool {
	for _, loc := range preferred {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc != "" && strings.Contains(candidate, loc) {
			return true
		}
	}
	return false
}

func visaField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	requirement := j.VisaRequirement
	if requirement == "" && j.RequireValidVisa {
		requirement = "Valid visa"
	}

	var score float64
	var expl string
	status := strings.ToLower(c.VisaStatus)
	switch {
	case requirement == "":
		score, expl = 100, "No specific visa requirement"
	case strings.Contains(status, "valid") && !strings.Contains(status, "invalid"):
		score, expl = 100, fmt.Sprintf("Valid visa status: %s", c.VisaStatus)
	case status != "":
		score, expl = 80, fmt.Sprintf("Visa status: %s", c.VisaStatus)
	default:
		score, expl = 60, "Visa status not specified"
	}
	return field("visa_status", "Visa Status", orDefault(c.VisaStatus, "Not specified"), orDefault(requirement, "Not specified"), score, 1, expl)
}

func availabilityField(c *model.Candidate) model.FieldAssessment {
	days := c.Availability()

	var score float64
	var expl string
	switch {
	case days <= 7:
		score, expl = 100, fmt.Sprintf("Immediately available (within %d days)", days)
	case days <= 30:
		score, expl = 90, fmt.Sprintf("Available within %d days (1 month notice)", days)
	case days <= 60:
		score, expl = 75, fmt.Sprintf("Available within %d days (2 months notice)", days)
	case days <= 90:
		score, expl = 60, fmt.Sprintf("Available within %d days (3 months notice)", days)
	default:
		score, expl = 40, fmt.Sprintf("Long notice period: %d days", days)
	}
	return field("availability", "Availability to Join", fmt.Sprintf("%d days", days), "ASAP preferred", score, 1, expl)
}

func genderField(c *model.Candidate, j *model.Job) model.FieldAssessment {
	pref := strings.TrimSpace(j.GenderPreference)

	var score float64
	var expl string
	switch {
	case pref == "" || strings.EqualFold(pref, "no preference") || strings.EqualFold(pref, "any"):
		score, expl = 100, "No gender preference"
		pref = "No Preference"
	case strings.EqualFold(strings.TrimSpace(c.Gender), pref):
		score, expl = 100, fmt.Sprintf("Gender matches preference: %s", pref)
	case strings.TrimSpace(c.Gender) == "":
		score, expl = 80, "Candidate gender not specified"
	default:
		score, expl = 50, fmt.Sprintf("Gender '%s' does not match preference '%s'", c.Gender, pref)
	}
	return field("gender", "Gender Preference", orDefault(c.Gender, "Not specified"), pref, score, 1, expl)
}

func licenseField(c *model.Candidate) model.FieldAssessment {
	has := hasLicense(c.DrivingLicense)
	if has {
		return field("driving_license", "Driving License", "Yes", "Preferred", 100, 1,
			fmt.Sprintf("Valid driving license from %s", orDefault(c.DrivingLicenseCountry, "unspecified country")))
	}
	return field("driving_license", "Driving License", "No", "Preferred", 70, 1, "No driving license")
}

func hasLicense(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

func containsFold(list []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), v) {
			return true
		}
	}
	return false
}
