package model

import "strings"

// Candidate is the typed view of a candidate record. It is never mutated by the pipeline.
type Candidate struct {
	ID           string `mapstructure:"id" json:"id"`
	Name         string `mapstructure:"name" json:"name,omitempty"`
	Email        string `mapstructure:"email" json:"email,omitempty"`
	MobileNumber string `mapstructure:"mobile_number" json:"mobile_number,omitempty"`

	Nationality           string `mapstructure:"nationality" json:"nationality,omitempty"`
	Gender                string `mapstructure:"gender" json:"gender,omitempty"`
	VisaStatus            string `mapstructure:"visa_status" json:"visa_status,omitempty"`
	CurrentCountry        string `mapstructure:"current_country" json:"current_country,omitempty"`
	CurrentCity           string `mapstructure:"current_city" json:"current_city,omitempty"`
	DrivingLicense        string `mapstructure:"driving_license" json:"driving_license,omitempty"`
	DrivingLicenseCountry string `mapstructure:"driving_license_country" json:"driving_license_country,omitempty"`
	AvailabilityDays      *int   `mapstructure:"availability_to_join_days" json:"availability_to_join_days,omitempty"`

	TotalExperienceYears float64      `mapstructure:"total_experience_years" json:"total_experience_years"`
	GCCExperienceYears   float64      `mapstructure:"gcc_experience_years" json:"gcc_experience_years"`
	EmploymentHistory    []Employment `mapstructure:"employment_history" json:"employment_history,omitempty"`
	EmploymentSummary    string       `mapstructure:"employment_summary" json:"employment_summary,omitempty"`

	PreferredIndustry       string `mapstructure:"preferred_industry" json:"preferred_industry,omitempty"`
	PreferredFunctionalArea string `mapstructure:"preferred_functional_area" json:"preferred_functional_area,omitempty"`
	PreferredDesignation    string `mapstructure:"preferred_designation" json:"preferred_designation,omitempty"`

	EducationLevel   string      `mapstructure:"education_level" json:"education_level,omitempty"`
	EducationDetails []Education `mapstructure:"education_details" json:"education_details,omitempty"`

	Skills             []string        `mapstructure:"skills" json:"skills,omitempty"`
	ProfessionalSkills []string        `mapstructure:"professional_skills" json:"professional_skills,omitempty"`
	FunctionalSkills   []string        `mapstructure:"functional_skills" json:"functional_skills,omitempty"`
	ITSkills           []string        `mapstructure:"it_skills" json:"it_skills,omitempty"`
	Certifications     []Certification `mapstructure:"it_skill_certifications" json:"it_skill_certifications,omitempty"`
	LanguagesKnown     []string        `mapstructure:"languages_known" json:"languages_known,omitempty"`

	CurrentSalary  *float64 `mapstructure:"current_salary" json:"current_salary,omitempty"`
	ExpectedSalary *float64 `mapstructure:"expected_salary" json:"expected_salary,omitempty"`
	SalaryCurrency string   `mapstructure:"salary_currency" json:"salary_currency,omitempty"`

	CVText              string `mapstructure:"cv_text" json:"cv_text,omitempty"`
	ProfessionalSummary string `mapstructure:"professional_summary" json:"professional_summary,omitempty"`

	Disqualified           bool   `mapstructure:"disqualified" json:"disqualified,omitempty"`
	DisqualificationReason string `mapstructure:"disqualification_reason" json:"disqualification_reason,omitempty"`
}

// Employment is a single employment history entry.
type Employment struct {
	JobTitle         string `mapstructure:"job_title" json:"job_title,omitempty"`
	CompanyName      string `mapstructure:"company_name" json:"company_name,omitempty"`
	Industry         string `mapstructure:"industry" json:"industry,omitempty"`
	Location         string `mapstructure:"location" json:"location,omitempty"`
	StartDate        string `mapstructure:"start_date" json:"start_date,omitempty"`
	EndDate          string `mapstructure:"end_date" json:"end_date,omitempty"`
	Duration         string `mapstructure:"duration" json:"duration,omitempty"`
	Responsibilities string `mapstructure:"responsibilities" json:"responsibilities,omitempty"`
	IsCurrent        bool   `mapstructure:"is_current" json:"is_current,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree         string `mapstructure:"degree" json:"degree,omitempty"`
	Specialization string `mapstructure:"specialization" json:"specialization,omitempty"`
	Institution    string `mapstructure:"institution" json:"institution,omitempty"`
	Year           int    `mapstructure:"year" json:"year,omitempty"`
}

// Certification is a professional certification. Records may list bare names.
type Certification struct {
	Name   string `mapstructure:"name" json:"name"`
	Issuer string `mapstructure:"issuer" json:"issuer,omitempty"`
	Year   int    `mapstructure:"year" json:"year,omitempty"`
}

// AllSkills flattens generic, professional, functional and IT skill lists into one
// case-insensitively de-duplicated list, preserving first-seen order.
func (c *Candidate) AllSkills() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range [][]string{c.Skills, c.ProfessionalSkills, c.FunctionalSkills, c.ITSkills} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			key := strings.ToLower(s)
			if s == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// CertificationNames returns the names of all listed certifications.
func (c *Candidate) CertificationNames() []string {
	out := make([]string, 0, len(c.Certifications))
	for _, cert := range c.Certifications {
		if name := strings.TrimSpace(cert.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Availability returns the notice period in days, defaulting to 30 when unknown.
func (c *Candidate) Availability() int {
	if c.AvailabilityDays == nil {
		return 30
	}
	return *c.AvailabilityDays
}

// HighestEducation returns the declared education level, or the first degree listed.
func (c *Candidate) HighestEducation() string {
	if lvl := strings.TrimSpace(c.EducationLevel); lvl != "" {
		return lvl
	}
	for _, e := range c.EducationDetails {
		if d := strings.TrimSpace(e.Degree); d != "" {
			return d
		}
	}
	return ""
}
