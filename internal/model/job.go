package model

// Job is the typed view of a job record.
type Job struct {
	ID               string `mapstructure:"id" json:"id"`
	Title            string `mapstructure:"title" json:"title"`
	Designation      string `mapstructure:"designation" json:"designation,omitempty"`
	JobDescription   string `mapstructure:"job_description" json:"job_description,omitempty"`
	Responsibilities string `mapstructure:"responsibilities" json:"responsibilities,omitempty"`
	CandidateProfile string `mapstructure:"candidate_profile" json:"candidate_profile,omitempty"`

	Country            string   `mapstructure:"country" json:"country,omitempty"`
	City               string   `mapstructure:"city" json:"city,omitempty"`
	PreferredLocations []string `mapstructure:"preferred_locations" json:"preferred_locations,omitempty"`

	MinExperienceYears    float64 `mapstructure:"min_experience_years" json:"min_experience_years"`
	MaxExperienceYears    float64 `mapstructure:"max_experience_years" json:"max_experience_years,omitempty"`
	EnforceMaxExperience  bool    `mapstructure:"enforce_max_experience" json:"enforce_max_experience,omitempty"`
	MinGCCExperienceYears float64 `mapstructure:"min_gcc_experience_years" json:"min_gcc_experience_years,omitempty"`
	RequireGCCExperience  bool    `mapstructure:"require_gcc_experience" json:"require_gcc_experience,omitempty"`

	RequiredSkills  []string `mapstructure:"required_skills" json:"required_skills,omitempty"`
	PreferredSkills []string `mapstructure:"preferred_skills" json:"preferred_skills,omitempty"`
	Keywords        []string `mapstructure:"keywords" json:"keywords,omitempty"`

	RequiredEducation  string `mapstructure:"required_education" json:"required_education,omitempty"`
	PreferredEducation string `mapstructure:"preferred_education" json:"preferred_education,omitempty"`

	SalaryMin      float64 `mapstructure:"salary_min" json:"salary_min,omitempty"`
	SalaryMax      float64 `mapstructure:"salary_max" json:"salary_max,omitempty"`
	SalaryCurrency string  `mapstructure:"salary_currency" json:"salary_currency,omitempty"`

	Industry       string `mapstructure:"industry" json:"industry,omitempty"`
	SubIndustry    string `mapstructure:"sub_industry" json:"sub_industry,omitempty"`
	FunctionalArea string `mapstructure:"functional_area" json:"functional_area,omitempty"`

	GenderPreference      string   `mapstructure:"gender_preference" json:"gender_preference,omitempty"`
	PreferredNationality  []string `mapstructure:"preferred_nationality" json:"preferred_nationality,omitempty"`
	RequiredNationalities []string `mapstructure:"required_nationalities" json:"required_nationalities,omitempty"`
	VisaRequirement       string   `mapstructure:"visa_requirement" json:"visa_requirement,omitempty"`
	RequireValidVisa      bool     `mapstructure:"require_valid_visa" json:"require_valid_visa,omitempty"`

	Vacancies  int    `mapstructure:"number_of_vacancies" json:"number_of_vacancies,omitempty"`
	ExpiryDate string `mapstructure:"expiry_date" json:"expiry_date,omitempty"`
}

// ExperienceCeiling returns the maximum experience band, defaulting to min+10 when not set.
func (j *Job) ExperienceCeiling() float64 {
	if j.MaxExperienceYears > 0 {
		return j.MaxExperienceYears
	}
	return j.MinExperienceYears + 10
}

// GCCMinimum returns the required GCC years, which only apply when the job requires GCC experience.
func (j *Job) GCCMinimum() float64 {
	if !j.RequireGCCExperience {
		return 0
	}
	return j.MinGCCExperienceYears
}
