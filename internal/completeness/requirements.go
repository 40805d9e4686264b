package completeness

import "github.com/spigell/hh-scorer/internal/model"

// Requirement declares one field expected on a record.
type Requirement struct {
	Path        string
	Label       string
	Criticality model.Criticality
	Impact      string
	// MinItems is the minimum list length for list-valued fields.
	MinItems int
	// NonNegativeNumber requires a numeric value >= 0 (zero counts as present).
	NonNegativeNumber bool
}

// CandidateRequirements is the requirement table for candidate records.
var CandidateRequirements = []Requirement{
	{Path: "email", Label: "Email Address", Criticality: model.Critical, Impact: "Cannot contact candidate for interviews"},
	{Path: "mobile_number", Label: "Mobile Number", Criticality: model.Critical, Impact: "Cannot reach candidate quickly"},
	{Path: "current_city", Label: "Current Location", Criticality: model.Critical, Impact: "Cannot assess relocation needs and costs"},

	{Path: "employment_history", Label: "Detailed Work History (At least 1 entry)", Criticality: model.Important, Impact: "Reduces career trajectory analysis accuracy by 60%"},
	{Path: "skills", Label: "Professional/Technical Skills (At least 3)", Criticality: model.Important, Impact: "Reduces skills match accuracy by 70%", MinItems: 3},
	{Path: "education_details", Label: "Education History (At least 1 entry)", Criticality: model.Important, Impact: "Reduces education match accuracy by 55%"},
	{Path: "expected_salary", Label: "Expected Salary", Criticality: model.Important, Impact: "Reduces salary match accuracy by 50%", NonNegativeNumber: true},
	{Path: "cv_text", Label: "CV/Resume Content", Criticality: model.Important, Impact: "Reduced CV analysis depth - 40% accuracy loss in CV quality scoring"},
	{Path: "employment_history.job_title", Label: "Job Titles in Work History", Criticality: model.Important, Impact: "Reduces career progression analysis accuracy by 70%"},
	{Path: "employment_history.company_name", Label: "Company Names in Work History", Criticality: model.Important, Impact: "Cannot assess employer quality and stability"},
	{Path: "employment_history.duration", Label: "Employment Dates/Duration", Criticality: model.Important, Impact: "Cannot detect employment gaps or job hopping - 50% red flag detection accuracy loss"},
	{Path: "employment_history.responsibilities", Label: "Job Responsibilities/Achievements", Criticality: model.Important, Impact: "Reduces role fit accuracy by 40%"},
	{Path: "gcc_experience_years", Label: "GCC Work Experience", Criticality: model.Important, Impact: "Cannot assess GCC market familiarity - 30% cultural fit accuracy loss", NonNegativeNumber: true},
	{Path: "availability_to_join_days", Label: "Notice Period/Availability", Criticality: model.Important, Impact: "Cannot assess hiring timeline fit"},
	{Path: "it_skill_certifications", Label: "Professional Certifications", Criticality: model.Important, Impact: "Reduces skill currency accuracy by 20%, learning potential accuracy by 30%"},
	{Path: "current_salary", Label: "Current Salary", Criticality: model.Important, Impact: "Reduces salary assessment accuracy by 30%"},
	{Path: "professional_summary", Label: "Professional Summary/Profile", Criticality: model.Important, Impact: "Reduces overall assessment depth by 15%"},
}

// JobRequirements is the requirement table for job records.
var JobRequirements = []Requirement{
	{Path: "title", Label: "Job Title", Criticality: model.Critical, Impact: "Cannot perform any assessment"},
	{Path: "job_description", Label: "Job Description", Criticality: model.Critical, Impact: "Cannot perform detailed matching - 50% overall accuracy loss"},

	{Path: "min_experience_years", Label: "Minimum Experience Required", Criticality: model.Important, Impact: "Reduces experience match accuracy by 50%"},
	{Path: "max_experience_years", Label: "Maximum Experience Required", Criticality: model.Important, Impact: "Reduces overqualification detection accuracy by 40%"},
	{Path: "required_skills", Label: "Required/Must-Have Skills (At least 3)", Criticality: model.Important, Impact: "Reduces skills match accuracy by 60%"},
	{Path: "required_education", Label: "Minimum Education Required", Criticality: model.Important, Impact: "Reduces education match accuracy by 50%"},
	{Path: "salary_max", Label: "Maximum Salary Budget", Criticality: model.Important, Impact: "Reduces salary match accuracy by 50%"},
	{Path: "city", Label: "Job Location", Criticality: model.Important, Impact: "Reduces location fit accuracy by 40%"},
	{Path: "designation", Label: "Job Designation/Level", Criticality: model.Important, Impact: "Reduces seniority match accuracy by 40%"},
	{Path: "preferred_skills", Label: "Preferred/Nice-to-Have Skills", Criticality: model.Important, Impact: "Reduces skills assessment depth by 30%"},
	{Path: "min_gcc_experience_years", Label: "Minimum GCC Experience Required", Criticality: model.Important, Impact: "Cannot assess GCC experience requirement"},
	{Path: "salary_min", Label: "Minimum Salary Range", Criticality: model.Important, Impact: "Reduces salary assessment accuracy by 20%"},
	{Path: "responsibilities", Label: "Key Responsibilities", Criticality: model.Important, Impact: "Reduces role fit accuracy by 25%"},
}
