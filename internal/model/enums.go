package model

import "fmt"

// Section names a scored assessment section.
type Section string

const (
	SectionPersonal   Section = "personal_details"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionSalary     Section = "salary"
	SectionCV         Section = "cv_analysis"
)

// Sections lists every section in presentation order.
var Sections = []Section{SectionPersonal, SectionExperience, SectionEducation, SectionSkills, SectionSalary, SectionCV}

// Label returns the human readable section name.
func (s Section) Label() string {
	switch s {
	case SectionPersonal:
		return "Personal Details"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionSalary:
		return "Salary"
	case SectionCV:
		return "CV Analysis"
	}
	return string(s)
}

// ParseSection validates a section name coming from configuration.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// MatchLevel categorises a 0-100 score.
type MatchLevel string

const (
	MatchExcellent MatchLevel = "excellent"
	MatchGood      MatchLevel = "good"
	MatchPartial   MatchLevel = "partial"
	MatchPoor      MatchLevel = "poor"
	MatchNA        MatchLevel = "n/a"
)

// LevelFor maps a score onto a match level.
func LevelFor(score float64) MatchLevel {
	switch {
	case score >= 85:
		return MatchExcellent
	case score >= 70:
		return MatchGood
	case score >= 50:
		return MatchPartial
	default:
		return MatchPoor
	}
}

// MatchType is the strategy that resolved a skill match.
type MatchType string

const (
	MatchTypeExact    MatchType = "exact"
	MatchTypeSynonym  MatchType = "synonym"
	MatchTypeSemantic MatchType = "semantic"
	MatchTypeCategory MatchType = "category"
)

// Severity of a red flag.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Criticality of a completeness requirement.
type Criticality string

const (
	Critical  Criticality = "CRITICAL"
	Important Criticality = "IMPORTANT"
)

// Decision is the headline outcome derived from the adjusted score.
type Decision string

const (
	DecisionStrongMatch    Decision = "STRONG_MATCH"
	DecisionPotentialMatch Decision = "POTENTIAL_MATCH"
	DecisionWeakMatch      Decision = "WEAK_MATCH"
	DecisionNotRecommended Decision = "NOT_RECOMMENDED"
	DecisionRejected       Decision = "REJECTED"
)

// DecisionFor maps an adjusted score onto a decision.
func DecisionFor(score int, rejected bool) Decision {
	switch {
	case rejected:
		return DecisionRejected
	case score >= 85:
		return DecisionStrongMatch
	case score >= 60:
		return DecisionPotentialMatch
	case score >= 40:
		return DecisionWeakMatch
	default:
		return DecisionNotRecommended
	}
}

// ConfidenceLevel is the categorical assessment confidence.
type ConfidenceLevel string

const (
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceNone     ConfidenceLevel = "none"
)

// ParseConfidenceLevel validates a confidence level coming from configuration.
func ParseConfidenceLevel(s string) (ConfidenceLevel, error) {
	switch l := ConfidenceLevel(s); l {
	case ConfidenceVeryHigh, ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return l, nil
	}
	return "", fmt.Errorf("unknown confidence level %q", s)
}

// AdjustmentType classifies a contextual adjustment.
type AdjustmentType string

const (
	AdjustmentBonus   AdjustmentType = "bonus"
	AdjustmentPenalty AdjustmentType = "penalty"
	AdjustmentNeutral AdjustmentType = "neutral"
)

// GrowthTier classifies growth potential.
type GrowthTier string

const (
	GrowthHighPotential GrowthTier = "high_potential"
	GrowthStandard      GrowthTier = "standard"
	GrowthLimited       GrowthTier = "limited"
	GrowthNotAssessed   GrowthTier = "not_assessed"
)

// Action is the recommended hiring action.
type Action string

const (
	ActionImmediateInterview Action = "IMMEDIATE_INTERVIEW"
	ActionShortlist          Action = "SHORTLIST"
	ActionWaitlist           Action = "WAITLIST"
	ActionHoldForReview      Action = "HOLD_FOR_REVIEW"
	ActionReject             Action = "REJECT"
)

// Priority of a recommended action.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityNone     Priority = "none"
)

// RiskLevel of a hiring decision.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Tier is a percentile bucket within a ranked batch.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// InterviewPriority is the ranking-level interview urgency.
type InterviewPriority string

const (
	InterviewUrgent         InterviewPriority = "urgent"
	InterviewHigh           InterviewPriority = "high"
	InterviewMedium         InterviewPriority = "medium"
	InterviewLow            InterviewPriority = "low"
	InterviewDoNotInterview InterviewPriority = "do_not_interview"
)

// HealthStatus of the scoring backend.
type HealthStatus string

const (
	HealthHealthy     HealthStatus = "healthy"
	HealthDegraded    HealthStatus = "degraded"
	HealthUnavailable HealthStatus = "unavailable"
)

// Marker returns the star marker used in completeness messages.
func (c Criticality) Marker() string {
	if c == Critical {
		return "⭐⭐"
	}
	return "⭐"
}
