package model

// FieldAssessment is one scored attribute comparison.
type FieldAssessment struct {
	Field          string            `json:"field"`
	Label          string            `json:"label"`
	CandidateValue any               `json:"candidate_value"`
	JobRequirement any               `json:"job_requirement"`
	Score          float64           `json:"score"`
	Weight         float64           `json:"weight"`
	Explanation    string            `json:"explanation"`
	MatchLevel     MatchLevel        `json:"match_level"`
	Details        []FieldAssessment `json:"details,omitempty"`
}

// SectionAssessment groups field assessments under a weighted section score.
type SectionAssessment struct {
	Section     Section           `json:"section"`
	Name        string            `json:"name"`
	Score       float64           `json:"score"`
	Weight      float64           `json:"weight"`
	MatchLevel  MatchLevel        `json:"match_level"`
	Explanation string            `json:"explanation"`
	Fields      []FieldAssessment `json:"fields"`
}

// SkillMatch describes how one job skill was resolved against the candidate.
type SkillMatch struct {
	JobSkill       string    `json:"job_skill"`
	CandidateSkill string    `json:"candidate_skill"`
	MatchType      MatchType `json:"match_type"`
	Confidence     float64   `json:"confidence"`
	Weight         float64   `json:"weight"`
	Required       bool      `json:"is_required"`
	Category       string    `json:"category,omitempty"`
	Explanation    string    `json:"explanation"`
}

// MatchCounts counts matches per strategy.
type MatchCounts struct {
	Exact    int `json:"exact"`
	Synonym  int `json:"synonym"`
	Semantic int `json:"semantic"`
	Category int `json:"category"`
}

// SkillRecommendation is a suggestion to close a skill gap.
type SkillRecommendation struct {
	Skill    string `json:"skill"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

// SkillAssessment is the aggregate skill matching outcome.
type SkillAssessment struct {
	MatchedRequired    []SkillMatch          `json:"matched_required"`
	MatchedPreferred   []SkillMatch          `json:"matched_preferred"`
	MissingRequired    []string              `json:"missing_required"`
	MissingPreferred   []string              `json:"missing_preferred"`
	TotalRequired      int                   `json:"total_required"`
	TotalPreferred     int                   `json:"total_preferred"`
	RequiredScore      float64               `json:"required_match_score"`
	PreferredScore     float64               `json:"preferred_match_score"`
	OverallScore       float64               `json:"overall_skill_score"`
	RequiredMatchRate  float64               `json:"required_match_rate"`
	PreferredMatchRate float64               `json:"preferred_match_rate"`
	Counts             MatchCounts           `json:"match_counts"`
	Recommendations    []SkillRecommendation `json:"recommendations,omitempty"`
	SemanticDegraded   bool                  `json:"semantic_degraded,omitempty"`
}

// ContextualAdjustment is a bonus or penalty applied on top of the base score.
type ContextualAdjustment struct {
	Code       string         `json:"code"`
	Type       AdjustmentType `json:"type"`
	Points     int            `json:"points"`
	Reason     string         `json:"reason"`
	Confidence float64        `json:"confidence"`
}

// FeatureInteraction is an informational compound pattern across sections.
type FeatureInteraction struct {
	Code        string    `json:"code"`
	Sections    []Section `json:"sections"`
	Description string    `json:"description"`
	Effect      string    `json:"effect"`
}

// ConfidenceMetrics quantifies how much the assessment can be trusted.
type ConfidenceMetrics struct {
	Level              ConfidenceLevel `json:"level"`
	Score              float64         `json:"score"`
	UncertaintyFactors []string        `json:"uncertainty_factors"`
	DataCompleteness   float64         `json:"data_completeness"`
	SignalAgreement    float64         `json:"signal_agreement"`
	FieldCoverage      float64         `json:"field_coverage"`
}

// GrowthPotential estimates the ability to close fit gaps over time.
type GrowthPotential struct {
	Score                 float64    `json:"growth_potential_score"`
	LearningAgility       float64    `json:"learning_agility_score"`
	CareerTrajectory      float64    `json:"career_trajectory_score"`
	SkillAcquisitionRate  float64    `json:"skill_acquisition_rate"`
	EducationInvestment   float64    `json:"education_investment_score"`
	CertificationCurrency float64    `json:"certification_currency"`
	IndustryAdaptability  float64    `json:"industry_adaptability"`
	Indicators            []string   `json:"growth_indicators"`
	Tier                  GrowthTier `json:"potential_tier"`
	Recommendation        string     `json:"recommendation"`
}

// ConfidenceInterval is the statistical range around a point score.
type ConfidenceInterval struct {
	PointEstimate   float64 `json:"point_estimate"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
	MarginOfError   float64 `json:"margin_of_error"`
	ConfidenceLevel int     `json:"confidence_level"`
}

// DecisionFactors summarises the inputs behind a recommendation.
type DecisionFactors struct {
	CurrentFitScore float64         `json:"current_fit_score"`
	ScoreRange      string          `json:"score_range"`
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`
	GrowthPotential float64         `json:"growth_potential"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	RedFlagCount    int             `json:"red_flag_count"`
	TopStrength     string          `json:"top_strength"`
	TopWeakness     string          `json:"top_weakness"`
}

// SmartRecommendation is the actionable hiring recommendation.
type SmartRecommendation struct {
	Action              Action             `json:"action"`
	Priority            Priority           `json:"priority"`
	Interval            ConfidenceInterval `json:"confidence_interval"`
	RiskLevel           RiskLevel          `json:"risk_level"`
	NextSteps           []string           `json:"next_steps"`
	SuccessProbability  float64            `json:"estimated_success_probability"`
	InterviewFocusAreas []string           `json:"interview_focus_areas"`
	DecisionFactors     DecisionFactors    `json:"decision_factors"`
	Message             string             `json:"message"`
}

// RedFlag is a detected risk pattern.
type RedFlag struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Details     string   `json:"details,omitempty"`
	Mitigation  string   `json:"mitigation,omitempty"`
}

// CareerProgression describes title seniority movement across recent roles.
type CareerProgression struct {
	Trajectory       string  `json:"trajectory"`
	GrowthRate       float64 `json:"growth_rate"`
	SeniorityLevels  []int   `json:"seniority_levels,omitempty"`
	CurrentSeniority int     `json:"current_seniority"`
}

// SkillCurrency reports how current a skill set is.
type SkillCurrency struct {
	Score          float64  `json:"score"`
	CurrentSkills  []string `json:"current_skills,omitempty"`
	OutdatedSkills []string `json:"outdated_skills,omitempty"`
}

// CandidateInsights is the red-flag and narrative synthesis for one candidate.
type CandidateInsights struct {
	RedFlags          []RedFlag         `json:"red_flags"`
	Progression       CareerProgression `json:"career_progression"`
	SkillCurrency     SkillCurrency     `json:"skill_currency"`
	LearningPotential float64           `json:"learning_potential"`
	CulturalFit       float64           `json:"cultural_fit_score"`
	Strengths         []string          `json:"strengths"`
	Weaknesses        []string          `json:"weaknesses"`
	Recommendation    string            `json:"recommendation"`
	Highlights        []string          `json:"highlights"`
}

// CriticalFlagCount counts critical red flags.
func (i *CandidateInsights) CriticalFlagCount() int {
	return i.countFlags(SeverityCritical)
}

// HighFlagCount counts high severity red flags.
func (i *CandidateInsights) HighFlagCount() int {
	return i.countFlags(SeverityHigh)
}

func (i *CandidateInsights) countFlags(sev Severity) int {
	if i == nil {
		return 0
	}
	n := 0
	for _, f := range i.RedFlags {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// ImprovementTip is a candidate-facing suggestion.
type ImprovementTip struct {
	Section  Section  `json:"section"`
	Tip      string   `json:"tip"`
	Priority Priority `json:"priority"`
}

// CompletenessReport is the data completeness summary attached to every result.
type CompletenessReport struct {
	Valid            bool     `json:"is_valid"`
	CriticalMissing  []string `json:"critical_missing"`
	ImportantMissing []string `json:"important_missing"`
	Score            float64  `json:"completeness_score"`
	Quality          string   `json:"data_quality"`
}

// AssessmentResult is the full outcome for one candidate-job pair.
type AssessmentResult struct {
	AssessmentID string `json:"assessment_id"`
	CandidateID  string `json:"candidate_id"`
	JobID        string `json:"job_id"`
	ModelVersion string `json:"model_version"`
	EvaluatedAt  string `json:"evaluated_at"`
	IsMock       bool   `json:"is_mock"`

	TotalScore    int      `json:"total_score"`
	BaseScore     int      `json:"base_score"`
	AdjustedScore int      `json:"adjusted_score"`
	Decision      Decision `json:"decision"`

	IsRejected        bool     `json:"is_rejected"`
	RejectionRuleCode string   `json:"rejection_rule_code,omitempty"`
	RejectionReasons  []string `json:"rejection_reasons"`
	RuleTrace         []string `json:"rule_trace"`

	WeightProfile string              `json:"weight_profile"`
	SectionScores map[Section]float64 `json:"section_scores"`
	Sections      []SectionAssessment `json:"sections"`
	Skills        *SkillAssessment    `json:"skills,omitempty"`

	Explanation     string           `json:"explanation"`
	Recommendation  string           `json:"recommendation"`
	Strengths       []string         `json:"strengths"`
	Concerns        []string         `json:"concerns"`
	ImprovementTips []ImprovementTip `json:"improvement_tips"`
	QuickSummary    string           `json:"quick_summary"`

	Confidence   ConfidenceMetrics      `json:"confidence"`
	Adjustments  []ContextualAdjustment `json:"contextual_adjustments"`
	Interactions []FeatureInteraction   `json:"feature_interactions"`
	Completeness *CompletenessReport    `json:"data_completeness,omitempty"`

	Growth              *GrowthPotential     `json:"growth_potential,omitempty"`
	SmartRecommendation *SmartRecommendation `json:"smart_recommendation,omitempty"`
	Insights            *CandidateInsights   `json:"insights,omitempty"`

	Fallbacks []string `json:"fallbacks,omitempty"`
}

// SectionScore returns the score of a section and whether it was assessed.
func (r *AssessmentResult) SectionScore(s Section) (float64, bool) {
	if r == nil || r.SectionScores == nil {
		return 0, false
	}
	v, ok := r.SectionScores[s]
	return v, ok
}

// RankedCandidate is one entry of a ranked batch.
type RankedCandidate struct {
	CandidateID       string            `json:"candidate_id"`
	Rank              int               `json:"rank"`
	CompositeScore    float64           `json:"composite_score"`
	TotalScore        int               `json:"total_score"`
	SkillsScore       float64           `json:"skills_score"`
	ExperienceScore   float64           `json:"experience_score"`
	CulturalFit       float64           `json:"cultural_fit"`
	RedFlagCount      int               `json:"red_flag_count"`
	CriticalRedFlags  int               `json:"critical_red_flags"`
	Recommendation    string            `json:"recommendation"`
	Tier              Tier              `json:"tier"`
	InterviewPriority InterviewPriority `json:"interview_priority"`
	Percentile        float64           `json:"percentile"`
	KeyStrengths      []string          `json:"key_strengths"`
	KeyConcerns       []string          `json:"key_concerns"`
}

// ComparisonMatrix summarises a ranked batch.
type ComparisonMatrix struct {
	TotalCandidates      int                       `json:"total_candidates"`
	Criterion            string                    `json:"criterion"`
	Compared             []RankedCandidate         `json:"compared"`
	TierDistribution     map[Tier]int              `json:"tier_distribution"`
	PriorityDistribution map[InterviewPriority]int `json:"priority_distribution"`
	TopCandidates        []string                  `json:"top_candidates"`
	AverageScore         float64                   `json:"average_score"`
	TopTenAverage        float64                   `json:"top_10_average"`
}

// BatchError records a candidate whose evaluation failed.
type BatchError struct {
	CandidateID string `json:"candidate_id"`
	Index       int    `json:"index"`
	Error       string `json:"error"`
}

// BatchResult is the outcome of evaluating many candidates against one job.
type BatchResult struct {
	JobID   string              `json:"job_id"`
	Results []*AssessmentResult `json:"results"`
	Errors  []BatchError        `json:"errors"`
	Ranking []RankedCandidate   `json:"ranking"`
	Matrix  *ComparisonMatrix   `json:"comparison_matrix,omitempty"`
}

// Health reports whether the scoring backend is usable.
type Health struct {
	Status          HealthStatus `json:"status"`
	TaxonomyLoaded  bool         `json:"taxonomy_loaded"`
	TaxonomyVersion string       `json:"taxonomy_version,omitempty"`
	Embedder        string       `json:"embedder"`
	EmbedderReady   bool         `json:"embedder_ready"`
	Issues          []string     `json:"issues,omitempty"`
}
