package domain

import "context"

type SkillStatus string

const (
	SkillStatusHave    SkillStatus = "have"
	SkillStatusMissing SkillStatus = "missing"
)

// SkillAssessment is the per-skill line item of a gap report.
type SkillAssessment struct {
	Skill              string      `json:"skill"`
	UserProficiency    Proficiency `json:"user_proficiency,omitempty"`
	Score              int         `json:"score"`
	Status             SkillStatus `json:"status"`
	ProgressPercentage int         `json:"progress_percentage"`
}

// Suggestion is a fixed-shape learning recommendation for a missing skill.
type Suggestion struct {
	Skill    string `json:"skill"`
	Course   string `json:"course"`
	Provider string `json:"provider"`
	Duration string `json:"duration"`
	Level    string `json:"level"`
	Priority string `json:"priority"`
}

// GapReport is the readiness analysis of a user against one target role.
// When the requested role is unknown, the default role is analyzed instead;
// AnalyzedRole and FallbackApplied let callers tell substitution apart from
// a genuine analysis of the requested title.
type GapReport struct {
	RequestedRole       string            `json:"requested_role"`
	AnalyzedRole        string            `json:"analyzed_role"`
	FallbackApplied     bool              `json:"fallback_applied"`
	Experience          ExperienceLevel   `json:"experience_level"`
	RequiredSkills      []SkillAssessment `json:"required_skills_analysis"`
	PreferredSkills     []SkillAssessment `json:"preferred_skills_analysis"`
	RequiredPercentage  float64           `json:"required_percentage"`
	PreferredPercentage float64           `json:"preferred_percentage"`
	OverallReadiness    float64           `json:"overall_readiness"`
	MissingSkills       []string          `json:"missing_skills"`
	ImprovementAreas    []Suggestion      `json:"improvement_areas"`
}

type GapUsecase interface {
	AnalyzeGap(ctx context.Context, userID, targetRole string) (*GapReport, error)
	AvailableRoles() []string
}
