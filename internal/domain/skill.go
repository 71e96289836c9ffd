package domain

import "context"

// Proficiency is the self-reported level attached to a user skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
)

// Score converts a proficiency level to its numeric gap-scoring value.
// Unknown or empty proficiency scores 0.
func (p Proficiency) Score() int {
	switch p {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	default:
		return 0
	}
}

func (p Proficiency) Valid() bool {
	return p.Score() > 0
}

// SkillType distinguishes technical from non-technical skills in the picker catalogue.
type SkillType string

const (
	SkillTypeIT    SkillType = "IT"
	SkillTypeNonIT SkillType = "Non-IT"
)

// UserSkill is one entry of a user's skill record.
type UserSkill struct {
	SkillName   string      `json:"skill_name" validate:"required,min=1,max=100"`
	SkillType   SkillType   `json:"skill_type" validate:"required,oneof=IT Non-IT"`
	Proficiency Proficiency `json:"proficiency" validate:"required,oneof=Beginner Intermediate Advanced"`
}

// ResumeAnalysis is the result of processing one uploaded resume.
type ResumeAnalysis struct {
	ResumeText string   `json:"resume_text"`
	Skills     []string `json:"skills"`
}

type SkillRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]UserSkill, error)
	// ReplaceForUser atomically replaces the user's full skill record so
	// concurrent submissions never interleave partial lists.
	ReplaceForUser(ctx context.Context, userID string, skills []UserSkill) error
}

type SkillUsecase interface {
	GetSkills(ctx context.Context, userID string) ([]UserSkill, error)
	SaveSkills(ctx context.Context, userID string, skills []UserSkill) error
}

type ResumeUsecase interface {
	AnalyzeResume(ctx context.Context, filename string, data []byte) (*ResumeAnalysis, error)
}
