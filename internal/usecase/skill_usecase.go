package usecase

import (
	"context"
	"strings"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	validate  *validator.Validate
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo: skillRepo,
		validate:  validator.New(),
	}
}

func (u *skillUsecase) GetSkills(ctx context.Context, userID string) ([]domain.UserSkill, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User identity missing")
	}
	return u.skillRepo.GetByUserID(ctx, userID)
}

// SaveSkills replaces the user's whole skill record. Duplicate skill names
// keep the last submitted entry.
func (u *skillUsecase) SaveSkills(ctx context.Context, userID string, skills []domain.UserSkill) error {
	if userID == "" {
		return apperror.Unauthorized("User identity missing")
	}

	deduped := make([]domain.UserSkill, 0, len(skills))
	seen := make(map[string]int)
	for _, s := range skills {
		s.SkillName = strings.TrimSpace(s.SkillName)
		if err := u.validate.Struct(s); err != nil {
			return apperror.BadRequest("Invalid skill entry: " + err.Error())
		}
		key := strings.ToLower(s.SkillName)
		if idx, ok := seen[key]; ok {
			// Later submissions win on level and type; the first-seen
			// casing of the name is kept.
			deduped[idx].SkillType = s.SkillType
			deduped[idx].Proficiency = s.Proficiency
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, s)
	}

	return u.skillRepo.ReplaceForUser(ctx, userID, deduped)
}
