package usecase

import (
	"context"
	"strings"

	"go-careerpath-backend/internal/catalog"
	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"
)

const (
	maxProficiencyScore = 3
	readinessThreshold  = 70.0
	maxSuggestions      = 5
)

type gapUsecase struct {
	skillRepo domain.SkillRepository
	catalog   *catalog.Catalog
}

func NewGapUsecase(skillRepo domain.SkillRepository, cat *catalog.Catalog) domain.GapUsecase {
	return &gapUsecase{
		skillRepo: skillRepo,
		catalog:   cat,
	}
}

// AnalyzeGap scores the user's skill record against the target role's
// requirement profile. An unknown role falls back to the default role
// rather than failing, with the substitution flagged on the report.
func (u *gapUsecase) AnalyzeGap(ctx context.Context, userID, targetRole string) (*domain.GapReport, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User identity missing")
	}

	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		targetRole = catalog.DefaultRole
	}

	profile, ok := u.catalog.Role(targetRole)
	fallback := false
	if !ok {
		profile, _ = u.catalog.Role(catalog.DefaultRole)
		fallback = true
	}

	userSkills, err := u.skillRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	proficiencyByName := make(map[string]domain.Proficiency, len(userSkills))
	for _, s := range userSkills {
		proficiencyByName[strings.ToLower(s.SkillName)] = s.Proficiency
	}

	required, requiredPct := assessSkills(profile.RequiredSkills, proficiencyByName)
	preferred, preferredPct := assessSkills(profile.PreferredSkills, proficiencyByName)

	overall := round1(0.7*requiredPct + 0.3*preferredPct)

	missing := make([]string, 0)
	for _, a := range required {
		if a.Status == domain.SkillStatusMissing {
			missing = append(missing, a.Skill)
		}
	}

	report := &domain.GapReport{
		RequestedRole:       targetRole,
		AnalyzedRole:        profile.Title,
		FallbackApplied:     fallback,
		Experience:          profile.Experience,
		RequiredSkills:      required,
		PreferredSkills:     preferred,
		RequiredPercentage:  round1(requiredPct),
		PreferredPercentage: round1(preferredPct),
		OverallReadiness:    overall,
		MissingSkills:       missing,
		ImprovementAreas:    []domain.Suggestion{},
	}

	if overall < readinessThreshold {
		report.ImprovementAreas = u.suggestions(missing)
	}

	return report, nil
}

func (u *gapUsecase) AvailableRoles() []string {
	titles := make([]string, len(u.catalog.RoleTitles))
	copy(titles, u.catalog.RoleTitles)
	return titles
}

// assessSkills builds the per-skill line items and the percentage of the
// maximum attainable proficiency the user holds across the list.
func assessSkills(skills []string, proficiencyByName map[string]domain.Proficiency) ([]domain.SkillAssessment, float64) {
	assessments := make([]domain.SkillAssessment, 0, len(skills))
	total := 0
	for _, skill := range skills {
		a := domain.SkillAssessment{Skill: skill, Status: domain.SkillStatusMissing}
		if prof, ok := proficiencyByName[strings.ToLower(skill)]; ok {
			a.UserProficiency = prof
			a.Score = prof.Score()
			a.Status = domain.SkillStatusHave
			a.ProgressPercentage = a.Score * 33
			if a.ProgressPercentage > 100 {
				a.ProgressPercentage = 100
			}
		}
		total += a.Score
		assessments = append(assessments, a)
	}

	if len(skills) == 0 {
		return assessments, 0
	}
	return assessments, float64(total) * 100 / float64(maxProficiencyScore*len(skills))
}

func (u *gapUsecase) suggestions(missing []string) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, maxSuggestions)
	for _, skill := range missing {
		if len(out) == maxSuggestions {
			break
		}
		priority := "Medium"
		if u.catalog.HighPriority[skill] {
			priority = "High"
		}
		out = append(out, domain.Suggestion{
			Skill:    skill,
			Course:   "Complete " + skill + " Course",
			Provider: "Coursera",
			Duration: "4-6 weeks",
			Level:    "Beginner to Intermediate",
			Priority: priority,
		})
	}
	return out
}
