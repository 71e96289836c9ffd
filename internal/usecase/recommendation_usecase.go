package usecase

import (
	"context"
	"math"
	"sort"
	"strings"

	"go-careerpath-backend/internal/catalog"
	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"
)

type recommendationUsecase struct {
	skillRepo domain.SkillRepository
	catalog   *catalog.Catalog
}

func NewRecommendationUsecase(skillRepo domain.SkillRepository, cat *catalog.Catalog) domain.RecommendationUsecase {
	return &recommendationUsecase{
		skillRepo: skillRepo,
		catalog:   cat,
	}
}

// RecommendJobs scores every catalogue opening by the share of its skills
// the user has. Openings with no overlap are left out, the rest are
// ordered by score descending with catalogue order breaking ties.
func (u *recommendationUsecase) RecommendJobs(ctx context.Context, userID string) (*domain.RecommendationResult, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User identity missing")
	}

	userSkills, err := u.skillRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]struct{}, len(userSkills))
	names := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		owned[strings.ToLower(s.SkillName)] = struct{}{}
		names = append(names, s.SkillName)
	}

	matches := make([]domain.JobMatch, 0)
	for _, opening := range u.catalog.Openings {
		var matching []string
		for _, skill := range opening.Skills {
			if _, ok := owned[strings.ToLower(skill)]; ok {
				matching = append(matching, skill)
			}
		}
		if len(matching) == 0 || len(opening.Skills) == 0 {
			continue
		}

		matches = append(matches, domain.JobMatch{
			JobOpening:     opening,
			MatchScore:     round1(float64(len(matching)) / float64(len(opening.Skills)) * 100),
			MatchingSkills: matching,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return &domain.RecommendationResult{
		UserSkills: names,
		Matches:    matches,
	}, nil
}

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
