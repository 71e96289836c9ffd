package domain

import "context"

// JobOpening is one entry of the static job catalogue used for recommendations.
type JobOpening struct {
	Title      string          `json:"title"`
	Company    string          `json:"company"`
	Location   string          `json:"location"`
	Skills     []string        `json:"skills"`
	Experience ExperienceLevel `json:"experience"`
	Salary     string          `json:"salary"`
}

// JobMatch is a catalogue opening scored against a user's skill set.
// MatchScore is the percentage of the opening's skills the user covers,
// not a symmetric similarity.
type JobMatch struct {
	JobOpening
	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
}

// RecommendationResult pairs the ranked matches with the skill set they
// were computed from.
type RecommendationResult struct {
	UserSkills []string   `json:"user_skills"`
	Matches    []JobMatch `json:"recommendations"`
}

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, userID string) (*RecommendationResult, error)
}
