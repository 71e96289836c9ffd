package domain

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry-level"
	ExperienceMid    ExperienceLevel = "Mid-level"
	ExperienceSenior ExperienceLevel = "Senior"
)

// RoleProfile is the static requirement profile for one known job title.
type RoleProfile struct {
	Title           string          `json:"title"`
	RequiredSkills  []string        `json:"required_skills"`
	PreferredSkills []string        `json:"preferred_skills"`
	Experience      ExperienceLevel `json:"experience_level"`
}
